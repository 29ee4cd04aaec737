package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		PersonalDetails: &types.PersonalDetails{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Location: "Berlin",
		},
		Experience: []types.Experience{
			{Title: "Senior Engineer", Company: "Initech"},
			{Title: "Engineer", Company: "Acme Corp"},
		},
		Education: []types.Education{
			{Degree: "B.Sc. Computer Science", Institution: "TU Berlin"},
		},
		Skills: &types.Skills{Technical: []string{"Go", "Kubernetes"}},
	}

	p.PrintParsedResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Senior Engineer @ Initech")
	assert.Contains(t, output, "B.Sc. Computer Science")
	assert.Contains(t, output, "Go, Kubernetes")
}

func TestPrintParsedResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ats := 72
	result := &types.AnalysisResult{
		Score: 81,
		Suggestions: []types.Suggestion{
			{Type: types.SuggestionWarning, Title: "Missing Email", Description: "Add an email address."},
			{Type: types.SuggestionInfo, Title: "Expand Experience Descriptions", Description: "Add detail to brief roles."},
		},
		ATSCompatibility: &ats,
	}

	p.PrintAnalysis(result)
	output := buf.String()

	assert.Contains(t, output, "RESUME ANALYSIS")
	assert.Contains(t, output, "Score: 81/100")
	assert.Contains(t, output, "ATS: 72/100")
	assert.Contains(t, output, "2 suggestions (1 warnings)")
	assert.Contains(t, output, "⚠ Missing Email")
	assert.Contains(t, output, "ℹ Expand Experience Descriptions")
}

func TestPrintAnalysis_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{Score: 40}
	for i := 0; i < maxItemsToShow+3; i++ {
		result.Suggestions = append(result.Suggestions, types.Suggestion{
			Type:  types.SuggestionInfo,
			Title: "Suggestion",
		})
	}

	p.PrintAnalysis(result)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintJobMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		Score: 64,
		Suggestions: []types.Suggestion{
			{Type: types.SuggestionWarning, Title: "Missing Key Skills", Description: "Consider adding: Docker", Section: "skills"},
		},
		Keywords: []string{"Go", "Docker"},
	}

	p.PrintJobMatch(result)
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "Score: 64/100")
	assert.Contains(t, output, "Missing Key Skills")
	assert.Contains(t, output, "Keywords: Go, Docker")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		PersonalDetails: &types.PersonalDetails{
			Name: "A Very Long Candidate Name That Should Be Truncated To Fit The Box",
		},
	}

	p.PrintParsedResume(resume)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", TruncateForLog("short", 10))
	assert.Equal(t, "exact", TruncateForLog("exact", 5))
	assert.Equal(t, "lon...", TruncateForLog("longer text", 3))
	assert.Equal(t, "untouched", TruncateForLog("untouched", 0))
}

func TestTruncateForLog_NeverSplitsRunes(t *testing.T) {
	// A cut landing inside a multibyte character backs up to the rune start
	assert.Equal(t, "h...", TruncateForLog("héllo wörld", 2))
	assert.Equal(t, "日...", TruncateForLog("日本語テキスト", 4))
	assert.True(t, utf8.ValidString(TruncateForLog("résumé — curriculum vitæ with a long tail", 20)))
}

func TestPrintBox_MultibyteContentStaysValid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		PersonalDetails: &types.PersonalDetails{
			Name: "Ångström Ségolène-Berthollet Üçüncüoğlu, Diplôme d'Ingénieur très long",
		},
	}

	p.PrintParsedResume(resume)
	assert.True(t, utf8.ValidString(buf.String()))
}
