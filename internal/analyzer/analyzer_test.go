package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/llm"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// stubService feeds canned provider output into the analyzer.
type stubService struct {
	analysis    *types.AnalysisResult
	analysisErr error

	match    *types.AnalysisResult
	matchErr error
}

func (s *stubService) ParseResume(_ context.Context, _ string) (*types.ParsedResume, error) {
	return nil, errors.New("not used by the analyzer")
}

func (s *stubService) AnalyzeResume(_ context.Context, _ *types.ParsedResume) (*types.AnalysisResult, error) {
	return s.analysis, s.analysisErr
}

func (s *stubService) AnalyzeJobMatch(_ context.Context, _ *types.ParsedResume, _ string) (*types.AnalysisResult, error) {
	return s.match, s.matchErr
}

func (s *stubService) Close() error { return nil }

func intPtr(v int) *int { return &v }

func TestAnalyze_EnhancesProviderOutput(t *testing.T) {
	parsed := &types.ParsedResume{
		PersonalDetails: &types.PersonalDetails{
			Name:  "Jane Doe",
			Phone: "+49 151 1234567",
		},
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Initech", Description: "Worked on backend systems"},
		},
		Education: []types.Education{{Degree: "B.Sc.", Institution: "TU Berlin"}},
		Skills:    &types.Skills{Technical: []string{"Go"}},
	}
	svc := &stubService{
		analysis: &types.AnalysisResult{
			Score: 95,
			Suggestions: []types.Suggestion{
				{Type: types.SuggestionWarning, Title: "Weak Summary", Description: "The summary reads generic."},
				{Type: types.SuggestionSuccess, Title: "Good Structure", Description: "Clear section layout."},
			},
			ATSCompatibility: intPtr(150),
		},
	}

	result, err := New(svc, nil).Analyze(context.Background(), parsed)
	require.NoError(t, err)

	titles := suggestionTitles(result.Suggestions)
	assert.Equal(t, []string{
		"Weak Summary",
		"Good Structure",
		"Missing Email",
		"Expand Experience Descriptions",
		"Add Quantifiable Achievements",
	}, titles)

	// 3 warnings total, all structural sections present: 100 - 15.
	assert.Equal(t, 85, result.Score)

	require.NotNil(t, result.ATSCompatibility)
	assert.Equal(t, 100, *result.ATSCompatibility)
}

func TestAnalyze_ScoreIgnoresProviderScore(t *testing.T) {
	svc := &stubService{
		analysis: &types.AnalysisResult{Score: 12},
	}

	result, err := New(svc, nil).Analyze(context.Background(), completeResume())
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
}

func TestAnalyze_ScoreStaysInRange(t *testing.T) {
	var noisy []types.Suggestion
	for i := 0; i < 30; i++ {
		noisy = append(noisy, types.Suggestion{Type: types.SuggestionWarning, Title: "Issue"})
	}
	svc := &stubService{
		analysis: &types.AnalysisResult{Score: 500, Suggestions: noisy},
	}

	result, err := New(svc, nil).Analyze(context.Background(), &types.ParsedResume{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}

func TestAnalyze_ReviewFailure(t *testing.T) {
	cause := &llm.TransportError{Provider: "ollama", Message: "request failed"}
	svc := &stubService{analysisErr: cause}

	_, err := New(svc, nil).Analyze(context.Background(), completeResume())
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, StepBaseAnalysis, analysisErr.Step)

	var transport *llm.TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestMatchJob_AppendsMissingSkills(t *testing.T) {
	parsed := &types.ParsedResume{
		PersonalDetails: &types.PersonalDetails{Name: "Jane Doe"},
		Skills:          &types.Skills{Technical: []string{"Python"}},
	}
	svc := &stubService{
		match: &types.AnalysisResult{
			Score: 120,
			Suggestions: []types.Suggestion{
				{Type: types.SuggestionInfo, Title: "Tailor The Summary", Description: "Mirror the posting's language."},
			},
			Keywords: []string{"Python"},
		},
	}
	job := "Looking for Python, Docker and Leadership."

	result, err := New(svc, nil).MatchJob(context.Background(), parsed, job)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)

	require.Len(t, result.Suggestions, 2)
	gap := result.Suggestions[1]
	assert.Equal(t, types.SuggestionWarning, gap.Type)
	assert.Equal(t, "Missing Key Skills", gap.Title)
	assert.Equal(t, "skills", gap.Section)
	assert.Contains(t, gap.Description, "Docker")
	assert.Contains(t, gap.Description, "Leadership")

	assert.Equal(t, []string{"Python", "Docker", "Leadership"}, result.Keywords)
}

func TestMatchJob_ScoreNotRecomputed(t *testing.T) {
	svc := &stubService{match: &types.AnalysisResult{Score: 42}}

	result, err := New(svc, nil).MatchJob(context.Background(), &types.ParsedResume{}, "barista wanted")
	require.NoError(t, err)
	assert.Equal(t, 42, result.Score)
}

func TestMatchJob_NoGaps(t *testing.T) {
	parsed := &types.ParsedResume{Skills: &types.Skills{Technical: []string{"Python"}}}
	svc := &stubService{
		match: &types.AnalysisResult{
			Score:    80,
			Keywords: []string{"Python"},
		},
	}

	result, err := New(svc, nil).MatchJob(context.Background(), parsed, "Python only.")
	require.NoError(t, err)
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, []string{"Python"}, result.Keywords)
}

func TestMatchJob_NamesFirstFiveGaps(t *testing.T) {
	parsed := &types.ParsedResume{PersonalDetails: &types.PersonalDetails{Name: "Jane"}}
	svc := &stubService{match: &types.AnalysisResult{Score: 50}}
	job := "Java, TypeScript, AWS, Docker, Kubernetes, Terraform and Leadership."

	result, err := New(svc, nil).MatchJob(context.Background(), parsed, job)
	require.NoError(t, err)

	require.Len(t, result.Suggestions, 1)
	gap := result.Suggestions[0]
	assert.Contains(t, gap.Description, "Kubernetes")
	assert.NotContains(t, gap.Description, "Terraform")

	// The keyword list still carries every gap.
	assert.Len(t, result.Keywords, 7)
	assert.Contains(t, result.Keywords, "Terraform")
	assert.Contains(t, result.Keywords, "Leadership")
}

func TestMatchJob_Failure(t *testing.T) {
	svc := &stubService{matchErr: errors.New("boom")}

	_, err := New(svc, nil).MatchJob(context.Background(), completeResume(), "job")
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, StepJobMatch, analysisErr.Step)
}

func TestEnhanceAnalysis_DoesNotMutateInput(t *testing.T) {
	base := &types.AnalysisResult{
		Score:       70,
		Suggestions: []types.Suggestion{{Type: types.SuggestionWarning, Title: "Weak Summary"}},
		Keywords:    []string{"Go"},
	}
	parsed := &types.ParsedResume{}

	enhanced := enhanceAnalysis(parsed, base)
	require.NotNil(t, enhanced)

	assert.Equal(t, 70, base.Score)
	assert.Len(t, base.Suggestions, 1)
	assert.Equal(t, []string{"Go"}, base.Keywords)
}
