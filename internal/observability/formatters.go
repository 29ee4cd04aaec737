package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = TruncateForLog(line, boxWidth-7)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of the extracted resume
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	if resume.PersonalDetails != nil {
		details := resume.PersonalDetails
		sb.WriteString(fmt.Sprintf("Name:     %s\n", details.Name))
		if details.Email != "" {
			sb.WriteString(fmt.Sprintf("Email:    %s\n", details.Email))
		}
		if details.Phone != "" {
			sb.WriteString(fmt.Sprintf("Phone:    %s\n", details.Phone))
		}
		if details.Location != "" {
			sb.WriteString(fmt.Sprintf("Location: %s\n", details.Location))
		}
		sb.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(resume.Experience)))
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(resume.Education), 3)
		for i := 0; i < count; i++ {
			edu := resume.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", edu.Degree, edu.Institution))
		}
		sb.WriteString("\n")
	}

	if skills := resume.TechnicalSkills(); len(skills) > 0 {
		joined := TruncateForLog(strings.Join(skills, ", "), 42)
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", joined))
	}

	if len(resume.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("Projects: %d\n", len(resume.Projects)))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the scored feedback for a resume
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.printBox("RESUME ANALYSIS", p.formatAnalysis(result))
}

// PrintJobMatch outputs the scored feedback for a resume against a job posting
func (p *Printer) PrintJobMatch(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	content := p.formatAnalysis(result)
	if len(result.Keywords) > 0 {
		keywords := TruncateForLog(strings.Join(result.Keywords, ", "), 42)
		content += fmt.Sprintf("\n\nKeywords: %s", keywords)
	}

	p.printBox("JOB MATCH", content)
}

func (p *Printer) formatAnalysis(result *types.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d/100", result.Score))
	if result.ATSCompatibility != nil {
		sb.WriteString(fmt.Sprintf("   ATS: %d/100", *result.ATSCompatibility))
	}
	sb.WriteString("\n")

	if len(result.Suggestions) > 0 {
		sb.WriteString(fmt.Sprintf("\n%d suggestions (%d warnings):\n\n", len(result.Suggestions), result.WarningCount()))
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := result.Suggestions[i]
			sb.WriteString(fmt.Sprintf("%s %s\n", severityGlyph(s.Type), s.Title))
			description := TruncateForLog(s.Description, 42)
			sb.WriteString(fmt.Sprintf("  %s\n", description))
			if i < count-1 {
				sb.WriteString("\n")
			}
		}
		if len(result.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more", len(result.Suggestions)-maxItemsToShow))
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func severityGlyph(suggestionType string) string {
	switch suggestionType {
	case types.SuggestionWarning:
		return "⚠"
	case types.SuggestionSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}
