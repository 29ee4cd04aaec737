package types

// Suggestion type constants classify review feedback by severity
const (
	// SuggestionWarning flags a problem that costs points
	SuggestionWarning = "warning"
	// SuggestionInfo flags an improvement opportunity
	SuggestionInfo = "info"
	// SuggestionSuccess highlights something done well
	SuggestionSuccess = "success"
)

// Suggestion represents a single piece of review feedback
type Suggestion struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Section     string `json:"section,omitempty"` // resume section the suggestion targets, e.g. "skills"
}

// AnalysisResult represents scored review feedback for a resume
type AnalysisResult struct {
	Score            int          `json:"score"`
	Suggestions      []Suggestion `json:"suggestions"`
	Keywords         []string     `json:"keywords,omitempty"`
	ATSCompatibility *int         `json:"atsCompatibility,omitempty"`
}

// WarningCount returns the number of warning-typed suggestions
func (r *AnalysisResult) WarningCount() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, s := range r.Suggestions {
		if s.Type == SuggestionWarning {
			count++
		}
	}
	return count
}
