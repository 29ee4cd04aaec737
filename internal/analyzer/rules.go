package analyzer

import (
	"regexp"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// Scoring weights for the deterministic recompute
const (
	baseScore                     = 100
	warningPenalty                = 5
	missingNamePenalty            = 10
	missingExperiencePenalty      = 20
	missingEducationPenalty       = 10
	missingTechnicalSkillsPenalty = 15

	// minDescriptionLength is the point below which an experience
	// description counts as too brief
	minDescriptionLength = 50
)

// quantifiableRe recognizes measurable evidence in an experience description:
// percentages, dollar amounts, comma-grouped figures, and durations.
var quantifiableRe = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*%|\$\s*\d[\d,]*(?:\.\d+)?|\d{1,3}(?:,\d{3})+|\d+\+?\s*(?:years?|yrs?|months?)`)

// ruleSuggestions derives suggestions from the parsed resume alone.
// The same parse always yields the same suggestions, in the same order.
// Overlap with AI suggestions is accepted rather than deduplicated.
func ruleSuggestions(parsed *types.ParsedResume) []types.Suggestion {
	var suggestions []types.Suggestion

	if !parsed.HasEmail() {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionWarning,
			Title:       "Missing Email",
			Description: "Add an email address so recruiters can reach you.",
			Section:     "contact",
		})
	}

	if !parsed.HasPhone() {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionWarning,
			Title:       "Missing Phone Number",
			Description: "Add a phone number to give recruiters a second way to reach you.",
			Section:     "contact",
		})
	}

	if hasBriefExperienceDescription(parsed.Experience) {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionInfo,
			Title:       "Expand Experience Descriptions",
			Description: "Some roles have brief or missing descriptions. Describe what you did and how it mattered.",
			Section:     "experience",
		})
	}

	if !hasQuantifiableEvidence(parsed.Experience) {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionWarning,
			Title:       "Add Quantifiable Achievements",
			Description: "Back your experience with numbers: percentages, amounts, or durations.",
			Section:     "experience",
		})
	}

	return suggestions
}

// hasBriefExperienceDescription reports whether at least one entry has an
// empty or too-short description. A resume with no experience entries has
// nothing to expand.
func hasBriefExperienceDescription(experience []types.Experience) bool {
	for _, exp := range experience {
		if len(exp.Description) < minDescriptionLength {
			return true
		}
	}
	return false
}

// hasQuantifiableEvidence reports whether any experience description carries
// measurable evidence
func hasQuantifiableEvidence(experience []types.Experience) bool {
	for _, exp := range experience {
		if quantifiableRe.MatchString(exp.Description) {
			return true
		}
	}
	return false
}

// recomputeScore derives the resume score from the parse and the combined
// suggestion list, ignoring whatever score the AI proposed
func recomputeScore(parsed *types.ParsedResume, suggestions []types.Suggestion) int {
	score := baseScore

	for _, s := range suggestions {
		if s.Type == types.SuggestionWarning {
			score -= warningPenalty
		}
	}

	if !parsed.HasName() {
		score -= missingNamePenalty
	}
	if len(parsed.Experience) == 0 {
		score -= missingExperiencePenalty
	}
	if len(parsed.Education) == 0 {
		score -= missingEducationPenalty
	}
	if len(parsed.TechnicalSkills()) == 0 {
		score -= missingTechnicalSkillsPenalty
	}

	return clampScore(score)
}

// clampScore pins a score into the valid 0..100 range
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
