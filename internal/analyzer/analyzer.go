// Package analyzer composes AI review output with deterministic rule checks.
// The AI supplies judgment; the rules supply guarantees: fixed suggestions for
// objectively missing pieces and a locally recomputed score.
package analyzer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/llm"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// maxMissingShown caps how many missing skills the suggestion text names
const maxMissingShown = 5

// ResumeAnalyzer runs resume analysis over any LLM service
type ResumeAnalyzer struct {
	svc llm.Service
	log *zap.Logger
}

// New creates a ResumeAnalyzer on top of an LLM service
func New(svc llm.Service, logger *zap.Logger) *ResumeAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeAnalyzer{svc: svc, log: logger}
}

// Analyze obtains the AI review for parsed resume data and hardens it with
// rule checks. The returned score is recomputed locally from the parse and the
// combined suggestions; only suggestions and ATS compatibility carry through
// from the AI. The caller parses once and may reuse the same parse across any
// number of analysis and match calls.
func (a *ResumeAnalyzer) Analyze(ctx context.Context, parsed *types.ParsedResume) (*types.AnalysisResult, error) {
	base, err := a.svc.AnalyzeResume(ctx, parsed)
	if err != nil {
		return nil, &AnalysisError{Step: StepBaseAnalysis, Message: "could not obtain the AI review", Cause: err}
	}

	enhanced := enhanceAnalysis(parsed, base)
	a.log.Debug("analysis enhanced",
		zap.Int("ai_score", base.Score),
		zap.Int("final_score", enhanced.Score),
		zap.Int("suggestions", len(enhanced.Suggestions)),
	)
	return enhanced, nil
}

// MatchJob obtains the AI job comparison for parsed resume data and appends
// the keyword gap findings. The match score stays the AI's call and is only
// clamped into range, never recomputed.
func (a *ResumeAnalyzer) MatchJob(ctx context.Context, parsed *types.ParsedResume, jobDescription string) (*types.AnalysisResult, error) {
	match, err := a.svc.AnalyzeJobMatch(ctx, parsed, jobDescription)
	if err != nil {
		return nil, &AnalysisError{Step: StepJobMatch, Message: "could not obtain the job match review", Cause: err}
	}

	enhanced := enhanceJobMatch(parsed, match, jobDescription)
	a.log.Debug("job match enhanced",
		zap.Int("score", enhanced.Score),
		zap.Int("keywords", len(enhanced.Keywords)),
	)
	return enhanced, nil
}

// enhanceAnalysis appends the rule suggestions and recomputes the score.
// AI suggestions are kept verbatim, duplicates included.
func enhanceAnalysis(parsed *types.ParsedResume, base *types.AnalysisResult) *types.AnalysisResult {
	suggestions := append([]types.Suggestion{}, base.Suggestions...)
	suggestions = append(suggestions, ruleSuggestions(parsed)...)

	return &types.AnalysisResult{
		Score:            recomputeScore(parsed, suggestions),
		Suggestions:      suggestions,
		Keywords:         append([]string(nil), base.Keywords...),
		ATSCompatibility: clampOptionalScore(base.ATSCompatibility),
	}
}

// enhanceJobMatch appends the keyword gap findings to the AI comparison
func enhanceJobMatch(parsed *types.ParsedResume, match *types.AnalysisResult, jobDescription string) *types.AnalysisResult {
	enhanced := &types.AnalysisResult{
		Score:            clampScore(match.Score),
		Suggestions:      append([]types.Suggestion{}, match.Suggestions...),
		Keywords:         append([]string(nil), match.Keywords...),
		ATSCompatibility: clampOptionalScore(match.ATSCompatibility),
	}

	missing := KeywordGaps(jobDescription, parsed)
	if len(missing) == 0 {
		return enhanced
	}

	shown := missing
	if len(shown) > maxMissingShown {
		shown = shown[:maxMissingShown]
	}
	enhanced.Suggestions = append(enhanced.Suggestions, types.Suggestion{
		Type:        types.SuggestionWarning,
		Title:       "Missing Key Skills",
		Description: fmt.Sprintf("The job calls for skills not found in your resume. Consider adding: %s.", strings.Join(shown, ", ")),
		Section:     "skills",
	})
	enhanced.Keywords = append(enhanced.Keywords, missing...)

	return enhanced
}

func clampOptionalScore(value *int) *int {
	if value == nil {
		return nil
	}
	clamped := clampScore(*value)
	return &clamped
}
