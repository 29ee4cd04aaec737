package analyzer

import "fmt"

// Analysis step names carried inside AnalysisError
const (
	// StepBaseAnalysis is the standalone review step
	StepBaseAnalysis = "base analysis"
	// StepJobMatch is the job comparison step
	StepJobMatch = "job match"
)

// AnalysisError represents a failed analysis step. Unwrap exposes the
// underlying provider error for errors.As checks.
type AnalysisError struct {
	Step    string
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis failed at %s: %s: %v", e.Step, e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis failed at %s: %s", e.Step, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
