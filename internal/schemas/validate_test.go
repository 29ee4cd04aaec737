package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

func TestValidateParsedResume_Valid(t *testing.T) {
	resume := &types.ParsedResume{
		PersonalDetails: &types.PersonalDetails{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Initech", Description: "Built services."},
		},
		Skills: &types.Skills{Technical: []string{"Go", "SQL"}},
	}
	document, err := json.Marshal(resume)
	require.NoError(t, err)

	assert.NoError(t, ValidateParsedResume(document))
}

func TestValidateParsedResume_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateParsedResume([]byte(`{}`)))
}

func TestValidateParsedResume_UnknownField(t *testing.T) {
	document := []byte(`{"personalDetails": {"name": "Jane"}, "salary": 100000}`)

	err := ValidateParsedResume(document)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateParsedResume_WrongType(t *testing.T) {
	document := []byte(`{"experience": "ten years"}`)

	err := ValidateParsedResume(document)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "experience", validationErr.Errors[0].Field)
}

func TestValidateAnalysisResult_Valid(t *testing.T) {
	result := &types.AnalysisResult{
		Score: 85,
		Suggestions: []types.Suggestion{
			{Type: types.SuggestionWarning, Title: "Missing Email", Description: "Add an email address."},
		},
		Keywords: []string{"Go"},
	}
	document, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateAnalysisResult(document))
}

func TestValidateAnalysisResult_ScoreOutOfRange(t *testing.T) {
	document := []byte(`{"score": 140, "suggestions": []}`)

	err := ValidateAnalysisResult(document)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "score", validationErr.Errors[0].Field)
}

func TestValidateAnalysisResult_BadSuggestionType(t *testing.T) {
	document := []byte(`{
		"score": 80,
		"suggestions": [{"type": "critical", "title": "X", "description": "Y"}]
	}`)

	err := ValidateAnalysisResult(document)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateAnalysisResult_MissingScore(t *testing.T) {
	document := []byte(`{"suggestions": []}`)

	err := ValidateAnalysisResult(document)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateAnalysisResult_MalformedDocument(t *testing.T) {
	err := ValidateAnalysisResult([]byte("{ invalid json }"))
	require.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "score", Message: "Must be less than or equal to 100"},
			{Field: "suggestions.0.type", Message: "must be one of the allowed values"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. score")
	assert.Contains(t, errorMsg, "2. suggestions.0.type")
}
