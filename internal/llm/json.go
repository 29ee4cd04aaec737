// Package llm - json.go provides shared utilities for LLM response processing.
package llm

import (
	"encoding/json"
	"strings"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// CleanJSONBlock extracts the JSON payload from an LLM reply.
// LLMs often wrap JSON in ```json ... ``` blocks or surround it with
// conversational preamble even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		// Handle generic ``` ... ``` blocks
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			// If first line looks like a language identifier (no spaces, short), skip it
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Cut preamble and trailing chatter by extracting the first complete
	// JSON object or array, whichever starts earlier.
	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")

	switch {
	case objIdx >= 0 && (arrIdx < 0 || objIdx < arrIdx):
		if extracted := extractJSONObject(text[objIdx:]); extracted != "" {
			return extracted
		}
	case arrIdx >= 0:
		if extracted := extractJSONArray(text[arrIdx:]); extracted != "" {
			return extracted
		}
	}

	return text
}

// extractJSONObject returns the first balanced JSON object at the start of text,
// or "" when text does not begin with one. Braces inside string literals are ignored.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the first balanced JSON array at the start of text,
// or "" when text does not begin with one.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, opener, closer byte) string {
	if len(text) == 0 || text[0] != opener {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// Delimiters inside strings do not count
		case c == opener:
			depth++
		case c == closer:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}

	return "" // Unbalanced, let the caller surface the raw text
}

// decodeParsedResume decodes a provider reply into a ParsedResume.
// A reply that is empty or not valid JSON is an error, never an empty value.
func decodeParsedResume(provider Provider, raw string) (*types.ParsedResume, error) {
	text := CleanJSONBlock(raw)
	if text == "" {
		return nil, &MalformedResponseError{Provider: provider, Message: "empty response"}
	}

	var parsed types.ParsedResume
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, &MalformedResponseError{
			Provider: provider,
			Message:  "response is not valid resume JSON",
			Cause:    err,
		}
	}

	return &parsed, nil
}

// decodeAnalysisResult decodes a provider reply into an AnalysisResult.
func decodeAnalysisResult(provider Provider, raw string) (*types.AnalysisResult, error) {
	text := CleanJSONBlock(raw)
	if text == "" {
		return nil, &MalformedResponseError{Provider: provider, Message: "empty response"}
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, &MalformedResponseError{
			Provider: provider,
			Message:  "response is not valid analysis JSON",
			Cause:    err,
		}
	}

	return &result, nil
}
