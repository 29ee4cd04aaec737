// Package llm - ops.go carries the provider-independent halves of the three
// operations: prompt assembly and response decoding. Transports only move text.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/observability"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/prompts"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// promptCatalog is the embedded file holding the instruction pair for each operation
const promptCatalog = "analysis.json"

const logPreviewLimit = 200

// completer is the transport seam each provider implements
type completer interface {
	provider() Provider
	logger() *zap.Logger
	// complete sends one system/user instruction pair and returns the raw reply text
	complete(ctx context.Context, system, user string) (string, error)
}

// parseResumeWith runs the parse-resume operation over any provider transport
func parseResumeWith(ctx context.Context, c completer, resumeText string) (*types.ParsedResume, error) {
	p := prompts.MustGet(promptCatalog, "parse-resume")
	user := prompts.Format(p.User, map[string]string{
		"ResumeText": resumeText,
	})

	raw, err := completeWithLog(ctx, c, "parse_resume", p.System, user)
	if err != nil {
		return nil, err
	}

	return decodeParsedResume(c.provider(), raw)
}

// analyzeResumeWith runs the analyze-resume operation over any provider transport.
// The parsed resume is serialized into the prompt, so one parse can feed any
// number of analysis calls.
func analyzeResumeWith(ctx context.Context, c completer, parsed *types.ParsedResume) (*types.AnalysisResult, error) {
	resumeData, err := serializeParsedResume(parsed)
	if err != nil {
		return nil, err
	}

	p := prompts.MustGet(promptCatalog, "analyze-resume")
	user := prompts.Format(p.User, map[string]string{
		"ResumeData": resumeData,
	})

	raw, err := completeWithLog(ctx, c, "analyze_resume", p.System, user)
	if err != nil {
		return nil, err
	}

	return decodeAnalysisResult(c.provider(), raw)
}

// analyzeJobMatchWith runs the analyze-job-match operation over any provider transport
func analyzeJobMatchWith(ctx context.Context, c completer, parsed *types.ParsedResume, jobDescription string) (*types.AnalysisResult, error) {
	resumeData, err := serializeParsedResume(parsed)
	if err != nil {
		return nil, err
	}

	p := prompts.MustGet(promptCatalog, "analyze-job-match")
	user := prompts.Format(p.User, map[string]string{
		"ResumeData":     resumeData,
		"JobDescription": jobDescription,
	})

	raw, err := completeWithLog(ctx, c, "analyze_job_match", p.System, user)
	if err != nil {
		return nil, err
	}

	return decodeAnalysisResult(c.provider(), raw)
}

// serializeParsedResume renders parsed resume data as the indented JSON the
// analysis prompts embed
func serializeParsedResume(parsed *types.ParsedResume) (string, error) {
	data, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize parsed resume: %w", err)
	}
	return string(data), nil
}

// completeWithLog wraps a transport round trip with debug logging.
// Prompt and response bodies are truncated; credentials never appear here.
func completeWithLog(ctx context.Context, c completer, operation, system, user string) (string, error) {
	log := c.logger()
	log.Debug("sending prompt",
		zap.String("provider", string(c.provider())),
		zap.String("operation", operation),
		zap.Int("prompt_length", len(user)),
		zap.String("prompt_preview", observability.TruncateForLog(user, logPreviewLimit)),
	)

	raw, err := c.complete(ctx, system, user)
	if err != nil {
		log.Debug("provider call failed",
			zap.String("provider", string(c.provider())),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return "", err
	}

	log.Debug("received response",
		zap.String("provider", string(c.provider())),
		zap.String("operation", operation),
		zap.Int("response_length", len(raw)),
		zap.String("response_preview", observability.TruncateForLog(raw, logPreviewLimit)),
	)
	return raw, nil
}
