package llm

import (
	"context"

	"go.uber.org/zap"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// Service is the capability surface shared by all providers
type Service interface {
	// ParseResume extracts structured resume data from raw resume text
	ParseResume(ctx context.Context, resumeText string) (*types.ParsedResume, error)
	// AnalyzeResume reviews parsed resume data and returns scored feedback
	AnalyzeResume(ctx context.Context, parsed *types.ParsedResume) (*types.AnalysisResult, error)
	// AnalyzeJobMatch scores parsed resume data against a specific job description
	AnalyzeJobMatch(ctx context.Context, parsed *types.ParsedResume, jobDescription string) (*types.AnalysisResult, error)
	// Close releases any resources held by the service
	Close() error
}

// New creates a Service for the configured provider.
// Services hold no mutable state across operations; constructing a fresh one
// per call is supported. Unknown provider names fail with UnsupportedProviderError.
func New(ctx context.Context, cfg ProviderConfig, logger *zap.Logger) (Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIService(cfg, logger)
	case ProviderAnthropic:
		return NewAnthropicService(cfg, logger)
	case ProviderGemini:
		return NewGeminiService(ctx, cfg, logger)
	case ProviderOllama:
		return NewOllamaService(cfg, logger)
	default:
		return nil, &UnsupportedProviderError{Provider: string(cfg.Provider)}
	}
}
