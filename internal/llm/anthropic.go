package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// anthropicMaxTokens caps completion length. The messages API requires an explicit limit.
const anthropicMaxTokens = 4096

// AnthropicService talks to the Anthropic messages API through the official SDK
type AnthropicService struct {
	client anthropic.Client
	model  string
	log    *zap.Logger

	// send is the request seam, overridable in tests
	send func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

// NewAnthropicService creates a messages-API backed service
func NewAnthropicService(cfg ProviderConfig, logger *zap.Logger) (*AnthropicService, error) {
	if cfg.APIKey == "" {
		return nil, &AuthenticationError{Provider: ProviderAnthropic, Message: "API key is required"}
	}

	s := &AnthropicService{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.ResolveModel(),
		log:    logger,
	}
	s.send = func(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
		return s.client.Messages.New(ctx, params)
	}
	return s, nil
}

// ParseResume extracts structured resume data from raw resume text
func (s *AnthropicService) ParseResume(ctx context.Context, resumeText string) (*types.ParsedResume, error) {
	return parseResumeWith(ctx, s, resumeText)
}

// AnalyzeResume reviews parsed resume data and returns scored feedback
func (s *AnthropicService) AnalyzeResume(ctx context.Context, parsed *types.ParsedResume) (*types.AnalysisResult, error) {
	return analyzeResumeWith(ctx, s, parsed)
}

// AnalyzeJobMatch scores parsed resume data against a specific job description
func (s *AnthropicService) AnalyzeJobMatch(ctx context.Context, parsed *types.ParsedResume, jobDescription string) (*types.AnalysisResult, error) {
	return analyzeJobMatchWith(ctx, s, parsed, jobDescription)
}

// Close releases resources held by the service
func (s *AnthropicService) Close() error {
	return nil
}

func (s *AnthropicService) provider() Provider {
	return ProviderAnthropic
}

func (s *AnthropicService) logger() *zap.Logger {
	return s.log
}

func (s *AnthropicService) complete(ctx context.Context, system, user string) (string, error) {
	message, err := s.send(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(s.model),
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(requestTemperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			{
				Content: []anthropic.ContentBlockParamUnion{
					{OfText: &anthropic.TextBlockParam{Text: user}},
				},
				Role: anthropic.MessageParamRoleUser,
			},
		},
	})
	if err != nil {
		return "", wrapAnthropicError(err)
	}

	var responseText string
	for _, block := range message.Content {
		textContent := block.AsText()
		if textContent.Text != "" {
			responseText = textContent.Text
			break
		}
	}
	if responseText == "" {
		return "", &MalformedResponseError{Provider: ProviderAnthropic, Message: "no text content in response"}
	}

	return responseText, nil
}

// wrapAnthropicError maps SDK errors into the shared taxonomy
func wrapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return &AuthenticationError{Provider: ProviderAnthropic, Message: apiErr.Error()}
		}
		return &TransportError{
			Provider: ProviderAnthropic,
			Status:   apiErr.StatusCode,
			Message:  "request rejected",
			Cause:    err,
		}
	}
	return &TransportError{Provider: ProviderAnthropic, Message: "request failed", Cause: err}
}
