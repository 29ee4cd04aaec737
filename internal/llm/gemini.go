package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// GeminiService talks to the Google Gemini API through the official SDK
type GeminiService struct {
	client *genai.Client
	model  string
	log    *zap.Logger

	// generate is the request seam, overridable in tests
	generate func(ctx context.Context, system, user string) (*genai.GenerateContentResponse, error)
}

// NewGeminiService creates a Gemini backed service
func NewGeminiService(ctx context.Context, cfg ProviderConfig, logger *zap.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, &AuthenticationError{Provider: ProviderGemini, Message: "API key is required"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, &TransportError{Provider: ProviderGemini, Message: "failed to create client", Cause: err}
	}

	s := &GeminiService{
		client: client,
		model:  cfg.ResolveModel(),
		log:    logger,
	}
	s.generate = s.generateContent
	return s, nil
}

// ParseResume extracts structured resume data from raw resume text
func (s *GeminiService) ParseResume(ctx context.Context, resumeText string) (*types.ParsedResume, error) {
	return parseResumeWith(ctx, s, resumeText)
}

// AnalyzeResume reviews parsed resume data and returns scored feedback
func (s *GeminiService) AnalyzeResume(ctx context.Context, parsed *types.ParsedResume) (*types.AnalysisResult, error) {
	return analyzeResumeWith(ctx, s, parsed)
}

// AnalyzeJobMatch scores parsed resume data against a specific job description
func (s *GeminiService) AnalyzeJobMatch(ctx context.Context, parsed *types.ParsedResume, jobDescription string) (*types.AnalysisResult, error) {
	return analyzeJobMatchWith(ctx, s, parsed, jobDescription)
}

// Close releases resources held by the service
func (s *GeminiService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func (s *GeminiService) provider() Provider {
	return ProviderGemini
}

func (s *GeminiService) logger() *zap.Logger {
	return s.log
}

func (s *GeminiService) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := s.generate(ctx, system, user)
	if err != nil {
		return "", wrapGeminiError(err)
	}
	return extractGeminiText(resp)
}

func (s *GeminiService) generateContent(ctx context.Context, system, user string) (*genai.GenerateContentResponse, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(requestTemperature)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	return model.GenerateContent(ctx, genai.Text(user))
}

// extractGeminiText extracts text from a Gemini API response
func extractGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &MalformedResponseError{Provider: ProviderGemini, Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &MalformedResponseError{Provider: ProviderGemini, Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &MalformedResponseError{Provider: ProviderGemini, Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}

// wrapGeminiError maps SDK errors into the shared taxonomy
func wrapGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return &AuthenticationError{Provider: ProviderGemini, Message: apiErr.Message}
		}
		return &TransportError{
			Provider: ProviderGemini,
			Status:   apiErr.Code,
			Message:  "request rejected",
			Cause:    err,
		}
	}
	return &TransportError{Provider: ProviderGemini, Message: "failed to generate content", Cause: err}
}
