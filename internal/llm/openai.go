package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// OpenAIService talks to the OpenAI chat completions API, or any
// OpenAI-compatible gateway selected through BaseURL.
type OpenAIService struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

// chatMessage is a single turn in a chat completions conversation
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat completions request body
type chatRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	Temperature    float64             `json:"temperature"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the chat completions response envelope
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewOpenAIService creates a chat-completions backed service
func NewOpenAIService(cfg ProviderConfig, logger *zap.Logger) (*OpenAIService, error) {
	if cfg.APIKey == "" {
		return nil, &AuthenticationError{Provider: ProviderOpenAI, Message: "API key is required"}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}

	return &OpenAIService{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.ResolveModel(),
		httpClient: &http.Client{Timeout: cfg.resolveTimeout()},
		log:        logger,
	}, nil
}

// ParseResume extracts structured resume data from raw resume text
func (s *OpenAIService) ParseResume(ctx context.Context, resumeText string) (*types.ParsedResume, error) {
	return parseResumeWith(ctx, s, resumeText)
}

// AnalyzeResume reviews parsed resume data and returns scored feedback
func (s *OpenAIService) AnalyzeResume(ctx context.Context, parsed *types.ParsedResume) (*types.AnalysisResult, error) {
	return analyzeResumeWith(ctx, s, parsed)
}

// AnalyzeJobMatch scores parsed resume data against a specific job description
func (s *OpenAIService) AnalyzeJobMatch(ctx context.Context, parsed *types.ParsedResume, jobDescription string) (*types.AnalysisResult, error) {
	return analyzeJobMatchWith(ctx, s, parsed, jobDescription)
}

// Close releases resources held by the service
func (s *OpenAIService) Close() error {
	return nil
}

func (s *OpenAIService) provider() Provider {
	return ProviderOpenAI
}

func (s *OpenAIService) logger() *zap.Logger {
	return s.log
}

func (s *OpenAIService) complete(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    requestTemperature,
		ResponseFormat: &chatResponseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &TransportError{Provider: ProviderOpenAI, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &TransportError{Provider: ProviderOpenAI, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Provider: ProviderOpenAI, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Provider: ProviderOpenAI, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", &AuthenticationError{
			Provider: ProviderOpenAI,
			Message:  fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{
			Provider: ProviderOpenAI,
			Status:   resp.StatusCode,
			Message:  fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &MalformedResponseError{Provider: ProviderOpenAI, Message: "failed to decode completion envelope", Cause: err}
	}
	if parsed.Error != nil {
		return "", &TransportError{Provider: ProviderOpenAI, Message: parsed.Error.Message}
	}
	if len(parsed.Choices) == 0 {
		return "", &MalformedResponseError{Provider: ProviderOpenAI, Message: "no choices in response"}
	}

	return parsed.Choices[0].Message.Content, nil
}
