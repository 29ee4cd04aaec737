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

// OllamaService talks to a self-hosted Ollama endpoint over plain HTTP.
// No API key is needed; the model must already be pulled on the host.
type OllamaService struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

// generateRequest is the Ollama generate request body. Stream is always false
// and Format pins the reply to JSON so a single envelope comes back.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

// generateResponse is the Ollama generate envelope. Response carries the model
// output as a string which is itself JSON and is decoded in a second stage.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// NewOllamaService creates a service backed by a self-hosted Ollama endpoint
func NewOllamaService(cfg ProviderConfig, logger *zap.Logger) (*OllamaService, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOllamaBaseURL
	}

	return &OllamaService{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      cfg.ResolveModel(),
		httpClient: &http.Client{Timeout: cfg.resolveTimeout()},
		log:        logger,
	}, nil
}

// ParseResume extracts structured resume data from raw resume text
func (s *OllamaService) ParseResume(ctx context.Context, resumeText string) (*types.ParsedResume, error) {
	return parseResumeWith(ctx, s, resumeText)
}

// AnalyzeResume reviews parsed resume data and returns scored feedback
func (s *OllamaService) AnalyzeResume(ctx context.Context, parsed *types.ParsedResume) (*types.AnalysisResult, error) {
	return analyzeResumeWith(ctx, s, parsed)
}

// AnalyzeJobMatch scores parsed resume data against a specific job description
func (s *OllamaService) AnalyzeJobMatch(ctx context.Context, parsed *types.ParsedResume, jobDescription string) (*types.AnalysisResult, error) {
	return analyzeJobMatchWith(ctx, s, parsed, jobDescription)
}

// Close releases resources held by the service
func (s *OllamaService) Close() error {
	return nil
}

func (s *OllamaService) provider() Provider {
	return ProviderOllama
}

func (s *OllamaService) logger() *zap.Logger {
	return s.log
}

func (s *OllamaService) complete(ctx context.Context, system, user string) (string, error) {
	reqBody := generateRequest{
		Model:  s.model,
		Prompt: user,
		System: system,
		Stream: false,
		Format: "json",
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &TransportError{Provider: ProviderOllama, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", &TransportError{Provider: ProviderOllama, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Provider: ProviderOllama, Message: "request failed, is the Ollama server running", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Provider: ProviderOllama, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{
			Provider: ProviderOllama,
			Status:   resp.StatusCode,
			Message:  fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))),
		}
	}

	// First stage: decode the envelope
	var envelope generateResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", &MalformedResponseError{Provider: ProviderOllama, Message: "failed to decode generate envelope", Cause: err}
	}
	if envelope.Error != "" {
		return "", &TransportError{Provider: ProviderOllama, Message: envelope.Error}
	}

	// Second stage happens in the shared decoders: envelope.Response is the
	// model output string, which must itself parse as JSON.
	return envelope.Response, nil
}
