// Package llm provides a provider-portable AI capability layer for resume analysis.
// One Service interface is implemented over four interchangeable backends; prompt
// content is identical across providers, only the transport differs.
package llm

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Provider identifies an LLM backend
type Provider string

// Provider constants define supported LLM backends
const (
	// ProviderOpenAI is the OpenAI chat completions provider
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude messages provider
	ProviderAnthropic Provider = "anthropic"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOllama is the self-hosted Ollama provider
	ProviderOllama Provider = "ollama"
)

const (
	// DefaultOpenAIBaseURL is the hosted OpenAI API endpoint
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	// DefaultOllamaBaseURL is the conventional local Ollama endpoint
	DefaultOllamaBaseURL = "http://localhost:11434"

	// defaultHTTPTimeout bounds the hand-rolled HTTP transports; callers
	// impose tighter deadlines through the request context
	defaultHTTPTimeout = 120 * time.Second

	// requestTemperature is used for all providers. Low temperature for consistent output.
	requestTemperature = 0.1
)

// defaultModels is the single source of truth for per-provider default models
var defaultModels = map[Provider]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-7-sonnet-latest",
	ProviderGemini:    "gemini-2.5-flash",
	ProviderOllama:    "llama3.1",
}

// DefaultModel returns the default model for a provider, or "" for an unknown one
func DefaultModel(provider Provider) string {
	return defaultModels[provider]
}

// SupportedProviders returns the provider names the factory accepts, in a stable order
func SupportedProviders() []Provider {
	return []Provider{ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderOllama}
}

// ProviderConfig selects and configures an LLM backend.
// APIKey is required for hosted providers; BaseURL only applies to providers
// reached over plain HTTP (openai-compatible gateways, self-hosted Ollama).
type ProviderConfig struct {
	Provider Provider      `json:"provider" validate:"required,oneof=openai anthropic gemini ollama"`
	APIKey   string        `json:"apiKey,omitempty" validate:"required_unless=Provider ollama"`
	Model    string        `json:"model,omitempty"`
	BaseURL  string        `json:"baseUrl,omitempty" validate:"omitempty,url"`
	Timeout  time.Duration `json:"-"`
}

// Validate checks the configuration for a usable provider selection
func (c *ProviderConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// ResolveModel returns the configured model, falling back to the provider default
func (c *ProviderConfig) ResolveModel() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}

// resolveTimeout returns the configured transport timeout, falling back to the default
func (c *ProviderConfig) resolveTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultHTTPTimeout
}

// WithModel returns a copy of the configuration with a specific model
func (c ProviderConfig) WithModel(model string) ProviderConfig {
	c.Model = model
	return c
}
