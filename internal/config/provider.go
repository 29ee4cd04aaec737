// Package config provides provider resolution from config values and the environment.
package config

import (
	"os"
	"time"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/llm"
)

// Environment variables consulted when the config file and CLI flags leave
// provider settings blank.
const (
	EnvProvider = "RESUMEFORGE_PROVIDER"
	EnvModel    = "RESUMEFORGE_MODEL"

	envOpenAIKey    = "OPENAI_API_KEY"
	envAnthropicKey = "ANTHROPIC_API_KEY"
	envGeminiKey    = "GEMINI_API_KEY"
	envOllamaBase   = "OLLAMA_BASE_URL"
)

// ProviderConfig assembles the LLM provider configuration from the config and
// the environment. Precedence per field: explicit config value, then the
// matching environment variable, then the library default. When no provider
// is named anywhere, ollama is used since it needs no credentials.
func (c *Config) ProviderConfig() llm.ProviderConfig {
	provider := c.Provider
	if provider == "" {
		provider = os.Getenv(EnvProvider)
	}
	if provider == "" {
		provider = string(llm.ProviderOllama)
	}

	model := c.Model
	if model == "" {
		model = os.Getenv(EnvModel)
	}

	baseURL := c.BaseURL
	if baseURL == "" && llm.Provider(provider) == llm.ProviderOllama {
		baseURL = os.Getenv(envOllamaBase)
	}

	var timeout time.Duration
	if c.TimeoutSeconds > 0 {
		timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}

	return llm.ProviderConfig{
		Provider: llm.Provider(provider),
		APIKey:   apiKeyFromEnv(llm.Provider(provider)),
		Model:    model,
		BaseURL:  baseURL,
		Timeout:  timeout,
	}
}

// apiKeyFromEnv returns the conventional key variable for a hosted provider.
// Ollama runs without credentials, so it maps to nothing.
func apiKeyFromEnv(provider llm.Provider) string {
	switch provider {
	case llm.ProviderOpenAI:
		return os.Getenv(envOpenAIKey)
	case llm.ProviderAnthropic:
		return os.Getenv(envAnthropicKey)
	case llm.ProviderGemini:
		return os.Getenv(envGeminiKey)
	default:
		return ""
	}
}
