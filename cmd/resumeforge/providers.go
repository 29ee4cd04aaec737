package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/llm"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported LLM providers and their default models",
	Run: func(_ *cobra.Command, _ []string) {
		renderProviders(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func renderProviders(w io.Writer) {
	fmt.Fprintf(w, "%-12s %-28s %s\n", "PROVIDER", "DEFAULT MODEL", "CREDENTIAL")
	for _, provider := range llm.SupportedProviders() {
		fmt.Fprintf(w, "%-12s %-28s %s\n", provider, llm.DefaultModel(provider), credentialHint(provider))
	}
}

// credentialHint names the environment variable a provider reads its key from
func credentialHint(provider llm.Provider) string {
	switch provider {
	case llm.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case llm.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case llm.ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "none (OLLAMA_BASE_URL overrides the endpoint)"
	}
}
