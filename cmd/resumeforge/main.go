// Package main provides the resumeforge command line interface.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeforge",
	Short: "AI-assisted resume analysis and job matching",
	Long: `ResumeForge parses resumes into structured data, reviews them with the LLM
provider of your choice, and scores them against job postings. The AI review is
hardened with deterministic rule checks so objectively missing pieces are always
reported. Supports the openai, anthropic, gemini, and ollama backends.`,
}

var (
	flagProvider string
	flagModel    string
	flagConfig   string
	flagJSONLogs bool
	flagDebug    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "LLM provider: openai, anthropic, gemini, or ollama (defaults to RESUMEFORGE_PROVIDER, then ollama)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Model name (defaults to the provider's default model)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON instead of console output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging, including prompt and response previews")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Ctrl-C cancels the command context so in-flight provider calls abort.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
