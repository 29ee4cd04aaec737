package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/config"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/llm"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/observability"
)

// loadAppConfig builds the effective configuration: config file values first,
// then explicit global flag overrides. Command-specific flags are merged by
// each command after this.
func loadAppConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("provider") {
		cfg.Provider = flagProvider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = flagModel
	}

	return cfg, nil
}

// newLogger builds the logger from the global logging flags
func newLogger() (*zap.Logger, error) {
	logger, err := observability.NewLogger(flagJSONLogs, flagDebug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// newService assembles the provider selection from config and environment and
// constructs the LLM service. The caller owns the returned service.
func newService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.Service, error) {
	providerCfg := cfg.ProviderConfig()
	if err := providerCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid provider configuration: %w", err)
	}
	return llm.New(ctx, providerCfg, logger)
}

// emitJSON writes the document to path, or to stdout when path is empty
func emitJSON(path string, document []byte) error {
	if path == "" {
		_, err := fmt.Fprintf(os.Stdout, "%s\n", document)
		return err
	}
	if err := os.WriteFile(path, document, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}

// isURL reports whether a job source is a URL rather than a local file path
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// splitJobSources separates repeatable --job values into file paths and URLs,
// keeping the relative order within each group
func splitJobSources(sources []string) (paths, urls []string) {
	for _, source := range sources {
		if isURL(source) {
			urls = append(urls, source)
		} else {
			paths = append(paths, source)
		}
	}
	return paths, urls
}
