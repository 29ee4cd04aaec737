package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/ingestion"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume into structured JSON",
	Long:  "Parse a plain-text resume into structured JSON covering personal details, experience, education, skills, and projects. The output is validated against the parsed resume schema.",
	RunE:  runParse,
}

var (
	parseResume string
	parseOut    string
	parseStrict bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseResume, "resume", "r", "", "Path to resume text file")
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Write the parsed JSON to a file instead of stdout")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Fail when the output violates the parsed resume schema")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = parseResume
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = parseStrict
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	resumeText, err := ingestion.ReadResumeFile(cfg.Resume)
	if err != nil {
		return err
	}

	svc, err := newService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	parsed, err := svc.ParseResume(ctx, resumeText)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	document, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	if err := schemas.ValidateParsedResume(document); err != nil {
		if cfg.Strict {
			return fmt.Errorf("parsed resume does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: parsed resume does not validate against schema: %v\n", err)
	}

	return emitJSON(parseOut, document)
}
