package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/analyzer"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/ingestion"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/observability"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Review a resume and report scored feedback",
	Long:  "Review a resume with the configured LLM provider and report scored feedback. The AI suggestions are extended with deterministic checks for missing contact details, brief experience descriptions, and unquantified achievements, and the score is recomputed locally from what the resume actually contains.",
	RunE:  runAnalyze,
}

var (
	analyzeResume string
	analyzeOut    string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the analysis JSON to a file")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
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

	reviewer := analyzer.New(svc, logger)
	result, err := reviewer.Analyze(ctx, parsed)
	if err != nil {
		return err
	}

	document, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := schemas.ValidateAnalysisResult(document); err != nil {
		if cfg.Strict {
			return fmt.Errorf("analysis does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: analysis does not validate against schema: %v\n", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(result)

	if analyzeOut != "" {
		return emitJSON(analyzeOut, document)
	}
	return nil
}
