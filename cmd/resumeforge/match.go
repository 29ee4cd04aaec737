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

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a specific job posting",
	Long:  "Score a resume against a job posting taken from a local text file or fetched from a URL. Beyond the AI comparison, the job text is scanned for known skill keywords the resume is missing and the gaps are reported explicitly.",
	RunE:  runMatch,
}

var (
	matchResume  string
	matchJob     string
	matchJobURL  string
	matchOut     string
	matchBrowser bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume text file")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Write the match JSON to a file")
	matchCmd.Flags().BoolVar(&matchBrowser, "use-browser", false, "Use a headless browser for SPA job pages (requires Chrome)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = matchResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = matchJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = matchJobURL
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = matchBrowser
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
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

	var jobText string
	if cfg.Job != "" {
		jobText, err = ingestion.ReadJobFile(cfg.Job)
	} else {
		jobText, _, err = ingestion.IngestJobPosting(ctx, cfg.JobURL, cfg.UseBrowser, logger)
	}
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
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
	result, err := reviewer.MatchJob(ctx, parsed, jobText)
	if err != nil {
		return err
	}

	document, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job match: %w", err)
	}
	if err := schemas.ValidateAnalysisResult(document); err != nil {
		if cfg.Strict {
			return fmt.Errorf("job match does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: job match does not validate against schema: %v\n", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobMatch(result)

	if matchOut != "" {
		return emitJSON(matchOut, document)
	}
	return nil
}
