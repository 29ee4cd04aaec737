package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/observability"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full analysis pipeline end-to-end",
	Long: `Parse and review a resume, then match it against every given job source in
parallel. Job sources are local text files or URLs, repeatable via --job.
With --out, all results are written as JSON artifacts into the directory.`,
	RunE: runPipelineCmd,
}

var (
	runResume  string
	runJobs    []string
	runOut     string
	runBrowser bool
	runStrict  bool
)

func init() {
	runCmd.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume text file")
	runCmd.Flags().StringArrayVarP(&runJobs, "job", "j", nil, "Job posting file or URL (repeatable)")
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "Directory to write run artifacts into")
	runCmd.Flags().BoolVar(&runBrowser, "use-browser", false, "Use a headless browser for SPA job pages (requires Chrome)")
	runCmd.Flags().BoolVar(&runStrict, "strict", false, "Abort the run when a result violates its schema")

	rootCmd.AddCommand(runCmd)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runBrowser
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = runStrict
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}

	// Repeatable --job values replace any config file job source
	var jobPaths, jobURLs []string
	if len(runJobs) > 0 {
		jobPaths, jobURLs = splitJobSources(runJobs)
	} else {
		if cfg.Job != "" {
			jobPaths = append(jobPaths, cfg.Job)
		}
		if cfg.JobURL != "" {
			jobURLs = append(jobURLs, cfg.JobURL)
		}
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	providerCfg := cfg.ProviderConfig()
	if err := providerCfg.Validate(); err != nil {
		return fmt.Errorf("invalid provider configuration: %w", err)
	}

	// Job matches report progress concurrently; serialize the step lines
	var printMu sync.Mutex
	onProgress := func(event pipeline.ProgressEvent) {
		printMu.Lock()
		defer printMu.Unlock()
		_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Step, event.Message)
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		ResumePath: cfg.Resume,
		JobPaths:   jobPaths,
		JobURLs:    jobURLs,
		OutDir:     runOut,
		Provider:   providerCfg,
		UseBrowser: cfg.UseBrowser,
		Strict:     cfg.Strict,
		Logger:     logger,
		OnProgress: onProgress,
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintParsedResume(result.Resume)
	printer.PrintAnalysis(result.Analysis)
	for _, match := range result.Matches {
		_, _ = fmt.Fprintf(os.Stdout, "\nJob: %s\n", match.Source)
		printer.PrintJobMatch(match.Match)
	}

	if runOut != "" {
		_, _ = fmt.Fprintf(os.Stdout, "\nRun %s complete. Artifacts: %s\n", result.RunID, runOut)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "\nRun %s complete.\n", result.RunID)
	}
	return nil
}
