// Package pipeline provides the high-level orchestration for the resume analysis flow.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/analyzer"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/ingestion"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/llm"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// Step names carried in progress events and used for artifact files
const (
	StepResumeText   = "resume_text"
	StepParsedResume = "parsed_resume"
	StepAnalysis     = "analysis"
	StepJobPosting   = "job_posting"
	StepJobMatch     = "job_match"
	StepArtifacts    = "artifacts"
)

// Step categories group progress events by pipeline phase
const (
	CategoryIngestion = "ingestion"
	CategoryAnalysis  = "analysis"
	CategoryMatching  = "matching"
	CategoryOutput    = "output"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. Job matches run
// concurrently, so implementations must be safe for concurrent use.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath string
	JobPaths   []string
	JobURLs    []string
	OutDir     string // artifact directory; empty disables artifact writing
	Provider   llm.ProviderConfig
	UseBrowser bool
	Strict     bool // schema violations abort the run instead of logging warnings
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// JobMatchResult pairs one job source with its match analysis
type JobMatchResult struct {
	Source   string                `json:"source"`
	Metadata *ingestion.Metadata   `json:"metadata,omitempty"`
	Match    *types.AnalysisResult `json:"match"`
}

// Result carries everything a pipeline run produced
type Result struct {
	RunID    string                `json:"run_id"`
	Resume   *types.ParsedResume   `json:"resume"`
	Analysis *types.AnalysisResult `json:"analysis"`
	Matches  []JobMatchResult      `json:"matches,omitempty"`
}

// jobSource identifies one job posting input, either a local file or a URL
type jobSource struct {
	location string
	isURL    bool
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// collectJobSources flattens the configured job inputs, files before URLs.
// Match results keep this order.
func collectJobSources(opts *RunOptions) []jobSource {
	sources := make([]jobSource, 0, len(opts.JobPaths)+len(opts.JobURLs))
	for _, path := range opts.JobPaths {
		sources = append(sources, jobSource{location: path})
	}
	for _, jobURL := range opts.JobURLs {
		sources = append(sources, jobSource{location: jobURL, isURL: true})
	}
	return sources
}

// Run orchestrates the full analysis flow: read the resume, parse and review
// it, then compare it against every configured job source in parallel.
// Artifacts are written under opts.OutDir when set. The first failing step
// aborts the run and cancels in-flight job matches.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ResumePath == "" {
		return nil, fmt.Errorf("resume path is required")
	}

	runID := uuid.New().String()
	logger.Info("pipeline run starting",
		zap.String("run_id", runID),
		zap.String("provider", string(opts.Provider.Provider)),
		zap.Int("job_sources", len(opts.JobPaths)+len(opts.JobURLs)),
	)

	resumeText, err := ingestion.ReadResumeFile(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("resume ingestion failed: %w", err)
	}
	emitProgress(&opts, runID, StepResumeText, CategoryIngestion,
		fmt.Sprintf("Read resume from %s (%d chars)", opts.ResumePath, len(resumeText)), nil)

	svc, err := llm.New(ctx, opts.Provider, logger)
	if err != nil {
		return nil, fmt.Errorf("provider setup failed: %w", err)
	}
	defer func() { _ = svc.Close() }()

	reviewer := analyzer.New(svc, logger)

	parsed, err := svc.ParseResume(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("resume parsing failed: %w", err)
	}
	if err := checkParsedResume(logger, opts.Strict, parsed); err != nil {
		return nil, err
	}
	emitProgress(&opts, runID, StepParsedResume, CategoryAnalysis,
		fmt.Sprintf("Parsed resume with %d experience entries", len(parsed.Experience)), parsed)

	analysis, err := reviewer.Analyze(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("resume analysis failed: %w", err)
	}
	if err := checkAnalysisResult(logger, opts.Strict, StepAnalysis, analysis); err != nil {
		return nil, err
	}
	emitProgress(&opts, runID, StepAnalysis, CategoryAnalysis,
		fmt.Sprintf("Analyzed resume: score %d/100 with %d suggestions", analysis.Score, len(analysis.Suggestions)), analysis)

	sources := collectJobSources(&opts)
	matches := make([]JobMatchResult, len(sources))

	g, gCtx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			match, err := matchJobSource(gCtx, reviewer, parsed, src, i, &opts, runID, logger)
			if err != nil {
				return err
			}
			matches[i] = *match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:    runID,
		Resume:   parsed,
		Analysis: analysis,
		Matches:  matches,
	}

	if opts.OutDir != "" {
		if err := writeArtifacts(opts.OutDir, result); err != nil {
			return nil, fmt.Errorf("writing artifacts failed: %w", err)
		}
		emitProgress(&opts, runID, StepArtifacts, CategoryOutput,
			fmt.Sprintf("Wrote artifacts to %s", opts.OutDir), nil)
	}

	logger.Info("pipeline run complete",
		zap.String("run_id", runID),
		zap.Int("score", analysis.Score),
		zap.Int("job_matches", len(matches)),
	)
	return result, nil
}

// matchJobSource ingests one job posting and compares the parsed resume
// against it. URL sources additionally get their cleaned posting text written
// as an artifact so the match can be traced back to what was actually fetched.
func matchJobSource(ctx context.Context, reviewer *analyzer.ResumeAnalyzer, parsed *types.ParsedResume, src jobSource, index int, opts *RunOptions, runID string, logger *zap.Logger) (*JobMatchResult, error) {
	var jobText string
	var metadata *ingestion.Metadata
	var err error

	if src.isURL {
		jobText, metadata, err = ingestion.IngestJobPosting(ctx, src.location, opts.UseBrowser, logger)
	} else {
		jobText, err = ingestion.ReadJobFile(src.location)
	}
	if err != nil {
		return nil, fmt.Errorf("job ingestion for %s failed: %w", src.location, err)
	}
	emitProgress(opts, runID, StepJobPosting, CategoryIngestion,
		fmt.Sprintf("Ingested job posting from %s (%d chars)", src.location, len(jobText)), nil)

	if opts.OutDir != "" && metadata != nil {
		postingDir := postingArtifactDir(opts.OutDir, index)
		if err := ingestion.WriteOutput(postingDir, jobText, metadata); err != nil {
			return nil, fmt.Errorf("writing job posting artifacts for %s failed: %w", src.location, err)
		}
	}

	match, err := reviewer.MatchJob(ctx, parsed, jobText)
	if err != nil {
		return nil, fmt.Errorf("job match for %s failed: %w", src.location, err)
	}
	if err := checkAnalysisResult(logger, opts.Strict, StepJobMatch, match); err != nil {
		return nil, err
	}
	emitProgress(opts, runID, StepJobMatch, CategoryMatching,
		fmt.Sprintf("Matched resume against %s: score %d/100", src.location, match.Score), match)

	return &JobMatchResult{Source: src.location, Metadata: metadata, Match: match}, nil
}
