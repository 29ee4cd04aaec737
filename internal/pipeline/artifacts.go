// Package pipeline provides the high-level orchestration for the resume analysis flow.
package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/schemas"
	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// Artifact file names written under RunOptions.OutDir
const (
	parsedResumeFile = "parsed_resume.json"
	analysisFile     = "analysis.json"
	runSummaryFile   = "run.json"
)

// writeArtifacts persists the run outputs as indented JSON files. Job matches
// are numbered in source order; run.json carries the complete result.
func writeArtifacts(outDir string, result *Result) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	if err := writeArtifact(outDir, parsedResumeFile, result.Resume); err != nil {
		return err
	}
	if err := writeArtifact(outDir, analysisFile, result.Analysis); err != nil {
		return err
	}
	for i, match := range result.Matches {
		if err := writeArtifact(outDir, jobMatchFile(i), match); err != nil {
			return err
		}
	}
	return writeArtifact(outDir, runSummaryFile, result)
}

// writeArtifact marshals v as indented JSON into dir/name
func writeArtifact(dir, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// jobMatchFile returns the artifact name for the job match at source index i
func jobMatchFile(i int) string {
	return fmt.Sprintf("job_match_%d.json", i+1)
}

// postingArtifactDir returns the directory holding the cleaned posting text
// and metadata for the job source at index i
func postingArtifactDir(outDir string, i int) string {
	return filepath.Join(outDir, fmt.Sprintf("job_%d", i+1))
}

// checkParsedResume validates the parse against the embedded schema. In strict
// mode a violation aborts the run, otherwise it is logged and the run continues.
func checkParsedResume(logger *zap.Logger, strict bool, parsed *types.ParsedResume) error {
	document, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("failed to marshal parsed resume: %w", err)
	}
	return checkSchema(logger, strict, StepParsedResume, document, schemas.ValidateParsedResume)
}

// checkAnalysisResult validates an analysis or job match against the embedded schema
func checkAnalysisResult(logger *zap.Logger, strict bool, step string, result *types.AnalysisResult) error {
	document, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", step, err)
	}
	return checkSchema(logger, strict, step, document, schemas.ValidateAnalysisResult)
}

func checkSchema(logger *zap.Logger, strict bool, step string, document []byte, validate func([]byte) error) error {
	err := validate(document)
	if err == nil {
		return nil
	}
	if strict {
		return fmt.Errorf("%s failed schema validation: %w", step, err)
	}
	logger.Warn("artifact failed schema validation",
		zap.String("step", step),
		zap.Error(err),
	)
	return nil
}
