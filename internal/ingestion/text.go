// Package ingestion turns resume files and job posting sources into clean text.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}
	result := strings.Join(cleanedLines, "\n")

	// Remove excessive blank lines (max 2 consecutive)
	result = removeExcessiveBlankLines(result)

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")

	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Keep markdown headings as-is, normalize leading spaces to 0
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Preserve bullet lists (Markdown - or *) with their indentation,
	// collapsing space runs inside the bullet text itself
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		marker := trimmed[:2]
		content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(trimmed[2:]), " ")
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + marker + content
		}
		return marker + content
	}

	// For regular lines, collapse runs of spaces but preserve
	// intentional indentation at the start of the line
	leadingSpace := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// ReadResumeFile reads a plain-text resume and returns it cleaned.
// Binary formats are rejected; PDF and DOCX must be converted to text first.
func ReadResumeFile(path string) (string, error) {
	return readTextFile(path, "resume")
}

// ReadJobFile reads a plain-text job posting and returns it cleaned.
func ReadJobFile(path string) (string, error) {
	return readTextFile(path, "job posting")
}

func readTextFile(path, kind string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s file not found: %w", kind, err)
		}
		return "", fmt.Errorf("failed to read %s file: %w", kind, err)
	}

	if err := checkPlainText(path, content); err != nil {
		return "", err
	}

	return CleanText(string(content)), nil
}

// checkPlainText rejects the binary formats people most often point the CLI at.
func checkPlainText(path string, content []byte) error {
	switch {
	case bytes.HasPrefix(content, []byte("%PDF-")):
		return fmt.Errorf("%s is a PDF; convert it to plain text first", path)
	case bytes.HasPrefix(content, []byte("PK\x03\x04")):
		return fmt.Errorf("%s is a ZIP archive (DOCX?); convert it to plain text first", path)
	case !utf8.Valid(content) || bytes.IndexByte(content, 0) >= 0:
		return fmt.Errorf("%s does not contain valid UTF-8 text", path)
	}
	return nil
}

// WriteOutput writes the cleaned posting text and its metadata to output files
func WriteOutput(outDir string, cleanedText string, metadata *Metadata) error {
	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Write cleaned text file
	cleanedPath := filepath.Join(outDir, "job_posting.cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	// Write metadata JSON file
	metaPath := filepath.Join(outDir, "job_posting.meta.json")
	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
