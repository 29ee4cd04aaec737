package ingestion

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/fetch"
)

var (
	// ErrInvalidURL is returned when the URL is malformed
	ErrInvalidURL = errors.New("invalid URL")
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// IngestJobPosting fetches a job posting URL, extracts the posting text using
// platform-specific selectors, and returns cleaned text with metadata.
// If useBrowser is true and the static fetch yields too little text, the page
// is re-rendered in a headless browser before extraction.
func IngestJobPosting(ctx context.Context, rawURL string, useBrowser bool, logger *zap.Logger) (string, *Metadata, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	platform := fetch.DetectPlatform(rawURL)
	logger.Debug("ingesting job posting",
		zap.String("url", rawURL),
		zap.String("platform", string(platform)),
	)

	result, err := fetch.URL(ctx, rawURL, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	logger.Debug("fetched HTML", zap.Int("bytes", len(result.HTML)))

	textContent, err := fetch.ExtractMainText(result.HTML, platform)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	// SPA pages often serve an empty shell over plain HTTP; re-render in a
	// headless browser when allowed and the static pass came up short.
	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		logger.Debug("static content too short, rendering with browser",
			zap.Int("chars", len(textContent)),
			zap.Int("min_chars", fetch.MinContentLength),
		)

		browserHTML, browserErr := fetch.Browser(ctx, rawURL, logger)
		if browserErr != nil {
			// Keep the HTTP content when the browser is unavailable
			logger.Debug("browser rendering failed", zap.Error(browserErr))
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, platform); extractErr == nil {
			textContent = rendered
		}
	}

	cleanedText := CleanText(textContent)
	if cleanedText == "" {
		return "", nil, fmt.Errorf("%w: page yielded no text", ErrContentExtractionFailed)
	}

	metadata := NewMetadata(cleanedText, rawURL)
	metadata.Platform = string(platform)

	logger.Debug("job posting ingested", zap.Int("chars", len(cleanedText)))
	return cleanedText, metadata, nil
}
