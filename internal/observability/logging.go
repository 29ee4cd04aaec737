// Package observability provides the application logger and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the application logger. The console encoding is meant for
// humans, JSON for log collectors. Debug level turns on prompt and response
// previews in the llm layer.
func NewLogger(jsonFormat, debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if jsonFormat {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Encoding = "console"
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}

// TruncateForLog shortens s for log previews, marking the cut with an
// ellipsis. The cut lands on a rune boundary so multibyte characters are
// never split.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
