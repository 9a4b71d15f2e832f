package slogobs

import (
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatCompact is a single-line format with JSON attributes (default).
	// Example: 2026-10-19 10:40:35 DEBUG calling tool → {"tool.name":"find_credit_cards"}
	FormatCompact Format = "compact"

	// FormatJSON is one JSON object per line, for log aggregation.
	// Example: {"time":"2026-10-19T10:40:35","level":"DEBUG","msg":"calling tool","tool.name":"find_credit_cards"}
	FormatJSON Format = "json"
)

// ParseFormat parses a format string. Unknown values yield FormatCompact.
func ParseFormat(s string) Format {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatCompact
	}
}

// GetFormatFromEnv reads SECURELEND_LOG_FORMAT, then LOG_FORMAT.
// Defaults to FormatCompact.
func GetFormatFromEnv() Format {
	if format := os.Getenv("SECURELEND_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	return FormatCompact
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}
