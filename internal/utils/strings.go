package utils

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// DefaultMaxStringLength bounds argument and body dumps in debug logs.
const DefaultMaxStringLength = 500

// ToString returns the compact JSON form of v. It never fails: a value that
// cannot be marshaled yields a JSON object describing the error, so the
// result is always safe to log.
func ToString(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return `{"error": "failed to marshal to JSON: ` + err.Error() + `"}`
	}
	return string(encoded)
}

// TruncateString shortens s to at most maxLen bytes and appends the original
// length so readers of the log know data was dropped. The cut never splits
// a UTF-8 sequence.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + fmt.Sprintf("... (truncated, %d bytes total)", len(s))
}

// Truncate is TruncateString with DefaultMaxStringLength.
func Truncate(s string) string {
	return TruncateString(s, DefaultMaxStringLength)
}
