package transport

import (
	"regexp"
	"strings"

	"github.com/SecureLend/sdk/core/apierror"
)

const (
	// Version is sent in the User-Agent header.
	Version = "0.3.0"

	// DefaultBaseURL is the production tool server.
	DefaultBaseURL = "https://mcp.securelend.ai/sse"
)

var apiKeyPattern = regexp.MustCompile(`^sk_(test|live)_[A-Za-z0-9]{32,}$`)

// ValidateAPIKey checks the sk_test_/sk_live_ key format. Nothing is sent
// to the server.
func ValidateAPIKey(key string) error {
	if !apiKeyPattern.MatchString(key) {
		return apierror.InvalidField("apiKey", "Invalid API key format. Expected: sk_test_... or sk_live_...")
	}
	return nil
}

// IsTestKey reports whether key belongs to the sandbox environment.
func IsTestKey(key string) bool {
	return strings.HasPrefix(key, "sk_test_")
}

// CallEndpoint derives the RPC endpoint from the streaming base URL by
// replacing every "/sse" with "/call_tool". A URL without "/sse" is used
// unchanged.
//
// This mirrors how the service is deployed today and is not a general URL
// rewrite: "/sse" inside a host name or query is replaced too.
func CallEndpoint(baseURL string) string {
	return strings.ReplaceAll(baseURL, "/sse", "/call_tool")
}

// DefaultUserAgent returns "securelend-go/<version>".
func DefaultUserAgent() string {
	return "securelend-go/" + Version
}

// keyMode labels a key for logs without exposing it.
func keyMode(key string) string {
	if IsTestKey(key) {
		return "test"
	}
	return "live"
}
