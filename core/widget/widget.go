// Package widget converts the HTML comparison widgets returned with compare
// results into Markdown, for terminals, logs and LLM prompts where HTML
// cannot be rendered.
package widget

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/SecureLend/sdk/core/apierror"
)

// MaxSize is the largest widget Markdown will convert.
const MaxSize = 1 << 20

// Markdown converts an HTML widget fragment to Markdown. An empty or
// whitespace-only widget yields "" without error; an oversized or
// unconvertible one is a server_error.
func Markdown(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	if len(html) > MaxSize {
		return "", apierror.Malformed(fmt.Sprintf("Widget exceeds maximum size of %d bytes", MaxSize), nil)
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", apierror.Malformed("Widget could not be converted to Markdown", err)
	}
	return strings.TrimSpace(markdown), nil
}
