package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"

	"github.com/SecureLend/sdk/core/apierror"
)

// Option tunes payload decoding.
type Option func(*decodeOptions)

type decodeOptions struct {
	repair bool
}

// WithRepair makes Decode retry a payload that fails to unmarshal after
// running it through jsonrepair. Off by default: a malformed payload is a
// server error.
func WithRepair() Option {
	return func(o *decodeOptions) {
		o.repair = true
	}
}

// ParseJSONPayload returns the canonical JSON payload of env: the text of
// the first "text" item or "application/json" resource item, in order.
//
// It fails with a server_error when content is not an array, when no item
// qualifies, or when the matched text is not valid JSON.
func ParseJSONPayload(env *Envelope) (json.RawMessage, error) {
	text, err := payloadText(env)
	if err != nil {
		return nil, err
	}
	if !gjson.Valid(text) {
		return nil, apierror.Malformed("Invalid response from MCP server: failed to parse JSON content", nil)
	}
	return json.RawMessage(text), nil
}

// Decode parses the canonical payload of env into T.
//
// Example:
//
//	type payload struct{ A int `json:"a"` }
//	p, err := envelope.Decode[payload](env)
func Decode[T any](env *Envelope, opts ...Option) (T, error) {
	var result T

	cfg := &decodeOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	text, err := payloadText(env)
	if err != nil {
		return result, err
	}

	err = json.Unmarshal([]byte(text), &result)
	if err == nil {
		return result, nil
	}
	if !cfg.repair {
		return result, apierror.Malformed("Invalid response from MCP server: failed to parse JSON content", err)
	}

	repaired, repairErr := jsonrepair.JSONRepair(text)
	if repairErr != nil {
		return result, apierror.Malformed(
			"Invalid response from MCP server: failed to parse JSON content",
			fmt.Errorf("unmarshal error: %w, repair error: %v", err, repairErr),
		)
	}

	// Reset so a partial first decode does not leak into the result.
	var retried T
	if err := json.Unmarshal([]byte(repaired), &retried); err != nil {
		return result, apierror.Malformed("Invalid response from MCP server: failed to parse repaired JSON content", err)
	}
	return retried, nil
}

// ExtractWidget returns the text of the first "text/html" resource item.
// A missing widget or a malformed content list is not an error.
func ExtractWidget(env *Envelope) (string, bool) {
	if env == nil {
		return "", false
	}
	content := gjson.GetBytes(env.raw, "content")
	if !content.IsArray() {
		return "", false
	}

	var (
		widget string
		found  bool
	)
	content.ForEach(func(_, item gjson.Result) bool {
		if item.Get("type").String() == TypeResource && item.Get("resource.mimeType").String() == MIMEHTML {
			widget = item.Get("resource.text").String()
			found = true
			return false
		}
		return true
	})
	return widget, found
}

// payloadText locates the canonical payload item and returns its raw text.
func payloadText(env *Envelope) (string, error) {
	if env == nil || !gjson.ValidBytes(env.raw) {
		return "", apierror.Malformed("Invalid response from MCP server: body is not JSON", nil)
	}

	content := gjson.GetBytes(env.raw, "content")
	if !content.IsArray() {
		return "", apierror.Malformed("Invalid response: content is not a list", nil)
	}

	var (
		text  string
		found bool
	)
	content.ForEach(func(_, item gjson.Result) bool {
		switch item.Get("type").String() {
		case TypeText:
			text = item.Get("text").String()
			found = true
			return false
		case TypeResource:
			if item.Get("resource.mimeType").String() == MIMEJSON {
				text = item.Get("resource.text").String()
				found = true
				return false
			}
		}
		return true
	})

	if !found {
		return "", apierror.Malformed("Invalid response from MCP server: missing JSON content", nil)
	}
	return text, nil
}
