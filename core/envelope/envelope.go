package envelope

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Content item types and resource MIME types recognised by the parser.
const (
	TypeText     = "text"
	TypeResource = "resource"

	MIMEJSON = "application/json"
	MIMEHTML = "text/html"
)

// Envelope is the raw tool result returned by the remote service. It keeps
// the undecoded body so that a malformed content list is reported by the
// parser as a server error instead of failing the transport.
type Envelope struct {
	raw []byte
}

// New wraps a raw tool result body.
func New(raw []byte) *Envelope {
	return &Envelope{raw: raw}
}

// Raw returns the body exactly as received.
func (e *Envelope) Raw() []byte {
	if e == nil {
		return nil
	}
	return e.raw
}

// RequestID returns the optional requestId assigned by the service.
func (e *Envelope) RequestID() string {
	if e == nil {
		return ""
	}
	return gjson.GetBytes(e.raw, "requestId").String()
}

// Items decodes the content list. Items that are not objects are skipped;
// a missing or non-array content yields nil.
func (e *Envelope) Items() []ContentItem {
	if e == nil {
		return nil
	}
	content := gjson.GetBytes(e.raw, "content")
	if !content.IsArray() {
		return nil
	}

	items := make([]ContentItem, 0, len(content.Array()))
	content.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		var item ContentItem
		if err := json.Unmarshal([]byte(value.Raw), &item); err == nil {
			items = append(items, item)
		}
		return true
	})
	return items
}

// ContentItem is one entry of the content list. Text is set for text items,
// Resource for resource items.
type ContentItem struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	Resource *Resource `json:"resource,omitempty"`
}

// Resource is an embedded resource carried by a content item.
type Resource struct {
	URI      string `json:"uri,omitempty"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// Result is the wire shape of a tool result. Servers and tests use it to
// produce bodies the parser understands.
type Result struct {
	Content   []ContentItem `json:"content"`
	RequestID string        `json:"requestId,omitempty"`
}

// Text builds a text content item.
func Text(text string) ContentItem {
	return ContentItem{Type: TypeText, Text: text}
}

// JSONResource builds an application/json resource item.
func JSONResource(text string) ContentItem {
	return ContentItem{Type: TypeResource, Resource: &Resource{MimeType: MIMEJSON, Text: text}}
}

// HTMLResource builds a text/html resource item, the form used for widgets.
func HTMLResource(html string) ContentItem {
	return ContentItem{Type: TypeResource, Resource: &Resource{MimeType: MIMEHTML, Text: html}}
}

// Encode serialises items into a tool result body.
func Encode(items ...ContentItem) ([]byte, error) {
	if items == nil {
		items = []ContentItem{}
	}
	return json.Marshal(Result{Content: items})
}

// FromItems builds an Envelope holding the given items. It panics only if a
// ContentItem cannot be marshalled, which cannot happen for these types.
func FromItems(items ...ContentItem) *Envelope {
	raw, err := Encode(items...)
	if err != nil {
		panic(err)
	}
	return New(raw)
}
