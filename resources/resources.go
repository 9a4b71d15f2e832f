package resources

import (
	"context"

	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/core/widget"
)

// Caller invokes a named remote tool. *transport.Client implements it.
type Caller interface {
	CallTool(ctx context.Context, name string, args any) (*envelope.Envelope, error)
}

// Base is embedded state shared by every resource.
type Base struct {
	caller     Caller
	decodeOpts []envelope.Option
}

// NewBase returns a Base calling tools through caller. opts apply to every
// payload decode, e.g. envelope.WithRepair().
func NewBase(caller Caller, opts ...envelope.Option) *Base {
	return &Base{caller: caller, decodeOpts: opts}
}

// Invoke calls tool with args and decodes the JSON payload into T. The
// envelope is returned too, for callers that need the widget or request id.
func Invoke[T any](ctx context.Context, b *Base, tool string, args any) (*T, *envelope.Envelope, error) {
	env, err := b.caller.CallTool(ctx, tool, args)
	if err != nil {
		return nil, nil, err
	}

	result, err := envelope.Decode[T](env, b.decodeOpts...)
	if err != nil {
		return nil, env, err
	}
	return &result, env, nil
}

// Compare is Invoke plus widget attachment. The response's Widget is always
// taken from the envelope; a missing widget leaves it empty and is not an
// error.
func Compare[T any, PT interface {
	*T
	widgetSetter
}](ctx context.Context, b *Base, tool string, args any) (*T, error) {
	result, env, err := Invoke[T](ctx, b, tool, args)
	if err != nil {
		return nil, err
	}
	html, _ := envelope.ExtractWidget(env)
	PT(result).setWidget(html)
	return result, nil
}

type widgetSetter interface {
	setWidget(html string)
}

// WidgetField is embedded in compare responses. The server never sends
// "widget" inside the payload; it is filled from the envelope's text/html
// resource.
type WidgetField struct {
	// Widget is the HTML fragment rendering the comparison, or "".
	Widget string `json:"widget,omitempty"`
}

func (w *WidgetField) setWidget(html string) {
	w.Widget = html
}

// HasWidget reports whether the server sent a widget.
func (w WidgetField) HasWidget() bool {
	return w.Widget != ""
}

// WidgetMarkdown renders the widget as Markdown. It returns "" when there
// is no widget.
func (w WidgetField) WidgetMarkdown() (string, error) {
	return widget.Markdown(w.Widget)
}
