package transport

import (
	"context"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/internal/utils"
	"github.com/SecureLend/sdk/providers/observability"
)

// NewObservabilityMiddleware records a span, a call counter, a duration
// histogram and log events for every tool call.
//
// The span and the observer are put in the context before calling next, so
// the HTTP layer can add request events via [observability.SpanFromContext].
//
// [New] prepends this middleware when [WithObserver] is given, so it observes
// the final outcome after any retry or timeout middleware.
func NewObservabilityMiddleware(observer observability.Provider) Middleware {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, name string, args any) (*envelope.Envelope, error) {
			tool := observability.String(observability.AttrToolName, name)

			ctx, span := observer.StartSpan(ctx, observability.SpanToolCall, tool)
			ctx = observability.ContextWithSpan(ctx, span)
			ctx = observability.ContextWithObserver(ctx, observer)

			observer.Debug(ctx, "tool call",
				tool,
				observability.String(observability.AttrToolArguments, utils.Truncate(utils.ToString(args))),
			)

			timer := utils.NewTimer()
			env, err := next(ctx, name, args)
			timer.Stop()

			observer.Histogram(observability.MetricToolCallDuration).Record(ctx, timer.Seconds(), tool)

			if err != nil {
				kind := observability.String(observability.AttrErrorKind, apierror.KindOf(err).String())

				span.RecordError(err)
				span.SetAttributes(kind)
				span.SetStatus(observability.StatusError, "tool call failed")
				span.End()

				observer.Error(ctx, "tool call failed",
					tool,
					kind,
					observability.Error(err),
					observability.Duration(observability.AttrDuration, timer.GetDuration()),
				)
				observer.Counter(observability.MetricToolCallCount).Add(ctx, 1,
					tool,
					observability.String(observability.AttrStatus, "error"),
				)
				return nil, err
			}

			_, hasWidget := envelope.ExtractWidget(env)
			attrs := []observability.Attribute{
				tool,
				observability.Bool(observability.AttrToolWidget, hasWidget),
				observability.Duration(observability.AttrDuration, timer.GetDuration()),
			}
			if requestID := env.RequestID(); requestID != "" {
				attrs = append(attrs, observability.String(observability.AttrToolRequestID, requestID))
			}

			span.SetAttributes(attrs...)
			span.SetStatus(observability.StatusOK, "success")
			span.End()

			observer.Info(ctx, "tool call completed", attrs...)
			observer.Counter(observability.MetricToolCallCount).Add(ctx, 1,
				tool,
				observability.String(observability.AttrStatus, "success"),
			)

			return env, nil
		}
	}
}
