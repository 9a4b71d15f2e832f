package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/core/envelope"
	"github.com/SecureLend/sdk/core/transport"
	"github.com/SecureLend/sdk/internal/utils"
)

// LogLevel controls how much detail the logging middleware emits per call.
type LogLevel int

const (
	// LogLevelMinimal logs the tool name, duration and outcome.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard adds the request id and whether a widget came back.
	LogLevelStandard

	// LogLevelVerbose adds the arguments and the raw response body, each
	// truncated to 500 bytes.
	//
	// WARNING: arguments carry applicants' financial data (revenue, credit
	// score). Do not use LogLevelVerbose in production.
	LogLevelVerbose
)

const truncateLen = 500

// NewLoggingMiddleware logs every call before and after it runs. Failures
// are logged at ERROR with their apierror kind. logger must not be nil; use
// slog.Default() if you have not configured one.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) transport.Middleware {
	return func(next transport.CallFunc) transport.CallFunc {
		return func(ctx context.Context, name string, args any) (*envelope.Envelope, error) {
			requestAttrs := []any{slog.String("tool", name)}
			if level >= LogLevelVerbose {
				requestAttrs = append(requestAttrs, slog.String("arguments", utils.TruncateString(utils.ToString(args), truncateLen)))
			}
			logger.InfoContext(ctx, "tool call", requestAttrs...)

			start := time.Now()
			env, err := next(ctx, name, args)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "tool call failed",
					slog.String("tool", name),
					slog.Duration("duration", elapsed),
					slog.String("kind", apierror.KindOf(err).String()),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "tool call completed", responseAttrs(name, env, elapsed, level)...)
			return env, nil
		}
	}
}

func responseAttrs(name string, env *envelope.Envelope, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("tool", name),
		slog.Duration("duration", elapsed),
	}

	if level >= LogLevelStandard {
		if requestID := env.RequestID(); requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}
		_, widget := envelope.ExtractWidget(env)
		attrs = append(attrs, slog.Bool("widget", widget))
	}

	if level >= LogLevelVerbose {
		attrs = append(attrs, slog.String("response", utils.TruncateString(string(env.Raw()), truncateLen)))
	}

	return attrs
}
