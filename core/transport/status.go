package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/internal/utils"
)

// statusError maps a non-2xx response onto the error taxonomy.
//
// 429 becomes a rate_limit_error carrying the Retry-After hint. The
// TypeScript and Python SDKs report it as a network_error like any other
// unexpected status; only the 429 branch departs from them.
func statusError(res *utils.Response, now time.Time) error {
	code := res.StatusCode
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return apierror.Authentication("Authentication failed.", code)
	case code == http.StatusTooManyRequests:
		return apierror.RateLimit("Rate limit exceeded.", parseRetryAfter(res.Header.Get("Retry-After"), now))
	case code >= http.StatusInternalServerError:
		body := string(res.Body)
		return apierror.Server("Server error: "+body, code, body)
	default:
		cause := fmt.Errorf("unexpected status %d %s", code, http.StatusText(code))
		return apierror.Network("HTTP error: "+cause.Error(), cause)
	}
}

// parseRetryAfter reads a Retry-After header given either as delay seconds
// or as an HTTP date. Unparseable or past values yield zero.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if wait := at.Sub(now); wait > 0 {
			return wait.Round(time.Second)
		}
	}
	return 0
}

// transportError classifies a failure that happened before any response
// arrived. Encoding failures are caller mistakes, everything else is the
// network.
func transportError(err error) error {
	if errors.Is(err, utils.ErrEncodeBody) {
		return apierror.Validation("Invalid tool arguments: " + err.Error())
	}
	return apierror.Network("Network error: "+err.Error(), err)
}
