// Package transport owns the connection to the SecureLend tool server.
//
// A [Client] establishes its session lazily: the first [Client.Connect] or
// [Client.CallTool] snapshots the API key into a set of request headers and
// derives the call endpoint from the base URL. The session is reused until
// [Client.SetAPIKey] discards it. Establishment is guarded by a mutex, so
// concurrent callers share a single session.
//
// Every tool call is a synchronous JSON POST of {"name", "arguments"}; the
// response body is returned unparsed as an [envelope.Envelope]. HTTP and
// transport failures are converted to [apierror.Error] values at this
// boundary:
//
//	401, 403                -> authentication_error
//	429                     -> rate_limit_error (Retry-After honoured)
//	>= 500                  -> server_error with the response body
//	other non-2xx           -> network_error
//	DNS, refused, timeouts  -> network_error
//
// Calls pass through a [Middleware] chain before reaching the network. The
// first middleware is the outermost wrapper. See the middleware subpackage
// for timeout, retry, logging and rate limiting.
package transport
