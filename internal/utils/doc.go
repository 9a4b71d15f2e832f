// Package utils provides shared low-level helpers used by the SDK internals:
// [PostJSON] for the synchronous JSON round trip behind every tool call,
// [Ptr] for optional request fields, string helpers for log output, and
// [Timer] for measuring latency.
package utils
