// Package envelope models the tool result returned by the SecureLend service
// and extracts its two useful parts: the canonical JSON payload
// ([ParseJSONPayload], [Decode]) and the optional HTML widget
// ([ExtractWidget]).
//
// Parsing works directly on the raw body with gjson, so the two extractions
// are independent: a missing widget never fails a call, and a malformed
// content list is reported as a server_error by the payload functions only.
package envelope
