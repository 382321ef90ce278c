package api

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// NetworkError means the request never produced a response: DNS failure,
// refused connection, timeout. Distinct from RemoteError so screens can hint
// at connectivity rather than credentials.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Could not reach the server. Check your connection and the API base URL."
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError means the server answered with a non-success status. Detail is
// the server's own message, already flattened for display.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string { return e.Detail }

// ValidationError is a purely local, pre-flight failure (missing form
// fields, password mismatch). It never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// newRemoteError normalizes an error response body into a RemoteError.
//
// The backend answers in one of two shapes:
//   - {"detail": "..."} for plain rejections
//   - {"field": ["msg", ...], ...} for form validation, where the special
//     keys "non_field_errors" and "detail" carry messages not tied to a field
//
// Field errors flatten to one "field: message" line each; the special keys
// emit their messages bare. Anything unparseable falls back to a generic
// message carrying the status code.
func newRemoteError(status int, body []byte) *RemoteError {
	detail := flattenErrorBody(body)
	if detail == "" {
		detail = fmt.Sprintf("Request failed with status %d.", status)
	}
	return &RemoteError{StatusCode: status, Detail: detail}
}

func flattenErrorBody(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	// Plain {"detail": "..."} wins when it is a bare string.
	if raw, ok := payload["detail"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && len(payload) == 1 {
			return s
		}
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, k := range keys {
		bare := k == "non_field_errors" || k == "detail"
		for _, msg := range rawMessages(payload[k]) {
			if bare {
				lines = append(lines, msg)
			} else {
				lines = append(lines, k+": "+msg)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// rawMessages accepts either a JSON string or a list of strings.
func rawMessages(raw json.RawMessage) []string {
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	return nil
}
