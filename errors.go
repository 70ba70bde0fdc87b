package fbgraph

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors reported by the client before or during a call. Remote API
// errors are reported as *Error instead.
var (
	// ErrEmptyPath indicates a call was made with an empty graph path. It is
	// returned before any network activity.
	ErrEmptyPath = errors.New("graph path is required")

	// ErrTransport wraps failures of the underlying HTTP transport.
	ErrTransport = errors.New("transport error")

	// ErrParse wraps failures to decode a response body that looked
	// JSON-shaped or query-shaped.
	ErrParse = errors.New("error parsing response")
)

// Error is an error payload returned by the Graph API itself. Message, Type,
// Code and Subcode are decoded from the payload when present; Raw holds the
// payload verbatim.
type Error struct {
	Message string
	Type    string
	Code    int
	Subcode int
	Raw     map[string]any
}

func (e *Error) Error() string {
	var parts []string
	if e.Code != 0 {
		parts = append(parts, fmt.Sprintf("code %d", e.Code))
	}
	if e.Subcode != 0 {
		parts = append(parts, fmt.Sprintf("subcode %d", e.Subcode))
	}
	if e.Type != "" {
		parts = append(parts, "type "+e.Type)
	}
	if e.Message != "" {
		parts = append(parts, "message "+e.Message)
	}
	if len(parts) == 0 {
		return "graph: unknown API error"
	}
	return "graph: " + strings.Join(parts, " ")
}

// redactRe matches credential-bearing query parameters in URLs and error text.
var redactRe = regexp.MustCompile(`(access_token|client_secret|appsecret_proof|fb_exchange_token)=[^&\s]*`)

// redact strips credential values from a string before it reaches logs or
// error messages.
func redact(s string) string {
	return redactRe.ReplaceAllString(s, "$1=REDACTED")
}
