package fbgraph

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// bodyKind classifies a raw response body before decoding. The Graph API
// answers with JSON objects for most calls but with bare scalars or
// URL-encoded key=value strings for some OAuth and legacy endpoints.
type bodyKind int

const (
	jsonBody  bodyKind = iota // has a {...} pair, decode as strict JSON
	queryBody                 // bare scalar or URL-encoded string
)

func classify(body string) bodyKind {
	if strings.Contains(body, "{") && strings.Contains(body, "}") {
		return jsonBody
	}
	return queryBody
}

// normalize decodes a raw response body into a Result. Exactly one of the
// return values is non-nil: a parse failure yields a nil Result, and a body
// that itself embeds an error field yields that error with a nil Result.
func normalize(body string) (Result, error) {
	switch classify(body) {
	case jsonBody:
		var v any
		if err := json.Unmarshal([]byte(body), &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return normalizeValue(v)
	default:
		return normalizeQuery(body)
	}
}

// normalizeQuery decodes a query-shaped body. A body with no "=" at all is a
// bare scalar and is rewritten as data=<body> first. The decoder performs no
// type coercion: a bare "true" comes out as the string "true".
func normalizeQuery(body string) (Result, error) {
	q := body
	if !strings.Contains(q, "=") {
		q = "data=" + q
	}
	q = strings.TrimPrefix(q, "?")

	vals, err := url.ParseQuery(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	m := make(map[string]any, len(vals))
	for k, vs := range vals {
		if len(vs) == 1 {
			m[k] = vs[0]
		} else {
			m[k] = vs
		}
	}
	return normalizeValue(m)
}

// normalizeValue finishes normalization of an already-decoded value: objects
// carrying an error field surface that error, any other object becomes the
// Result, and non-object values are wrapped as {data: v}.
func normalizeValue(v any) (Result, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Result{"data": v}, nil
	}
	if e, present := m["error"]; present {
		return nil, apiError(e)
	}
	return Result(m), nil
}

// apiError converts an embedded error payload into an *Error. The payload is
// kept verbatim in Raw since the API's error shape carries caller-meaningful
// fields beyond the ones decoded here.
func apiError(v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return &Error{Message: fmt.Sprint(v)}
	}

	e := &Error{Raw: m}
	if s, ok := m["message"].(string); ok {
		e.Message = s
	}
	if s, ok := m["type"].(string); ok {
		e.Type = s
	}
	if f, ok := m["code"].(float64); ok {
		e.Code = int(f)
	}
	if f, ok := m["error_subcode"].(float64); ok {
		e.Subcode = int(f)
	}
	return e
}
