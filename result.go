package fbgraph

// Result is a normalized Graph API response. JSON object bodies decode into
// it directly; URL-encoded bodies become flat string-valued entries; bare
// scalars and non-object JSON values are wrapped under the "data" key; image
// redirects become {image: true, location: <url>}.
type Result map[string]any

// String returns the value under key if it is a string, else "".
func (r Result) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Int returns the value under key as an int. JSON numbers decode as float64
// and are truncated; anything else yields 0.
func (r Result) Int(key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Bool returns the value under key if it is a bool, else false.
func (r Result) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Map returns the object under key, or nil if the value is not an object.
func (r Result) Map(key string) Result {
	m, _ := r[key].(map[string]any)
	return Result(m)
}

// List returns the array under key, or nil if the value is not an array.
// Graph collection responses carry their items under "data".
func (r Result) List(key string) []any {
	l, _ := r[key].([]any)
	return l
}
