package fbgraph

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, jsonBody, classify(`{"name":"Zuck"}`))
	assert.Equal(t, jsonBody, classify(`[{"a":1}]`))
	assert.Equal(t, queryBody, classify("true"))
	assert.Equal(t, queryBody, classify("access_token=ABC&expires=5183999"))
	assert.Equal(t, queryBody, classify(""))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Result
	}{
		{
			name: "json object",
			body: `{"name":"Zuck"}`,
			want: Result{"name": "Zuck"},
		},
		{
			name: "nested json object",
			body: `{"id":"1","from":{"name":"Zuck"}}`,
			want: Result{"id": "1", "from": map[string]any{"name": "Zuck"}},
		},
		{
			// No type coercion: the decoded scalar stays a string.
			name: "bare scalar wrapped as data",
			body: "true",
			want: Result{"data": "true"},
		},
		{
			name: "url-encoded token response",
			body: "access_token=ABC123&expires=5183999",
			want: Result{"access_token": "ABC123", "expires": "5183999"},
		},
		{
			name: "leading question mark stripped",
			body: "?access_token=ABC123",
			want: Result{"access_token": "ABC123"},
		},
		{
			name: "repeated keys decode as list",
			body: "id=1&id=2",
			want: Result{"id": []string{"1", "2"}},
		},
		{
			name: "top-level json array wrapped as data",
			body: `[{"uid":4}]`,
			want: Result{"data": []any{map[string]any{"uid": float64(4)}}},
		},
		{
			name: "empty body",
			body: "",
			want: Result{"data": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalize(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeParseError(t *testing.T) {
	res, err := normalize(`{"name": oops}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Nil(t, res)
}

func TestNormalizeEmbeddedError(t *testing.T) {
	res, err := normalize(`{"error":{"message":"Invalid token","type":"OAuthException","code":190,"error_subcode":463}}`)
	require.Error(t, err)
	assert.Nil(t, res)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid token", apiErr.Message)
	assert.Equal(t, "OAuthException", apiErr.Type)
	assert.Equal(t, 190, apiErr.Code)
	assert.Equal(t, 463, apiErr.Subcode)
	assert.Equal(t, "Invalid token", apiErr.Raw["message"])
	assert.Contains(t, apiErr.Error(), "Invalid token")
}

func TestNormalizeEmbeddedErrorString(t *testing.T) {
	// A query-shaped body can carry an error too; it surfaces verbatim.
	res, err := normalize("error=token+expired")
	require.Error(t, err)
	assert.Nil(t, res)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestQueryCodecRoundTrip(t *testing.T) {
	in := url.Values{
		"q":      {"coffee"},
		"type":   {"place"},
		"center": {"37.76,-122.427"},
	}

	got, err := normalize(in.Encode())
	require.NoError(t, err)

	want := Result{}
	for k, vs := range in {
		want[k] = vs[0]
	}
	assert.Equal(t, want, got)
}
