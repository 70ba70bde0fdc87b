package fbgraph

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareURL(t *testing.T) {
	tests := []struct {
		name   string
		client *Client
		path   string
		want   string
	}{
		{
			name:   "adds leading slash",
			client: New(),
			path:   "me",
			want:   DefaultGraphURL + "/me",
		},
		{
			name:   "keeps existing slash",
			client: New(),
			path:   "/me",
			want:   DefaultGraphURL + "/me",
		},
		{
			name:   "trims surrounding whitespace",
			client: New(),
			path:   "  /me  ",
			want:   DefaultGraphURL + "/me",
		},
		{
			name:   "absolute url passed through",
			client: New(),
			path:   "https://example.com/me",
			want:   "https://example.com/me",
		},
		{
			name:   "injects access token",
			client: New(WithAccessToken("tok")),
			path:   "/me",
			want:   DefaultGraphURL + "/me?access_token=tok",
		},
		{
			name:   "token appended with ampersand when query present",
			client: New(WithAccessToken("tok")),
			path:   "/me?fields=name",
			want:   DefaultGraphURL + "/me?fields=name&access_token=tok",
		},
		{
			name:   "existing token not duplicated",
			client: New(WithAccessToken("tok")),
			path:   "/me?access_token=other",
			want:   DefaultGraphURL + "/me?access_token=other",
		},
		{
			name:   "token escaped",
			client: New(WithAccessToken("a b|c")),
			path:   "/me",
			want:   DefaultGraphURL + "/me?access_token=a+b%7Cc",
		},
		{
			name:   "custom graph url",
			client: New(WithGraphURL("http://localhost:1234")),
			path:   "/me",
			want:   "http://localhost:1234/me",
		},
		{
			name:   "trailing slash stripped from graph url",
			client: New(WithGraphURL("http://localhost:1234/")),
			path:   "/me",
			want:   "http://localhost:1234/me",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.client.newRequest(http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.want, req.prepareURL())
		})
	}
}

func TestPrepareURLAppSecretProof(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("tok"))
	proof := hex.EncodeToString(mac.Sum(nil))

	client := New(WithAccessToken("tok"), WithAppSecret("secret"))

	got := client.newRequest(http.MethodGet, "/me", nil).prepareURL()
	assert.Equal(t, DefaultGraphURL+"/me?access_token=tok&appsecret_proof="+proof, got)
	assert.Equal(t, 1, strings.Count(got, "appsecret_proof"))

	// An already-present proof is left alone.
	got = client.newRequest(http.MethodGet, "/me?appsecret_proof=abc", nil).prepareURL()
	assert.Equal(t, 1, strings.Count(got, "appsecret_proof"))
	assert.Contains(t, got, "appsecret_proof=abc")
}

func TestPrepareURLNoProofWithoutSecret(t *testing.T) {
	client := New(WithAccessToken("tok"))
	got := client.newRequest(http.MethodGet, "/me", nil).prepareURL()
	assert.NotContains(t, got, "appsecret_proof")
}

func TestAppSecretProof(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("tok"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, appSecretProof("secret", "tok"))
}

func TestRedact(t *testing.T) {
	in := "https://graph.example/me?access_token=abc&appsecret_proof=def&fields=name"
	got := redact(in)
	assert.NotContains(t, got, "abc")
	assert.NotContains(t, got, "def")
	assert.Contains(t, got, "fields=name")
	assert.Contains(t, got, "access_token=REDACTED")
}
