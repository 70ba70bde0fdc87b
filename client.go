package fbgraph

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Default endpoints used when no overrides are configured.
const (
	DefaultGraphURL        = "https://graph.facebook.com"
	DefaultDialogURL       = "https://www.facebook.com/dialog/oauth?"
	DefaultDialogURLMobile = "https://m.facebook.com/dialog/oauth?"
)

// Client is a Facebook Graph API client. The zero value is not usable;
// construct it with New. It is safe for concurrent use: every call snapshots
// the token, secret, endpoint and timeout configuration at entry, so mutating
// them through the setters never affects requests already in flight.
type Client struct {
	mu         sync.RWMutex
	cfg        config
	httpClient *http.Client
	logger     zerolog.Logger
}

// config is the immutable per-call view of the client settings.
type config struct {
	accessToken     string
	appSecret       string
	graphURL        string
	dialogURL       string
	dialogURLMobile string
	timeout         time.Duration
}

// New creates a Graph API client using the provided functional options.
func New(opts ...Option) *Client {
	c := &Client{
		cfg: config{
			graphURL:        DefaultGraphURL,
			dialogURL:       DefaultDialogURL,
			dialogURLMobile: DefaultDialogURLMobile,
		},
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Profile picture requests answer with a 302 to the image; the Location
	// header has to stay observable, so redirects are never followed.
	c.httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return c
}

func (c *Client) snapshot() config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// Get performs a GET against the given graph path. Params, if any, are merged
// into the path's query string.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (Result, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyPath
	}

	if len(params) > 0 {
		path += querySep(path) + params.Encode()
	}

	return c.newRequest(http.MethodGet, path, nil).do(ctx)
}

// Post performs a form-encoded POST against the given graph path. A nil
// payload defaults to an empty form, or to {access_token: <current>} when the
// path itself already carries an access_token parameter.
func (c *Client) Post(ctx context.Context, path string, payload url.Values) (Result, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyPath
	}

	if payload == nil {
		payload = url.Values{}
		if token := c.AccessToken(); token != "" && strings.Contains(path, "access_token=") {
			payload.Set("access_token", token)
		}
	}

	return c.newRequest(http.MethodPost, path, payload).do(ctx)
}

// Delete deletes a graph object. The Graph API models deletion as a POST with
// a method=delete parameter, which is appended unless already present.
func (c *Client) Delete(ctx context.Context, path string) (Result, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyPath
	}

	if !strings.Contains(strings.ToLower(path), "method=delete") {
		path += querySep(path) + "method=delete"
	}
	return c.Post(ctx, path, nil)
}

// AccessToken returns the currently configured access token.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.accessToken
}

// SetAccessToken replaces the access token used by subsequent calls.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.cfg.accessToken = token
	c.mu.Unlock()
}

// AppSecret returns the currently configured app secret.
func (c *Client) AppSecret() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.appSecret
}

// SetAppSecret replaces the app secret. Calls made while both a token and a
// secret are set carry an appsecret_proof parameter.
func (c *Client) SetAppSecret(secret string) {
	c.mu.Lock()
	c.cfg.appSecret = secret
	c.mu.Unlock()
}

// GraphURL returns the base API URL.
func (c *Client) GraphURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.graphURL
}

// SetGraphURL replaces the base API URL used for relative paths.
func (c *Client) SetGraphURL(graphURL string) {
	c.mu.Lock()
	c.cfg.graphURL = strings.TrimRight(graphURL, "/")
	c.mu.Unlock()
}

// Timeout returns the configured per-call timeout.
func (c *Client) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.timeout
}

// SetTimeout replaces the per-call timeout. Like the other setters it is
// snapshotted at call entry, so it applies to calls started after it returns
// and never touches requests already in flight.
func (c *Client) SetTimeout(d time.Duration) {
	c.mu.Lock()
	c.cfg.timeout = d
	c.mu.Unlock()
}

// querySep returns the separator needed to append another query parameter.
func querySep(s string) string {
	if strings.Contains(s, "?") {
		return "&"
	}
	return "?"
}
