package fbgraph

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction.
type Option func(*Client)

// WithAccessToken sets the initial access token.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.cfg.accessToken = token
	}
}

// WithAppSecret sets the app secret used to compute appsecret_proof.
func WithAppSecret(secret string) Option {
	return func(c *Client) {
		c.cfg.appSecret = secret
	}
}

// WithGraphURL overrides the base API URL, mainly useful for tests.
func WithGraphURL(graphURL string) Option {
	return func(c *Client) {
		c.cfg.graphURL = strings.TrimRight(graphURL, "/")
	}
}

// WithOAuthDialogURL overrides the OAuth dialog URL.
func WithOAuthDialogURL(dialogURL string) Option {
	return func(c *Client) {
		c.cfg.dialogURL = dialogURL
	}
}

// WithOAuthDialogURLMobile overrides the mobile OAuth dialog URL.
func WithOAuthDialogURLMobile(dialogURL string) Option {
	return func(c *Client) {
		c.cfg.dialogURLMobile = dialogURL
	}
}

// WithTimeout sets a per-call timeout, applied as a context deadline on each
// request. The default is no timeout; callers can also bound individual calls
// through the context they pass in.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.cfg.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client is copied so
// that disabling redirect following does not mutate the caller's instance.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		cp := *h
		c.httpClient = &cp
	}
}

// WithLogger sets the logger used for request debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
