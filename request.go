package fbgraph

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// request is a single Graph API call. It captures the client configuration at
// construction and is discarded once do returns.
type request struct {
	cfg        config
	httpClient *http.Client
	logger     zerolog.Logger
	method     string
	path       string
	payload    url.Values
}

func (c *Client) newRequest(method, path string, payload url.Values) *request {
	return &request{
		cfg:        c.snapshot(),
		httpClient: c.httpClient,
		logger:     c.logger,
		method:     method,
		path:       path,
		payload:    payload,
	}
}

// prepareURL builds the final request URL. The steps run in a fixed order:
// root the path, inject the access token, inject the appsecret_proof, then
// resolve against the base API URL. Absolute URLs are passed through.
func (r *request) prepareURL() string {
	u := strings.TrimSpace(r.path)

	if !strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "http") {
		u = "/" + u
	}

	if r.cfg.accessToken != "" && !strings.Contains(u, "access_token=") {
		u += querySep(u) + "access_token=" + url.QueryEscape(r.cfg.accessToken)
	}

	if r.cfg.accessToken != "" && r.cfg.appSecret != "" && !strings.Contains(u, "appsecret_proof") {
		u += querySep(u) + "appsecret_proof=" + appSecretProof(r.cfg.appSecret, r.cfg.accessToken)
	}

	if !strings.HasPrefix(u, "http") {
		u = r.cfg.graphURL + u
	}

	return u
}

// appSecretProof is the hex HMAC-SHA256 of the access token keyed by the app
// secret, proving to the API that the caller knows the secret.
func appSecretProof(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// do issues the HTTP call and normalizes the response body. A transport
// failure is terminal: it is reported once and normalization never runs.
func (r *request) do(ctx context.Context) (Result, error) {
	if r.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.timeout)
		defer cancel()
	}

	requestURL := r.prepareURL()

	r.logger.Debug().
		Str("method", r.method).
		Str("url", redact(requestURL)).
		Msg("Making Graph API request")

	var body io.Reader
	if r.method == http.MethodPost {
		body = strings.NewReader(r.payload.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, r.method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTransport, redact(err.Error()))
	}
	if r.method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTransport, redact(err.Error()))
	}
	defer resp.Body.Close()

	// Picture endpoints redirect to the image itself. With redirect following
	// disabled the Location header is observable, so the response is
	// synthesized into a structured body instead of being parsed.
	if r.method == http.MethodGet && strings.Contains(resp.Header.Get("Content-Type"), "image") {
		return normalizeValue(map[string]any{
			"image":    true,
			"location": resp.Header.Get("Location"),
		})
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTransport, redact(err.Error()))
	}

	return normalize(string(raw))
}
