package fbgraph

import (
	"context"
	"net/url"

	"github.com/google/go-querystring/query"
)

// DialogParams are the recognized parameters of the OAuth login dialog.
type DialogParams struct {
	ClientID     string `url:"client_id,omitempty"`
	RedirectURI  string `url:"redirect_uri,omitempty"`
	Scope        string `url:"scope,omitempty"`
	State        string `url:"state,omitempty"`
	ResponseType string `url:"response_type,omitempty"`
	Display      string `url:"display,omitempty"`
}

// OAuthURL returns the login dialog URL for the given parameters. It makes no
// network call. With mobile set, the mobile dialog variant is used.
func (c *Client) OAuthURL(params DialogParams, mobile bool) string {
	cfg := c.snapshot()
	base := cfg.dialogURL
	if mobile {
		base = cfg.dialogURLMobile
	}
	// The struct only holds strings, so encoding cannot fail.
	v, _ := query.Values(params)
	return base + v.Encode()
}

// Authorize exchanges the given parameters (typically client_id,
// client_secret, redirect_uri and code) for an access token and stores the
// returned token on the client.
func (c *Client) Authorize(ctx context.Context, params url.Values) (Result, error) {
	res, err := c.Get(ctx, "/oauth/access_token", params)
	if err != nil {
		return nil, err
	}
	if token := res.String("access_token"); token != "" {
		c.SetAccessToken(token)
	}
	return res, nil
}

// ExtendAccessToken exchanges a short-lived token for a long-lived one. The
// grant type is forced to fb_exchange_token; the token exchanged is taken
// from params["access_token"] when supplied, else from the client. When the
// caller did not supply a token explicitly, the client's stored token is
// replaced with the extended one.
func (c *Client) ExtendAccessToken(ctx context.Context, params url.Values) (Result, error) {
	p := url.Values{}
	for k, vs := range params {
		p[k] = vs
	}

	explicit := p.Get("access_token")
	p.Set("grant_type", "fb_exchange_token")
	if explicit != "" {
		p.Set("fb_exchange_token", explicit)
	} else {
		p.Set("fb_exchange_token", c.AccessToken())
	}

	res, err := c.Get(ctx, "/oauth/access_token", p)
	if err != nil {
		return nil, err
	}
	if explicit == "" {
		if token := res.String("access_token"); token != "" {
			c.SetAccessToken(token)
		}
	}
	return res, nil
}
