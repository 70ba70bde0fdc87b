package fbgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// SearchOptions are the recognized parameters of the /search endpoint.
// Zero-valued fields are omitted from the query.
type SearchOptions struct {
	Query    string `url:"q,omitempty"`
	Type     string `url:"type,omitempty"`
	Center   string `url:"center,omitempty"`
	Distance int    `url:"distance,omitempty"`
	Fields   string `url:"fields,omitempty"`
	Limit    int    `url:"limit,omitempty"`
}

// Search queries the /search endpoint.
func (c *Client) Search(ctx context.Context, opts SearchOptions) (Result, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding search options: %w", err)
	}
	return c.Get(ctx, "/search?"+v.Encode(), nil)
}

// FQL runs a single FQL query through the /fql endpoint.
func (c *Client) FQL(ctx context.Context, q string) (Result, error) {
	return c.Get(ctx, "/fql?q="+url.QueryEscape(q), nil)
}

// FQLMulti runs a multiquery: a mapping of names to FQL queries submitted as
// a single JSON-encoded request.
func (c *Client) FQLMulti(ctx context.Context, queries map[string]string) (Result, error) {
	b, err := json.Marshal(queries)
	if err != nil {
		return nil, fmt.Errorf("encoding multiquery: %w", err)
	}
	return c.Get(ctx, "/fql?q="+url.QueryEscape(string(b)), nil)
}
