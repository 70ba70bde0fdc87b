// Package fbgraph provides a client for the Facebook Graph API.
//
// The client translates method calls into Graph API HTTP requests, injects
// the configured access token (and an appsecret_proof when an app secret is
// set) into every call, and normalizes the API's mixed response shapes —
// JSON objects, bare scalars, URL-encoded token responses and image
// redirects — into a single Result map.
//
// # Usage
//
//	client := fbgraph.New(
//	    fbgraph.WithAccessToken(token),
//	    fbgraph.WithAppSecret(secret),
//	)
//
//	res, err := client.Get(ctx, "/me", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.String("name"))
//
// Remote API errors are returned as *Error and can be inspected with
// errors.As; transport and parse failures wrap the ErrTransport and ErrParse
// sentinels.
package fbgraph
