// Package client implements a small JSON-over-HTTP API client.
//
// It resolves request paths against a configured API base and origin, attaches the
// bearer token kept in a store.TokenStore, encodes request bodies and normalizes
// responses:
//   - JSON responses are decoded into Go values (map[string]any, []any, float64 ...),
//     other responses are returned as text, 204/205 yield nil.
//   - Non-2xx responses are returned as *RequestError carrying the status code and
//     the decoded payload.
//   - Undecodable bodies yield nil rather than an error, unless strict decoding is on.
//
// Example:
//
//	cli, _ := client.New(client.WithOrigin("http://localhost:8080"))
//	_ = cli.SetToken(ctx, token)
//	users, err := cli.Get(ctx, "/api/users", &client.Options{
//		Params: client.Params{{Key: "active", Value: true}, {Key: "role", Value: []string{"admin", "editor"}}},
//	})
//	var reqErr *client.RequestError
//	if errors.As(err, &reqErr) {
//		fmt.Println(reqErr.Status, reqErr.Payload)
//	}
package client
