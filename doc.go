// Package apiclient builds configured API clients.
//
// ClientOptions can be populated from command line flags, a YAML/JSON config file
// or APICLIENT_* environment variables (see LoadOptions), then turned into a
// client.Client with NewClient:
//
//	options, err := apiclient.LoadOptions("apiclient.yaml")
//	if err != nil {
//		return err
//	}
//	cli, err := apiclient.NewClient(ctx, options)
//	if err != nil {
//		return err
//	}
//	users, err := cli.Get(ctx, "/api/users", nil)
//
// Packages:
//   - client: URL resolution, request execution and verb helpers
//   - client/auth/store: token storage backends (memory, file, redis, sql, encrypted)
//   - client/auth/transport: cookie jar and bearer round trippers
//   - festival: typed festival management API services
//   - cli: command line runner
package apiclient
