// Package transport provides http.RoundTripper helpers used by the API client:
// cookie jar wrapping (credentials are always included), a cookie jar persisted
// through afs, and a Bearer round tripper attaching the stored access token to
// requests issued with a plain *http.Client.
package transport
