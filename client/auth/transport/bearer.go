package transport

import (
	"net/http"

	"github.com/viant/apiclient/client/auth/store"
)

// Bearer attaches "Authorization: Bearer <token>" from a TokenStore to every request.
// Requests are sent unchanged while no token is stored.
type Bearer struct {
	tokens    *store.TokenStore
	transport http.RoundTripper
}

// New creates a Bearer round tripper
func New(options ...Option) *Bearer {
	ret := &Bearer{transport: http.DefaultTransport}
	for _, opt := range options {
		opt(ret)
	}
	if ret.tokens == nil {
		ret.tokens = store.NewTokenStore(nil)
	}
	return ret
}

// Tokens returns the token store
func (b *Bearer) Tokens() *store.TokenStore {
	return b.tokens
}

func (b *Bearer) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	token, ok := getAuthToken(ctx)
	if !ok {
		token = b.tokens.Token(ctx)
	}
	if token == "" {
		return b.transport.RoundTrip(req)
	}
	authorized := req.Clone(ctx)
	authorized.Header.Set("Authorization", "Bearer "+token)
	return b.transport.RoundTrip(authorized)
}
