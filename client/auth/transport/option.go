package transport

import (
	"net/http"

	"github.com/viant/apiclient/client/auth/store"
)

type Option func(*Bearer)

// WithTokenStore sets the token store
func WithTokenStore(tokens *store.TokenStore) Option {
	return func(b *Bearer) {
		b.tokens = tokens
	}
}

// WithTransport sets the inner transport
func WithTransport(transport http.RoundTripper) Option {
	return func(b *Bearer) {
		b.transport = transport
	}
}
