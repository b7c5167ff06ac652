package client

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/viant/apiclient/client/auth/store"
	"go.opentelemetry.io/otel/trace"
)

// Option represents client option
type Option func(c *Client)

// WithConfig sets API base and origin
func WithConfig(config Config) Option {
	return func(c *Client) {
		c.config = config
	}
}

// WithOrigin sets the origin used for relative paths
func WithOrigin(origin string) Option {
	return func(c *Client) {
		c.config.Origin = origin
	}
}

// WithAPIBase sets the API base, DefaultAPIBase is used otherwise
func WithAPIBase(base string) Option {
	return func(c *Client) {
		c.config.APIBase = base
	}
}

// WithStore sets the key-value store holding the access token
func WithStore(s store.Store) Option {
	return func(c *Client) {
		c.store = s
	}
}

// WithTokenStore sets the token accessor
func WithTokenStore(tokens *store.TokenStore) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithHTTPClient sets the http client; a client without a cookie jar gets the client jar.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTransport sets the round tripper used by the default http client
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithCookieJar sets the cookie jar, an in-memory jar is used otherwise
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) {
		c.jar = jar
	}
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics registers request metrics with registerer
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = NewMetrics(registerer)
	}
}

// WithTracerProvider sets the tracer provider, the global one is used otherwise
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracerProvider = provider
	}
}

// WithRequestID adds an X-Request-Id header to requests that do not carry one
func WithRequestID() Option {
	return func(c *Client) {
		c.requestID = true
	}
}

// WithStrictDecoding reports undecodable response bodies as *DecodeError instead of nil
func WithStrictDecoding() Option {
	return func(c *Client) {
		c.strict = true
	}
}
