package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/viant/apiclient/client/auth/store"
	"github.com/viant/apiclient/client/auth/transport"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// HeaderRequestID carries the generated request id
	HeaderRequestID = "X-Request-Id"
	tracerName      = "github.com/viant/apiclient/client"
)

// Client issues API requests
type Client struct {
	config         Config
	resolver       *Resolver
	store          store.Store
	tokens         *store.TokenStore
	httpClient     *http.Client
	transport      http.RoundTripper
	jar            http.CookieJar
	logger         logrus.FieldLogger
	metrics        *Metrics
	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
	requestID      bool
	strict         bool
}

// New creates a client
func New(options ...Option) (*Client, error) {
	ret := &Client{logger: logrus.StandardLogger()}
	for _, opt := range options {
		opt(ret)
	}
	var err error
	if ret.resolver, err = NewResolver(&ret.config); err != nil {
		return nil, err
	}
	if ret.tokens == nil {
		ret.tokens = store.NewTokenStore(ret.store, store.WithTokenLogger(ret.logger))
	}
	if ret.jar == nil {
		if ret.jar, err = cookiejar.New(nil); err != nil {
			return nil, err
		}
	}
	ret.httpClient = ret.initHTTPClient()
	if ret.tracerProvider == nil {
		ret.tracerProvider = otel.GetTracerProvider()
	}
	ret.tracer = ret.tracerProvider.Tracer(tracerName)
	return ret, nil
}

func (c *Client) initHTTPClient() *http.Client {
	if c.httpClient == nil {
		return &http.Client{Transport: transport.WrapWithCookieJar(c.transport, c.jar)}
	}
	if c.httpClient.Jar != nil {
		return c.httpClient
	}
	cloned := *c.httpClient
	cloned.Transport = transport.WrapWithCookieJar(cloned.Transport, c.jar)
	return &cloned
}

// Config returns client config
func (c *Client) Config() Config {
	return c.config
}

// Resolver returns the URL resolver
func (c *Client) Resolver() *Resolver {
	return c.resolver
}

// Tokens returns the token store
func (c *Client) Tokens() *store.TokenStore {
	return c.tokens
}

// Token returns the current access token or an empty string
func (c *Client) Token(ctx context.Context) string {
	return c.tokens.Token(ctx)
}

// SetToken stores the access token, an empty token clears it
func (c *Client) SetToken(ctx context.Context, token string) error {
	return c.tokens.SetToken(ctx, token)
}

// HTTPClient returns a plain http client sharing the transport, cookies and token,
// for requests that need the raw response (downloads, streaming).
func (c *Client) HTTPClient() *http.Client {
	inner := c.httpClient.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	bearer := transport.New(transport.WithTokenStore(c.tokens), transport.WithTransport(inner))
	return &http.Client{Transport: bearer, Jar: c.httpClient.Jar, Timeout: c.httpClient.Timeout}
}

// Execute sends a request and returns decoded JSON, text or nil.
// Non-2xx responses are returned as *RequestError, transport errors are returned as is.
func (c *Client) Execute(ctx context.Context, path string, options *Options) (any, error) {
	resp, req, err := c.roundTrip(ctx, path, options)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, c.requestError(req, resp)
	}
	value, err := resp.value()
	if err != nil && c.strict {
		return nil, err
	}
	return value, nil
}

// Do sends a request and decodes a JSON response into T; nil is returned for empty
// or undecodable responses.
func Do[T any](ctx context.Context, c *Client, path string, options *Options) (*T, error) {
	resp, req, err := c.roundTrip(ctx, path, options)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, c.requestError(req, resp)
	}
	var ret T
	decoded, err := resp.into(&ret)
	if err != nil {
		if c.strict {
			return nil, err
		}
		return nil, nil
	}
	if !decoded {
		return nil, nil
	}
	return &ret, nil
}

func (c *Client) requestError(req *http.Request, resp *payload) error {
	value, _ := resp.value()
	return &RequestError{Status: resp.status, Payload: value, Method: req.Method, URL: req.URL.String()}
}

func (c *Client) roundTrip(ctx context.Context, path string, options *Options) (*payload, *http.Request, error) {
	if options == nil {
		options = &Options{}
	}
	method := options.method()
	target, err := c.resolver.Resolve(path, options.Params)
	if err != nil {
		return nil, nil, err
	}
	header := c.header(ctx, options)
	body, err := encodeBody(options.Data, header)
	if err != nil {
		return nil, nil, err
	}
	URL := target.String()
	ctx, span := c.tracer.Start(ctx, "HTTP "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.method", method), attribute.String("http.url", URL)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, URL, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header = header
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	logger := c.logger.WithFields(logrus.Fields{"method": method, "url": URL})
	if id := header.Get(HeaderRequestID); id != "" {
		logger = logger.WithField("requestId", id)
	}
	logger.Debug("sending request")
	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(method, 0, time.Since(started))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.WithError(err).Debug("request failed")
		return nil, req, err
	}
	ret := readPayload(resp)
	elapsed := time.Since(started)
	c.metrics.observe(method, ret.status, elapsed)
	span.SetAttributes(attribute.Int("http.status_code", ret.status))
	if ret.status >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(ret.status))
	}
	logger.WithFields(logrus.Fields{"status": ret.status, "elapsed": elapsed}).Debug("received response")
	return ret, req, nil
}

func (c *Client) header(ctx context.Context, options *Options) http.Header {
	header := http.Header{}
	header.Set("Accept", contentTypeJSON)
	for k, v := range options.Headers {
		header.Set(k, v)
	}
	if token := c.tokens.Token(ctx); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	if c.requestID && header.Get(HeaderRequestID) == "" {
		header.Set(HeaderRequestID, uuid.NewString())
	}
	return header
}

func encodeBody(data any, header http.Header) (io.Reader, error) {
	switch actual := data.(type) {
	case nil:
		return nil, nil
	case *Form:
		header.Del("Content-Type")
		if actual == nil {
			return nil, nil
		}
		body, contentType, err := actual.encode()
		if err != nil {
			return nil, err
		}
		header.Set("Content-Type", contentType)
		return body, nil
	default:
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		header.Set("Content-Type", contentTypeJSON)
		return bytes.NewReader(encoded), nil
	}
}
