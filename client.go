package apiclient

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/viant/apiclient/client"
	"github.com/viant/apiclient/client/auth/store"
	"github.com/viant/apiclient/client/auth/transport"
)

// ClientOptions
//
// defines options for configuring an API client.
type ClientOptions struct {
	Origin    string `yaml:"origin,omitempty" json:"origin,omitempty" mapstructure:"origin" short:"u" long:"origin" description:"API origin, e.g. http://localhost:8080"`
	APIBase   string `yaml:"apiBase,omitempty" json:"apiBase,omitempty" mapstructure:"apiBase" short:"b" long:"base" description:"API base path" default-mask:"/api"`
	Store     string `yaml:"store,omitempty" json:"store,omitempty" mapstructure:"store" short:"s" long:"store" description:"token store URL: mem://, file path, redis://, sqlite://, secret://"`
	CookieJar string `yaml:"cookieJar,omitempty" json:"cookieJar,omitempty" mapstructure:"cookieJar" long:"cookies" description:"cookie jar file URL, in-memory if empty"`
	RequestID bool   `yaml:"requestId,omitempty" json:"requestId,omitempty" mapstructure:"requestId" long:"request-id" description:"send X-Request-Id header"`
	Strict    bool   `yaml:"strict,omitempty" json:"strict,omitempty" mapstructure:"strict" long:"strict" description:"fail on undecodable responses"`
	Verbose   bool   `yaml:"verbose,omitempty" json:"verbose,omitempty" mapstructure:"verbose" short:"v" long:"verbose" description:"log requests"`

	// Registerer, if set, receives client request metrics.
	Registerer prometheus.Registerer `yaml:"-" json:"-" mapstructure:"-"`
}

// Init sets defaults
func (c *ClientOptions) Init() {
	if c.APIBase == "" {
		c.APIBase = client.DefaultAPIBase
	}
}

// Inherit fills empty options from defaults
func (c *ClientOptions) Inherit(defaults *ClientOptions) {
	if defaults == nil {
		return
	}
	if c.Origin == "" {
		c.Origin = defaults.Origin
	}
	if c.APIBase == "" {
		c.APIBase = defaults.APIBase
	}
	if c.Store == "" {
		c.Store = defaults.Store
	}
	if c.CookieJar == "" {
		c.CookieJar = defaults.CookieJar
	}
	c.RequestID = c.RequestID || defaults.RequestID
	c.Strict = c.Strict || defaults.Strict
	c.Verbose = c.Verbose || defaults.Verbose
	if c.Registerer == nil {
		c.Registerer = defaults.Registerer
	}
}

// Options returns client options
func (c *ClientOptions) Options(ctx context.Context) ([]client.Option, error) {
	logger := logrus.New()
	if c.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	kv, err := store.Open(ctx, c.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store %v: %w", c.Store, err)
	}
	ret := []client.Option{
		client.WithConfig(client.Config{Origin: c.Origin, APIBase: c.APIBase}),
		client.WithLogger(logger),
		client.WithStore(kv),
	}
	if c.CookieJar != "" {
		jar, err := transport.NewFileJar(ctx, c.CookieJar)
		if err != nil {
			return nil, fmt.Errorf("failed to open cookie jar %v: %w", c.CookieJar, err)
		}
		ret = append(ret, client.WithCookieJar(jar))
	}
	if c.RequestID {
		ret = append(ret, client.WithRequestID())
	}
	if c.Strict {
		ret = append(ret, client.WithStrictDecoding())
	}
	if c.Registerer != nil {
		ret = append(ret, client.WithMetrics(c.Registerer))
	}
	return ret, nil
}

// NewClient creates an API client with storage and cookies configured via ClientOptions.
func NewClient(ctx context.Context, options *ClientOptions, extra ...client.Option) (*client.Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	opts, err := options.Options(ctx)
	if err != nil {
		return nil, err
	}
	return client.New(append(opts, extra...)...)
}
