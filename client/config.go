package client

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultAPIBase is used when Config.APIBase is empty.
const DefaultAPIBase = "/api"

// Config defines where relative request paths are resolved.
type Config struct {
	// APIBase prefixes relative paths, trailing slashes are ignored.
	APIBase string `yaml:"apiBase,omitempty" json:"apiBase,omitempty"`
	// Origin is the scheme://host[:port] used for origin-relative paths.
	Origin string `yaml:"origin,omitempty" json:"origin,omitempty"`
}

// Base returns the API base without trailing slashes
func (c *Config) Base() string {
	base := c.APIBase
	if base == "" {
		base = DefaultAPIBase
	}
	return strings.TrimRight(base, "/")
}

func (c *Config) origin() (*url.URL, error) {
	if c.Origin == "" {
		return nil, nil
	}
	u, err := url.Parse(c.Origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %w", c.Origin, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid origin %q: expected scheme://host", c.Origin)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}
