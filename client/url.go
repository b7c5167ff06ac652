package client

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoOrigin is returned when a relative path is resolved without a configured origin.
var ErrNoOrigin = errors.New("origin is not configured")

// Resolver turns request paths into absolute URLs
type Resolver struct {
	base   string
	origin *url.URL
}

// NewResolver creates a resolver for config
func NewResolver(config *Config) (*Resolver, error) {
	origin, err := config.origin()
	if err != nil {
		return nil, err
	}
	return &Resolver{base: config.Base(), origin: origin}, nil
}

// Base returns the normalized API base
func (r *Resolver) Base() string {
	return r.base
}

// Resolve resolves path and applies params.
//
// Precedence: absolute http(s) URL, path under the API base, root-relative path
// (which bypasses the API base), and finally a path relative to the API base.
func (r *Resolver) Resolve(path string, params Params) (*url.URL, error) {
	var target *url.URL
	var err error
	switch {
	case isAbsoluteURL(path):
		target, err = url.Parse(path)
	case strings.HasPrefix(path, r.base+"/"):
		target, err = r.fromOrigin(path)
	case strings.HasPrefix(path, "/"):
		target, err = r.fromOrigin(path)
	default:
		target, err = r.fromOrigin(r.base + "/" + path)
	}
	if err != nil {
		return nil, err
	}
	if err = applyParams(target, params); err != nil {
		return nil, err
	}
	return target, nil
}

func (r *Resolver) fromOrigin(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	if ref.IsAbs() {
		return ref, nil
	}
	if r.origin == nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, ErrNoOrigin)
	}
	return r.origin.ResolveReference(ref), nil
}

func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
