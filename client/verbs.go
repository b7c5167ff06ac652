package client

import (
	"context"
	"net/http"
)

// Get sends a GET request
func (c *Client) Get(ctx context.Context, path string, options *Options) (any, error) {
	opts := options.clone()
	opts.Method = http.MethodGet
	return c.Execute(ctx, path, opts)
}

// Post sends data with a POST request
func (c *Client) Post(ctx context.Context, path string, data any, options *Options) (any, error) {
	opts := options.clone()
	opts.Method = http.MethodPost
	opts.Data = data
	return c.Execute(ctx, path, opts)
}

// Put sends data with a PUT request
func (c *Client) Put(ctx context.Context, path string, data any, options *Options) (any, error) {
	opts := options.clone()
	opts.Method = http.MethodPut
	opts.Data = data
	return c.Execute(ctx, path, opts)
}

// Patch sends data with a PATCH request
func (c *Client) Patch(ctx context.Context, path string, data any, options *Options) (any, error) {
	opts := options.clone()
	opts.Method = http.MethodPatch
	opts.Data = data
	return c.Execute(ctx, path, opts)
}

// Delete sends a DELETE request, options.Data is sent when set
func (c *Client) Delete(ctx context.Context, path string, options *Options) (any, error) {
	opts := options.clone()
	opts.Method = http.MethodDelete
	return c.Execute(ctx, path, opts)
}
