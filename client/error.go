package client

import (
	"errors"
	"fmt"
)

// RequestError represents a non-2xx HTTP response
type RequestError struct {
	Status  int
	Payload any // decoded JSON, text or nil
	Method  string
	URL     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Status)
}

// DecodeError is returned instead of a nil result when strict decoding is enabled.
type DecodeError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response (HTTP %d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsRequestError returns the RequestError carried by err
func AsRequestError(err error) (*RequestError, bool) {
	var ret *RequestError
	if errors.As(err, &ret) {
		return ret, true
	}
	return nil, false
}

// StatusCode returns the HTTP status carried by err or 0 for other failures
func StatusCode(err error) int {
	if reqErr, ok := AsRequestError(err); ok {
		return reqErr.Status
	}
	return 0
}
