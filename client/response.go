package client

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

const contentTypeJSON = "application/json"

// payload is a fully read response body
type payload struct {
	status    int
	noContent bool
	isJSON    bool
	body      []byte
	readErr   error
}

func readPayload(resp *http.Response) *payload {
	defer resp.Body.Close()
	ret := &payload{status: resp.StatusCode}
	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusResetContent {
		ret.noContent = true
		_, _ = io.Copy(io.Discard, resp.Body)
		return ret
	}
	ret.isJSON = strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), contentTypeJSON)
	ret.body, ret.readErr = io.ReadAll(resp.Body)
	return ret
}

func (p *payload) ok() bool {
	return p.status >= 200 && p.status < 300
}

// value returns decoded JSON, text or nil; failures are reported but the value stays nil.
func (p *payload) value() (any, error) {
	if p.noContent {
		return nil, nil
	}
	if p.readErr != nil {
		return nil, p.decodeError(p.readErr)
	}
	if !p.isJSON {
		return string(p.body), nil
	}
	var ret any
	if err := json.Unmarshal(p.body, &ret); err != nil {
		return nil, p.decodeError(err)
	}
	return ret, nil
}

// into decodes a JSON body into target, reporting whether anything was decoded.
func (p *payload) into(target any) (bool, error) {
	if p.noContent {
		return false, nil
	}
	if p.readErr != nil {
		return false, p.decodeError(p.readErr)
	}
	if !p.isJSON {
		if text, ok := target.(*string); ok {
			*text = string(p.body)
			return true, nil
		}
		return false, nil
	}
	if err := json.Unmarshal(p.body, target); err != nil {
		return false, p.decodeError(err)
	}
	return true, nil
}

func (p *payload) decodeError(err error) *DecodeError {
	return &DecodeError{Status: p.status, Body: p.body, Err: err}
}
