package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Options represents a single request configuration
type Options struct {
	// Method defaults to GET
	Method string
	// Data is the request body: nil sends no body, *Form is sent as multipart form,
	// anything else is JSON encoded.
	Data any
	// Headers overlay the default headers, caller values win.
	Headers map[string]string
	// Params are appended to the query string in order.
	Params Params
}

func (o *Options) method() string {
	if o == nil || o.Method == "" {
		return http.MethodGet
	}
	return o.Method
}

func (o *Options) clone() *Options {
	if o == nil {
		return &Options{}
	}
	ret := *o
	return &ret
}

// Param represents a query parameter, Value is a scalar or a slice of scalars.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered list of query parameters
type Params []Param

// Add appends a parameter
func (p Params) Add(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

type formPart struct {
	name     string
	filename string
	value    []byte
}

// Form is an opaque multipart form body, the multipart boundary is generated when sent.
type Form struct {
	parts []formPart
}

// NewForm creates an empty form
func NewForm() *Form {
	return &Form{}
}

// Field adds a text field
func (f *Form) Field(name, value string) *Form {
	f.parts = append(f.parts, formPart{name: name, value: []byte(value)})
	return f
}

// File adds a file part
func (f *Form) File(name, filename string, content []byte) *Form {
	f.parts = append(f.parts, formPart{name: name, filename: filename, value: content})
	return f
}

// Len returns number of parts
func (f *Form) Len() int {
	return len(f.parts)
}

func (f *Form) encode() (io.Reader, string, error) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	for _, part := range f.parts {
		var w io.Writer
		var err error
		if part.filename != "" {
			w, err = writer.CreateFormFile(part.name, part.filename)
		} else {
			w, err = writer.CreateFormField(part.name)
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form part %v: %w", part.name, err)
		}
		if _, err = w.Write(part.value); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buffer, writer.FormDataContentType(), nil
}
