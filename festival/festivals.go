package festival

import (
	"context"
	"net/http"

	"github.com/viant/apiclient/client"
)

// Festivals handles festival endpoints
type Festivals struct {
	client *client.Client
}

// List returns a page of festivals matching query, an empty query lists all
func (f *Festivals) List(ctx context.Context, query string, page, size int) (*Page[Festival], error) {
	params := client.Params{}
	params = params.Add("q", query)
	params = params.Add("page", page)
	if size > 0 {
		params = params.Add("size", size)
	}
	ret, err := client.Do[Page[Festival]](ctx, f.client, "festivals", &client.Options{Params: params})
	if err != nil {
		return nil, err
	}
	if ret == nil {
		ret = &Page[Festival]{Empty: true}
	}
	return ret, nil
}

// Get returns festival by id, nil if it does not exist
func (f *Festivals) Get(ctx context.Context, id int64) (*Festival, error) {
	ret, err := client.Do[Festival](ctx, f.client, "festivals/"+segment(id), nil)
	if client.StatusCode(err) == http.StatusNotFound {
		return nil, nil
	}
	return ret, err
}

// Create validates and creates a festival
func (f *Festivals) Create(ctx context.Context, request *CreateFestivalRequest) (*Festival, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return client.Do[Festival](ctx, f.client, "festivals", &client.Options{Method: http.MethodPost, Data: request})
}
