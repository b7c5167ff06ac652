package festival

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/viant/apiclient/client"
)

// Performances handles performance endpoints
type Performances struct {
	client *client.Client
}

// Create submits a performance to festival
func (p *Performances) Create(ctx context.Context, festivalID int64, performance *Performance) (*Performance, error) {
	if strings.TrimSpace(performance.Name) == "" || strings.TrimSpace(performance.Genre) == "" {
		return nil, fmt.Errorf("%w: name and genre are required", ErrMissingField)
	}
	path := "festivals/" + segment(festivalID) + "/performances"
	return client.Do[Performance](ctx, p.client, path, &client.Options{Method: http.MethodPost, Data: performance})
}
