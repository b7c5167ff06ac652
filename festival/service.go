package festival

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/viant/apiclient/client"
)

var (
	// ErrMissingField is returned when a required request field is empty
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidDates is returned when a festival starts after it ends
	ErrInvalidDates = errors.New("start date is after end date")
	// ErrNoToken is returned when a login response carries no token
	ErrNoToken = errors.New("response has no token")
)

var timeNow = time.Now

// Service groups festival API services
type Service struct {
	client       *client.Client
	Auth         *Auth
	Festivals    *Festivals
	Performances *Performances
	Users        *Users
}

// Client returns underlying API client
func (s *Service) Client() *client.Client {
	return s.client
}

// New creates festival API services
func New(cli *client.Client) *Service {
	return &Service{
		client:       cli,
		Auth:         &Auth{client: cli},
		Festivals:    &Festivals{client: cli},
		Performances: &Performances{client: cli},
		Users:        &Users{client: cli},
	}
}

func segment(value any) string {
	return url.PathEscape(fmt.Sprint(value))
}
