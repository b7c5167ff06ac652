package mock

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/viant/apiclient/festival"
)

// Service is a mock festival management API
type Service struct {
	mu         sync.Mutex
	PrivateKey *rsa.PrivateKey
	Issuer     string
	TokenTTL   time.Duration

	users     []*festival.User
	passwords map[string]string
	festivals []*festival.Festival
	lastQuery string
	lastBody  string

	LoginHandler       func(w http.ResponseWriter, r *http.Request)
	RegisterHandler    func(w http.ResponseWriter, r *http.Request)
	MeHandler          func(w http.ResponseWriter, r *http.Request)
	FestivalsHandler   func(w http.ResponseWriter, r *http.Request)
	PerformanceHandler func(w http.ResponseWriter, r *http.Request)
	UsersHandler       func(w http.ResponseWriter, r *http.Request)
}

// Option represents mock service option
type Option func(s *Service)

// WithUser registers a user with password
func WithUser(username, password string) Option {
	return func(s *Service) {
		s.addUser(&festival.User{Username: username, Email: username + "@local", Roles: []string{"ROLE_USER"}}, password)
	}
}

// WithFestival registers a festival
func WithFestival(f *festival.Festival) Option {
	return func(s *Service) {
		f.ID = int64(len(s.festivals) + 1)
		s.festivals = append(s.festivals, f)
	}
}

// WithTokenTTL sets issued token lifetime, negative values issue expired tokens
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.TokenTTL = ttl
	}
}

// NewService creates a new mock festival API
func NewService(opts ...Option) (*Service, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key: %v", err)
	}
	service := &Service{
		PrivateKey: privateKey,
		Issuer:     "festival-mock",
		TokenTTL:   time.Hour,
		passwords:  map[string]string{},
	}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

func (s *Service) addUser(user *festival.User, password string) {
	user.ID = int64(len(s.users) + 1)
	s.users = append(s.users, user)
	s.passwords[user.Username] = password
}

func (s *Service) user(username string) *festival.User {
	for _, candidate := range s.users {
		if candidate.Username == username {
			return candidate
		}
	}
	return nil
}

// Last returns raw query and body of the last request
func (s *Service) Last() (query, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery, s.lastBody
}

// Festivals returns stored festivals
func (s *Service) Festivals() []*festival.Festival {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*festival.Festival{}, s.festivals...)
}
