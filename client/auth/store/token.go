package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// TokenKey is the storage key holding the bearer token.
const TokenKey = "access_token"

// ErrNoToken is returned when a token is required but none is stored.
var ErrNoToken = errors.New("access token not set")

// TokenStore reads and writes the bearer token slot of a Store.
type TokenStore struct {
	store  Store
	key    string
	logger logrus.FieldLogger
}

type TokenStoreOption func(*TokenStore)

// WithTokenKey overrides the storage key
func WithTokenKey(key string) TokenStoreOption {
	return func(t *TokenStore) {
		t.key = key
	}
}

// WithTokenLogger sets the logger used to report storage read failures
func WithTokenLogger(logger logrus.FieldLogger) TokenStoreOption {
	return func(t *TokenStore) {
		t.logger = logger
	}
}

// NewTokenStore creates a token accessor, memory store is used when store is nil.
func NewTokenStore(store Store, options ...TokenStoreOption) *TokenStore {
	if store == nil {
		store = NewMemoryStore()
	}
	ret := &TokenStore{store: store, key: TokenKey, logger: logrus.StandardLogger()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Store returns the underlying store
func (t *TokenStore) Store() Store {
	return t.store
}

// Token returns the stored token or an empty string. Read failures are treated as absence.
func (t *TokenStore) Token(ctx context.Context) string {
	token, ok, err := t.store.Get(ctx, t.key)
	if err != nil {
		t.logger.WithError(err).WithField("key", t.key).Warn("failed to read access token")
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

// SetToken stores a non-empty token, an empty token removes the slot.
func (t *TokenStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return t.store.Remove(ctx, t.key)
	}
	return t.store.Set(ctx, t.key, token)
}

// Claims decodes the registered claims of a JWT token without verifying its signature.
// The server is the only party able to verify it; this is meant for display and expiry hints.
func (t *TokenStore) Claims(ctx context.Context) (*jwt.RegisteredClaims, error) {
	token := t.Token(ctx)
	if token == "" {
		return nil, ErrNoToken
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	return claims, nil
}

// TokenSource adapts the stored token to oauth2.TokenSource; the token is read on every call.
func (t *TokenStore) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, store: t}
}

type tokenSource struct {
	ctx   context.Context
	store *TokenStore
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	accessToken := s.store.Token(s.ctx)
	if accessToken == "" {
		return nil, ErrNoToken
	}
	ret := &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}
	if claims, err := s.store.Claims(s.ctx); err == nil && claims.ExpiresAt != nil {
		ret.Expiry = claims.ExpiresAt.Time
	}
	return ret, nil
}

// Expired reports whether the stored JWT carries an expiry in the past.
// Opaque or missing tokens are never reported as expired.
func (t *TokenStore) Expired(ctx context.Context, now time.Time) bool {
	claims, err := t.Claims(ctx)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return now.After(claims.ExpiresAt.Time)
}
