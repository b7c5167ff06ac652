package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("read only") }
func (failingStore) Remove(context.Context, string) error      { return errors.New("read only") }

func signedToken(t *testing.T, expiry time.Time) string {
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    "festival",
		ExpiresAt: jwt.NewNumericDate(expiry),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestTokenStore_SetToken(t *testing.T) {
	ctx := context.Background()
	memory := NewMemoryStore()
	tokens := NewTokenStore(memory)

	assert.Equal(t, "", tokens.Token(ctx))

	require.NoError(t, tokens.SetToken(ctx, "abc"))
	assert.Equal(t, "abc", tokens.Token(ctx))
	value, ok, _ := memory.Get(ctx, TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	require.NoError(t, tokens.SetToken(ctx, ""))
	require.NoError(t, tokens.SetToken(ctx, ""))
	_, ok, _ = memory.Get(ctx, TokenKey)
	assert.False(t, ok)
	assert.Equal(t, "", tokens.Token(ctx))
}

func TestTokenStore_CustomKey(t *testing.T) {
	ctx := context.Background()
	memory := NewMemoryStore()
	tokens := NewTokenStore(memory, WithTokenKey("jwt"))
	require.NoError(t, tokens.SetToken(ctx, "abc"))
	value, ok, _ := memory.Get(ctx, "jwt")
	assert.True(t, ok)
	assert.Equal(t, "abc", value)
}

func TestTokenStore_ReadFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	tokens := NewTokenStore(failingStore{}, WithTokenLogger(logger))

	assert.Equal(t, "", tokens.Token(context.Background()))
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Error(t, tokens.SetToken(context.Background(), "abc"))
}

func TestTokenStore_Claims(t *testing.T) {
	ctx := context.Background()
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	tokens := NewTokenStore(nil, WithTokenLogger(quiet))

	_, err := tokens.Claims(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, tokens.SetToken(ctx, "opaque"))
	_, err = tokens.Claims(ctx)
	assert.Error(t, err)
	assert.False(t, tokens.Expired(ctx, time.Now()))

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, tokens.SetToken(ctx, signedToken(t, expiry)))
	claims, err := tokens.Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, expiry.Equal(claims.ExpiresAt.Time))
	assert.False(t, tokens.Expired(ctx, time.Now()))
	assert.True(t, tokens.Expired(ctx, expiry.Add(time.Minute)))
}

func TestTokenStore_TokenSource(t *testing.T) {
	ctx := context.Background()
	tokens := NewTokenStore(nil)
	source := tokens.TokenSource(ctx)

	_, err := source.Token()
	assert.ErrorIs(t, err, ErrNoToken)

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, expiry)
	require.NoError(t, tokens.SetToken(ctx, raw))
	token, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, raw, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, expiry.Equal(token.Expiry))
	assert.True(t, token.Valid())
}
