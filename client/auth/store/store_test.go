package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(WithValue("seed", "1"))

	value, ok, err := s.Get(ctx, "seed")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	require.NoError(t, s.Set(ctx, "seed", "2"))
	value, _, _ = s.Get(ctx, "seed")
	assert.Equal(t, "2", value)

	require.NoError(t, s.Remove(ctx, "seed"))
	require.NoError(t, s.Remove(ctx, "seed"))
	_, ok, err = s.Get(ctx, "seed")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "state", "store.json")

	s, err := NewFileStore(ctx, location)
	require.NoError(t, err)
	_, ok, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, TokenKey, "abc"))
	require.NoError(t, s.Set(ctx, "other", "xyz"))

	reopened, err := NewFileStore(ctx, location)
	require.NoError(t, err)
	value, ok, err := reopened.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	require.NoError(t, reopened.Remove(ctx, TokenKey))
	require.NoError(t, reopened.Remove(ctx, "missing"))

	again, err := NewFileStore(ctx, location)
	require.NoError(t, err)
	_, ok, _ = again.Get(ctx, TokenKey)
	assert.False(t, ok)
	value, ok, _ = again.Get(ctx, "other")
	assert.True(t, ok)
	assert.Equal(t, "xyz", value)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	var testCases = []struct {
		description string
		URL         string
		expect      interface{}
	}{
		{description: "empty location", URL: "", expect: &memoryStore{}},
		{description: "memory", URL: "mem://", expect: &memoryStore{}},
		{description: "local path", URL: filepath.Join(dir, "store.json"), expect: &FileStore{}},
		{description: "sqlite", URL: "sqlite://" + filepath.Join(dir, "store.db"), expect: &SQLStore{}},
		{description: "secret", URL: "secret://" + filepath.Join(dir, "secrets"), expect: &SecretStore{}},
		{description: "redis", URL: "redis://localhost:6379/0", expect: &RedisStore{}},
	}

	for _, testCase := range testCases {
		actual, err := Open(ctx, testCase.URL)
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.IsType(t, testCase.expect, actual, testCase.description)
	}

	_, err := Open(ctx, "redis://:bad:port")
	assert.Error(t, err)
}
