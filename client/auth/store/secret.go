package store

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/scy"
	_ "github.com/viant/scy/kms/blowfish"
)

// DefaultSecretKey encrypts values with the scy built-in blowfish key.
const DefaultSecretKey = "blowfish://default"

// SecretStore keeps every value encrypted in its own object under baseURL.
type SecretStore struct {
	baseURL string
	key     string
	fs      afs.Service
	secrets *scy.Service
}

// NewSecretStore creates an encrypted store, key is a scy key URL (DefaultSecretKey when empty).
func NewSecretStore(baseURL, key string) *SecretStore {
	if key == "" {
		key = DefaultSecretKey
	}
	return &SecretStore{baseURL: baseURL, key: key, fs: afs.New(), secrets: scy.New()}
}

func (s *SecretStore) resource(key string) *scy.Resource {
	return scy.NewResource(nil, url.Join(s.baseURL, key+".enc"), s.key)
}

func (s *SecretStore) Get(ctx context.Context, key string) (string, bool, error) {
	resource := s.resource(key)
	exists, err := s.fs.Exists(ctx, resource.URL)
	if err != nil || !exists {
		return "", false, err
	}
	secret, err := s.secrets.Load(ctx, resource)
	if err != nil {
		return "", false, fmt.Errorf("failed to decrypt %v: %w", key, err)
	}
	return secret.String(), true, nil
}

func (s *SecretStore) Set(ctx context.Context, key, value string) error {
	secret := scy.NewSecret(value, s.resource(key))
	if err := s.secrets.Store(ctx, secret); err != nil {
		return fmt.Errorf("failed to encrypt %v: %w", key, err)
	}
	return nil
}

func (s *SecretStore) Remove(ctx context.Context, key string) error {
	URL := s.resource(key).URL
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return err
	}
	return s.fs.Delete(ctx, URL)
}
