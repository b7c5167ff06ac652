package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
)

// FileStore persists values to a JSON document, while serving reads from memory.
// The location is any afs URL (local path, file://, mem://, or a cloud bucket when the
// matching afs connector is registered).
type FileStore struct {
	mu     sync.Mutex
	URL    string
	fs     afs.Service
	memory *memoryStore
}

type fileSnapshot struct {
	Values map[string]string `json:"values"`
}

// NewFileStore creates a Store that persists values at the given URL.
func NewFileStore(ctx context.Context, URL string) (*FileStore, error) {
	ret := &FileStore{
		URL:    URL,
		fs:     afs.New(),
		memory: NewMemoryStore().(*memoryStore),
	}
	if err := ret.load(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}

func (f *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	return f.memory.Get(ctx, key)
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.memory.Set(ctx, key, value)
	return f.save(ctx)
}

func (f *FileStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok, _ := f.memory.Get(ctx, key); !ok {
		return nil
	}
	_ = f.memory.Remove(ctx, key)
	return f.save(ctx)
}

func (f *FileStore) save(ctx context.Context) error {
	snap := fileSnapshot{Values: f.memory.snapshot()}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save store %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !exists {
		return err
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to load store %v: %w", f.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("invalid store content %v: %w", f.URL, err)
	}
	for k, v := range snap.Values {
		_ = f.memory.Set(ctx, k, v)
	}
	return nil
}
