package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/viant/afs/url"
)

// Open creates a Store from a location URL:
//
//	mem://                      in-memory
//	/path/store.json, file://.. JSON file (afs)
//	redis://host:6379/0         redis
//	sqlite:///path/store.db     sqlite kv_store table
//	secret:///path/dir          blowfish encrypted objects
func Open(ctx context.Context, URL string) (Store, error) {
	if URL == "" {
		return NewMemoryStore(), nil
	}
	switch scheme := url.Scheme(URL, "file"); scheme {
	case "mem":
		return NewMemoryStore(), nil
	case "redis", "rediss":
		options, err := redis.ParseURL(URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis store URL %v: %w", URL, err)
		}
		return NewRedisStore(redis.NewClient(options), "apiclient:"), nil
	case "sqlite":
		db, err := sqlx.Open("sqlite3", strings.TrimPrefix(URL, "sqlite://"))
		if err != nil {
			return nil, err
		}
		return openSQLStore(ctx, db)
	case "secret":
		return NewSecretStore(strings.TrimPrefix(URL, "secret://"), ""), nil
	default:
		ret, err := NewFileStore(ctx, URL)
		if err != nil {
			return nil, err
		}
		return ret, nil
	}
}

// openSQLStore creates a SQL store owning db, db is closed when the store cannot be created.
func openSQLStore(ctx context.Context, db *sqlx.DB) (Store, error) {
	ret, err := NewSQLStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return ret, nil
}
