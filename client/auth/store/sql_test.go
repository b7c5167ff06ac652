package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestSQLStore_Mock(t *testing.T) {
	ctx := context.Background()
	db, mock := setupDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = ?")).
		WithArgs(TokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT OR REPLACE INTO kv_store")).
		WithArgs(TokenKey, "def").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE key = ?")).
		WithArgs(TokenKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s, err := NewSQLStore(ctx, db)
	require.NoError(t, err)

	value, ok, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	_, ok, err = s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, TokenKey, "def"))
	require.NoError(t, s.Remove(ctx, TokenKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenSQLStore_ClosesOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectClose()

	s, err := openSQLStore(context.Background(), sqlx.NewDb(db, "sqlmock"))
	assert.Error(t, err)
	assert.Nil(t, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	s, err := NewSQLStore(ctx, db)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, TokenKey, "abc"))
	require.NoError(t, s.Set(ctx, TokenKey, "def"))

	value, ok, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "def", value)

	require.NoError(t, s.Remove(ctx, TokenKey))
	require.NoError(t, s.Remove(ctx, TokenKey))
	_, ok, err = s.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
