// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/mahabubulhasibshawon/shiptrack/internal/ports"
)

// SQLStore is a key-value table shared by the Postgres and SQLite backends.
// Only the placeholder syntax differs between the two.
type SQLStore struct {
	db          *sql.DB
	getQuery    string
	setQuery    string
	deleteQuery string
}

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		store_key   TEXT PRIMARY KEY,
		store_value TEXT NOT NULL
	)`

func NewPostgresStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		db:       db,
		getQuery: "SELECT store_value FROM kv_store WHERE store_key = $1",
		setQuery: `
			INSERT INTO kv_store (store_key, store_value) VALUES ($1, $2)
			ON CONFLICT (store_key) DO UPDATE SET store_value = EXCLUDED.store_value`,
		deleteQuery: "DELETE FROM kv_store WHERE store_key = $1",
	}
}

// OpenPostgresStore connects with the given DSN, pings, and creates the table.
func OpenPostgresStore(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres db: %w", err)
	}
	s := NewPostgresStore(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createKVTable); err != nil {
		return fmt.Errorf("failed to init kv_store: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, s.setQuery, key, string(value))
	return err
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, s.deleteQuery, key)
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
