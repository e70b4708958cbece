package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenSQLiteStore opens (or creates) the database file at path. ":memory:"
// gives a private in-process database.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// One connection keeps ":memory:" databases shared and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &SQLStore{
		db:       db,
		getQuery: "SELECT store_value FROM kv_store WHERE store_key = ?",
		setQuery: `
			INSERT INTO kv_store (store_key, store_value) VALUES (?, ?)
			ON CONFLICT (store_key) DO UPDATE SET store_value = excluded.store_value`,
		deleteQuery: "DELETE FROM kv_store WHERE store_key = ?",
	}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
