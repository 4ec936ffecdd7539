package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// SQLiteDB is the embedded backend used for single-node deployments and tests.
type SQLiteDB struct {
	*sql.DB
}

// NewSQLiteDB opens (or creates) the database at path. ":memory:" gives a
// private in-memory database; the pool is pinned to one connection so every
// query sees the same data.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Debug("SQLite database opened", "path", path)
	return &SQLiteDB{DB: db}, nil
}

// Migrate applies the embedded schema. Every statement is idempotent.
func (db *SQLiteDB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("apply sqlite schema: %w", err)
	}
	return nil
}
