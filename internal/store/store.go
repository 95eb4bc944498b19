// Package store persists graph snapshots, node labels and mission records in
// SQLite (modernc.org/sqlite, no cgo).
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	_ "modernc.org/sqlite"
)

// Config holds database configuration.
type Config struct {
	Path string
	// KeepSnapshots is how many graph snapshots survive each save (default 10).
	KeepSnapshots int
	Logger        *slog.Logger
}

// Store is a SQLite-backed repository. It is safe for concurrent use.
type Store struct {
	db     *sql.DB
	keep   int
	logger *slog.Logger
}

// Open opens (creating if needed) the database at cfg.Path and applies migrations.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	keep := cfg.KeepSnapshots
	if keep <= 0 {
		keep = 10
	}

	db, err := sql.Open("sqlite", dsn(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	s := &Store{db: db, keep: keep, logger: logger}
	if err = s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("database initialized", "path", cfg.Path)

	return s, nil
}

// connPragmas run on every new pool connection.
var connPragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"journal_mode(WAL)",
}

// dsn appends connPragmas to path as modernc _pragma parameters.
func dsn(path string) string {
	var b strings.Builder
	b.WriteString(path)
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	for _, p := range connPragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(url.QueryEscape(p))
		sep = "&"
	}

	return b.String()
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// transaction runs fn inside a transaction, rolling back on error or panic.
func (s *Store) transaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("store: %v, rollback: %w", err, rbErr)
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}

	return nil
}
