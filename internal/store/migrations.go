package store

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is one forward-only schema step.
type migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations must stay ordered by Version; never edit an applied entry.
var migrations = []migration{
	{1, "graph_snapshots", `
		CREATE TABLE graph_snapshots (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			document   TEXT    NOT NULL,
			node_count INTEGER NOT NULL,
			edge_count INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{2, "node_labels", `
		CREATE TABLE node_labels (
			node_id    TEXT PRIMARY KEY,
			label      TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{3, "missions", `
		CREATE TABLE missions (
			id                 TEXT PRIMARY KEY,
			waypoints          INTEGER NOT NULL,
			route_length       REAL    NOT NULL,
			height             REAL    NOT NULL,
			return_start_index INTEGER,
			state              TEXT    NOT NULL,
			started_at         TEXT    NOT NULL
		)`},
}

// migrate applies every migration not yet recorded in schema_migrations.
func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("store: create migrations table: %w", err)
	}

	applied, err := s.appliedMigrations(ctx)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		err = s.transaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
				return fmt.Errorf("store: migration %d (%s): %w", m.Version, m.Name, err)
			}
			_, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name)

			return err
		})
		if err != nil {
			return err
		}
		s.logger.Debug("migration applied", "version", m.Version, "name", m.Name)
	}

	return nil
}

func (s *Store) appliedMigrations(ctx context.Context) (map[int]bool, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("store: query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("store: scan migration version: %w", err)
		}
		applied[v] = true
	}

	return applied, rows.Err()
}
