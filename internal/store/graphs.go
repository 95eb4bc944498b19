package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/snapshot"
)

// SaveGraph stores g as the newest snapshot and prunes old ones.
// A nil graph is stored as the "no graph" document.
func (s *Store) SaveGraph(ctx context.Context, g *core.Graph) error {
	doc, err := snapshot.Marshal(g)
	if err != nil {
		return fmt.Errorf("store: encode graph: %w", err)
	}

	return s.transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO graph_snapshots (document, node_count, edge_count) VALUES (?, ?, ?)",
			string(doc), g.NodeCount(), g.EdgeCount()); err != nil {
			return fmt.Errorf("store: insert graph snapshot: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM graph_snapshots
			WHERE id NOT IN (SELECT id FROM graph_snapshots ORDER BY id DESC LIMIT ?)`,
			s.keep); err != nil {
			return fmt.Errorf("store: prune graph snapshots: %w", err)
		}

		return nil
	})
}

// LoadGraph returns the newest stored graph, or nil when none was saved.
func (s *Store) LoadGraph(ctx context.Context) (*core.Graph, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		"SELECT document FROM graph_snapshots ORDER BY id DESC LIMIT 1").Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: query graph snapshot: %w", err)
	}

	g, err := snapshot.Unmarshal([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("store: decode graph snapshot: %w", err)
	}

	return g, nil
}

// SnapshotCount returns the number of retained snapshots.
func (s *Store) SnapshotCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM graph_snapshots").Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count graph snapshots: %w", err)
	}

	return n, nil
}
