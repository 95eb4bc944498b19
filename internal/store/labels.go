package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/flyover/core"
)

// Labels returns every stored node label keyed by node id.
func (s *Store) Labels(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT node_id, label FROM node_labels")
	if err != nil {
		return nil, fmt.Errorf("store: query node labels: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, label string
		if err = rows.Scan(&id, &label); err != nil {
			return nil, fmt.Errorf("store: scan node label: %w", err)
		}
		out[id] = label
	}

	return out, rows.Err()
}

// SetLabel stores label for node c; a blank label deletes the entry.
func (s *Store) SetLabel(ctx context.Context, c core.CellID, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM node_labels WHERE node_id = ?", c.String()); err != nil {
			return fmt.Errorf("store: delete label %v: %w", c, err)
		}
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO node_labels (node_id, label, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(node_id) DO UPDATE SET label = excluded.label, updated_at = CURRENT_TIMESTAMP`,
		c.String(), label)
	if err != nil {
		return fmt.Errorf("store: upsert label %v: %w", c, err)
	}

	return nil
}
