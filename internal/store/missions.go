package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Mission states.
const (
	MissionStarted = "started"
	MissionLanded  = "landed"
	MissionFailed  = "failed"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Mission is one submitted mission.
type Mission struct {
	ID               string    `json:"id"`
	Waypoints        int       `json:"waypoints"`
	RouteLength      float64   `json:"route_length"`
	Height           float64   `json:"height"`
	ReturnStartIndex *int      `json:"return_start_index,omitempty"`
	State            string    `json:"state"`
	StartedAt        time.Time `json:"started_at"`
}

// RecordMission inserts m.
func (s *Store) RecordMission(ctx context.Context, m Mission) error {
	var ret sql.NullInt64
	if m.ReturnStartIndex != nil {
		ret = sql.NullInt64{Int64: int64(*m.ReturnStartIndex), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO missions (id, waypoints, route_length, height, return_start_index, state, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Waypoints, m.RouteLength, m.Height, ret, m.State, m.StartedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("store: insert mission %s: %w", m.ID, err)
	}

	return nil
}

// SetMissionState updates the state of every mission currently in from.
func (s *Store) SetMissionState(ctx context.Context, from, to string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE missions SET state = ? WHERE state = ?", to, from)
	if err != nil {
		return 0, fmt.Errorf("store: update mission state: %w", err)
	}

	return res.RowsAffected()
}

// Missions returns up to limit missions, newest first.
func (s *Store) Missions(ctx context.Context, limit int) ([]Mission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, waypoints, route_length, height, return_start_index, state, started_at
		FROM missions ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query missions: %w", err)
	}
	defer rows.Close()

	var out []Mission
	for rows.Next() {
		var (
			m       Mission
			ret     sql.NullInt64
			started string
		)
		if err = rows.Scan(&m.ID, &m.Waypoints, &m.RouteLength, &m.Height, &ret, &m.State, &started); err != nil {
			return nil, fmt.Errorf("store: scan mission: %w", err)
		}
		if ret.Valid {
			idx := int(ret.Int64)
			m.ReturnStartIndex = &idx
		}
		if m.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("store: mission %s start time: %w", m.ID, err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}
