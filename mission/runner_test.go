package mission_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/coverage"
	"github.com/katalvlaran/flyover/mission"
)

// fakeRunner mimics the flight-control endpoints.
type fakeRunner struct {
	started mission.Request
	landed  int
	status  string
	reject  bool
}

func (f *fakeRunner) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/api/drone/start":
		if f.reject {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": "route is empty"}`))
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&f.started)
		_, _ = w.Write([]byte(`{"ok": true, "message": "mission started"}`))
	case "/api/drone/land":
		f.landed++
		_, _ = w.Write([]byte(`{"ok": true}`))
	case "/api/drone/status":
		_, _ = w.Write([]byte(f.status))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`not found`))
	}
}

func newFake(t *testing.T) (*fakeRunner, *mission.HTTPRunner) {
	t.Helper()
	f := &fakeRunner{}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	return f, mission.NewHTTPRunner(srv.URL+"/", 2*time.Second)
}

func TestHTTPRunner_StartAndLand(t *testing.T) {
	f, r := newFake(t)
	route := coverage.Route{Nodes: []core.CellID{cell(0, 0), cell(1, 0), cell(0, 0)}}
	req, err := mission.NewRequest(route, core.Meta{ScaleX: 1, ScaleY: 1}, 3, mission.Axis{DI: -1})
	require.NoError(t, err)

	require.NoError(t, r.Start(context.Background(), req))
	assert.Equal(t, req, f.started)

	require.NoError(t, r.Land(context.Background()))
	assert.Equal(t, 1, f.landed)
}

func TestHTTPRunner_StartRejected(t *testing.T) {
	f, r := newFake(t)
	f.reject = true
	req, err := mission.NewRequest(coverage.Route{Nodes: []core.CellID{cell(0, 0)}}, core.Meta{}, 1, mission.Axis{})
	require.NoError(t, err)

	err = r.Start(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, mission.ErrRunner)
	assert.Contains(t, err.Error(), "route is empty")
	assert.Contains(t, err.Error(), "400")
}

func TestHTTPRunner_Status(t *testing.T) {
	f, r := newFake(t)

	f.status = `{"mission_active": true, "available": true, "current_waypoint_index": 4, "current_node_index": 2}`
	st, err := r.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mission.Status{Active: true, Available: true, WaypointIndex: 4, NodeIndex: 2}, st)

	f.status = `{"mission_active": false, "available": false, "current_waypoint_index": null, "current_node_index": null}`
	st, err = r.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mission.Status{WaypointIndex: -1, NodeIndex: -1}, st)
	assert.Equal(t, -1, st.Index())

	f.status = `{"mission_active": tru`
	_, err = r.Status(context.Background())
	assert.ErrorIs(t, err, mission.ErrRunner)
}

func TestHTTPRunner_StatusWithoutContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(`{"mission_active": true, "available": true, "current_waypoint_index": 2}`))
	}))
	t.Cleanup(srv.Close)
	r := mission.NewHTTPRunner(srv.URL, time.Second)
	t.Cleanup(func() { _ = r.Close() })

	st, err := r.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mission.Status{Active: true, Available: true, WaypointIndex: 2, NodeIndex: -1}, st)
}

func TestHTTPRunner_ErrorBodies(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{"error field", "application/json", `{"error": "battery low"}`, "battery low"},
		{"message field", "application/json", `{"message": "not armed"}`, "not armed"},
		{"plain text", "text/plain", "controller offline", "controller offline"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			err := mission.NewHTTPRunner(srv.URL, time.Second).Land(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, mission.ErrRunner)
			assert.Contains(t, err.Error(), "503")
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestHTTPRunner_FeedsPoller(t *testing.T) {
	f, r := newFake(t)
	f.status = `{"mission_active": true, "available": true, "current_waypoint_index": 1, "current_node_index": null}`
	tr := mission.NewTracker()
	tr.SetRoute(1, fiveStops)

	pos, err := mission.NewPoller(r, tr, mission.WithPollerLogger(quiet)).Poll(context.Background())
	require.NoError(t, err)
	assert.True(t, pos.HasCell)
	assert.Equal(t, cell(1, 0), pos.Cell)
}
