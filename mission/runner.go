package mission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"
)

// Runner is the flight-control collaborator.
type Runner interface {
	Start(ctx context.Context, req Request) error
	Land(ctx context.Context) error
	StatusSource
}

// Runner endpoints, relative to the base URL.
const (
	pathStart  = "/api/drone/start"
	pathLand   = "/api/drone/land"
	pathStatus = "/api/drone/status"
)

// statusWire is the runner's status document; indices may be null.
type statusWire struct {
	MissionActive        bool `json:"mission_active"`
	Available            bool `json:"available"`
	CurrentWaypointIndex *int `json:"current_waypoint_index"`
	CurrentNodeIndex     *int `json:"current_node_index"`
}

// errorWire is the runner's error document.
type errorWire struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HTTPRunner implements Runner over the runner's JSON HTTP API.
type HTTPRunner struct {
	client *resty.Client
}

// NewHTTPRunner returns a client for the runner at baseURL.
// timeout bounds every request; zero leaves requests bounded by their context only.
func NewHTTPRunner(baseURL string, timeout time.Duration) *HTTPRunner {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPRunner{client: c}
}

// Close releases the client's idle connections.
func (r *HTTPRunner) Close() error {
	return r.client.Close()
}

// request starts a call that decodes JSON bodies into errorWire on failure.
func (r *HTTPRunner) request(ctx context.Context) *resty.Request {
	return r.client.R().
		SetContext(ctx).
		SetExpectResponseContentType("application/json").
		SetError(&errorWire{})
}

// Start submits a mission.
func (r *HTTPRunner) Start(ctx context.Context, req Request) error {
	resp, err := r.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathStart)

	return check(resp, err, "start")
}

// Land asks the vehicle to land and ends any active mission.
func (r *HTTPRunner) Land(ctx context.Context) error {
	resp, err := r.request(ctx).Post(pathLand)

	return check(resp, err, "land")
}

// Status fetches the current runner status.
func (r *HTTPRunner) Status(ctx context.Context) (Status, error) {
	w := &statusWire{}
	resp, err := r.request(ctx).
		SetForceResponseContentType("application/json").
		SetResult(w).
		Get(pathStatus)
	if err = check(resp, err, "status"); err != nil {
		return Status{}, err
	}
	st := Status{Active: w.MissionActive, Available: w.Available, WaypointIndex: -1, NodeIndex: -1}
	if w.CurrentWaypointIndex != nil {
		st.WaypointIndex = *w.CurrentWaypointIndex
	}
	if w.CurrentNodeIndex != nil {
		st.NodeIndex = *w.CurrentNodeIndex
	}

	return st, nil
}

// check turns transport errors and non-2xx answers into errors.
func check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRunner, op, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	msg := resp.String()
	if w, ok := resp.Error().(*errorWire); ok && w != nil {
		switch {
		case w.Error != "":
			msg = w.Error
		case w.Message != "":
			msg = w.Message
		}
	}

	return fmt.Errorf("%w: %s: status %d: %s", ErrRunner, op, resp.StatusCode(), msg)
}
