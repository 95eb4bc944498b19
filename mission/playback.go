package mission

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/katalvlaran/flyover/core"
)

// StepFunc receives each simulated waypoint.
type StepFunc func(idx int, c core.CellID)

// Playback replays a route locally, one waypoint per interval.
// At most one replay runs at a time.
type Playback struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPlayback returns a Playback ticking every interval (DefaultPlaybackInterval if ≤ 0).
func NewPlayback(interval time.Duration) *Playback {
	if interval <= 0 {
		interval = DefaultPlaybackInterval
	}

	return &Playback{interval: interval}
}

// Start replays nodes, calling step for each after one interval has elapsed.
// The returned channel closes when the replay finishes or is stopped.
func (p *Playback) Start(ctx context.Context, nodes []core.CellID, step StepFunc) (<-chan struct{}, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyRoute
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done != nil {
		return nil, ErrPlaybackActive
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel, p.done = cancel, done

	go p.run(ctx, slices.Clone(nodes), step, done)

	return done, nil
}

// Stop cancels the running replay, if any, and waits for it to exit.
func (p *Playback) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Active reports whether a replay is running.
func (p *Playback) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.done != nil
}

func (p *Playback) run(ctx context.Context, nodes []core.CellID, step StepFunc, done chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer func() {
		ticker.Stop()
		p.mu.Lock()
		if p.done == done {
			p.cancel()
			p.cancel, p.done = nil, nil
		}
		p.mu.Unlock()
		close(done)
	}()

	for idx := 0; idx < len(nodes); idx++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			step(idx, nodes[idx])
		}
	}
}
