package mission

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/flyover/core"
)

// StatusSource reports the runner's current status.
type StatusSource interface {
	Status(ctx context.Context) (Status, error)
}

// Refresher reloads state invalidated by a finished mission.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Position is the latest published vehicle position.
type Position struct {
	// Cell is the last derived cell; it survives polls that derive none.
	Cell      core.CellID
	HasCell   bool
	Index     int // -1 until a poll reports one
	Active    bool
	Available bool
	Seq       uint64
	UpdatedAt time.Time
}

// PollerOptions configures a Poller.
type PollerOptions struct {
	Interval  time.Duration
	Timeout   time.Duration
	Refresher Refresher
	Logger    *slog.Logger
}

// PollerOption configures a Poller.
type PollerOption func(*PollerOptions)

// WithInterval sets the polling cadence.
func WithInterval(d time.Duration) PollerOption {
	return func(o *PollerOptions) { o.Interval = d }
}

// WithTimeout bounds each status request.
func WithTimeout(d time.Duration) PollerOption {
	return func(o *PollerOptions) { o.Timeout = d }
}

// WithRefresher sets what to refresh when a mission finishes.
func WithRefresher(r Refresher) PollerOption {
	return func(o *PollerOptions) { o.Refresher = r }
}

// WithPollerLogger sets the logger for poll diagnostics.
func WithPollerLogger(l *slog.Logger) PollerOption {
	return func(o *PollerOptions) { o.Logger = l }
}

// Poller periodically pulls runner status into a Tracker.
//
// Polls may overlap when the runner is slow. Each poll takes a sequence number
// when it starts and its result is applied only if no later poll has been
// applied already, so the published position is always the freshest one.
type Poller struct {
	src     StatusSource
	tracker *Tracker
	opts    PollerOptions
	logger  *slog.Logger

	seq     atomic.Uint64
	mu      sync.Mutex // guards applied and serializes tracker observations
	applied uint64
	latest  atomic.Pointer[Position]
}

// NewPoller returns a Poller feeding tracker from src.
func NewPoller(src StatusSource, tracker *Tracker, opts ...PollerOption) *Poller {
	cfg := PollerOptions{Interval: DefaultPollInterval, Timeout: DefaultPollTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultPollTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p := &Poller{src: src, tracker: tracker, opts: cfg, logger: logger}
	p.latest.Store(&Position{Index: -1})

	return p
}

// Position returns the latest published position.
func (p *Poller) Position() Position { return *p.latest.Load() }

// Run polls until ctx is cancelled and returns ctx.Err() after in-flight polls finish.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.opts.Interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	p.logger.Info("status poller started", "interval", p.opts.Interval)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("status poller stopped")
			return ctx.Err()
		case <-ticker.C:
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = p.Poll(ctx)
			}()
		}
	}
}

// Poll performs one status request and applies it. Errors are logged at debug
// level and returned; the published position is left untouched.
func (p *Poller) Poll(ctx context.Context) (Position, error) {
	seq := p.seq.Add(1)
	pctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	st, err := p.src.Status(pctx)
	if err != nil {
		p.logger.Debug("status poll failed", "seq", seq, "error", err)
		return p.Position(), err
	}

	pos, refresh, ok := p.apply(seq, st)
	if !ok {
		p.logger.Debug("stale status dropped", "seq", seq)
		return p.Position(), nil
	}
	if refresh {
		p.logger.Info("mission finished", "index", pos.Index)
		if p.opts.Refresher != nil {
			if err = p.opts.Refresher.Refresh(ctx); err != nil {
				p.logger.Warn("refresh after mission failed", "error", err)
			}
		}
	}

	return pos, nil
}

// apply publishes st if seq is newer than anything applied so far.
func (p *Poller) apply(seq uint64, st Status) (Position, bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if seq <= p.applied {
		return Position{}, false, false
	}
	p.applied = seq

	u := p.tracker.Observe(st)
	prev := p.latest.Load()
	pos := Position{
		Cell:      prev.Cell,
		HasCell:   prev.HasCell,
		Index:     u.Index,
		Active:    u.Active,
		Available: st.Available,
		Seq:       seq,
		UpdatedAt: time.Now(),
	}
	if u.HasCell {
		pos.Cell, pos.HasCell = u.Cell, true
	}
	p.latest.Store(&pos)

	return pos, u.Refresh, true
}
