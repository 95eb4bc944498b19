// Package app wires the planner service together and runs it until its
// context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/flyover/internal/api"
	"github.com/katalvlaran/flyover/internal/config"
	"github.com/katalvlaran/flyover/internal/store"
	"github.com/katalvlaran/flyover/internal/workspace"
	"github.com/katalvlaran/flyover/mission"
)

const shutdownTimeout = 5 * time.Second

// App owns the service's configuration and logger.
type App struct {
	cfg    config.Config
	logger *slog.Logger

	// onListen, when set, receives the bound address before serving starts.
	onListen func(net.Addr)
	closers  []func() error
}

// New returns an App logging to outW.
func New(outW io.Writer, cfg config.Config) *App {
	return &App{cfg: cfg, logger: newLogger(cfg.LogLevel, cfg.LogFormat, outW)}
}

// Logger returns the App's logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Run opens the store, restores the last graph, and serves the API until ctx
// is cancelled. A cancelled context is a clean shutdown and returns nil.
func (a *App) Run(ctx context.Context) error {
	st, err := store.Open(ctx, store.Config{
		Path:          a.cfg.Database,
		KeepSnapshots: a.cfg.KeepSnapshots,
		Logger:        a.logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			a.logger.Error("store close failed", "error", cerr)
		}
	}()

	srv, err := a.wire(ctx, st)
	defer a.close()
	if err != nil {
		return err
	}
	defer srv.Playback.Stop()

	ln, err := net.Listen("tcp", a.cfg.Listen)
	if err != nil {
		return fmt.Errorf("app: listen %s: %w", a.cfg.Listen, err)
	}
	if a.onListen != nil {
		a.onListen(ln.Addr())
	}

	gin.SetMode(gin.ReleaseMode)
	httpSrv := &http.Server{
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if srv.Poller != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = srv.Poller.Run(ctx)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", ln.Addr().String())
		serveErr <- httpSrv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		cancel()
		wg.Wait()
		return fmt.Errorf("app: serve: %w", err)
	}

	a.logger.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	err = httpSrv.Shutdown(shutdownCtx)
	wg.Wait()
	if serr := <-serveErr; serr != nil && !errors.Is(serr, http.ErrServerClosed) {
		err = errors.Join(err, serr)
	}
	if err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	return nil
}

func (a *App) close() {
	for _, fn := range a.closers {
		if err := fn(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}

// wire builds the API server over st, restoring the newest stored graph.
func (a *App) wire(ctx context.Context, st *store.Store) (*api.Server, error) {
	ws := workspace.New(workspace.Options{
		TableMaxNodes: a.cfg.DistanceCacheMaxNodes,
		Logger:        a.logger,
	})
	g, err := st.LoadGraph(ctx)
	if err != nil {
		return nil, err
	}
	if g != nil {
		ws.SetGraph(g)
		a.logger.Info("graph restored", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	}

	labels := mission.NewAnnotationCache(st)
	tracker := mission.NewTracker()
	deps := api.Deps{
		Workspace:        ws,
		Store:            st,
		Labels:           labels,
		Tracker:          tracker,
		Playback:         mission.NewPlayback(a.cfg.PlaybackInterval),
		ObstacleBlocking: a.cfg.ObstacleBlocking,
		Logger:           a.logger,
	}
	if a.cfg.JWTSecret != "" {
		deps.AuthSecret = []byte(a.cfg.JWTSecret)
	}
	if a.cfg.RunnerURL != "" {
		runner := mission.NewHTTPRunner(a.cfg.RunnerURL, a.cfg.RunnerTimeout)
		a.closers = append(a.closers, runner.Close)
		deps.Runner = runner
		deps.Poller = mission.NewPoller(runner, tracker,
			mission.WithInterval(a.cfg.PollInterval),
			mission.WithTimeout(a.cfg.RunnerTimeout),
			mission.WithRefresher(labels),
			mission.WithPollerLogger(a.logger),
		)
	} else {
		a.logger.Warn("no runner configured, missions disabled")
	}

	return api.New(deps), nil
}
