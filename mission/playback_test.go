package mission_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/mission"
)

type recorder struct {
	mu    sync.Mutex
	steps []core.CellID
	idx   []int
}

func (r *recorder) step(idx int, c core.CellID) {
	r.mu.Lock()
	r.idx = append(r.idx, idx)
	r.steps = append(r.steps, c)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.steps)
}

func TestPlayback_RunsToCompletion(t *testing.T) {
	pb := mission.NewPlayback(time.Millisecond)
	rec := &recorder{}

	done, err := pb.Start(context.Background(), fiveStops, rec.step)
	require.NoError(t, err)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("playback did not finish")
	}

	assert.Equal(t, fiveStops, rec.steps)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, rec.idx)
	assert.False(t, pb.Active())
}

func TestPlayback_StopCancels(t *testing.T) {
	pb := mission.NewPlayback(time.Hour)
	rec := &recorder{}

	done, err := pb.Start(context.Background(), fiveStops, rec.step)
	require.NoError(t, err)
	assert.True(t, pb.Active())

	pb.Stop()
	_, open := <-done
	assert.False(t, open)
	assert.False(t, pb.Active())
	assert.Zero(t, rec.count())

	pb.Stop() // no-op when idle
}

func TestPlayback_ContextCancels(t *testing.T) {
	pb := mission.NewPlayback(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done, err := pb.Start(ctx, fiveStops, func(int, core.CellID) {})
	require.NoError(t, err)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("playback ignored cancellation")
	}
	require.Eventually(t, func() bool { return !pb.Active() }, time.Second, time.Millisecond)
}

func TestPlayback_SingleActive(t *testing.T) {
	pb := mission.NewPlayback(time.Hour)
	_, err := pb.Start(context.Background(), fiveStops, func(int, core.CellID) {})
	require.NoError(t, err)
	defer pb.Stop()

	_, err = pb.Start(context.Background(), fiveStops, func(int, core.CellID) {})
	assert.ErrorIs(t, err, mission.ErrPlaybackActive)
}

func TestPlayback_EmptyRoute(t *testing.T) {
	_, err := mission.NewPlayback(0).Start(context.Background(), nil, func(int, core.CellID) {})
	assert.ErrorIs(t, err, mission.ErrEmptyRoute)
}
