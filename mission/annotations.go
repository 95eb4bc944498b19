package mission

import (
	"context"
	"maps"
	"strings"
	"sync"

	"github.com/katalvlaran/flyover/core"
)

// LabelSource supplies per-node labels keyed by canonical node id ("i_j").
type LabelSource interface {
	Labels(ctx context.Context) (map[string]string, error)
}

// AnnotationCache is a read-through cache of cell labels.
// Blank labels and keys that are not canonical node ids are dropped on load.
type AnnotationCache struct {
	src    LabelSource
	mu     sync.RWMutex
	labels map[core.CellID]string // nil until loaded
}

// NewAnnotationCache returns an empty cache over src.
func NewAnnotationCache(src LabelSource) *AnnotationCache {
	return &AnnotationCache{src: src}
}

// Get returns the label of c, loading the cache on first use.
func (a *AnnotationCache) Get(ctx context.Context, c core.CellID) (string, bool, error) {
	labels, err := a.load(ctx)
	if err != nil {
		return "", false, err
	}
	l, ok := labels[c]

	return l, ok, nil
}

// All returns a copy of every cached label, loading on first use.
func (a *AnnotationCache) All(ctx context.Context) (map[core.CellID]string, error) {
	labels, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	return maps.Clone(labels), nil
}

// Refresh reloads the labels from the source. On error the previous contents stay.
func (a *AnnotationCache) Refresh(ctx context.Context) error {
	_, err := a.reload(ctx)

	return err
}

func (a *AnnotationCache) reload(ctx context.Context) (map[core.CellID]string, error) {
	raw, err := a.src.Labels(ctx)
	if err != nil {
		return nil, err
	}
	labels := clean(raw)
	a.mu.Lock()
	a.labels = labels
	a.mu.Unlock()

	return labels, nil
}

// Invalidate drops the cached labels; the next read reloads them.
func (a *AnnotationCache) Invalidate() {
	a.mu.Lock()
	a.labels = nil
	a.mu.Unlock()
}

func (a *AnnotationCache) load(ctx context.Context) (map[core.CellID]string, error) {
	a.mu.RLock()
	labels := a.labels
	a.mu.RUnlock()
	if labels != nil {
		return labels, nil
	}

	return a.reload(ctx)
}

func clean(raw map[string]string) map[core.CellID]string {
	out := make(map[core.CellID]string, len(raw))
	for id, label := range raw {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		c, err := core.ParseCellID(id)
		if err != nil {
			continue
		}
		out[c] = label
	}

	return out
}
