package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/flyover/core"
)

// PathTo reconstructs the path source → target from a predecessor map.
// The returned slice starts with source and ends with target; source == target
// yields a single-element path. If the chain breaks before reaching source the
// target is unreachable and ErrNotReachable is returned, never a partial path.
//
// Complexity: O(path length).
func PathTo(prev map[core.CellID]core.CellID, source, target core.CellID) ([]core.CellID, error) {
	path := []core.CellID{target}
	cur := target
	// A well-formed predecessor map reaches source in at most len(prev) steps.
	for steps := 0; cur != source; steps++ {
		p, ok := prev[cur]
		if !ok || steps > len(prev) {
			return nil, fmt.Errorf("%w: %v -> %v", ErrNotReachable, source, target)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// PathTo reconstructs the shortest path from r.Source to target.
// Returns ErrTargetNotFound if target was not a node of the searched graph.
func (r *Result) PathTo(target core.CellID) ([]core.CellID, error) {
	if _, ok := r.Dist[target]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}

	return PathTo(r.Prev, r.Source, target)
}
