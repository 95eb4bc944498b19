package dijkstra

import "github.com/katalvlaran/flyover/core"

// Table caches one single-source Result per node of a graph.
// It is immutable after AllPairs returns and safe for concurrent reads.
type Table struct {
	results map[core.CellID]*Result
}

// AllPairs runs ShortestPaths from every node of g.
//
// Complexity: O(V (V + E) log V) time, O(V²) memory.
func AllPairs(g *core.Graph) (*Table, error) {
	t := &Table{results: make(map[core.CellID]*Result, g.NodeCount())}
	for _, v := range g.Nodes() {
		res, err := ShortestPaths(g, v)
		if err != nil {
			return nil, err
		}
		t.results[v] = res
	}

	return t, nil
}

// From returns the cached result for source.
func (t *Table) From(source core.CellID) (*Result, bool) {
	if t == nil {
		return nil, false
	}
	res, ok := t.results[source]

	return res, ok
}

// Len returns the number of cached sources.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.results)
}
