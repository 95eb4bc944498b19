package mission

import (
	"slices"
	"sync"

	"github.com/katalvlaran/flyover/core"
)

// Update is the outcome of one Tracker.Observe call.
type Update struct {
	// Cell is the derived position; valid only when HasCell is set.
	Cell    core.CellID
	HasCell bool
	// Index is the route position the status referred to, possibly out of range.
	Index  int
	Active bool
	// Refresh is set exactly when the mission went from active to inactive.
	Refresh bool
}

// Tracker derives the vehicle's cell from runner status against the last
// planned route. It remembers the route, whether the previous observation was
// active, and the last cell the vehicle was seen at.
type Tracker struct {
	mu        sync.Mutex
	route     []core.CellID
	version   uint64
	wasActive bool
	here      *core.CellID
}

// NewTracker returns a Tracker with no route.
func NewTracker() *Tracker { return &Tracker{} }

// SetRoute replaces the route whole unless a route from a newer workspace
// version was already set; nil clears it. It reports whether nodes were applied.
func (t *Tracker) SetRoute(version uint64, nodes []core.CellID) bool {
	cp := slices.Clone(nodes)
	t.mu.Lock()
	defer t.mu.Unlock()
	if version < t.version {
		return false
	}
	t.version, t.route = version, cp

	return true
}

// Locate records c as the vehicle's latest cell.
func (t *Tracker) Locate(c core.CellID) {
	t.mu.Lock()
	t.here = &c
	t.mu.Unlock()
}

// Located returns the vehicle's latest cell, from either Locate or a status
// that derived one.
func (t *Tracker) Located() (core.CellID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.here == nil {
		return core.CellID{}, false
	}

	return *t.here, true
}

// Forget drops the latest cell.
func (t *Tracker) Forget() {
	t.mu.Lock()
	t.here = nil
	t.mu.Unlock()
}

// Route returns a copy of the current route.
func (t *Tracker) Route() []core.CellID {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.route)
}

// Observe folds one status report into the tracker.
// A cell is derived only while the mission is active and the index lies in
// [0, len(route)); otherwise the caller keeps whatever it displayed before.
func (t *Tracker) Observe(s Status) Update {
	t.mu.Lock()
	defer t.mu.Unlock()

	u := Update{Index: s.Index(), Active: s.Active}
	if s.Active && u.Index >= 0 && u.Index < len(t.route) {
		u.Cell, u.HasCell = t.route[u.Index], true
		t.here = &u.Cell
	}
	u.Refresh = t.wasActive && !s.Active
	t.wasActive = s.Active

	return u
}
