// SPDX-License-Identifier: MIT
//
// File: cell.go
// Role: CellID ordering, text form and lattice helpers.
// Determinism:
//   - Compare defines the single total order used for sorting and tie-breaks.

package core

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// cellSep joins the two coordinates in the text form "i_j".
const cellSep = "_"

// Offsets4 lists the 4-connectivity neighbour offsets: E, W, S, N.
var Offsets4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// String returns the canonical text form "i_j".
func (c CellID) String() string {
	return strconv.Itoa(c.I) + cellSep + strconv.Itoa(c.J)
}

// ParseCellID parses the canonical text form produced by String.
// Non-canonical spellings ("01_2", "+1_2", "1_2_3") and negative coordinates
// are rejected with ErrInvalidArgument, so String(Parse(s)) == s always holds.
//
// Complexity: O(len(s)).
func ParseCellID(s string) (CellID, error) {
	parts := strings.Split(s, cellSep)
	if len(parts) != 2 {
		return CellID{}, fmt.Errorf("%w: core: cell id %q must have the form i_j", ErrInvalidArgument, s)
	}
	i, errI := strconv.Atoi(parts[0])
	j, errJ := strconv.Atoi(parts[1])
	if errI != nil || errJ != nil || i < 0 || j < 0 {
		return CellID{}, fmt.Errorf("%w: core: cell id %q has bad coordinates", ErrInvalidArgument, s)
	}
	c := CellID{I: i, J: j}
	if c.String() != s {
		return CellID{}, fmt.Errorf("%w: core: cell id %q is not canonical", ErrInvalidArgument, s)
	}

	return c, nil
}

// Compare orders cells by column, then row. It returns -1, 0 or +1.
func (c CellID) Compare(o CellID) int {
	if r := cmp.Compare(c.I, o.I); r != 0 {
		return r
	}

	return cmp.Compare(c.J, o.J)
}

// Less reports whether c sorts before o.
func (c CellID) Less(o CellID) bool { return c.Compare(o) < 0 }

// Offset returns the cell displaced by (di, dj).
func (c CellID) Offset(di, dj int) CellID {
	return CellID{I: c.I + di, J: c.J + dj}
}

// Adjacent reports whether o differs from c by exactly one unit along exactly one axis.
func (c CellID) Adjacent(o CellID) bool {
	di, dj := abs(c.I-o.I), abs(c.J-o.J)

	return di+dj == 1
}

// InBounds reports whether c lies inside an nx × ny lattice.
func (c CellID) InBounds(nx, ny int) bool {
	return c.I >= 0 && c.I < nx && c.J >= 0 && c.J < ny
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
