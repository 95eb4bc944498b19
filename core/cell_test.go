package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flyover/core"
)

// TestCellID_RoundTrip verifies that the text form is lossless.
func TestCellID_RoundTrip(t *testing.T) {
	cells := []core.CellID{{I: 0, J: 0}, {I: 12, J: 3}, {I: 3, J: 12}, {I: 1, J: 23}, {I: 12, J: 3}}
	for _, c := range cells {
		got, err := core.ParseCellID(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	// "1_23" and "12_3" must not collide.
	assert.NotEqual(t, core.CellID{I: 1, J: 23}.String(), core.CellID{I: 12, J: 3}.String())
}

// TestParseCellID_Rejects checks every malformed spelling maps to ErrInvalidArgument.
func TestParseCellID_Rejects(t *testing.T) {
	bad := []string{"", "1", "1_", "_1", "a_b", "1_2_3", "-1_0", "01_2", "+1_2", "1 _2"}
	for _, s := range bad {
		t.Run(s, func(t *testing.T) {
			_, err := core.ParseCellID(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidArgument), "got %v", err)
		})
	}
}

// TestCellID_Order checks column-major ordering and adjacency.
func TestCellID_Order(t *testing.T) {
	a, b, c := core.CellID{I: 0, J: 5}, core.CellID{I: 1, J: 0}, core.CellID{I: 1, J: 1}
	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.Equal(t, 0, b.Compare(b))
	assert.Equal(t, 1, c.Compare(a))

	assert.True(t, b.Adjacent(c))
	assert.False(t, a.Adjacent(c))
	assert.False(t, b.Adjacent(b), "a cell is not adjacent to itself")
	assert.False(t, core.CellID{I: 0, J: 0}.Adjacent(core.CellID{I: 1, J: 1}), "diagonal")

	assert.True(t, c.InBounds(2, 2))
	assert.False(t, c.InBounds(1, 2))
	assert.Equal(t, core.CellID{I: 2, J: 0}, c.Offset(1, -1))
}
