package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/flyover/bfs"
	"github.com/katalvlaran/flyover/core"
)

// ExampleBFS shows hop layering on a 3×3 grid: the start, then its two
// neighbours, then the next frontier, in CellID order within each layer.
func ExampleBFS() {
	b := core.NewBuilder(core.Meta{NX: 3, NY: 3, ScaleX: 1, ScaleY: 1})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = b.AddNode(core.CellID{I: i, J: j})
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c := core.CellID{I: i, J: j}
			if i+1 < 3 {
				_ = b.AddEdge(c, c.Offset(1, 0), 1)
			}
			if j+1 < 3 {
				_ = b.AddEdge(c, c.Offset(0, 1), 1)
			}
		}
	}

	res, err := bfs.BFS(b.Build(), core.CellID{I: 0, J: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}
