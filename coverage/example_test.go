package coverage_test

import (
	"fmt"

	"github.com/katalvlaran/flyover/core"
	"github.com/katalvlaran/flyover/coverage"
)

// ExamplePlan covers a 3×1 corridor with 2 m cells and flies back to the start.
func ExamplePlan() {
	b := core.NewBuilder(core.Meta{NX: 3, NY: 1, ScaleX: 2, ScaleY: 2})
	for i := 0; i < 3; i++ {
		_ = b.AddNode(core.CellID{I: i})
	}
	_ = b.AddEdge(core.CellID{I: 0}, core.CellID{I: 1}, 2)
	_ = b.AddEdge(core.CellID{I: 1}, core.CellID{I: 2}, 2)

	route, _ := coverage.Plan(b.Build(), coverage.WithStart(core.CellID{I: 0}))
	fmt.Println(route.Nodes)
	fmt.Println(route.Length, *route.ReturnStart)
	// Output:
	// [0_0 1_0 2_0 1_0 0_0]
	// 8 3
}
