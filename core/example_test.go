package core_test

import (
	"fmt"

	"github.com/katalvlaran/flyover/core"
)

// ExampleBuilder assembles a 3×1 corridor and prints its normalized edges.
//
//	(0,0)──2──(1,0)──2──(2,0)
func ExampleBuilder() {
	b := core.NewBuilder(core.Meta{NX: 3, NY: 1, ScaleX: 2, ScaleY: 1})
	for i := 0; i < 3; i++ {
		_ = b.AddNode(core.CellID{I: i})
	}
	_ = b.AddEdge(core.CellID{I: 1}, core.CellID{I: 0}, 2)
	_ = b.AddEdge(core.CellID{I: 1}, core.CellID{I: 2}, 2)

	g := b.Build()
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s %.0f\n", e.From, e.To, e.Length)
	}
	// Output:
	// 0_0-1_0 2
	// 1_0-2_0 2
}
