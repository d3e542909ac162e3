package build_test

import (
	"fmt"

	"github.com/katalvlaran/filtra/alphashape"
	"github.com/katalvlaran/filtra/build"
)

// ExampleBuild runs the pipeline on a hand-made decomposition: two points
// joined by an edge.
//
// Scenario:
//
//	(907)───(13)      vertices at alpha 0, edge at alpha 0.25
//
// The opaque handles 907 and 13 become dense identities 0 and 1 in
// first-encounter order.
func ExampleBuild() {
	dec := &alphashape.Decomposition{
		Objects: []alphashape.Object{
			alphashape.NewVertex(907),
			alphashape.NewVertex(13),
			alphashape.NewEdge(907, 13),
		},
		Alphas: []float64{0, 0, 0.25},
	}

	cx, reg, stats, err := build.Build(dec)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("simplices:", cx.Len(), "vertices:", reg.Len())
	fmt.Println("dimension:", cx.Dimension(), "max filtration:", cx.MaxFiltration())
	fmt.Println("edge tuple:", cx.At(2).Vertices)
	fmt.Println("extracted:", stats.Vertices, "vertices,", stats.Edges, "edge")
	// Output:
	// simplices: 3 vertices: 2
	// dimension: 1 max filtration: 0.25
	// edge tuple: [0 1]
	// extracted: 2 vertices, 1 edge
}
