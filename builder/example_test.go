package builder_test

import (
	"fmt"

	"github.com/neuralgas/gng/builder"
)

// ExampleBuild seeds the canonical growing-neural-gas start topology and
// hands it to the (external) training loop.
func ExampleBuild() {
	g, err := builder.Build(nil, nil, builder.Pair())
	if err != nil {
		fmt.Println("seed failed:", err)
		return
	}

	w, _ := g.Winner()
	fmt.Println("units:", g.Nodes(), "edges:", g.EdgeCount(), "winner:", w)

	// Output:
	// units: [0 1] edges: 1 winner: 0
}

// ExampleLattice shows the self-organizing-map seed: row-major dense ids
// let callers map (row, col) to an id arithmetically.
func ExampleLattice() {
	g, _ := builder.Build(nil, nil, builder.Lattice(2, 3))

	nbs, _ := g.Neighbors(4) // (1,1) in a 2×3 grid
	fmt.Println("neighbors of (1,1):", nbs)

	// Output:
	// neighbors of (1,1): [1 3 5]
}
