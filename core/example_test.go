package core_test

import (
	"fmt"

	"github.com/neuralgas/gng/core"
)

// ExampleGraph demonstrates growing a small topology, selecting the
// winner, and decaying stale adjacency.
func ExampleGraph() {
	g := core.New()

	// 1) Seed three units; ids are dense smallest-free integers.
	a, _ := g.AddNode()
	b, _ := g.AddNode()
	c, _ := g.AddNode()
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	// 2) The training rule writes error statistics; Winner picks the
	//    minimum non-negative one.
	g.SetNodeError(a, 5.0)
	g.SetNodeError(b, 2.0)
	g.SetNodeError(c, 7.0)
	w, _ := g.Winner()
	fmt.Println("winner:", w)

	// 3) Age the topology two iterations, refreshing only (a,b).
	g.IncrementAges()
	g.IncrementAges()
	g.SetEdgeAge(a, b, 0)

	// 4) Evict edges older than 1 iteration, then reclaim orphans.
	g.PurgeOldEdges(1)
	fmt.Println("orphans:", g.PurgeOrphans())
	fmt.Println("nodes:", g.Nodes(), "edges:", g.EdgeCount())

	// Output:
	// winner: 1
	// orphans: [2]
	// nodes: [0 1] edges: 1
}

// ExampleGraph_insertBetween shows the atomic growth step: splitting an
// existing edge with a fresh unit.
func ExampleGraph_insertBetween() {
	g := core.New()
	a, _ := g.AddNode()
	b, _ := g.AddNode()
	g.AddEdge(a, b)

	r, _ := g.InsertBetween(a, b)
	nbs, _ := g.Neighbors(r)
	fmt.Println("new unit:", r, "neighbors:", nbs)
	fmt.Println("old edge survives:", g.HasEdge(a, b))

	// Output:
	// new unit: 2 neighbors: [0 1]
	// old edge survives: false
}
