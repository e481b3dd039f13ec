// Package gng is the in-memory topology core for online competitive-learning
// maps (growing neural gas, neural gas rings, self-organizing lattices).
//
// What lives here?
//
//	• core    – the thread-safe TopologyGraph: prototype units with an error
//	            statistic, undirected adjacency edges with an age statistic,
//	            structural growth/decay operations and winner selection.
//	• builder – deterministic seed topologies (Pair, Chain, Ring, Lattice)
//	            to bootstrap a training run.
//
// Why this shape?
//
//   - A competitive-learning loop mutates its topology on every iteration,
//     from many workers at once. core.Graph owns one exclusive lock per
//     instance, so every operation is an indivisible unit and the structural
//     invariants (live endpoints, no self-edges, no duplicate pairs, dense
//     node ids) hold between any two calls.
//   - The training rule itself (distances, learning rates, when to grow)
//     stays outside: it consumes the graph purely through the operation set.
//
// Quick start:
//
//	g, err := builder.Build(nil, nil, builder.Pair())
//	if err != nil { ... }
//	for step := 0; step < steps; step++ {
//		w, err := g.Winner()
//		...
//		g.IncrementAges()
//		g.PurgeOldEdges(maxAge)
//	}
//
// See core/doc.go for the full operation contract and locking model.
package gng
