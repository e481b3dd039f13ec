// Package builder constructs deterministic seed topologies for
// competitive-learning training runs on top of core.Graph.
//
// A training loop never starts empty: growing neural gas begins from two
// connected units, a neural-gas ring from a cycle, a self-organizing map
// from a lattice. This package provides those seeds as composable
// Constructor closures applied by a single orchestrator:
//
//	g, err := builder.Build(nil, nil, builder.Lattice(4, 4))
//
// Constructors:
//
//	Pair()              – two units, one edge (the growing-neural-gas seed)
//	Chain(n)            – path of n units (n ≥ 2)
//	Ring(n)             – cycle of n units (n ≥ 3)
//	Lattice(rows, cols) – 4-neighborhood grid (self-organizing-map seed)
//
// Determinism:
//
//   - On the empty graph Build creates, node ids are assigned by
//     core.AddNode smallest-free allocation, so each constructor's units
//     get exactly 0..n-1 in its documented emission order.
//   - Edge emission order is documented per constructor; no randomness.
//
// Options (functional, resolved into an immutable config):
//
//	WithInitialError(v) – error statistic written onto every seeded unit
//	                      (default 0, i.e. untouched).
//
// Error policy (strict):
//
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Implementations attach the constructor's method tag via %w wrapping.
//   - Constructors never panic at runtime.
package builder
