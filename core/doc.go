// Package core provides the thread-safe, dynamically mutable topology
// graph behind an online competitive-learning map (growing neural gas /
// self-organizing structures).
//
// Each node is a learned prototype unit carrying an accumulated error
// statistic; each edge is an undirected topological adjacency carrying an
// age statistic used to prune stale connections. The graph supports the
// operations a training loop needs on every iteration:
//
//   - Structural growth: AddNode (dense smallest-free ids), AddEdge
//     (idempotent, no self-edges, no duplicate pairs), InsertBetween
//     (atomic edge split — the canonical growth step).
//   - Structural decay: RemoveNode (drops incident edges), RemoveEdge,
//     PurgeOldEdges (age threshold), PurgeOrphans (edge-less units).
//   - Statistics: NodeError/SetNodeError, ResetErrors (epoch boundary),
//     EdgeAge/SetEdgeAge, IncrementAges (once per iteration).
//   - Selection & queries: Winner (minimum non-negative error, smallest-id
//     tie-break), Neighbors, Nodes, Edges, HasNode, HasEdge,
//     NodeCount/EdgeCount, Stats.
//
// Locking model
//
// A Graph owns exactly one sync.Mutex. Every public operation — reads
// included — acquires it for its full duration and releases it via defer
// on every exit path. There is deliberately no reader/writer split and no
// lock-free fast path: operations are short and linear in the current
// node/edge count, the structure mutates on every training iteration, and
// a single exclusive lock makes each call an indivisible unit. No
// ordering or atomicity is promised across two separate calls; multi-step
// atomic sequences exist as single operations (InsertBetween).
//
// Invariants (hold between any two operations):
//
//   - Every edge's endpoints refer to live nodes.
//   - No edge connects a node to itself.
//   - No two edges connect the same unordered pair.
//   - Live ids are never reused; a removed id becomes eligible again, and
//     AddNode always returns the smallest free id, keeping the id range
//     dense so callers may index per-unit arrays by id.
//
// Operations either fully succeed or fully fail: a removal that misses
// its precondition removes nothing.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode() (int, error)                 // O(log V)
//	HasNode(id int) bool                   // O(1)
//	RemoveNode(id int) error               // O(E)
//
//	// Edge lifecycle
//	AddEdge(n1, n2 int) error              // O(E)
//	HasEdge(n1, n2 int) bool               // O(E)
//	RemoveEdge(n1, n2 int) error           // O(E)
//	InsertBetween(n1, n2 int) (int, error) // O(E), atomic split
//
//	// Statistics
//	NodeError(id int) (float64, error)     // O(1)
//	SetNodeError(id int, e float64) error  // O(1)
//	ResetErrors()                          // O(V)
//	EdgeAge(n1, n2 int) (float64, error)   // O(E)
//	SetEdgeAge(n1, n2 int, age float64) error // O(E)
//	IncrementAges()                        // O(E)
//
//	// Decay
//	PurgeOldEdges(maxAge float64)          // O(E), survives iff age ≤ maxAge
//	PurgeOrphans() []int                   // O(V+E), returns removed ids asc
//
//	// Selection & queries
//	Winner() (int, error)                  // O(V)
//	Neighbors(id int) ([]int, error)       // O(E + d log d), sorted asc
//	Nodes() []int                          // O(V log V), sorted asc
//	Edges() []Edge                         // O(E), snapshot copies
//	NodeCount() int                        // O(1)
//	EdgeCount() int                        // O(1)
//	Stats() *GraphStats                    // O(V+E)
//
//	// Maintenance
//	Clear()                                // O(1): reset storage and id pool
//
// Errors (match with errors.Is; operands are attached as wrap context):
//
//	ErrNodeNotFound – referenced node id is not live
//	ErrEdgeNotFound – no edge between the unordered pair
//	ErrSelfLoop     – identical endpoints on AddEdge/InsertBetween
//	ErrEmptyGraph   – Winner over zero candidate nodes
//	ErrIDExhausted  – AddNode found no free id (practically unreachable)
//
// Existence checks are strict everywhere: Neighbors, NodeError, and
// SetNodeError fail fast on dead ids instead of silently returning empty
// or zero-default results, and SetNodeError never creates nodes.
package core
