// Package core defines the central Graph, Node, and Edge types for
// competitive-learning topologies, and provides thread-safe primitives
// for growing, decaying, and querying them.
//
// All core APIs share a single sync.Mutex owned by the Graph instance, so
// every public operation executes as an indivisible unit with respect to
// every other — there is deliberately no reader/writer split (see doc.go).
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors,
// and the New constructor.
//
// Errors:
//
//	ErrNodeNotFound - requested node id is not live.
//	ErrEdgeNotFound - no edge exists between the requested pair.
//	ErrSelfLoop     - edge endpoints are identical.
//	ErrEmptyGraph   - winner selection over zero candidate nodes.
//	ErrIDExhausted  - node id space exhausted (practically unreachable).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge with identical endpoints was attempted.
	ErrSelfLoop = errors.New("core: self-edge not allowed")

	// ErrEmptyGraph indicates winner selection ran over zero candidate nodes.
	ErrEmptyGraph = errors.New("core: graph has no candidate nodes")

	// ErrIDExhausted indicates AddNode could not reserve a free id.
	ErrIDExhausted = errors.New("core: node id space exhausted")
)

// Node represents a learned prototype unit in the topology.
//
// ID uniquely identifies this Node within its Graph while the node is live;
// ids stay dense and small (smallest-free allocation), so callers may index
// auxiliary per-unit storage by id. Error is the accumulated quantization
// error statistic driven by the training rule.
type Node struct {
	// ID is the unique identifier for this Node.
	ID int

	// Error is the accumulated error statistic (default 0).
	Error float64
}

// Edge represents an undirected topological adjacency between two units.
//
// Endpoints are stored normalized (N1 < N2); the pair is unordered in every
// operation, so AddEdge/RemoveEdge/EdgeAge accept (a,b) and (b,a) alike.
// Age is a staleness counter bumped by IncrementAges once per training
// iteration and consulted by PurgeOldEdges.
type Edge struct {
	// N1 is the smaller endpoint id.
	N1 int

	// N2 is the larger endpoint id.
	N2 int

	// Age is the staleness counter (default 0).
	Age float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal storage for the expected maximum number
// of live nodes and edges. Purely a performance hint for hot training
// loops; the graph still grows past either bound on demand.
func WithCapacity(nodes, edges int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.capNodes = nodes
		}
		if edges > 0 {
			g.capEdges = edges
		}
	}
}

// Graph is the in-memory topology graph for a competitive-learning map.
//
// It owns a node table (id → Node), an edge list, and the free-id pool.
// mu serializes every public operation; adjacency is derived from the edge
// list on demand rather than stored per node.
type Graph struct {
	mu sync.Mutex // guards nodes, edges, and ids as one unit

	// Capacity hints applied at construction time.
	capNodes int
	capEdges int

	// Storage
	nodes map[int]*Node // node id → Node
	edges []*Edge       // unordered edge list, endpoints normalized
	ids   *idPool       // smallest-free-id allocator
}

// New creates an empty Graph with the given options.
// Complexity: O(1)
func New(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	g.nodes = make(map[int]*Node, g.capNodes)
	g.edges = make([]*Edge, 0, g.capEdges)
	g.ids = newIDPool()

	return g
}

// orderPair returns the endpoints of an unordered pair in normalized
// (lo, hi) order. Callers must reject lo == hi before storing.
func orderPair(n1, n2 int) (int, int) {
	if n2 < n1 {
		return n2, n1
	}

	return n1, n2
}
