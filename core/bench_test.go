// Package core_test provides benchmarks for core.Graph operations on
// topologies sized like a live training run.
package core_test

import (
	"testing"

	"github.com/neuralgas/gng/core"
)

// benchGraph builds a hub-and-spoke topology with n spokes.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g := core.New(core.WithCapacity(n+1, n))
	hub, _ := g.AddNode()
	for i := 0; i < n; i++ {
		id, _ := g.AddNode()
		_ = g.AddEdge(hub, id)
	}

	return g
}

// BenchmarkAddRemoveNode measures the id-pool churn of a grow/shrink cycle.
func BenchmarkAddRemoveNode(b *testing.B) {
	g := core.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id, _ := g.AddNode()
		_ = g.RemoveNode(id)
	}
}

// BenchmarkAddEdge measures duplicate-checked edge insertion against a
// populated edge list (the removal keeps the list size constant).
func BenchmarkAddEdge(b *testing.B) {
	g := benchGraph(b, 1000)
	a, _ := g.AddNode()
	z, _ := g.AddNode()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(a, z)
		_ = g.RemoveEdge(a, z)
	}
}

// BenchmarkNeighbors measures adjacency derivation over the edge list.
func BenchmarkNeighbors(b *testing.B) {
	g := benchGraph(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Hub id is 0 on a fresh graph; 1000 neighbors per call.
		_, _ = g.Neighbors(0)
	}
}

// BenchmarkWinner measures the per-iteration selection scan.
func BenchmarkWinner(b *testing.B) {
	g := benchGraph(b, 1000)
	for _, id := range g.Nodes() {
		_ = g.SetNodeError(id, float64(id%97))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Winner()
	}
}

// BenchmarkIncrementAges measures the once-per-iteration age bump.
func BenchmarkIncrementAges(b *testing.B) {
	g := benchGraph(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.IncrementAges()
	}
}

// BenchmarkStats measures the diagnostics snapshot.
func BenchmarkStats(b *testing.B) {
	g := benchGraph(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Stats()
	}
}
