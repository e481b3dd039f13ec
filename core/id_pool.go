// File: id_pool.go
// Role: smallest-free-id allocation for node ids.
//
// Contract:
//   - acquire() hands out the smallest non-negative integer not currently
//     in use, keeping the live id range dense so callers can index
//     auxiliary per-unit arrays by id.
//   - release(id) makes the id eligible for reuse by a later acquire().
//
// Determinism:
//   - acquire/release sequences are fully deterministic; no randomness.
//
// Concurrency:
//   - Not safe on its own; the owning Graph calls it under g.mu only.

package core

import (
	"math"

	"github.com/emirpasic/gods/sets/treeset"
)

// idPool tracks free node ids as an ordered set of released ids plus a
// watermark. Every id below next is either live or in released; every id
// at or above next has never been handed out. This replaces a linear
// first-fit scan while preserving its smallest-free semantics.
type idPool struct {
	released *treeset.Set // ids < next that are currently free, ordered asc
	next     int          // watermark: smallest never-used id
}

func newIDPool() *idPool {
	return &idPool{released: treeset.NewWithIntComparator()}
}

// acquire reserves and returns the smallest free id.
// Complexity: O(log n) on the released set, O(1) on the watermark path.
func (p *idPool) acquire() (int, error) {
	// Prefer the smallest released id to keep the live range dense.
	it := p.released.Iterator()
	if it.Next() {
		id := it.Value().(int)
		p.released.Remove(id)

		return id, nil
	}

	// No holes below the watermark: hand out a fresh id.
	if p.next == math.MaxInt {
		return 0, ErrIDExhausted
	}
	id := p.next
	p.next++

	return id, nil
}

// release returns id to the pool. Releasing the top of the live range
// lowers the watermark and folds any trailing released ids back under it,
// so the set stays small across grow/shrink cycles.
// Complexity: O(k log n) where k is the folded run length (amortized O(log n)).
func (p *idPool) release(id int) {
	if id == p.next-1 {
		p.next--
		for p.next > 0 && p.released.Contains(p.next-1) {
			p.released.Remove(p.next - 1)
			p.next--
		}

		return
	}

	p.released.Add(id)
}

// reset discards all state, returning the pool to its initial condition.
func (p *idPool) reset() {
	p.released.Clear()
	p.next = 0
}
