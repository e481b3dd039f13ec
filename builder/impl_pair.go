// SPDX-License-Identifier: MIT
// Package: gng/builder
//
// impl_pair.go — implementation of Pair().
//
// Canonical model:
//   • Two units joined by a single edge: the growing-neural-gas seed.
//
// Contract:
//   • Emits exactly 2 units (on an empty graph: ids 0 and 1) and 1 edge.
//   • Never fails on an empty graph; core errors propagate wrapped.
//
// Complexity: O(1).

package builder

import (
	"fmt"

	"github.com/neuralgas/gng/core"
)

const methodPair = "Pair"

// Pair returns a Constructor that seeds the minimal growing topology:
// two connected prototype units.
func Pair() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := seedUnits(g, cfg, methodPair, 2)
		if err != nil {
			return err
		}
		if err = g.AddEdge(ids[0], ids[1]); err != nil {
			return fmt.Errorf("%s: connect seed units: %w", methodPair, err)
		}

		return nil
	}
}
