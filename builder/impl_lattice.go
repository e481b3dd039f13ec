// SPDX-License-Identifier: MIT
// Package: gng/builder
//
// impl_lattice.go — implementation of Lattice(rows, cols).
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood: the self-organizing-map seed.
//   • Units are emitted row-major, so on an empty graph the unit at (r,c)
//     carries id r*cols+c — callers can map coordinates to ids directly.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   • For each (r,c), edges to the right (r,c+1) and bottom (r+1,c)
//     neighbors where they exist, in that order.
//
// Complexity:
//   • O(rows·cols) units + O(rows·cols) edge emissions.
//
// Determinism:
//   • Stable unit order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/neuralgas/gng/core"
)

const (
	methodLattice = "Lattice"
	minLatticeDim = 1
)

// Lattice returns a Constructor that seeds a rows×cols orthogonal grid.
func Lattice(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minLatticeDim || cols < minLatticeDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodLattice, rows, cols, minLatticeDim, ErrTooFewNodes)
		}

		// 2) Emit all units in row-major order.
		ids, err := seedUnits(g, cfg, methodLattice, rows*cols)
		if err != nil {
			return err
		}

		// 3) Wire the 4-neighborhood: Right then Bottom per cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := ids[r*cols+c]
				if c+1 < cols {
					if err = g.AddEdge(at, ids[r*cols+c+1]); err != nil {
						return fmt.Errorf("%s: right edge at (%d,%d): %w", methodLattice, r, c, err)
					}
				}
				if r+1 < rows {
					if err = g.AddEdge(at, ids[(r+1)*cols+c]); err != nil {
						return fmt.Errorf("%s: bottom edge at (%d,%d): %w", methodLattice, r, c, err)
					}
				}
			}
		}

		return nil
	}
}
