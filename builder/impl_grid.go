// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: TriangulatedGrid and JitteredGrid.
//
// Contract:
//   - rows >= 2 and cols >= 2 (else ErrTooFewVertices).
//   - Vertices in row-major order at (c, -r) spacing units.
//   - Edges per cell: right, down, and the (r,c)-(r+1,c+1) diagonal.
//   - JitteredGrid moves every vertex by up to jitter spacing units per axis;
//     it needs an RNG (ErrNeedRandSource) and jitter in [0, MaxJitter].
//
// Determinism: stable row-major emission; jitter draws follow the same order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polydual/planar"
)

const (
	methodTriangulatedGrid = "TriangulatedGrid"
	methodJitteredGrid     = "JitteredGrid"
	minGridDim             = 2

	// MaxJitter keeps every grid triangle positively oriented.
	MaxJitter = 0.2
)

// TriangulatedGrid returns a Constructor for a rows x cols triangulated lattice.
func TriangulatedGrid(rows, cols int) Constructor {
	return func(g *planar.WeightedGraph, cfg builderConfig) error {
		return grid(methodTriangulatedGrid, g, cfg, rows, cols, 0)
	}
}

// JitteredGrid is TriangulatedGrid with every vertex displaced at random.
func JitteredGrid(rows, cols int, jitter float64) Constructor {
	return func(g *planar.WeightedGraph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodJitteredGrid, ErrNeedRandSource)
		}
		if jitter < 0 || jitter > MaxJitter {
			return fmt.Errorf("%s: jitter=%g not in [0,%g]: %w", methodJitteredGrid, jitter, MaxJitter, ErrInvalidParameter)
		}
		return grid(methodJitteredGrid, g, cfg, rows, cols, jitter)
	}
}

func grid(method string, g *planar.WeightedGraph, cfg builderConfig, rows, cols int, jitter float64) error {
	if rows < minGridDim || cols < minGridDim {
		return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
			method, rows, cols, minGridDim, ErrTooFewVertices)
	}
	e := newEmitter(method, g, cfg)
	ids := make([][]planar.VertexID, rows)
	for r := 0; r < rows; r++ {
		ids[r] = make([]planar.VertexID, cols)
		for c := 0; c < cols; c++ {
			x, y := float64(c), -float64(r)
			if jitter > 0 {
				x += (2*cfg.rng.Float64() - 1) * jitter
				y += (2*cfg.rng.Float64() - 1) * jitter
			}
			id, err := e.vertex(x, y)
			if err != nil {
				return err
			}
			ids[r][c] = id
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := e.edge(ids[r][c], ids[r][c+1]); err != nil {
					return err
				}
			}
			if r+1 < rows {
				if err := e.edge(ids[r][c], ids[r+1][c]); err != nil {
					return err
				}
			}
			if r+1 < rows && c+1 < cols {
				if err := e.edge(ids[r][c], ids[r+1][c+1]); err != nil {
					return err
				}
			}
		}
	}
	if !g.IsPlane() {
		return fmt.Errorf("%s: drawing has crossings: %w", method, ErrConstructFailed)
	}
	return nil
}
