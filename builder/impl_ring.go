// SPDX-License-Identifier: MIT
//
// File: impl_ring.go
// Role: Cycle(n), Wheel(n) and Fan(n): fixtures built around a circle.
//
// Contract:
//   - Cycle: n >= 3 vertices on a regular polygon of radius spacing.
//   - Wheel: n >= 4; a Cycle(n-1) rim plus a hub at the origin, named last.
//   - Fan:   n >= 3; an apex at the origin, named first, joined to a path of
//     n-1 vertices on a lower arc of radius spacing.
//
// Determinism: rim vertices are emitted counter-clockwise from angle 0.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polydual/planar"
)

const (
	methodCycle = "Cycle"
	methodWheel = "Wheel"
	methodFan   = "Fan"

	minCycleNodes = 3
	minWheelNodes = 4
	minFanNodes   = 3

	// fanSweep is the arc covered by a fan's path, in radians.
	fanSweep = 2 * math.Pi / 3
)

// Cycle returns a Constructor for a regular n-gon.
func Cycle(n int) Constructor {
	return func(g *planar.WeightedGraph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		e := newEmitter(methodCycle, g, cfg)
		_, err := rim(e, n)
		return err
	}
}

// Wheel returns a Constructor for W_n: a rim of n-1 vertices plus a hub.
func Wheel(n int) Constructor {
	return func(g *planar.WeightedGraph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		e := newEmitter(methodWheel, g, cfg)
		ids, err := rim(e, n-1)
		if err != nil {
			return err
		}
		hub, err := e.vertex(0, 0)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := e.edge(hub, id); err != nil {
				return err
			}
		}
		return nil
	}
}

// Fan returns a Constructor for an apex joined to every vertex of a path.
func Fan(n int) Constructor {
	return func(g *planar.WeightedGraph, cfg builderConfig) error {
		if n < minFanNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFan, n, minFanNodes, ErrTooFewVertices)
		}
		e := newEmitter(methodFan, g, cfg)
		apex, err := e.vertex(0, 0)
		if err != nil {
			return err
		}
		k := n - 1
		start := -math.Pi/2 - fanSweep/2
		var prev planar.VertexID
		for i := 0; i < k; i++ {
			a := start + fanSweep*float64(i)/float64(k-1)
			id, err := e.vertex(math.Cos(a), math.Sin(a))
			if err != nil {
				return err
			}
			if err := e.edge(apex, id); err != nil {
				return err
			}
			if i > 0 {
				if err := e.edge(prev, id); err != nil {
					return err
				}
			}
			prev = id
		}
		return nil
	}
}

// rim emits n vertices on the unit circle (in spacing units) and closes the ring.
func rim(e *emitter, n int) ([]planar.VertexID, error) {
	ids := make([]planar.VertexID, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		id, err := e.vertex(math.Cos(a), math.Sin(a))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, e.ring(ids)
}
