// SPDX-License-Identifier: MIT
//
// File: impl_diamond.go
// Role: Diamond: two triangles sharing an edge.
//
// Layout (spacing 100, origin 0):
//
//	A(0,130) B(-75,0) C(75,0) D(0,-130); edges AB, AC, BC, BD, CD.

package builder

import "github.com/katalvlaran/polydual/planar"

const methodDiamond = "Diamond"

// Diamond returns a Constructor for the four-vertex diamond.
func Diamond() Constructor {
	return func(g *planar.WeightedGraph, cfg builderConfig) error {
		e := newEmitter(methodDiamond, g, cfg)
		coords := [4][2]float64{{0, 1.3}, {-0.75, 0}, {0.75, 0}, {0, -1.3}}
		var ids [4]planar.VertexID
		for i, c := range coords {
			id, err := e.vertex(c[0], c[1])
			if err != nil {
				return err
			}
			ids[i] = id
		}
		a, b, c, d := ids[0], ids[1], ids[2], ids[3]
		for _, p := range [][2]planar.VertexID{{a, b}, {a, c}, {b, c}, {b, d}, {c, d}} {
			if err := e.edge(p[0], p[1]); err != nil {
				return err
			}
		}
		return nil
	}
}
