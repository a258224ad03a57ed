// SPDX-License-Identifier: MIT
//
// File: crossings.go
// Role: Straight-line planarity checks against the stored positions.

package planar

import "github.com/katalvlaran/polydual/geometry"

// Crossing is a pair of non-adjacent edges whose segments intersect.
type Crossing struct {
	A, B Edge
}

// Crossings returns every pair of non-adjacent edges that intersect
// (touching counts). Adjacent edges are additionally reported when they
// overlap along a common line beyond their shared endpoint.
// Complexity: O(E²).
func (g *Graph) Crossings() []Crossing {
	edges := g.Edges()
	var out []Crossing
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if g.edgesConflict(edges[i], edges[j]) {
				out = append(out, Crossing{A: edges[i], B: edges[j]})
			}
		}
	}
	return out
}

// IsPlane reports whether the current straight-line drawing has no crossings.
func (g *Graph) IsPlane() bool {
	edges := g.Edges()
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if g.edgesConflict(edges[i], edges[j]) {
				return false
			}
		}
	}
	return true
}

// SegmentConflicts reports whether a straight segment between existing
// vertices u and v would cross any current edge not incident to u or v, or
// pass through a vertex other than u and v. The edge {u,v} itself need not exist.
// Complexity: O(V + E).
func (g *Graph) SegmentConflicts(u, v VertexID) bool {
	cand := NewEdge(u, v)
	seg := geometry.Seg(g.pos(u), g.pos(v))
	for a, nbrs := range g.adjacency {
		if a != u && a != v && seg.DistanceTo(g.pos(a)) == 0 {
			return true
		}
		for b := range nbrs {
			if a >= b {
				continue
			}
			e := Edge{U: a, V: b}
			if e == cand {
				continue
			}
			if g.edgesConflict(cand, e) {
				return true
			}
		}
	}
	return false
}

// edgesConflict reports a crossing between two distinct edges. Edges that
// share one endpoint conflict only when they are collinear and overlap.
func (g *Graph) edgesConflict(a, b Edge) bool {
	sa, sb := g.Segment(a), g.Segment(b)
	if !a.Adjacent(b) {
		return sa.Intersects(sb)
	}
	// Shared endpoint: find it and the two far ends.
	var shared, fa, fb VertexID
	switch {
	case a.U == b.U:
		shared, fa, fb = a.U, a.V, b.V
	case a.U == b.V:
		shared, fa, fb = a.U, a.V, b.U
	case a.V == b.U:
		shared, fa, fb = a.V, a.U, b.V
	default:
		shared, fa, fb = a.V, a.U, b.U
	}
	p, q, r := g.pos(shared), g.pos(fa), g.pos(fb)
	if geometry.Orientation(p, q, r) != 0 {
		return false
	}
	// Collinear: overlapping iff both far ends lie on the same side of p.
	return geometry.Dot(geometry.Sub(q, p), geometry.Sub(r, p)) > 0
}
