// SPDX-License-Identifier: MIT
//
// File: embedding.go
// Role: Face tracing over the rotation system induced by vertex positions.
// Determinism:
//   - Walks start from vertices in ascending id order and their rotational
//     neighbors; InnerFaces() is sorted by canonical boundary.

package planar

import (
	"sort"

	"github.com/katalvlaran/polydual/geometry"
)

// halfEdge is a directed edge from -> to.
type halfEdge struct {
	from, to VertexID
}

// Embedding is the set of faces traced from a Graph at one moment. It does
// not track later mutations of the graph; trace again after edits.
//
// Inner faces are walked with the face on the left of every half-edge, so
// they come out counter-clockwise. The outer face is the single walk with
// the smallest (negative) signed area.
type Embedding struct {
	walks []Face
	outer int
	left  map[halfEdge]int
}

// Faces traces every face of the current embedding.
//
// The walk follows half-edge (u,v) with (v,w), where w is the neighbor of v
// immediately clockwise from u. Each half-edge belongs to exactly one walk.
// Isolated vertices are in no walk. A graph without edges has no faces.
// Complexity: O(E·log d) time, O(E) space.
func (g *Graph) Faces() *Embedding {
	rot := make(map[VertexID][]VertexID, len(g.adjacency))
	at := make(map[halfEdge]int, 2*g.edgeCount)
	for _, v := range g.Vertices() {
		r := g.rotation(v)
		rot[v] = r
		for i, n := range r {
			at[halfEdge{from: v, to: n}] = i
		}
	}

	emb := &Embedding{outer: -1, left: make(map[halfEdge]int, 2*g.edgeCount)}
	for _, v := range g.Vertices() {
		for _, n := range rot[v] {
			start := halfEdge{from: v, to: n}
			if _, seen := emb.left[start]; seen {
				continue
			}
			idx := len(emb.walks)
			var walk Face
			he := start
			for {
				emb.left[he] = idx
				walk = append(walk, he.from)
				// Position of the reverse half-edge in the head's rotation.
				r := rot[he.to]
				i := at[halfEdge{from: he.to, to: he.from}]
				next := halfEdge{from: he.to, to: r[(i-1+len(r))%len(r)]}
				if next == start {
					break
				}
				he = next
			}
			emb.walks = append(emb.walks, walk)
		}
	}

	best := 0.0
	for i, w := range emb.walks {
		a := g.polygon(w).SignedArea()
		if emb.outer < 0 || a < best {
			emb.outer, best = i, a
		}
	}

	return emb
}

// InnerFaces returns every face except the outer one, each counter-clockwise,
// sorted by canonical boundary.
func (e *Embedding) InnerFaces() []Face {
	out := make([]Face, 0, len(e.walks))
	for i, w := range e.walks {
		if i != e.outer {
			out = append(out, w.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessFace(out[i].Canonical(), out[j].Canonical()) })
	return out
}

// OuterFace returns the unbounded face (clockwise), or nil when there are no faces.
func (e *Embedding) OuterFace() Face {
	if e.outer < 0 {
		return nil
	}
	return e.walks[e.outer].Clone()
}

// FaceCount returns the number of traced faces including the outer one.
func (e *Embedding) FaceCount() int { return len(e.walks) }

// FaceLeftOf returns the face to the left of the directed edge u->v.
func (e *Embedding) FaceLeftOf(u, v VertexID) (Face, bool) {
	i, ok := e.left[halfEdge{from: u, to: v}]
	if !ok {
		return nil, false
	}
	return e.walks[i].Clone(), true
}

// IsOuterLeftOf reports whether the outer face lies left of u->v.
func (e *Embedding) IsOuterLeftOf(u, v VertexID) bool {
	i, ok := e.left[halfEdge{from: u, to: v}]
	return ok && i == e.outer
}

// IsOuterEdge reports whether {u,v} borders the outer face on either side.
func (e *Embedding) IsOuterEdge(u, v VertexID) bool {
	return e.IsOuterLeftOf(u, v) || e.IsOuterLeftOf(v, u)
}

// SameFaceBothSides reports whether both half-edges of {u,v} lie on one walk
// (a bridge: the edge is incident to a single face counted twice).
func (e *Embedding) SameFaceBothSides(u, v VertexID) bool {
	a, okA := e.left[halfEdge{from: u, to: v}]
	b, okB := e.left[halfEdge{from: v, to: u}]
	return okA && okB && a == b
}

// Polygon returns the positions of f's boundary in order.
// Returns ErrUnknownVertex if any id is missing.
func (g *Graph) Polygon(f Face) (geometry.Polygon, error) {
	for _, v := range f {
		if !g.HasVertex(v) {
			return nil, ErrUnknownVertex
		}
	}
	return g.polygon(f), nil
}

func (g *Graph) polygon(f Face) geometry.Polygon {
	out := make(geometry.Polygon, len(f))
	for i, v := range f {
		out[i] = g.pos(v)
	}
	return out
}
