// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries: id order and rotational (angular) order.
// Determinism:
//   - Neighbors() is sorted by id.
//   - RotationalNeighbors() is sorted counter-clockwise by the angle of the
//     edge at the vertex; exact angle ties fall back to distance, then id.

package planar

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polydual/geometry"
)

// Neighbors returns the ids adjacent to id in ascending order.
// Returns ErrUnknownVertex if id does not exist.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrUnknownVertex)
	}
	out := make([]VertexID, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sortIDs(out)

	return out, nil
}

// RotationalNeighbors returns the neighbors of id sorted counter-clockwise by
// the direction of the connecting edge, starting from the +X axis.
// The order is recomputed from the current positions on every call.
// Returns ErrUnknownVertex if id does not exist.
// Complexity: O(d·log d).
func (g *Graph) RotationalNeighbors(id VertexID) ([]VertexID, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("RotationalNeighbors(%d): %w", id, ErrUnknownVertex)
	}
	return g.rotation(id), nil
}

// rotation is RotationalNeighbors without the existence check.
func (g *Graph) rotation(id VertexID) []VertexID {
	center := g.pos(id)
	nbrs := g.adjacency[id]
	out := make([]VertexID, 0, len(nbrs))
	angles := make(map[VertexID]geometry.Angle, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
		angles[n] = geometry.AngleOf(geometry.Sub(g.pos(n), center))
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := angles[out[i]], angles[out[j]]
		if ai != aj {
			return ai.Less(aj)
		}
		di := geometry.Distance(center, g.pos(out[i]))
		dj := geometry.Distance(center, g.pos(out[j]))
		if di != dj {
			return di < dj
		}
		return out[i] < out[j]
	})

	return out
}

// NextAround returns the neighbor of v that follows u counter-clockwise
// around v. Returns ErrInvalidEdge if {u,v} does not exist.
func (g *Graph) NextAround(v, u VertexID) (VertexID, error) {
	if !g.HasEdge(u, v) {
		return 0, fmt.Errorf("NextAround(%d,%d): %w", v, u, ErrInvalidEdge)
	}
	rot := g.rotation(v)
	i := indexOf(rot, u)
	return rot[(i+1)%len(rot)], nil
}

// PrevAround returns the neighbor of v that precedes u counter-clockwise
// around v (the next one clockwise). Returns ErrInvalidEdge if {u,v} does not exist.
func (g *Graph) PrevAround(v, u VertexID) (VertexID, error) {
	if !g.HasEdge(u, v) {
		return 0, fmt.Errorf("PrevAround(%d,%d): %w", v, u, ErrInvalidEdge)
	}
	rot := g.rotation(v)
	i := indexOf(rot, u)
	return rot[(i-1+len(rot))%len(rot)], nil
}

// indexOf returns the position of id in ids or -1.
func indexOf(ids []VertexID, id VertexID) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}
