// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and position access.
// Determinism:
//   - AddVertex hands out increasing ids; removed ids are never reused.
//   - Vertices() is sorted ascending.

package planar

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polydual/geometry"
)

// AddVertex inserts a vertex at pos and returns its new id.
// It never fails; positions are expected to be finite (SetPosition validates).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(pos geometry.Vec) VertexID {
	id := g.nextID
	for {
		if _, used := g.positions[id]; !used {
			break
		}
		id++
	}
	g.nextID = id + 1
	g.positions[id] = pos
	g.adjacency[id] = make(map[VertexID]struct{})

	return id
}

// AddVertexWithID inserts a vertex with a caller-chosen id.
// Returns ErrVertexExists if the id is taken, ErrInvalidPosition for NaN/Inf.
// Complexity: O(1) amortized.
func (g *Graph) AddVertexWithID(id VertexID, pos geometry.Vec) error {
	if _, used := g.positions[id]; used {
		return fmt.Errorf("AddVertexWithID(%d): %w", id, ErrVertexExists)
	}
	if !geometry.IsFinite(pos) {
		return fmt.Errorf("AddVertexWithID(%d): %w", id, ErrInvalidPosition)
	}
	g.positions[id] = pos
	g.adjacency[id] = make(map[VertexID]struct{})
	if id >= g.nextID {
		g.nextID = id + 1
	}

	return nil
}

// RemoveVertex deletes the vertex and every incident edge.
// Returns ErrUnknownVertex if it does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id VertexID) error {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", id, ErrUnknownVertex)
	}
	for n := range nbrs {
		delete(g.adjacency[n], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.positions, id)

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id VertexID) bool {
	_, ok := g.positions[id]
	return ok
}

// Position returns the stored position of id.
func (g *Graph) Position(id VertexID) (geometry.Vec, error) {
	p, ok := g.positions[id]
	if !ok {
		return geometry.Zero, fmt.Errorf("Position(%d): %w", id, ErrUnknownVertex)
	}
	return p, nil
}

// pos is the unchecked position lookup used by algorithms that already
// iterate over existing ids.
func (g *Graph) pos(id VertexID) geometry.Vec { return g.positions[id] }

// SetPosition moves a single vertex.
func (g *Graph) SetPosition(id VertexID, p geometry.Vec) error {
	return g.SetPositions(map[VertexID]geometry.Vec{id: p})
}

// SetPositions moves several vertices as one atomic update: either every
// listed vertex moves or, on the first unknown id or non-finite position,
// none does.
// Complexity: O(k) for k entries.
func (g *Graph) SetPositions(moves map[VertexID]geometry.Vec) error {
	for id, p := range moves {
		if _, ok := g.positions[id]; !ok {
			return fmt.Errorf("SetPositions(%d): %w", id, ErrUnknownVertex)
		}
		if !geometry.IsFinite(p) {
			return fmt.Errorf("SetPositions(%d): %w", id, ErrInvalidPosition)
		}
	}
	for id, p := range moves {
		g.positions[id] = p
	}

	return nil
}

// Positions returns a copy of every vertex position.
func (g *Graph) Positions() map[VertexID]geometry.Vec {
	out := make(map[VertexID]geometry.Vec, len(g.positions))
	for id, p := range g.positions {
		out[id] = p
	}
	return out
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, 0, len(g.positions))
	for id := range g.positions {
		out = append(out, id)
	}
	sortIDs(out)
	return out
}

// Degree returns the number of incident edges, or 0 for an unknown vertex.
func (g *Graph) Degree(id VertexID) int { return len(g.adjacency[id]) }

// sortIDs sorts ids ascending in place.
func sortIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
