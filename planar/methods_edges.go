// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge queries.
// Determinism:
//   - Edges() is sorted by (U,V) ascending.

package planar

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polydual/geometry"
)

// AddEdge inserts the undirected edge {u,v}.
// Returns ErrInvalidEdge for a self-loop, an existing edge, or a missing
// endpoint (the latter also matches ErrUnknownVertex).
// Complexity: O(1).
func (g *Graph) AddEdge(u, v VertexID) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): self-loop: %w", u, v, ErrInvalidEdge)
	}
	nu, okU := g.adjacency[u]
	nv, okV := g.adjacency[v]
	if !okU || !okV {
		return fmt.Errorf("AddEdge(%d,%d): %w: %w", u, v, ErrInvalidEdge, ErrUnknownVertex)
	}
	if _, dup := nu[v]; dup {
		return fmt.Errorf("AddEdge(%d,%d): duplicate: %w", u, v, ErrInvalidEdge)
	}
	nu[v] = struct{}{}
	nv[u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge {u,v}. Returns ErrInvalidEdge if it does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v VertexID) error {
	if !g.HasEdge(u, v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrInvalidEdge)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u,v} exists.
func (g *Graph) HasEdge(u, v VertexID) bool {
	_, ok := g.adjacency[u][v]
	return ok
}

// Edges returns every edge once, canonical and sorted.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// Segment returns the straight segment realizing e with current positions.
func (g *Graph) Segment(e Edge) geometry.Segment {
	return geometry.Seg(g.pos(e.U), g.pos(e.V))
}
