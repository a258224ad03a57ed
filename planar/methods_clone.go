// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and snapshots.
// Determinism:
//   - Clone carries nextID so ids handed out by the clone match the original's future ids.

package planar

import "github.com/katalvlaran/polydual/geometry"

// Clone returns a deep copy of the graph: vertices, positions, edges and the
// id counter.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nextID:    g.nextID,
		positions: make(map[VertexID]geometry.Vec, len(g.positions)),
		adjacency: make(map[VertexID]map[VertexID]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id, p := range g.positions {
		c.positions[id] = p
	}
	for id, nbrs := range g.adjacency {
		m := make(map[VertexID]struct{}, len(nbrs))
		for n := range nbrs {
			m[n] = struct{}{}
		}
		c.adjacency[id] = m
	}

	return c
}

// Snapshot is a comparable, ordered view of a graph's full state, useful for
// before/after checks.
type Snapshot struct {
	Vertices  []VertexID
	Positions map[VertexID]geometry.Vec
	Edges     []Edge
}

// Snapshot captures the current vertices, positions and edges.
func (g *Graph) Snapshot() Snapshot {
	return Snapshot{
		Vertices:  g.Vertices(),
		Positions: g.Positions(),
		Edges:     g.Edges(),
	}
}
