// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexID, Edge and Graph declarations, sentinel errors, constructor.

package planar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polydual/geometry"
)

// Sentinel errors for planar graph operations.
var (
	// ErrUnknownVertex indicates an operation referenced a non-existent vertex.
	ErrUnknownVertex = errors.New("planar: unknown vertex")

	// ErrVertexExists indicates AddVertexWithID was given an id already in use.
	ErrVertexExists = errors.New("planar: vertex already exists")

	// ErrInvalidEdge indicates a self-loop, a duplicate edge, a missing edge
	// on removal, or an edge whose endpoint does not exist.
	ErrInvalidEdge = errors.New("planar: invalid edge")

	// ErrInvalidPosition indicates a NaN or infinite coordinate.
	ErrInvalidPosition = errors.New("planar: invalid position")
)

// VertexID is the stable, ordered identity of a vertex.
type VertexID int64

// Edge is an unordered vertex pair stored canonically with U < V.
type Edge struct {
	U, V VertexID
}

// NewEdge returns the canonical Edge between a and b.
func NewEdge(a, b VertexID) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{U: a, V: b}
}

// Other returns the endpoint opposite to v.
func (e Edge) Other(v VertexID) VertexID {
	if e.U == v {
		return e.V
	}
	return e.U
}

// Has reports whether v is an endpoint.
func (e Edge) Has(v VertexID) bool { return e.U == v || e.V == v }

// Adjacent reports whether the two edges share an endpoint.
func (e Edge) Adjacent(o Edge) bool {
	return e.U == o.U || e.U == o.V || e.V == o.U || e.V == o.V
}

// String renders "u-v".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.U, e.V) }

// Graph is an undirected graph of positioned vertices.
//
// adjacency[u][v] exists iff the edge {u,v} exists; both directions are stored.
type Graph struct {
	nextID    VertexID
	positions map[VertexID]geometry.Vec
	adjacency map[VertexID]map[VertexID]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph. Vertex ids start at 1.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nextID:    1,
		positions: make(map[VertexID]geometry.Vec),
		adjacency: make(map[VertexID]map[VertexID]struct{}),
	}
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.positions) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return g.edgeCount }
