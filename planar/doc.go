// SPDX-License-Identifier: MIT
//
// Package planar provides an undirected, straight-line embedded graph: every
// vertex carries a 2D position and the rotational order of edges around a
// vertex is derived from those positions.
//
// The Graph G = (V,E) guarantees:
//
//   - Simple graph: no self-loops and no parallel edges (ErrInvalidEdge).
//   - Ordered identity: VertexID is an int64; Vertices(), Edges() and
//     Neighbors() return sorted results.
//   - Rotational order on demand: RotationalNeighbors() sorts by the angle of
//     each incident edge at the vertex. Nothing is cached, so the order is
//     always consistent with the current positions.
//   - Face tracing: Faces() walks every half-edge once and returns an
//     Embedding with the inner faces (counter-clockwise) and the single outer
//     face (clockwise, negative signed area).
//
// Core Methods:
//
//	AddVertex(pos) VertexID                 // O(1)
//	AddVertexWithID(id, pos) error          // O(1)
//	RemoveVertex(id) error                  // O(deg(v))
//	AddEdge(u, v) error                     // O(1)
//	RemoveEdge(u, v) error                  // O(1)
//	SetPositions(map) error                 // O(k), all-or-nothing
//	RotationalNeighbors(id) ([]VertexID, error) // O(d·log d)
//	Faces() *Embedding                      // O(E·log d)
//	Crossings() []Crossing                  // O(E²)
//
// Concurrency: a Graph has exactly one logical owner. There is no internal
// locking; callers serialize access (see package engine for one way to do it).
//
// Errors:
//
//	ErrUnknownVertex   - an operation referenced a vertex that does not exist.
//	ErrVertexExists    - AddVertexWithID with an id already in use.
//	ErrInvalidEdge     - self-loop, duplicate edge, missing edge, or missing endpoint.
//	ErrInvalidPosition - NaN or infinite coordinates.
package planar
