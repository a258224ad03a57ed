// SPDX-License-Identifier: MIT
//
// Package transform builds the initial polygonal dual of a vertex-weighted
// plane graph: every source vertex becomes one region with the vertex's
// name and weight, and two regions share a boundary edge exactly when their
// source vertices are joined by an edge.
//
// The source graph must be plane (no crossings), connected, and free of
// bridges and cut vertices, so that every face walk is a simple cycle.
//
// Dual vertex placement, for a source edge e and inner source face F:
//
//	interior e         m_e  at the midpoint of e
//	boundary e         o_e  at the midpoint of e
//	                   s_e  halfway between o_e and the point of F
//	inner face F       t_F  at the mean of F's vertices
//	outer vertex v     c_v  at v
//
// Errors:
//
//	ErrInvalidInput                    - the source graph violates a precondition.
//	ErrConstructionInvariantViolation  - the built dual fails validation.
package transform
