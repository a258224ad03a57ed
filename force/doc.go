// SPDX-License-Identifier: MIT
//
// Package force moves the vertices of a polygonal dual toward a layout whose
// region areas follow region weights, without ever creating a crossing.
//
// Computer sums up to five terms per vertex, each scaled by its own strength
// (a zero strength skips the term):
//
//	repulsion       k/d^2 between vertex pairs, pushing them apart
//	attraction      k*log(d/L) along every edge (L = ReferenceLength)
//	edge repulsion  k/d^2 from the closest point of every non-incident edge
//	pressure        k*log(weight share / area share) along each region's
//	                outward vertex normals
//	angle           pushes each region corner toward the regular-polygon angle
//
// Non-finite vectors are logged, listed in Forces.Invalid, and zeroed.
//
// Applicator turns forces into displacements with the PrEd scheme: every
// (vertex, non-incident edge) pair caps how far the three endpoints may move
// toward one another, per angular sector, at one third of their distance.
// Each force is clamped to the cap of its sector and all vertices move in one
// atomic position update. A crossing-free drawing stays crossing-free.
package force
