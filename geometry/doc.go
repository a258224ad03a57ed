// SPDX-License-Identifier: MIT
//
// Package geometry is the pure 2D math kernel used by every other polydual
// package: vectors, angles, segments, lines, circles, polygons, convex hulls
// and affine transforms.
//
// Points and vectors are gonum's r2.Vec. The kernel adds what r2 leaves out
// or defines differently:
//
//   - Normalize(zero) is the zero vector (r2.Unit would yield NaN).
//   - Angle is a dedicated type measured in turns and normalized into [0,1),
//     so arithmetic and comparisons wrap modulo a full turn.
//   - Polygon helpers accept either orientation; interior angles and outward
//     normals are computed relative to the polygon's own orientation.
//
// Everything here is stateless. Degenerate inputs never fail: a hull of fewer
// than three points is returned verbatim, zero-area polygons have the mean of
// their vertices as centroid, and so on.
package geometry
