// SPDX-License-Identifier: MIT
//
// Package quality scores a settled polygonal dual, one value per region.
//
// Evaluators are read-only: Evaluate never mutates the dual, and evaluating
// the same unmodified dual twice yields identical Scores. Degenerate
// geometry (zero area, zero perimeter, fewer than three corners) scores 0
// on the affected term instead of failing.
//
// Two evaluators are provided:
//
//	CartographicError  - |normalized area - weight| / max(normalized area, weight)
//	PolygonComplexity  - 0.8*amplitude*frequency + 0.2*convexity, in [0,1]
//
// Lookup by name (ByName) lets configuration select evaluators.
package quality
