// SPDX-License-Identifier: MIT

package geometry

import "sort"

// ConvexHull returns the convex hull of pts as a counter-clockwise ring
// (Andrew's monotone chain). Collinear points on the hull are dropped.
// Inputs with fewer than three points are returned verbatim (copied).
func ConvexHull(pts []Vec) Polygon {
	if len(pts) < 3 {
		out := make(Polygon, len(pts))
		copy(out, pts)
		return out
	}
	sorted := make([]Vec, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	hull := make(Polygon, 0, 2*len(sorted))
	// Lower chain.
	for _, p := range sorted {
		for len(hull) >= 2 && Orientation(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper chain.
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && Orientation(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}
