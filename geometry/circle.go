// SPDX-License-Identifier: MIT

package geometry

import "math"

// containsTolerance absorbs rounding when testing points on a circle's rim.
const containsTolerance = 1e-9

// Circle is a disk given by its center and radius.
type Circle struct {
	Center Vec
	Radius float64
}

// Area returns πr².
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Contains reports whether p lies in the closed disk, with a small relative tolerance.
func (c Circle) Contains(p Vec) bool {
	return Distance(c.Center, p) <= c.Radius+containsTolerance*math.Max(1, c.Radius)
}

// circleFrom2 is the smallest circle through a and b.
func circleFrom2(a, b Vec) Circle {
	m := Midpoint(a, b)
	return Circle{Center: m, Radius: Distance(m, a)}
}

// circleFrom3 is the circumcircle of a, b, c; for collinear input it falls
// back to the circle over the farthest pair.
func circleFrom3(a, b, c Vec) Circle {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		best := circleFrom2(a, b)
		for _, cand := range []Circle{circleFrom2(a, c), circleFrom2(b, c)} {
			if cand.Radius > best.Radius {
				best = cand
			}
		}
		return best
	}
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	ux := (cy*b2 - by*c2) / d
	uy := (bx*c2 - cx*b2) / d
	center := Vec{X: a.X + ux, Y: a.Y + uy}
	return Circle{Center: center, Radius: math.Hypot(ux, uy)}
}

// SmallestEnclosingCircle returns the minimum-radius circle containing all
// points (iterative Welzl, processed in input order so results are
// deterministic). An empty input yields the zero circle.
func SmallestEnclosingCircle(pts []Vec) Circle {
	if len(pts) == 0 {
		return Circle{}
	}
	c := Circle{Center: pts[0]}
	for i := 1; i < len(pts); i++ {
		if c.Contains(pts[i]) {
			continue
		}
		c = Circle{Center: pts[i]}
		for j := 0; j < i; j++ {
			if c.Contains(pts[j]) {
				continue
			}
			c = circleFrom2(pts[i], pts[j])
			for k := 0; k < j; k++ {
				if !c.Contains(pts[k]) {
					c = circleFrom3(pts[i], pts[j], pts[k])
				}
			}
		}
	}
	return c
}
