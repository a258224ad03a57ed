// SPDX-License-Identifier: MIT

package geometry

import "math"

// Segment is the closed straight segment between A and B.
type Segment struct {
	A, B Vec
}

// Seg is shorthand for Segment{A: a, B: b}.
func Seg(a, b Vec) Segment { return Segment{A: a, B: b} }

// Vector returns B-A.
func (s Segment) Vector() Vec { return Sub(s.B, s.A) }

// Length returns |B-A|.
func (s Segment) Length() float64 { return Distance(s.A, s.B) }

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Vec { return Midpoint(s.A, s.B) }

// Param returns the unclamped parameter t of p's perpendicular projection
// onto the supporting line, where t=0 is A and t=1 is B.
// A zero-length segment reports t=0.
func (s Segment) Param(p Vec) float64 {
	d := s.Vector()
	l2 := Dot(d, d)
	if l2 == 0 {
		return 0
	}
	return Dot(Sub(p, s.A), d) / l2
}

// At returns A + t*(B-A).
func (s Segment) At(t float64) Vec { return Add(s.A, Scale(s.Vector(), t)) }

// ClosestPoint returns the point of the segment nearest to p; the projection
// is clamped to the segment ends.
func (s Segment) ClosestPoint(p Vec) Vec {
	t := s.Param(p)
	switch {
	case t <= 0:
		return s.A
	case t >= 1:
		return s.B
	}
	return s.At(t)
}

// DistanceTo returns the distance from p to the nearest point of the segment.
func (s Segment) DistanceTo(p Vec) float64 { return Distance(p, s.ClosestPoint(p)) }

// Intersects reports whether the two closed segments share at least one
// point. Touching endpoints and collinear overlaps count as intersections.
func (s Segment) Intersects(o Segment) bool {
	d1 := Orientation(o.A, o.B, s.A)
	d2 := Orientation(o.A, o.B, s.B)
	d3 := Orientation(s.A, s.B, o.A)
	d4 := Orientation(s.A, s.B, o.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && withinBox(o, s.A):
		return true
	case d2 == 0 && withinBox(o, s.B):
		return true
	case d3 == 0 && withinBox(s, o.A):
		return true
	case d4 == 0 && withinBox(s, o.B):
		return true
	}
	return false
}

// withinBox reports whether a point known to be collinear with s lies on it.
func withinBox(s Segment, p Vec) bool {
	return p.X >= math.Min(s.A.X, s.B.X) && p.X <= math.Max(s.A.X, s.B.X) &&
		p.Y >= math.Min(s.A.Y, s.B.Y) && p.Y <= math.Max(s.A.Y, s.B.Y)
}

// Line is an infinite line through P with direction Dir.
type Line struct {
	P, Dir Vec
}

// LineThrough returns the line through a and b, directed from a to b.
func LineThrough(a, b Vec) Line { return Line{P: a, Dir: Sub(b, a)} }

// Side returns a positive value when p is left of the directed line,
// negative when right and zero when on it.
func (l Line) Side(p Vec) float64 { return Cross(l.Dir, Sub(p, l.P)) }

// Project returns the perpendicular projection of p onto the line.
func (l Line) Project(p Vec) Vec {
	l2 := Dot(l.Dir, l.Dir)
	if l2 == 0 {
		return l.P
	}
	return Add(l.P, Scale(l.Dir, Dot(Sub(p, l.P), l.Dir)/l2))
}

// DistanceTo returns the perpendicular distance from p to the line.
func (l Line) DistanceTo(p Vec) float64 { return Distance(p, l.Project(p)) }
