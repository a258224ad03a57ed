// SPDX-License-Identifier: MIT

package geometry

import "math"

// Polygon is a closed ring of vertices; the closing edge from the last vertex
// back to the first is implicit. Either orientation is accepted.
type Polygon []Vec

// at returns the vertex at index i modulo len(p).
func (p Polygon) at(i int) Vec {
	n := len(p)
	return p[((i%n)+n)%n]
}

// SignedArea is the shoelace area: positive for counter-clockwise rings.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var s float64
	for i := range p {
		s += Cross(p[i], p.at(i+1))
	}
	return s / 2
}

// Area returns the absolute area.
func (p Polygon) Area() float64 { return math.Abs(p.SignedArea()) }

// IsCCW reports whether the ring is counter-clockwise. Degenerate rings
// (zero area) are treated as counter-clockwise.
func (p Polygon) IsCCW() bool { return p.SignedArea() >= 0 }

// Perimeter returns the length of the closed ring.
func (p Polygon) Perimeter() float64 {
	if len(p) < 2 {
		return 0
	}
	var l float64
	for i := range p {
		l += Distance(p[i], p.at(i+1))
	}
	return l
}

// Centroid returns the area centroid. Rings with zero area fall back to the
// vertex mean.
func (p Polygon) Centroid() Vec {
	a := p.SignedArea()
	if a == 0 {
		return Centroid(p)
	}
	var cx, cy float64
	for i := range p {
		q, r := p[i], p.at(i+1)
		f := Cross(q, r)
		cx += (q.X + r.X) * f
		cy += (q.Y + r.Y) * f
	}
	return Vec{X: cx / (6 * a), Y: cy / (6 * a)}
}

// InteriorAngle returns the angle inside the polygon at vertex i.
// Reflex vertices have angles above a half turn.
func (p Polygon) InteriorAngle(i int) Angle {
	v := p.at(i)
	toPrev := Sub(p.at(i-1), v)
	toNext := Sub(p.at(i+1), v)
	if p.IsCCW() {
		return AngleBetween(toNext, toPrev)
	}
	return AngleBetween(toPrev, toNext)
}

// InteriorAngles returns InteriorAngle for every vertex.
func (p Polygon) InteriorAngles() []Angle {
	out := make([]Angle, len(p))
	for i := range p {
		out[i] = p.InteriorAngle(i)
	}
	return out
}

// edgeNormal is the unit normal of edge a->b pointing out of a polygon with
// the given orientation.
func edgeNormal(a, b Vec, ccw bool) Vec {
	d := Sub(b, a)
	if ccw {
		return Normalize(Vec{X: d.Y, Y: -d.X})
	}
	return Normalize(Vec{X: -d.Y, Y: d.X})
}

// Normal returns the outward unit normal at vertex i: the normalized sum of
// the outward normals of its two edges. A spike whose edges fold back onto
// each other points along the spike.
func (p Polygon) Normal(i int) Vec {
	if len(p) < 3 {
		return Zero
	}
	ccw := p.IsCCW()
	prev, v, next := p.at(i-1), p.at(i), p.at(i+1)
	n := Add(edgeNormal(prev, v, ccw), edgeNormal(v, next, ccw))
	if Length(n) < 1e-12 {
		return Normalize(Sub(v, prev))
	}
	return Normalize(n)
}

// Normals returns Normal for every vertex.
func (p Polygon) Normals() []Vec {
	out := make([]Vec, len(p))
	for i := range p {
		out[i] = p.Normal(i)
	}
	return out
}

// ContainsPoint reports whether q lies strictly inside the ring (even-odd rule).
func (p Polygon) ContainsPoint(q Vec) bool {
	in := false
	for i := range p {
		a, b := p[i], p.at(i+1)
		if (a.Y > q.Y) != (b.Y > q.Y) {
			x := a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if q.X < x {
				in = !in
			}
		}
	}
	return in
}

// IsSimple reports whether no two non-adjacent edges of the ring intersect.
func (p Polygon) IsSimple() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		ei := Seg(p[i], p.at(i+1))
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if ei.Intersects(Seg(p[j], p.at(j+1))) {
				return false
			}
		}
	}
	return true
}

// RegularInteriorAngle is the interior angle of a regular polygon with n
// vertices: (n-2)/(2n) turns. n<3 yields zero.
func RegularInteriorAngle(n int) Angle {
	if n < 3 {
		return 0
	}
	return Turns(float64(n-2) / float64(2*n))
}

// RegularPolygonArea is the area of the regular n-gon inscribed in a circle
// of radius r.
func RegularPolygonArea(n int, r float64) float64 {
	if n < 3 {
		return 0
	}
	return float64(n) / 2 * r * r * math.Sin(2*math.Pi/float64(n))
}
