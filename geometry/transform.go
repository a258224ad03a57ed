// SPDX-License-Identifier: MIT

package geometry

import "math"

// Transform is a 2D affine map:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity leaves every point in place.
func Identity() Transform { return Transform{A: 1, E: 1} }

// Translate moves points by v.
func Translate(v Vec) Transform { return Transform{A: 1, C: v.X, E: 1, F: v.Y} }

// ScaleBy scales about the origin.
func ScaleBy(sx, sy float64) Transform { return Transform{A: sx, E: sy} }

// Rotate rotates counter-clockwise about the origin.
func Rotate(a Angle) Transform {
	s, c := math.Sincos(a.Radians())
	return Transform{A: c, B: -s, D: s, E: c}
}

// Apply maps p.
func (t Transform) Apply(p Vec) Vec {
	return Vec{X: t.A*p.X + t.B*p.Y + t.C, Y: t.D*p.X + t.E*p.Y + t.F}
}

// ApplyAll maps every point into a new slice.
func (t Transform) ApplyAll(pts []Vec) []Vec {
	out := make([]Vec, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}

// Then returns the transform that applies t first and u second.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		A: u.A*t.A + u.B*t.D,
		B: u.A*t.B + u.B*t.E,
		C: u.A*t.C + u.B*t.F + u.C,
		D: u.D*t.A + u.E*t.D,
		E: u.D*t.B + u.E*t.E,
		F: u.D*t.C + u.E*t.F + u.F,
	}
}
