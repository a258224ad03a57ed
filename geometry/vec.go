// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is the point/vector type shared by the whole module.
type Vec = r2.Vec

// Zero is the origin.
var Zero = Vec{}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// Add returns p+q.
func Add(p, q Vec) Vec { return r2.Add(p, q) }

// Sub returns p-q.
func Sub(p, q Vec) Vec { return r2.Sub(p, q) }

// Scale returns f*p.
func Scale(p Vec, f float64) Vec { return r2.Scale(f, p) }

// Div returns p/f. Division by zero yields the zero vector.
func Div(p Vec, f float64) Vec {
	if f == 0 {
		return Zero
	}
	return r2.Scale(1/f, p)
}

// Dot returns the dot product of p and q.
func Dot(p, q Vec) float64 { return r2.Dot(p, q) }

// Cross returns the z component of the 3D cross product of p and q.
// Positive when q is counter-clockwise from p.
func Cross(p, q Vec) float64 { return r2.Cross(p, q) }

// Length returns the Euclidean norm of p.
func Length(p Vec) float64 { return r2.Norm(p) }

// Normalize returns the unit vector in the direction of p.
// The zero vector normalizes to the zero vector.
func Normalize(p Vec) Vec {
	l := r2.Norm(p)
	if l == 0 || math.IsNaN(l) {
		return Zero
	}
	return r2.Scale(1/l, p)
}

// Distance returns |p-q|.
func Distance(p, q Vec) float64 { return r2.Norm(r2.Sub(p, q)) }

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Vec) Vec { return r2.Scale(0.5, r2.Add(p, q)) }

// Perp returns p rotated a quarter turn counter-clockwise.
func Perp(p Vec) Vec { return Vec{X: -p.Y, Y: p.X} }

// Centroid returns the arithmetic mean of pts, or Zero for an empty slice.
func Centroid(pts []Vec) Vec {
	if len(pts) == 0 {
		return Zero
	}
	var c Vec
	for _, p := range pts {
		c = r2.Add(c, p)
	}
	return r2.Scale(1/float64(len(pts)), c)
}

// IsFinite reports whether both components are neither NaN nor infinite.
func IsFinite(p Vec) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Orientation returns the signed doubled area of triangle (a,b,c):
// positive for a counter-clockwise turn, negative for clockwise, zero when collinear.
func Orientation(a, b, c Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}
