// SPDX-License-Identifier: MIT

package geometry

import "math"

// Angle is an angle measured in turns and always kept in [0,1).
// One turn is 360 degrees. Arithmetic wraps modulo a full turn, which keeps
// comparisons free of the sign and branch problems of raw radians.
type Angle float64

// Common angles.
const (
	FullTurn    = 1.0
	HalfTurn    = Angle(0.5)
	QuarterTurn = Angle(0.25)
)

// Turns builds a normalized Angle from a value in turns.
func Turns(t float64) Angle {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	t = math.Mod(t, FullTurn)
	if t < 0 {
		t += FullTurn
	}
	// math.Mod of a tiny negative value can round up to exactly one turn.
	if t >= FullTurn {
		t = 0
	}
	return Angle(t)
}

// Radians builds an Angle from radians.
func Radians(r float64) Angle { return Turns(r / (2 * math.Pi)) }

// Degrees builds an Angle from degrees.
func Degrees(d float64) Angle { return Turns(d / 360) }

// AngleOf returns the direction of v measured counter-clockwise from +X.
// The zero vector has angle 0.
func AngleOf(v Vec) Angle {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return Radians(math.Atan2(v.Y, v.X))
}

// AngleBetween returns the counter-clockwise angle swept from direction
// from to direction to.
func AngleBetween(from, to Vec) Angle {
	return AngleOf(to).Sub(AngleOf(from))
}

// Turns returns the angle in turns, in [0,1).
func (a Angle) Turns() float64 { return float64(a) }

// Radians returns the angle in radians, in [0,2π).
func (a Angle) Radians() float64 { return float64(a) * 2 * math.Pi }

// Degrees returns the angle in degrees, in [0,360).
func (a Angle) Degrees() float64 { return float64(a) * 360 }

// Add returns a+b modulo a full turn.
func (a Angle) Add(b Angle) Angle { return Turns(float64(a) + float64(b)) }

// Sub returns a-b modulo a full turn.
func (a Angle) Sub(b Angle) Angle { return Turns(float64(a) - float64(b)) }

// Neg returns the opposite rotation.
func (a Angle) Neg() Angle { return Turns(-float64(a)) }

// Less orders angles by their canonical representative.
func (a Angle) Less(b Angle) bool { return a < b }

// Direction returns the unit vector pointing at angle a.
func (a Angle) Direction() Vec {
	s, c := math.Sincos(a.Radians())
	return Vec{X: c, Y: s}
}

// Sector returns the index of the equal-width sector, out of n, that contains a.
func (a Angle) Sector(n int) int {
	if n <= 0 {
		return 0
	}
	s := int(float64(a) * float64(n))
	if s >= n {
		s = n - 1
	}
	return s
}
