// SPDX-License-Identifier: MIT
//
// File: complexity.go
// Role: Polygon complexity after Brinkhoff et al.: boundary amplitude,
//       notch frequency and convexity deficit.

package quality

import (
	"math"

	"github.com/katalvlaran/polydual/dual"
	"github.com/katalvlaran/polydual/geometry"
)

// PolygonComplexityName is the registry name of PolygonComplexity.
const PolygonComplexityName = "polygon_complexity"

// Complexity weights.
const (
	amplitudeWeight = 0.8
	convexityWeight = 0.2
)

// reflexTolerance keeps straight corners from counting as notches.
const reflexTolerance = 1e-9

// PolygonComplexity scores region shape in [0,1]; convex regular shapes score 0.
type PolygonComplexity struct{}

// Name implements Evaluator.
func (PolygonComplexity) Name() string { return PolygonComplexityName }

// Evaluate implements Evaluator.
func (PolygonComplexity) Evaluate(d *dual.Dual) Scores {
	out := make(Scores, d.Len())
	for _, r := range d.Faces() {
		poly, err := d.Polygon(r.Name)
		if err != nil {
			out[r.Name] = 0
			continue
		}
		out[r.Name] = Complexity(poly)
	}
	return out
}

// Complexity is 0.8*Amplitude*Frequency + 0.2*Convexity, clamped to [0,1].
func Complexity(p geometry.Polygon) float64 {
	return clamp01(amplitudeWeight*Amplitude(p)*Frequency(p) + convexityWeight*Convexity(p))
}

// Amplitude is the perimeter excess over the convex hull perimeter,
// relative to the perimeter.
func Amplitude(p geometry.Polygon) float64 {
	perim := p.Perimeter()
	if perim <= 0 {
		return 0
	}
	return clamp01((perim - geometry.ConvexHull(p).Perimeter()) / perim)
}

// Convexity is the area deficit against the regular polygon with as many
// corners inscribed in the smallest enclosing circle.
func Convexity(p geometry.Polygon) float64 {
	reg := geometry.RegularPolygonArea(len(p), geometry.SmallestEnclosingCircle(p).Radius)
	if reg <= 0 {
		return 0
	}
	return clamp01((reg - p.Area()) / reg)
}

// Frequency maps the notch fraction nn to 16(nn-0.5)^4 - 8(nn-0.5)^2 + 1,
// which peaks at 1 for nn=0.5 and is 0 at either end.
func Frequency(p geometry.Polygon) float64 {
	nn := NotchFraction(p)
	x := nn - 0.5
	return clamp01(16*math.Pow(x, 4) - 8*x*x + 1)
}

// NotchFraction is the number of reflex corners over n-3; a triangle has none.
func NotchFraction(p geometry.Polygon) float64 {
	n := len(p)
	if n <= 3 {
		return 0
	}
	var notches int
	for _, a := range p.InteriorAngles() {
		if a.Turns() > 0.5+reflexTolerance {
			notches++
		}
	}
	return clamp01(float64(notches) / float64(n-3))
}
