// SPDX-License-Identifier: MIT

package quality

import (
	"math"

	"github.com/katalvlaran/polydual/dual"
)

// CartographicErrorName is the registry name of CartographicError.
const CartographicErrorName = "cartographic_error"

// CartographicError measures how far each region's area is from its weight.
// The area share is rescaled by the total weight, so a perfect cartogram
// scores 0 everywhere.
type CartographicError struct{}

// Name implements Evaluator.
func (CartographicError) Name() string { return CartographicErrorName }

// Evaluate implements Evaluator.
func (CartographicError) Evaluate(d *dual.Dual) Scores {
	out := make(Scores, d.Len())
	totalA, totalW := d.TotalArea(), d.TotalWeight()
	for _, r := range d.Faces() {
		var na float64
		if totalA > 0 {
			a, _ := d.Area(r.Name)
			na = a / totalA * totalW
		}
		out[r.Name] = relativeError(na, r.Weight)
	}
	return out
}

// relativeError is |a-b| / max(a,b), and 0 when both are 0.
func relativeError(a, b float64) float64 {
	m := math.Max(a, b)
	if m <= 0 {
		return 0
	}
	return math.Abs(a-b) / m
}
