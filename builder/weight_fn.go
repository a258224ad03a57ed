// SPDX-License-Identifier: MIT
//
// File: weight_fn.go
// Role: Vertex weight distributions. Weights become region weights of the dual.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultVertexWeight is the weight used when no WeightFn is configured.
const DefaultVertexWeight float64 = 1

// WeightFn produces a vertex weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultVertexWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultVertexWeight }

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be >= 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples U[min,max). With a nil RNG it yields
// DefaultVertexWeight. Panics unless 0 <= min <= max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 <= min <= max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultVertexWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}
