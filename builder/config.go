// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: builderConfig and its deterministic defaults.
//
// Defaults:
//   - idFn     = ExcelColumnIDFn ("A","B",...,"AA",...)
//   - weightFn = DefaultWeightFn (constant DefaultVertexWeight)
//   - rng      = nil (no randomness unless seeded)
//   - spacing  = DefaultSpacing
//   - origin   = (0,0)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/polydual/geometry"
)

// DefaultSpacing is the default distance between neighboring fixture vertices.
const DefaultSpacing = 100.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	weightFn WeightFn
	rng      *rand.Rand
	spacing  float64
	origin   geometry.Vec
}

// newBuilderConfig applies opts over the defaults, last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     ExcelColumnIDFn,
		weightFn: DefaultWeightFn,
		spacing:  DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// at maps fixture coordinates (in spacing units) to the plane.
func (c builderConfig) at(x, y float64) geometry.Vec {
	return geometry.Add(c.origin, geometry.V(x*c.spacing, y*c.spacing))
}
