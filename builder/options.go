// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options. Constructors of options validate and panic on
// meaningless inputs; Constructors themselves never panic.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/polydual/geometry"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithWeightFn sets the vertex weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpacing sets the distance between neighboring vertices.
// Panics unless spacing is finite and > 0.
func WithSpacing(spacing float64) BuilderOption {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		panic("builder: WithSpacing(spacing<=0)")
	}
	return func(c *builderConfig) { c.spacing = spacing }
}

// WithOrigin translates every fixture so that its reference point lands on p.
// Panics on a non-finite point.
func WithOrigin(p geometry.Vec) BuilderOption {
	if !geometry.IsFinite(p) {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) { c.origin = p }
}

// WithConstantWeight sets every vertex weight to w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws vertex weights from U[min,max]; needs an RNG.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
