// SPDX-License-Identifier: MIT
package quality_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polydual/builder"
	"github.com/katalvlaran/polydual/dual"
	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/quality"
	"github.com/katalvlaran/polydual/transform"
)

func diamondDual(t *testing.T) *dual.Dual {
	t.Helper()
	src, err := builder.Build(builder.Diamond())
	require.NoError(t, err)
	d, err := transform.Transform(src)
	require.NoError(t, err)
	return d
}

func square(s float64) geometry.Polygon {
	return geometry.Polygon{geometry.V(0, 0), geometry.V(s, 0), geometry.V(s, s), geometry.V(0, s)}
}

// lShape is a unit-cell L with one reflex corner at (1,1).
func lShape() geometry.Polygon {
	return geometry.Polygon{
		geometry.V(0, 0), geometry.V(2, 0), geometry.V(2, 1),
		geometry.V(1, 1), geometry.V(1, 2), geometry.V(0, 2),
	}
}

func TestComplexity_SquareIsZero(t *testing.T) {
	p := square(3)
	assert.InDelta(t, 0, quality.Amplitude(p), 1e-12)
	assert.InDelta(t, 0, quality.Convexity(p), 1e-9)
	assert.InDelta(t, 0, quality.NotchFraction(p), 1e-12)
	assert.InDelta(t, 0, quality.Complexity(p), 1e-9)
}

func TestComplexity_LShape(t *testing.T) {
	p := lShape()

	ampl := (8 - (6 + math.Sqrt2)) / 8
	assert.InDelta(t, ampl, quality.Amplitude(p), 1e-9)

	reg := geometry.RegularPolygonArea(6, math.Sqrt2)
	conv := (reg - 3) / reg
	assert.InDelta(t, conv, quality.Convexity(p), 1e-9)

	assert.InDelta(t, 1.0/3, quality.NotchFraction(p), 1e-12)
	x := 1.0/3 - 0.5
	freq := 16*math.Pow(x, 4) - 8*x*x + 1
	assert.InDelta(t, freq, quality.Frequency(p), 1e-12)

	assert.InDelta(t, 0.8*ampl*freq+0.2*conv, quality.Complexity(p), 1e-9)
}

func TestComplexity_Degenerate(t *testing.T) {
	assert.Zero(t, quality.Complexity(nil))
	assert.Zero(t, quality.Complexity(geometry.Polygon{geometry.V(0, 0), geometry.V(1, 0)}))
	tri := geometry.Polygon{geometry.V(0, 0), geometry.V(1, 0), geometry.V(0, 1)}
	assert.Zero(t, quality.NotchFraction(tri))
	assert.Zero(t, quality.Frequency(tri))
}

func TestCartographicError_Values(t *testing.T) {
	d := diamondDual(t)
	for _, n := range d.Names() {
		a, err := d.Area(n)
		require.NoError(t, err)
		require.NoError(t, d.AdjustWeight(n, a))
	}
	for _, s := range (quality.CartographicError{}).Evaluate(d).Sorted() {
		assert.InDelta(t, 0, s.Value, 1e-9, s.Name)
	}

	require.NoError(t, d.AdjustWeight("A", 0))
	assert.InDelta(t, 1, (quality.CartographicError{}).Evaluate(d)["A"], 1e-12)

	for _, n := range d.Names() {
		require.NoError(t, d.AdjustWeight(n, 0))
	}
	assert.Zero(t, (quality.CartographicError{}).Evaluate(d).Max())
}

func TestEvaluators_AreIdempotentAndReadOnly(t *testing.T) {
	src, err := builder.Build(builder.JitteredGrid(3, 3, 0.15), builder.WithSeed(3), builder.WithUniformWeight(1, 5))
	require.NoError(t, err)
	d, err := transform.Transform(src)
	require.NoError(t, err)

	before := d.Snapshot()
	for _, name := range quality.Names() {
		ev, err := quality.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, ev.Name())

		first, second := ev.Evaluate(d), ev.Evaluate(d)
		assert.Equal(t, first, second)
		assert.Len(t, first, d.Len())
		for _, s := range first.Sorted() {
			assert.GreaterOrEqual(t, s.Value, 0.0)
			assert.LessOrEqual(t, s.Value, 1.0)
		}
	}
	assert.Empty(t, cmp.Diff(before, d.Snapshot()))
}

func TestScores_Aggregates(t *testing.T) {
	s := quality.Scores{"b": 0.5, "a": 0.1, "c": 0.3}
	assert.InDelta(t, 0.3, s.Mean(), 1e-12)
	assert.Equal(t, 0.5, s.Max())
	assert.Equal(t, []quality.Score{{Name: "a", Value: 0.1}, {Name: "b", Value: 0.5}, {Name: "c", Value: 0.3}}, s.Sorted())

	var empty quality.Scores
	assert.Zero(t, empty.Mean())
	assert.Zero(t, empty.Max())
	assert.Empty(t, empty.Sorted())
}

func TestByName_Unknown(t *testing.T) {
	_, err := quality.ByName("entropy")
	assert.ErrorIs(t, err, quality.ErrUnknownEvaluator)
}
