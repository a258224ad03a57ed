// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polydual/builder"
	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
)

// TestBuilders_Functional checks counts, planarity and face counts of every fixture.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ctor       builder.Constructor
		wantV      int
		wantE      int
		wantInner  int
		extraCheck func(t *testing.T, g *planar.WeightedGraph)
	}{
		{
			name: "Diamond", ctor: builder.Diamond(), wantV: 4, wantE: 5, wantInner: 2,
			extraCheck: func(t *testing.T, g *planar.WeightedGraph) {
				id, ok := g.VertexByName("A")
				require.True(t, ok)
				p, err := g.Position(id)
				require.NoError(t, err)
				assert.InDelta(t, 0, p.X, 1e-9)
				assert.InDelta(t, 130, p.Y, 1e-9)
			},
		},
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5, wantInner: 1},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6), wantV: 6, wantE: 10, wantInner: 5,
			extraCheck: func(t *testing.T, g *planar.WeightedGraph) {
				hub, ok := g.VertexByName("F")
				require.True(t, ok)
				assert.Equal(t, 5, g.Degree(hub))
			},
		},
		{name: "Fan(5)", ctor: builder.Fan(5), wantV: 5, wantE: 7, wantInner: 3},
		{name: "TriangulatedGrid(3,4)", ctor: builder.TriangulatedGrid(3, 4), wantV: 12, wantE: 23, wantInner: 12},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.True(t, g.IsPlane())
			assert.True(t, g.Connected())
			assert.Len(t, g.Faces().InnerFaces(), tc.wantInner)
			if tc.extraCheck != nil {
				tc.extraCheck(t, g)
			}
		})
	}
}

// TestBuilders_TooSmall verifies the size sentinels.
func TestBuilders_TooSmall(t *testing.T) {
	for _, ctor := range []builder.Constructor{
		builder.Cycle(2), builder.Wheel(3), builder.Fan(2), builder.TriangulatedGrid(1, 5),
	} {
		_, err := builder.Build(ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

// TestJitteredGrid_NeedsRandAndIsDeterministic checks rng policy and reproducibility.
func TestJitteredGrid_NeedsRandAndIsDeterministic(t *testing.T) {
	_, err := builder.Build(builder.JitteredGrid(3, 3, 0.1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(builder.JitteredGrid(3, 3, 0.5), builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidParameter)

	a, err := builder.Build(builder.JitteredGrid(3, 3, 0.2), builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Build(builder.JitteredGrid(3, 3, 0.2), builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.True(t, a.IsPlane())
}

// TestOptions covers naming, weights, spacing and origin.
func TestOptions(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3),
		builder.WithIDScheme(builder.SymbolNumberIDFn("v")),
		builder.WithConstantWeight(4),
		builder.WithSpacing(10),
		builder.WithOrigin(geometry.V(5, 5)),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Names())

	id, _ := g.VertexByName("v0")
	l, ok := g.Label(id)
	require.True(t, ok)
	assert.Equal(t, 4.0, l.Weight)
	p, _ := g.Position(id)
	assert.InDelta(t, 15, p.X, 1e-9)
	assert.InDelta(t, 5, p.Y, 1e-9)

	u, err := builder.Build(builder.Cycle(4), builder.WithUniformWeight(2, 3), builder.WithSeed(3))
	require.NoError(t, err)
	for _, n := range u.Names() {
		id, _ := u.VertexByName(n)
		l, _ := u.Label(id)
		assert.GreaterOrEqual(t, l.Weight, 2.0)
		assert.Less(t, l.Weight, 3.0)
	}

	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
}

// TestIDFns pins the naming schemes.
func TestIDFns(t *testing.T) {
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

// TestBuildGraph_Composes applies two constructors and rejects nil.
func TestBuildGraph_Composes(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithOrigin(geometry.V(1000, 0))},
		builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())

	_, err = builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
