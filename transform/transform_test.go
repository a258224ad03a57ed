// SPDX-License-Identifier: MIT
package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polydual/builder"
	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
	"github.com/katalvlaran/polydual/transform"
)

// TestTransform_Diamond builds the dual of the two-triangle diamond.
func TestTransform_Diamond(t *testing.T) {
	src, err := builder.Build(builder.Diamond(), builder.WithUniformWeight(1, 5), builder.WithSeed(2))
	require.NoError(t, err)

	d, err := transform.Transform(src)
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	assert.Equal(t, []string{"A", "B", "C", "D"}, d.Names())
	for _, name := range d.Names() {
		id, _ := src.VertexByName(name)
		l, _ := src.Label(id)
		w, err := d.Weight(name)
		require.NoError(t, err)
		assert.Equal(t, l.Weight, w)
	}

	// Region adjacency mirrors the source edges AB, AC, BC, BD, CD.
	want := map[string][]string{
		"A": {"B", "C"},
		"B": {"A", "C", "D"},
		"C": {"A", "B", "D"},
		"D": {"B", "C"},
	}
	for name, nbrs := range want {
		got, err := d.Neighbors(name)
		require.NoError(t, err)
		assert.Equal(t, nbrs, got, name)
	}

	// Every region touches the outer face: all source vertices are on the hull.
	for _, name := range d.Names() {
		touches, err := d.TouchesOuter(name)
		require.NoError(t, err)
		assert.True(t, touches, name)
	}
}

// TestTransform_Fixtures checks region count and adjacency count on larger inputs.
func TestTransform_Fixtures(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"cycle":  builder.Cycle(6),
		"wheel":  builder.Wheel(7),
		"fan":    builder.Fan(6),
		"grid":   builder.TriangulatedGrid(3, 3),
		"square": builder.Cycle(4),
	} {
		ctor := ctor
		t.Run(name, func(t *testing.T) {
			src, err := builder.Build(ctor)
			require.NoError(t, err)
			d, err := transform.Transform(src)
			require.NoError(t, err)
			require.NoError(t, d.Validate())
			assert.Equal(t, src.VertexCount(), d.Len())

			adj := 0
			for _, n := range d.Names() {
				nbrs, _ := d.Neighbors(n)
				adj += len(nbrs)
			}
			assert.Equal(t, 2*src.EdgeCount(), adj)
		})
	}
}

// TestTransform_InteriorVertex checks that the hub of a wheel does not touch the outer face.
func TestTransform_InteriorVertex(t *testing.T) {
	src, err := builder.Build(builder.Wheel(5))
	require.NoError(t, err)
	d, err := transform.New().Transform(src)
	require.NoError(t, err)

	touches, err := d.TouchesOuter("E")
	require.NoError(t, err)
	assert.False(t, touches)
	nbrs, _ := d.Neighbors("E")
	assert.Equal(t, []string{"A", "B", "C", "D"}, nbrs)
}

// TestTransform_RejectsInvalidInput covers each precondition.
func TestTransform_RejectsInvalidInput(t *testing.T) {
	labeled := func(pts ...geometry.Vec) (*planar.WeightedGraph, []planar.VertexID) {
		g := planar.NewWeightedGraph()
		ids := make([]planar.VertexID, len(pts))
		for i, p := range pts {
			id, err := g.AddLabeledVertex(builder.ExcelColumnIDFn(i), 1, p)
			require.NoError(t, err)
			ids[i] = id
		}
		return g, ids
	}
	edges := func(g *planar.WeightedGraph, ids []planar.VertexID, pairs ...[2]int) {
		for _, p := range pairs {
			require.NoError(t, g.AddEdge(ids[p[0]], ids[p[1]]))
		}
	}

	t.Run("nil", func(t *testing.T) {
		_, err := transform.Transform(nil)
		assert.ErrorIs(t, err, transform.ErrInvalidInput)
	})
	t.Run("too small", func(t *testing.T) {
		g, ids := labeled(geometry.V(0, 0), geometry.V(1, 0))
		edges(g, ids, [2]int{0, 1})
		_, err := transform.Transform(g)
		assert.ErrorIs(t, err, transform.ErrInvalidInput)
	})
	t.Run("bridge", func(t *testing.T) {
		g, ids := labeled(geometry.V(0, 0), geometry.V(2, 0), geometry.V(1, 2), geometry.V(4, 0))
		edges(g, ids, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{1, 3})
		_, err := transform.Transform(g)
		assert.ErrorIs(t, err, transform.ErrInvalidInput)
	})
	t.Run("cut vertex", func(t *testing.T) {
		g, ids := labeled(geometry.V(0, 0), geometry.V(2, 1), geometry.V(0, 2),
			geometry.V(4, 0), geometry.V(4, 2))
		edges(g, ids, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{1, 3}, [2]int{3, 4}, [2]int{4, 1})
		_, err := transform.Transform(g)
		assert.ErrorIs(t, err, transform.ErrInvalidInput)
	})
	t.Run("crossing", func(t *testing.T) {
		g, ids := labeled(geometry.V(0, 0), geometry.V(2, 0), geometry.V(2, 2), geometry.V(0, 2))
		edges(g, ids, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}, [2]int{0, 2}, [2]int{1, 3})
		_, err := transform.Transform(g)
		assert.ErrorIs(t, err, transform.ErrInvalidInput)
	})
	t.Run("disconnected", func(t *testing.T) {
		g, ids := labeled(geometry.V(0, 0), geometry.V(2, 0), geometry.V(1, 2), geometry.V(9, 9))
		edges(g, ids, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
		_, err := transform.Transform(g)
		assert.ErrorIs(t, err, transform.ErrInvalidInput)
	})
}
