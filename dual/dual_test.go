// SPDX-License-Identifier: MIT
package dual_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polydual/builder"
	"github.com/katalvlaran/polydual/dual"
	"github.com/katalvlaran/polydual/transform"
)

// gridDual returns the dual of a 3x3 triangulated grid. Regions are named
// A..I in row-major order; E is the only interior region.
func gridDual(t *testing.T) *dual.Dual {
	t.Helper()
	src, err := builder.Build(builder.TriangulatedGrid(3, 3))
	require.NoError(t, err)
	d, err := transform.Transform(src)
	require.NoError(t, err)
	return d
}

func neighbors(t *testing.T, d *dual.Dual, name string) []string {
	t.Helper()
	n, err := d.Neighbors(name)
	require.NoError(t, err)
	return n
}

// TestDual_AdjustWeight checks validation and that topology is untouched.
func TestDual_AdjustWeight(t *testing.T) {
	d := gridDual(t)
	before := d.Graph().Snapshot()

	require.NoError(t, d.AdjustWeight("E", 7.5))
	w, err := d.Weight("E")
	require.NoError(t, err)
	assert.Equal(t, 7.5, w)
	assert.Empty(t, cmp.Diff(before, d.Graph().Snapshot()))

	assert.ErrorIs(t, d.AdjustWeight("nope", 1), dual.ErrUnknownFace)
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, d.AdjustWeight("E", bad), dual.ErrInvalidWeight)
	}
	w, _ = d.Weight("E")
	assert.Equal(t, 7.5, w)
	assert.Equal(t, 7.5+8, d.TotalWeight())
}

// TestDual_EnumeratedOperationsApply verifies that every enumerated instance
// of every kind applies and preserves all invariants.
func TestDual_EnumeratedOperationsApply(t *testing.T) {
	d := gridDual(t)
	total := 0
	for _, kind := range dual.AllKinds {
		ops := d.PossibleOperations(kind, "N", 1)
		total += len(ops)
		for _, op := range ops {
			c := d.Clone()
			require.NoError(t, c.Apply(op), op.String())
			require.NoError(t, c.Validate(), op.String())

			switch kind {
			case dual.InsertFaceInside, dual.InsertFaceOutside:
				assert.Equal(t, d.Len()+1, c.Len())
				assert.True(t, c.Has("N"))
			case dual.RemoveFaceWithoutBoundaryToExternalFace, dual.RemoveFaceWithBoundaryToExternalFace:
				assert.Equal(t, d.Len()-1, c.Len())
				assert.False(t, c.Has(op.Face))
			default:
				assert.Equal(t, d.Len(), c.Len())
			}
		}
	}
	assert.Positive(t, total)
	assert.NotEmpty(t, d.PossibleOperations(dual.InsertFaceInside, "N", 1))
	assert.NotEmpty(t, d.PossibleOperations(dual.RemoveFaceWithoutBoundaryToExternalFace, "", 0))
	assert.NotEmpty(t, d.PossibleOperations(dual.RemoveFaceWithBoundaryToExternalFace, "", 0))
	assert.NoError(t, d.Validate())
}

// TestDual_InsertInside checks the shape and weight of a cut corner.
func TestDual_InsertInside(t *testing.T) {
	d := gridDual(t)
	var op dual.Operation
	for _, cand := range d.PossibleOperations(dual.InsertFaceInside, "N", 2) {
		if cand.Face == "E" {
			op = cand
			break
		}
	}
	require.Equal(t, "E", op.Face)
	before, _ := d.Face("E")

	require.NoError(t, d.Apply(op))
	n, err := d.Face("N")
	require.NoError(t, err)
	assert.Len(t, n.Boundary, 4)
	assert.Equal(t, 2.0, n.Weight)
	after, _ := d.Face("E")
	assert.Len(t, after.Boundary, len(before.Boundary))
	assert.Contains(t, neighbors(t, d, "N"), "E")
}

// TestDual_RemoveInterior merges the interior region into a neighbor.
func TestDual_RemoveInterior(t *testing.T) {
	d := gridDual(t)
	require.NoError(t, d.Apply(dual.Operation{
		Kind: dual.RemoveFaceWithoutBoundaryToExternalFace, Face: "E", Other: "B",
	}))
	require.NoError(t, d.Validate())
	assert.False(t, d.Has("E"))
	assert.Equal(t, []string{"A", "C", "D", "F", "H"}, neighbors(t, d, "B")[:5])
	assert.Contains(t, neighbors(t, d, "B"), "I")
}

// TestDual_RemoveAdjacencyThenCreate contracts and restores the B-E adjacency.
func TestDual_RemoveAdjacencyThenCreate(t *testing.T) {
	d := gridDual(t)
	require.Contains(t, neighbors(t, d, "B"), "E")

	require.NoError(t, d.Apply(dual.Operation{Kind: dual.RemoveAdjacency, Face: "B", Other: "E"}))
	require.NoError(t, d.Validate())
	assert.NotContains(t, neighbors(t, d, "B"), "E")

	create := d.PossibleOperations(dual.CreateAdjacency, "", 0)
	assert.Contains(t, create, dual.Operation{Kind: dual.CreateAdjacency, Face: "B", Other: "E"})

	require.NoError(t, d.Apply(dual.Operation{Kind: dual.CreateAdjacency, Face: "E", Other: "B"}))
	require.NoError(t, d.Validate())
	assert.Contains(t, neighbors(t, d, "B"), "E")
}

// TestDual_Flip moves the B-E adjacency to A-F.
func TestDual_Flip(t *testing.T) {
	d := gridDual(t)
	require.NotContains(t, neighbors(t, d, "A"), "F")

	require.NoError(t, d.Apply(dual.Operation{Kind: dual.FlipAdjacency, Face: "B", Other: "E"}))
	require.NoError(t, d.Validate())
	assert.NotContains(t, neighbors(t, d, "B"), "E")
	assert.Contains(t, neighbors(t, d, "A"), "F")
}

// TestDual_IllegalOperationsLeaveStateUnchanged checks all-or-nothing semantics.
func TestDual_IllegalOperationsLeaveStateUnchanged(t *testing.T) {
	d := gridDual(t)
	before := d.Snapshot()

	cases := []struct {
		name string
		op   dual.Operation
		also error
	}{
		{"flip non-adjacent", dual.Operation{Kind: dual.FlipAdjacency, Face: "A", Other: "I"}, nil},
		{"remove interior touching outer", dual.Operation{Kind: dual.RemoveFaceWithoutBoundaryToExternalFace, Face: "A", Other: "B"}, nil},
		{"remove exterior of interior", dual.Operation{Kind: dual.RemoveFaceWithBoundaryToExternalFace, Face: "E"}, nil},
		{"create on adjacent", dual.Operation{Kind: dual.CreateAdjacency, Face: "A", Other: "B"}, nil},
		{"self pair", dual.Operation{Kind: dual.RemoveAdjacency, Face: "A", Other: "A"}, nil},
		{"unknown face", dual.Operation{Kind: dual.FlipAdjacency, Face: "A", Other: "Z"}, dual.ErrUnknownFace},
		{"duplicate name", dual.Operation{Kind: dual.InsertFaceInside, Face: "E", Name: "A"}, dual.ErrInvalidName},
		{"bad weight", dual.Operation{Kind: dual.InsertFaceInside, Face: "E", Name: "N", Weight: -1}, dual.ErrInvalidWeight},
		{"unknown kind", dual.Operation{Kind: dual.OperationKind(42)}, nil},
	}
	for _, tc := range cases {
		err := d.Apply(tc.op)
		assert.ErrorIs(t, err, dual.ErrIllegalOperation, tc.name)
		if tc.also != nil {
			assert.ErrorIs(t, err, tc.also, tc.name)
		}
		assert.False(t, d.IsLegal(tc.op), tc.name)
		assert.Empty(t, cmp.Diff(before, d.Snapshot()), tc.name)
	}
}

// TestDual_RandomWalkKeepsInvariants applies random operations and validates each step.
func TestDual_RandomWalkKeepsInvariants(t *testing.T) {
	d := gridDual(t)
	rng := dual.NewRand(11)
	for step := 0; step < 40; step++ {
		op, err := d.ApplyRandom(rng, "", 1)
		if errors.Is(err, dual.ErrNoLegalOperation) {
			break
		}
		require.NoError(t, err, "step %d", step)
		require.NoError(t, d.Validate(), "step %d after %v", step, op)
		assert.Positive(t, d.Len())
	}
}

// TestDual_TotalsAreStable: repeated sums over an unmodified dual are bit-identical.
func TestDual_TotalsAreStable(t *testing.T) {
	src, err := builder.Build(builder.JitteredGrid(3, 3, 0.15), builder.WithSeed(3), builder.WithUniformWeight(0.1, 7))
	require.NoError(t, err)
	d, err := transform.Transform(src)
	require.NoError(t, err)

	area, weight := d.TotalArea(), d.TotalWeight()
	for i := 0; i < 200; i++ {
		require.Equal(t, area, d.TotalArea(), "call %d", i)
		require.Equal(t, weight, d.TotalWeight(), "call %d", i)
	}
}

// TestDual_RandomIsDeterministic replays the same seed twice.
func TestDual_RandomIsDeterministic(t *testing.T) {
	run := func() []dual.Operation {
		d := gridDual(t)
		rng := dual.NewRand(5)
		var ops []dual.Operation
		for i := 0; i < 10; i++ {
			op, err := d.ApplyRandom(rng, "", 1)
			require.NoError(t, err)
			ops = append(ops, op)
		}
		return ops
	}
	assert.Equal(t, run(), run())
}

// TestSampleOperation_KindFairness: a kind with one instance is chosen as
// often as kinds with many.
func TestSampleOperation_KindFairness(t *testing.T) {
	const draws = 7000
	rng := dual.NewRand(3)
	enumerate := func(k dual.OperationKind) []dual.Operation {
		if k == dual.FlipAdjacency {
			return []dual.Operation{{Kind: k, Face: "only"}}
		}
		ops := make([]dual.Operation, 10)
		for i := range ops {
			ops[i] = dual.Operation{Kind: k}
		}
		return ops
	}
	hits := 0
	for i := 0; i < draws; i++ {
		op, err := dual.SampleOperation(rng, enumerate)
		require.NoError(t, err)
		if op.Kind == dual.FlipAdjacency {
			hits++
		}
	}
	assert.InDelta(t, draws/7, hits, 200)
}

// TestSampleOperation_FairAmongNonEmptyKinds: empty kinds do not skew the
// shares of the remaining kinds, and each empty kind is enumerated once per draw.
func TestSampleOperation_FairAmongNonEmptyKinds(t *testing.T) {
	const draws = 8000
	sizes := map[dual.OperationKind]int{
		dual.InsertFaceInside: 1,
		dual.FlipAdjacency:    3,
		dual.CreateAdjacency:  12,
		dual.RemoveAdjacency:  40,
	}
	rng := dual.NewRand(17)
	hits := make(map[dual.OperationKind]int)
	for i := 0; i < draws; i++ {
		calls := make(map[dual.OperationKind]int)
		op, err := dual.SampleOperation(rng, func(k dual.OperationKind) []dual.Operation {
			calls[k]++
			ops := make([]dual.Operation, sizes[k])
			for j := range ops {
				ops[j] = dual.Operation{Kind: k}
			}
			return ops
		})
		require.NoError(t, err)
		for k, c := range calls {
			require.Equal(t, 1, c, k.String())
		}
		hits[op.Kind]++
	}

	assert.Len(t, hits, len(sizes))
	for k, n := range sizes {
		assert.InDelta(t, draws/len(sizes), hits[k], 250, "%s (%d instances)", k, n)
	}
}

// TestSampleOperation_EmptyKinds drops empty kinds and reports exhaustion.
func TestSampleOperation_EmptyKinds(t *testing.T) {
	rng := dual.NewRand(0)
	onlyCreate := func(k dual.OperationKind) []dual.Operation {
		if k == dual.CreateAdjacency {
			return []dual.Operation{{Kind: k}}
		}
		return nil
	}
	for i := 0; i < 20; i++ {
		op, err := dual.SampleOperation(rng, onlyCreate)
		require.NoError(t, err)
		assert.Equal(t, dual.CreateAdjacency, op.Kind)
	}

	_, err := dual.SampleOperation(nil, func(dual.OperationKind) []dual.Operation { return nil })
	assert.ErrorIs(t, err, dual.ErrNoLegalOperation)
}

// TestOperationKind_String pins names used in logs and metrics.
func TestOperationKind_String(t *testing.T) {
	assert.Equal(t, "FlipAdjacency", dual.FlipAdjacency.String())
	assert.Equal(t, "OperationKind(9)", dual.OperationKind(9).String())
	assert.Len(t, dual.AllKinds, 7)
	for _, k := range dual.AllKinds {
		assert.True(t, k.Valid())
	}
}
