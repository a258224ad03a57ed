// SPDX-License-Identifier: MIT
package force_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/polydual/builder"
	"github.com/katalvlaran/polydual/dual"
	"github.com/katalvlaran/polydual/force"
	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
	"github.com/katalvlaran/polydual/transform"
)

func only(mut func(*force.Config)) force.Config {
	cfg := force.DefaultConfig()
	cfg.Repulsion, cfg.Attraction, cfg.EdgeRepulsion, cfg.Pressure, cfg.Angle = 0, 0, 0, 0, 0
	mut(&cfg)
	return cfg
}

func diamondDual(t *testing.T) *dual.Dual {
	t.Helper()
	src, err := builder.Build(builder.Diamond())
	require.NoError(t, err)
	d, err := transform.Transform(src)
	require.NoError(t, err)
	return d
}

// TestPressure_Sign: over-weight regions inflate, under-weight regions deflate.
func TestPressure_Sign(t *testing.T) {
	d := diamondDual(t)
	require.NoError(t, d.AdjustWeight("A", 10))
	require.NoError(t, d.AdjustWeight("D", 0.01))

	c, err := force.NewComputer(only(func(c *force.Config) { c.Pressure = 1 }))
	require.NoError(t, err)

	check := func(name string, outward bool) {
		r, err := d.Face(name)
		require.NoError(t, err)
		poly, err := d.Polygon(name)
		require.NoError(t, err)
		contrib, err := c.Pressure(d, name)
		require.NoError(t, err)
		for i, v := range r.Boundary {
			dot := geometry.Dot(contrib[v], poly.Normal(i))
			if outward {
				assert.Positive(t, dot, "%s vertex %d", name, v)
			} else {
				assert.Negative(t, dot, "%s vertex %d", name, v)
			}
		}
	}
	check("A", true)
	check("D", false)

	_, err = c.Pressure(d, "nope")
	assert.ErrorIs(t, err, dual.ErrUnknownFace)
}

// TestPressure_ZeroTotalWeightIsInert: no weight means no pressure.
func TestPressure_ZeroTotalWeightIsInert(t *testing.T) {
	d := diamondDual(t)
	for _, n := range d.Names() {
		require.NoError(t, d.AdjustWeight(n, 0))
	}
	c, err := force.NewComputer(only(func(c *force.Config) { c.Pressure = 1 }))
	require.NoError(t, err)
	f := c.Compute(d)
	assert.Zero(t, f.MaxMagnitude())
	assert.Empty(t, f.Invalid)
}

// TestAttraction_Direction: long edges contract, short edges expand.
func TestAttraction_Direction(t *testing.T) {
	g := planar.NewGraph()
	u := g.AddVertex(geometry.V(0, 0))
	v := g.AddVertex(geometry.V(200, 0))
	w := g.AddVertex(geometry.V(0, 50))
	require.NoError(t, g.AddEdge(u, v))
	require.NoError(t, g.AddEdge(u, w))

	c, err := force.NewComputer(only(func(c *force.Config) { c.Attraction = 1 }))
	require.NoError(t, err)
	f := c.ComputeGraph(g)

	assert.InDelta(t, -math.Log(2), f.Get(v).X, 1e-12)
	assert.InDelta(t, 0, f.Get(v).Y, 1e-12)
	// w is pushed away from u: log(50/100) < 0 along u->w.
	assert.InDelta(t, -math.Log(0.5), f.Get(w).Y, 1e-12)
}

// TestRepulsion_PushesApart checks the inverse-square pair force.
func TestRepulsion_PushesApart(t *testing.T) {
	g := planar.NewGraph()
	u := g.AddVertex(geometry.V(0, 0))
	v := g.AddVertex(geometry.V(10, 0))

	c, err := force.NewComputer(only(func(c *force.Config) { c.Repulsion = 100 }))
	require.NoError(t, err)
	f := c.ComputeGraph(g)
	assert.InDelta(t, 1, f.Get(v).X, 1e-12)
	assert.InDelta(t, -1, f.Get(u).X, 1e-12)
}

// TestCompute_NonFiniteIsReportedAndZeroed uses an overflowing strength.
func TestCompute_NonFiniteIsReportedAndZeroed(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	g := planar.NewGraph()
	u := g.AddVertex(geometry.V(0, 0))
	v := g.AddVertex(geometry.V(1e-5, 0))
	require.NoError(t, g.AddEdge(u, v))

	c, err := force.NewComputer(only(func(c *force.Config) { c.Repulsion = 1e300 }), force.WithLogger(zap.New(core)))
	require.NoError(t, err)
	f := c.ComputeGraph(g)

	assert.Equal(t, []planar.VertexID{u, v}, f.Invalid)
	assert.Equal(t, geometry.Zero, f.Get(u))
	assert.Equal(t, geometry.Zero, f.Get(v))
	assert.Equal(t, 2, logs.FilterMessage("non-finite force zeroed").Len())
}

// TestCompute_IsDeterministic: two computations on the same drawing agree exactly.
func TestCompute_IsDeterministic(t *testing.T) {
	src, err := builder.Build(builder.JitteredGrid(3, 3, 0.15), builder.WithSeed(3), builder.WithUniformWeight(0.1, 7))
	require.NoError(t, err)
	d, err := transform.Transform(src)
	require.NoError(t, err)

	c, err := force.NewComputer(force.DefaultConfig())
	require.NoError(t, err)
	first := c.Compute(d)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, c.Compute(d), "call %d", i)
	}
}

// TestNewComputer_RejectsBadConfig covers the validation sentinel.
func TestNewComputer_RejectsBadConfig(t *testing.T) {
	for _, mut := range []func(*force.Config){
		func(c *force.Config) { c.Repulsion = -1 },
		func(c *force.Config) { c.Angle = math.NaN() },
		func(c *force.Config) { c.ReferenceLength = 0 },
		func(c *force.Config) { c.PressureCeil = c.PressureFloor },
		func(c *force.Config) { c.Pressure = math.Inf(1) },
		func(c *force.Config) { c.LocalityThreshold = -1 },
	} {
		cfg := force.DefaultConfig()
		mut(&cfg)
		_, err := force.NewComputer(cfg)
		assert.ErrorIs(t, err, force.ErrInvalidConfig)
	}
	assert.Panics(t, func() { force.WithLogger(nil) })
}

// TestNewComputer_ReportsFirstBadField names the same field on every call.
func TestNewComputer_ReportsFirstBadField(t *testing.T) {
	cfg := force.DefaultConfig()
	cfg.Repulsion, cfg.Attraction, cfg.Angle = -1, -2, -3
	for i := 0; i < 20; i++ {
		_, err := force.NewComputer(cfg)
		require.ErrorIs(t, err, force.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "Repulsion failed gte")
	}
}

// TestApplicator_Bounds pins the inside and outside projection caps.
func TestApplicator_Bounds(t *testing.T) {
	g := planar.NewGraph()
	a := g.AddVertex(geometry.V(0, 0))
	b := g.AddVertex(geometry.V(10, 0))
	v := g.AddVertex(geometry.V(5, 3))
	w := g.AddVertex(geometry.V(5, 6))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(v, w))

	bounds := force.NewApplicator().Bounds(g)
	down := geometry.Degrees(270).Sector(force.DefaultSectors)
	up := geometry.Degrees(90).Sector(force.DefaultSectors)

	assert.InDelta(t, 1, bounds[v][down], 1e-12)
	assert.InDelta(t, math.Sqrt(34)/3, bounds[v][up], 1e-12)
	assert.InDelta(t, 1, bounds[a][up], 1e-12)
	assert.InDelta(t, 1, bounds[b][up], 1e-12)
}

// TestApplicator_TouchingFreezes: a vertex on a non-incident edge cannot move.
func TestApplicator_TouchingFreezes(t *testing.T) {
	g := planar.NewGraph()
	a := g.AddVertex(geometry.V(0, 0))
	b := g.AddVertex(geometry.V(10, 0))
	v := g.AddVertex(geometry.V(5, 0))
	w := g.AddVertex(geometry.V(5, 5))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(v, w))

	bounds := force.NewApplicator().Bounds(g)
	for _, id := range []planar.VertexID{a, b, v} {
		for _, c := range bounds[id] {
			assert.Zero(t, c)
		}
	}
}

// TestApplicator_ClampsAndSkips checks clamping, direction and the zero-force no-op.
func TestApplicator_ClampsAndSkips(t *testing.T) {
	g := planar.NewGraph()
	a := g.AddVertex(geometry.V(0, 0))
	b := g.AddVertex(geometry.V(10, 0))
	v := g.AddVertex(geometry.V(5, 3))
	w := g.AddVertex(geometry.V(5, 6))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(v, w))

	ap := force.NewApplicator()
	forces := force.Forces{Vectors: map[planar.VertexID]geometry.Vec{
		v: geometry.V(0, -100),
		w: geometry.Zero,
	}}
	rep, err := ap.Apply(g, forces)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Moved)
	assert.InDelta(t, 1, rep.MaxDisplacement, 1e-12)

	pv, _ := g.Position(v)
	assert.InDelta(t, 5, pv.X, 1e-12)
	assert.InDelta(t, 2, pv.Y, 1e-12)
	pw, _ := g.Position(w)
	assert.Equal(t, geometry.V(5, 6), pw)

	ap.MaxDisplacement = 0.5
	rep, err = ap.Apply(g, force.Forces{Vectors: map[planar.VertexID]geometry.Vec{w: geometry.V(0, 10)}})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rep.MaxDisplacement, 1e-12)
}

// TestApplicator_NeverCreatesCrossings applies random forces to random duals.
func TestApplicator_NeverCreatesCrossings(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		src, err := builder.Build(builder.JitteredGrid(3, 4, 0.15), builder.WithSeed(seed))
		require.NoError(t, err)
		d, err := transform.Transform(src)
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(seed))
		ap := force.NewApplicator()
		g := d.Graph()
		for step := 0; step < 5; step++ {
			f := force.Forces{Vectors: make(map[planar.VertexID]geometry.Vec)}
			for _, v := range g.Vertices() {
				f.Vectors[v] = geometry.V(rng.Float64()*400-200, rng.Float64()*400-200)
			}
			_, err := ap.Apply(g, f)
			require.NoError(t, err)
			require.True(t, g.IsPlane(), "seed %d step %d", seed, step)
		}
		require.NoError(t, d.Validate())
	}
}

// TestComputeAndApply_KeepsDualValid runs the full force loop.
func TestComputeAndApply_KeepsDualValid(t *testing.T) {
	src, err := builder.Build(builder.Wheel(7), builder.WithUniformWeight(1, 4), builder.WithSeed(9))
	require.NoError(t, err)
	d, err := transform.Transform(src)
	require.NoError(t, err)

	c, err := force.NewComputer(force.DefaultConfig())
	require.NoError(t, err)
	ap := force.NewApplicator()
	for i := 0; i < 20; i++ {
		f := c.Compute(d)
		assert.Empty(t, f.Invalid)
		_, err := ap.Apply(d.Graph(), f)
		require.NoError(t, err)
		require.NoError(t, d.Validate(), "iteration %d", i)
	}
}
