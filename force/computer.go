// SPDX-License-Identifier: MIT
//
// File: computer.go
// Role: Force computation over a dual or a plain plane graph.
// Determinism:
//   - Vertices, edges and regions are visited in sorted order, so the
//     floating-point summation order and the result are stable.

package force

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/polydual/dual"
	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
)

// Computer evaluates the force terms. It holds no state between calls.
type Computer struct {
	cfg    Config
	logger *zap.Logger
}

// Option configures a Computer or an Applicator.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes warnings to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("force: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

func resolve(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewComputer returns a Computer for cfg.
// Returns ErrInvalidConfig for negative strengths or a bad pressure clamp.
func NewComputer(cfg Config, opts ...Option) (*Computer, error) {
	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("NewComputer: %w", err)
	}
	return &Computer{cfg: cfg, logger: resolve(opts).logger}, nil
}

// Config returns the strengths in use.
func (c *Computer) Config() Config { return c.cfg }

// Compute returns the force on every vertex of d's graph: the three graph
// terms plus pressure and angle correction per region.
// Complexity: O(V^2 + V·E) worst case; repulsion drops to O(Σ|F|^2) when
// the locality threshold applies.
func (c *Computer) Compute(d *dual.Dual) Forces {
	g := d.Graph()
	f := newForces(g)
	regions := d.Faces()

	faces := make([]planar.Face, 0, len(regions)+1)
	for _, r := range regions {
		faces = append(faces, r.Boundary)
	}
	faces = append(faces, d.OuterBoundary())
	c.graphTerms(g, f, faces)

	if c.cfg.Pressure > 0 {
		totalW, totalA := d.TotalWeight(), d.TotalArea()
		for _, r := range regions {
			for v, p := range c.pressure(g, r, totalW, totalA) {
				f.add(v, p)
			}
		}
	}
	if c.cfg.Angle > 0 {
		for _, r := range regions {
			c.angle(g, r.Boundary, f)
		}
	}

	return c.sanitize(f)
}

// ComputeGraph returns repulsion, attraction and edge repulsion for a plain
// graph. Faces are traced only when the locality threshold applies.
func (c *Computer) ComputeGraph(g *planar.Graph) Forces {
	f := newForces(g)
	var faces []planar.Face
	if c.local(g.EdgeCount() - g.VertexCount() + 2) {
		emb := g.Faces()
		faces = append(emb.InnerFaces(), emb.OuterFace())
	}
	c.graphTerms(g, f, faces)
	return c.sanitize(f)
}

// Pressure returns the pressure contribution of one region to each of its
// boundary vertices. It is zero when the total weight or area is zero.
func (c *Computer) Pressure(d *dual.Dual, name string) (map[planar.VertexID]geometry.Vec, error) {
	r, err := d.Face(name)
	if err != nil {
		return nil, fmt.Errorf("Pressure(%q): %w", name, err)
	}
	return c.pressure(d.Graph(), r, d.TotalWeight(), d.TotalArea()), nil
}

// local reports whether repulsion is restricted to same-face pairs.
func (c *Computer) local(faceCount int) bool {
	return c.cfg.LocalityThreshold > 0 && faceCount > c.cfg.LocalityThreshold
}

func (c *Computer) graphTerms(g *planar.Graph, f Forces, faces []planar.Face) {
	if c.cfg.Repulsion > 0 {
		c.repulsion(g, f, faces)
	}
	if c.cfg.Attraction > 0 {
		c.attraction(g, f)
	}
	if c.cfg.EdgeRepulsion > 0 {
		c.edgeRepulsion(g, f)
	}
}

// repulsion pushes vertex pairs apart with k/d^2.
func (c *Computer) repulsion(g *planar.Graph, f Forces, faces []planar.Face) {
	push := func(u, v planar.VertexID) {
		pu, _ := g.Position(u)
		pv, _ := g.Position(v)
		delta := geometry.Sub(pv, pu)
		d := geometry.Length(delta)
		if d < minDistance {
			return
		}
		p := geometry.Scale(geometry.Normalize(delta), c.cfg.Repulsion/(d*d))
		f.add(v, p)
		f.add(u, geometry.Scale(p, -1))
	}

	if !c.local(len(faces)) {
		vs := g.Vertices()
		for i := range vs {
			for j := i + 1; j < len(vs); j++ {
				push(vs[i], vs[j])
			}
		}
		return
	}

	seen := make(map[planar.Edge]struct{})
	for _, face := range faces {
		for i := range face {
			for j := i + 1; j < len(face); j++ {
				k := planar.NewEdge(face[i], face[j])
				if _, dup := seen[k]; dup || k.U == k.V {
					continue
				}
				seen[k] = struct{}{}
				push(k.U, k.V)
			}
		}
	}
}

// attraction pulls edges toward ReferenceLength with k*log(d/L).
func (c *Computer) attraction(g *planar.Graph, f Forces) {
	for _, e := range g.Edges() {
		s := g.Segment(e)
		d := s.Length()
		if d < minDistance {
			continue
		}
		p := geometry.Scale(geometry.Normalize(s.Vector()), c.cfg.Attraction*math.Log(d/c.cfg.ReferenceLength))
		f.add(e.U, p)
		f.add(e.V, geometry.Scale(p, -1))
	}
}

// edgeRepulsion pushes every vertex away from the closest point of every
// non-incident edge with k/d^2.
func (c *Computer) edgeRepulsion(g *planar.Graph, f Forces) {
	edges := g.Edges()
	for _, v := range g.Vertices() {
		pv, _ := g.Position(v)
		for _, e := range edges {
			if e.Has(v) {
				continue
			}
			delta := geometry.Sub(pv, g.Segment(e).ClosestPoint(pv))
			d := geometry.Length(delta)
			if d < minDistance {
				continue
			}
			f.add(v, geometry.Scale(geometry.Normalize(delta), c.cfg.EdgeRepulsion/(d*d)))
		}
	}
}

// pressure is k*log(ratio) along each outward vertex normal, where ratio is
// the region's weight share over its area share, clamped into
// [PressureFloor, PressureCeil].
func (c *Computer) pressure(g *planar.Graph, r dual.Region, totalW, totalA float64) map[planar.VertexID]geometry.Vec {
	out := make(map[planar.VertexID]geometry.Vec, len(r.Boundary))
	if totalW <= 0 || totalA <= 0 {
		return out
	}
	poly, err := g.Polygon(r.Boundary)
	if err != nil {
		return out
	}
	ratio := math.Inf(1)
	if a := poly.Area(); a > 0 {
		ratio = (r.Weight / totalW) / (a / totalA)
	}
	ratio = math.Min(math.Max(ratio, c.cfg.PressureFloor), c.cfg.PressureCeil)
	mag := c.cfg.Pressure * math.Log(ratio)
	for i, v := range r.Boundary {
		out[v] = geometry.Scale(poly.Normal(i), mag)
	}
	return out
}

// angle pushes each corner along its normal toward the regular interior
// angle (n-2)/(2n) turns. Wider corners move out, sharper corners move in,
// each scaled by the fraction of the available range.
func (c *Computer) angle(g *planar.Graph, face planar.Face, f Forces) {
	poly, err := g.Polygon(face)
	if err != nil || len(poly) < 3 {
		return
	}
	ideal := geometry.RegularInteriorAngle(len(poly)).Turns()
	for i, v := range face {
		actual := poly.InteriorAngle(i).Turns()
		n := poly.Normal(i)
		switch {
		case actual > ideal:
			f.add(v, geometry.Scale(n, c.cfg.Angle*(actual-ideal)/(1-ideal)))
		case actual < ideal:
			f.add(v, geometry.Scale(n, -c.cfg.Angle*(ideal-actual)/ideal))
		}
	}
}

// sanitize zeroes and reports non-finite vectors.
func (c *Computer) sanitize(f Forces) Forces {
	ids := make([]planar.VertexID, 0, len(f.Vectors))
	for v := range f.Vectors {
		ids = append(ids, v)
	}
	sortIDs(ids)
	for _, v := range ids {
		if p := f.Vectors[v]; !geometry.IsFinite(p) {
			c.logger.Warn("non-finite force zeroed",
				zap.Int64("vertex", int64(v)),
				zap.Float64("x", p.X),
				zap.Float64("y", p.Y),
			)
			f.Invalid = append(f.Invalid, v)
			f.Vectors[v] = geometry.Zero
		}
	}
	return f
}
