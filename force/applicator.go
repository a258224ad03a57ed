// SPDX-License-Identifier: MIT
//
// File: applicator.go
// Role: PrEd displacement bounds and the atomic position update.
// Determinism:
//   - Bounds only ever shrink (min), so their value does not depend on the
//     visiting order; vertices and edges are still visited sorted.

package force

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
)

// Applicator defaults.
const (
	DefaultSectors = 8
	DefaultPadding = 2
	DefaultEpsilon = 1e-12
)

// Applicator clamps forces to crossing-safe displacements and moves vertices.
type Applicator struct {
	// Sectors is the number of equal angular sectors per vertex.
	Sectors int
	// Padding is the number of neighboring sectors capped on each side of a
	// projection direction.
	Padding int
	// Epsilon is the projection distance treated as touching.
	Epsilon float64
	// MaxDisplacement caps every move when > 0.
	MaxDisplacement float64

	logger *zap.Logger
}

// NewApplicator returns an Applicator with the default sector layout.
func NewApplicator(opts ...Option) *Applicator {
	return &Applicator{
		Sectors: DefaultSectors,
		Padding: DefaultPadding,
		Epsilon: DefaultEpsilon,
		logger:  resolve(opts).logger,
	}
}

// Bounds maps each vertex to its per-sector displacement cap.
type Bounds map[planar.VertexID][]float64

// Report summarizes one Apply call.
type Report struct {
	Moved           int
	MaxDisplacement float64
}

// Bounds computes the PrEd caps for the current drawing of g.
//
// For every vertex v and edge (a,b) not incident to v:
//   - projection of v inside (a,b) at distance d >= Epsilon: v is capped at
//     d/3 in the sectors around the direction to the projection, a and b
//     at d/3 in the sectors around the opposite direction;
//   - d < Epsilon: v, a and b are frozen in every sector;
//   - projection outside (a,b): a and b are capped at |a-v|/3 and |b-v|/3
//     in every sector, v at the smaller of the two.
//
// Complexity: O(V·E·Sectors).
func (ap *Applicator) Bounds(g *planar.Graph) Bounds {
	n := ap.sectors()
	b := make(Bounds, g.VertexCount())
	for _, v := range g.Vertices() {
		caps := make([]float64, n)
		for i := range caps {
			caps[i] = math.Inf(1)
			if ap.MaxDisplacement > 0 {
				caps[i] = ap.MaxDisplacement
			}
		}
		b[v] = caps
	}

	edges := g.Edges()
	for _, v := range g.Vertices() {
		pv, _ := g.Position(v)
		for _, e := range edges {
			if e.Has(v) {
				continue
			}
			seg := g.Segment(e)
			t := seg.Param(pv)
			if t >= 0 && t <= 1 {
				proj := seg.At(t)
				d := geometry.Distance(pv, proj)
				if d < ap.Epsilon {
					b.capAll(v, 0)
					b.capAll(e.U, 0)
					b.capAll(e.V, 0)
					continue
				}
				toEdge := geometry.AngleOf(geometry.Sub(proj, pv)).Sector(n)
				toVertex := geometry.AngleOf(geometry.Sub(pv, proj)).Sector(n)
				b.capAround(v, toEdge, ap.padding(), d/3)
				b.capAround(e.U, toVertex, ap.padding(), d/3)
				b.capAround(e.V, toVertex, ap.padding(), d/3)
				continue
			}
			da := geometry.Distance(pv, seg.A)
			db := geometry.Distance(pv, seg.B)
			b.capAll(e.U, da/3)
			b.capAll(e.V, db/3)
			b.capAll(v, math.Min(da, db)/3)
		}
	}

	return b
}

// Displacements clamps every force to the bound of the sector it points
// into. Zero and non-finite forces produce no displacement.
func (ap *Applicator) Displacements(g *planar.Graph, f Forces) map[planar.VertexID]geometry.Vec {
	bounds := ap.Bounds(g)
	n := ap.sectors()
	out := make(map[planar.VertexID]geometry.Vec, len(f.Vectors))
	for _, v := range g.Vertices() {
		p, ok := f.Vectors[v]
		if !ok || p == geometry.Zero {
			continue
		}
		if !geometry.IsFinite(p) {
			ap.log().Warn("non-finite force skipped", zap.Int64("vertex", int64(v)))
			continue
		}
		limit := bounds[v][geometry.AngleOf(p).Sector(n)]
		if l := geometry.Length(p); l > limit {
			p = geometry.Scale(p, limit/l)
		}
		if p != geometry.Zero {
			out[v] = p
		}
	}
	return out
}

// Apply moves every vertex by its clamped force in one atomic update.
func (ap *Applicator) Apply(g *planar.Graph, f Forces) (Report, error) {
	disp := ap.Displacements(g, f)
	moves := make(map[planar.VertexID]geometry.Vec, len(disp))
	var rep Report
	for v, dv := range disp {
		pv, err := g.Position(v)
		if err != nil {
			return Report{}, fmt.Errorf("Apply: %w", err)
		}
		moves[v] = geometry.Add(pv, dv)
		rep.MaxDisplacement = math.Max(rep.MaxDisplacement, geometry.Length(dv))
	}
	if err := g.SetPositions(moves); err != nil {
		return Report{}, fmt.Errorf("Apply: %w", err)
	}
	rep.Moved = len(moves)
	ap.log().Debug("forces applied", zap.Int("moved", rep.Moved), zap.Float64("max_displacement", rep.MaxDisplacement))

	return rep, nil
}

func (ap *Applicator) log() *zap.Logger {
	if ap.logger == nil {
		return zap.NewNop()
	}
	return ap.logger
}

func (ap *Applicator) sectors() int {
	if ap.Sectors < 1 {
		return DefaultSectors
	}
	return ap.Sectors
}

func (ap *Applicator) padding() int {
	if ap.Padding < 0 {
		return 0
	}
	return ap.Padding
}

// capAll lowers every sector of v to at most c.
func (b Bounds) capAll(v planar.VertexID, c float64) {
	for i := range b[v] {
		b[v][i] = math.Min(b[v][i], c)
	}
}

// capAround lowers sector s of v and pad sectors on each side to at most c.
func (b Bounds) capAround(v planar.VertexID, s, pad int, c float64) {
	n := len(b[v])
	for k := -pad; k <= pad; k++ {
		i := ((s+k)%n + n) % n
		b[v][i] = math.Min(b[v][i], c)
	}
}
