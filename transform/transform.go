// SPDX-License-Identifier: MIT
//
// File: transform.go
// Role: Source graph to polygonal dual construction.
// Determinism:
//   - Source vertices are processed in ascending id order and their
//     neighbors in counter-clockwise order, so dual vertex ids are stable.

package transform

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/polydual/dual"
	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
)

// Sentinel errors for the transformer.
var (
	// ErrInvalidInput indicates a source graph that is not plane, not
	// connected, unlabeled, or has a bridge or cut vertex.
	ErrInvalidInput = errors.New("transform: invalid input")

	// ErrConstructionInvariantViolation indicates that the built dual failed
	// its own invariant check.
	ErrConstructionInvariantViolation = errors.New("transform: construction invariant violation")
)

// minSourceVertices is the smallest source graph that can bound an inner face.
const minSourceVertices = 3

// Transformer converts weighted plane graphs into polygonal duals.
type Transformer struct {
	logger *zap.Logger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLogger routes construction logs to l and hands l to the built Dual.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("transform: WithLogger(nil)")
	}
	return func(t *Transformer) { t.logger = l }
}

// New returns a Transformer.
func New(opts ...Option) *Transformer {
	t := &Transformer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform builds the polygonal dual of src with New().
func Transform(src *planar.WeightedGraph) (*dual.Dual, error) {
	return New().Transform(src)
}

// builder accumulates dual vertices keyed by what they stand for.
type builder struct {
	src   *planar.WeightedGraph
	emb   *planar.Embedding
	out   *planar.Graph
	onE   map[planar.Edge]planar.VertexID
	side  map[planar.Edge]planar.VertexID
	inF   map[string]planar.VertexID
	atV   map[planar.VertexID]planar.VertexID
	faceP map[string]geometry.Vec
}

// Transform builds the polygonal dual of src. src is not modified.
// Complexity: O(E·log d) for the construction plus O(E^2) for validation.
func (t *Transformer) Transform(src *planar.WeightedGraph) (*dual.Dual, error) {
	emb, err := checkSource(src)
	if err != nil {
		t.logger.Warn("source graph rejected", zap.Error(err))
		return nil, err
	}

	b := &builder{
		src:   src,
		emb:   emb,
		out:   planar.NewGraph(),
		onE:   make(map[planar.Edge]planar.VertexID),
		side:  make(map[planar.Edge]planar.VertexID),
		inF:   make(map[string]planar.VertexID),
		atV:   make(map[planar.VertexID]planar.VertexID),
		faceP: make(map[string]geometry.Vec),
	}
	for _, f := range emb.InnerFaces() {
		b.faceP[f.Key()] = facePoint(src.Graph, f)
	}

	regions := make([]dual.Region, 0, src.VertexCount())
	for _, v := range src.Vertices() {
		boundary, err := b.region(v)
		if err != nil {
			return nil, err
		}
		l, _ := src.Label(v)
		regions = append(regions, dual.Region{Name: l.Name, Weight: l.Weight, Boundary: boundary})
	}

	d, err := dual.New(b.out, regions, dual.WithLogger(t.logger))
	if err != nil {
		t.logger.Error("dual construction failed", zap.Error(err))
		return nil, fmt.Errorf("Transform: %w: %w", ErrConstructionInvariantViolation, err)
	}
	t.logger.Info("dual constructed",
		zap.Int("regions", d.Len()),
		zap.Int("vertices", b.out.VertexCount()),
		zap.Int("edges", b.out.EdgeCount()),
	)

	return d, nil
}

// checkSource enforces every precondition and returns the source faces.
func checkSource(src *planar.WeightedGraph) (*planar.Embedding, error) {
	if src == nil {
		return nil, fmt.Errorf("Transform: nil graph: %w", ErrInvalidInput)
	}
	if src.VertexCount() < minSourceVertices {
		return nil, fmt.Errorf("Transform: %d vertices, need %d: %w", src.VertexCount(), minSourceVertices, ErrInvalidInput)
	}
	for _, v := range src.Vertices() {
		if _, ok := src.Label(v); !ok {
			return nil, fmt.Errorf("Transform: vertex %d has no label: %w", v, ErrInvalidInput)
		}
	}
	if !src.Connected() {
		return nil, fmt.Errorf("Transform: graph is disconnected: %w", ErrInvalidInput)
	}
	if cr := src.Crossings(); len(cr) > 0 {
		return nil, fmt.Errorf("Transform: edges %v and %v cross: %w", cr[0].A, cr[0].B, ErrInvalidInput)
	}

	emb := src.Faces()
	for _, e := range src.Edges() {
		if emb.SameFaceBothSides(e.U, e.V) {
			return nil, fmt.Errorf("Transform: bridge %v: %w", e, ErrInvalidInput)
		}
	}
	if outer := emb.OuterFace(); !outer.IsSimple() {
		return nil, fmt.Errorf("Transform: cut vertex on the outer face: %w", ErrInvalidInput)
	}
	for _, f := range emb.InnerFaces() {
		if !f.IsSimple() {
			return nil, fmt.Errorf("Transform: cut vertex on face %v: %w", f, ErrInvalidInput)
		}
	}

	return emb, nil
}

// facePoint returns the mean of f's vertices, or the area centroid when the
// mean falls outside a non-convex face.
func facePoint(g *planar.Graph, f planar.Face) geometry.Vec {
	poly, _ := g.Polygon(f)
	c := geometry.Centroid(poly)
	if poly.ContainsPoint(c) {
		return c
	}
	return poly.Centroid()
}

// region emits the dual boundary of source vertex v, walking its incident
// edges and wedges counter-clockwise.
func (b *builder) region(v planar.VertexID) (planar.Face, error) {
	rot, err := b.src.RotationalNeighbors(v)
	if err != nil {
		return nil, fmt.Errorf("Transform: %w: %w", ErrInvalidInput, err)
	}
	d := len(rot)

	var seq planar.Face
	for i, u := range rot {
		e := planar.NewEdge(v, u)
		prevOuter := b.emb.IsOuterLeftOf(v, rot[(i-1+d)%d])
		curOuter := b.emb.IsOuterLeftOf(v, u)

		switch {
		case !b.emb.IsOuterEdge(v, u):
			seq = append(seq, b.onEdge(e))
		case prevOuter:
			seq = append(seq, b.onEdge(e), b.sideOf(e, v, u))
		default:
			seq = append(seq, b.sideOf(e, u, v), b.onEdge(e))
		}

		if curOuter {
			seq = append(seq, b.corner(v))
		} else {
			f, _ := b.emb.FaceLeftOf(v, u)
			seq = append(seq, b.inFace(f))
		}
	}

	for i := range seq {
		x, y := seq[i], seq.At(i+1)
		if x != y && !b.out.HasEdge(x, y) {
			if err := b.out.AddEdge(x, y); err != nil {
				return nil, fmt.Errorf("Transform: %w: %w", ErrConstructionInvariantViolation, err)
			}
		}
	}

	return seq, nil
}

// onEdge returns m_e (interior) or o_e (boundary), both at e's midpoint.
func (b *builder) onEdge(e planar.Edge) planar.VertexID {
	if id, ok := b.onE[e]; ok {
		return id
	}
	s := b.src.Segment(e)
	id := b.out.AddVertex(s.Midpoint())
	b.onE[e] = id
	return id
}

// sideOf returns s_e for boundary edge e, placed between o_e and the point
// of the inner face left of from->to.
func (b *builder) sideOf(e planar.Edge, from, to planar.VertexID) planar.VertexID {
	if id, ok := b.side[e]; ok {
		return id
	}
	f, ok := b.emb.FaceLeftOf(from, to)
	if !ok || b.emb.IsOuterLeftOf(from, to) {
		f, _ = b.emb.FaceLeftOf(to, from)
	}
	mid := b.src.Segment(e).Midpoint()
	id := b.out.AddVertex(geometry.Midpoint(mid, b.faceP[f.Key()]))
	b.side[e] = id
	return id
}

// inFace returns t_F.
func (b *builder) inFace(f planar.Face) planar.VertexID {
	k := f.Key()
	if id, ok := b.inF[k]; ok {
		return id
	}
	id := b.out.AddVertex(b.faceP[k])
	b.inF[k] = id
	return id
}

// corner returns c_v for outer source vertex v.
func (b *builder) corner(v planar.VertexID) planar.VertexID {
	if id, ok := b.atV[v]; ok {
		return id
	}
	p, _ := b.src.Position(v)
	id := b.out.AddVertex(p)
	b.atV[v] = id
	return id
}
