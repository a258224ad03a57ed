// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Region and Dual declarations, sentinel errors, constructor and read API.

package dual

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
)

// Sentinel errors for dual operations.
var (
	// ErrUnknownFace indicates a region name that does not exist.
	ErrUnknownFace = errors.New("dual: unknown face")

	// ErrIllegalOperation indicates an operation that is not legal against
	// the current state. The Dual is unchanged.
	ErrIllegalOperation = errors.New("dual: illegal operation")

	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("dual: invalid weight")

	// ErrInvalidName indicates an empty or already used region name.
	ErrInvalidName = errors.New("dual: invalid name")

	// ErrNoLegalOperation indicates that no operation kind has a legal instance.
	ErrNoLegalOperation = errors.New("dual: no legal operation")

	// ErrInvariantViolation indicates a graph and region set that break one
	// of the five dual invariants.
	ErrInvariantViolation = errors.New("dual: invariant violation")
)

// Region is a named, weighted inner face. Boundary is counter-clockwise.
type Region struct {
	Name     string
	Weight   float64
	Boundary planar.Face
}

// clone returns a deep copy.
func (r Region) clone() Region {
	r.Boundary = r.Boundary.Clone()
	return r
}

// Dual is a polygonal dual: a plane graph plus one Region per inner face.
type Dual struct {
	graph  *planar.Graph
	faces  map[string]*Region
	logger *zap.Logger
}

// Option configures a Dual at construction.
type Option func(*Dual)

// WithLogger routes operation logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dual: WithLogger(nil)")
	}
	return func(d *Dual) { d.logger = l }
}

// New builds a Dual from a graph and one region per inner face. Region
// boundaries may be given in either orientation and any rotation; they are
// stored counter-clockwise. The graph is owned by the Dual afterwards.
// Returns an error wrapping ErrInvariantViolation when any invariant fails.
func New(g *planar.Graph, regions []Region, opts ...Option) (*Dual, error) {
	if g == nil {
		return nil, fmt.Errorf("New: nil graph: %w", ErrInvariantViolation)
	}
	faces := make(map[string]*Region, len(regions))
	for i := range regions {
		r := regions[i].clone()
		if _, dup := faces[r.Name]; dup {
			return nil, fmt.Errorf("New: region %q: %w: %w", r.Name, ErrInvalidName, ErrInvariantViolation)
		}
		faces[r.Name] = &r
	}
	if err := checkCrossings(g); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err := reconcile(g, faces); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	d := &Dual{graph: g, faces: faces, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Graph returns the underlying graph. The pointer is stable for the Dual's
// lifetime. Callers may move vertices (the force applicator does) but must
// not change the topology directly.
func (d *Dual) Graph() *planar.Graph { return d.graph }

// Logger returns the configured logger.
func (d *Dual) Logger() *zap.Logger { return d.logger }

// Len returns the number of regions.
func (d *Dual) Len() int { return len(d.faces) }

// Names returns all region names, sorted.
func (d *Dual) Names() []string {
	out := make([]string, 0, len(d.faces))
	for n := range d.faces {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Faces returns copies of all regions sorted by name.
func (d *Dual) Faces() []Region {
	out := make([]Region, 0, len(d.faces))
	for _, n := range d.Names() {
		out = append(out, d.faces[n].clone())
	}
	return out
}

// Face returns a copy of the named region.
func (d *Dual) Face(name string) (Region, error) {
	r, ok := d.faces[name]
	if !ok {
		return Region{}, fmt.Errorf("Face(%q): %w", name, ErrUnknownFace)
	}
	return r.clone(), nil
}

// Has reports whether a region with that name exists.
func (d *Dual) Has(name string) bool {
	_, ok := d.faces[name]
	return ok
}

// Weight returns the weight of the named region.
func (d *Dual) Weight(name string) (float64, error) {
	r, ok := d.faces[name]
	if !ok {
		return 0, fmt.Errorf("Weight(%q): %w", name, ErrUnknownFace)
	}
	return r.Weight, nil
}

// TotalWeight sums every region weight in name order.
func (d *Dual) TotalWeight() float64 {
	var s float64
	for _, n := range d.Names() {
		s += d.faces[n].Weight
	}
	return s
}

// Polygon returns the current drawing of the named region (counter-clockwise).
func (d *Dual) Polygon(name string) (geometry.Polygon, error) {
	r, ok := d.faces[name]
	if !ok {
		return nil, fmt.Errorf("Polygon(%q): %w", name, ErrUnknownFace)
	}
	return d.graph.Polygon(r.Boundary)
}

// Area returns the current area of the named region.
func (d *Dual) Area(name string) (float64, error) {
	p, err := d.Polygon(name)
	if err != nil {
		return 0, err
	}
	return p.Area(), nil
}

// TotalArea sums the areas of all regions in name order.
func (d *Dual) TotalArea() float64 {
	var s float64
	for _, n := range d.Names() {
		p, err := d.graph.Polygon(d.faces[n].Boundary)
		if err == nil {
			s += p.Area()
		}
	}
	return s
}

// OuterBoundary traces and returns the outer face (clockwise).
func (d *Dual) OuterBoundary() planar.Face { return d.graph.Faces().OuterFace() }

// AdjustWeight sets the weight of an existing region. It never touches the
// topology. Returns ErrUnknownFace or ErrInvalidWeight; on error nothing changes.
func (d *Dual) AdjustWeight(name string, w float64) error {
	r, ok := d.faces[name]
	if !ok {
		return fmt.Errorf("AdjustWeight(%q): %w", name, ErrUnknownFace)
	}
	if err := checkWeight(w); err != nil {
		return fmt.Errorf("AdjustWeight(%q): %w", name, err)
	}
	r.Weight = w
	d.logger.Debug("weight adjusted", zap.String("face", name), zap.Float64("weight", w))

	return nil
}

// Clone returns an independent deep copy sharing only the logger.
func (d *Dual) Clone() *Dual {
	c := &Dual{graph: d.graph.Clone(), faces: make(map[string]*Region, len(d.faces)), logger: d.logger}
	for n, r := range d.faces {
		cr := r.clone()
		c.faces[n] = &cr
	}
	return c
}

// Snapshot is an ordered, comparable view of the whole Dual state.
type Snapshot struct {
	Graph   planar.Snapshot
	Regions []Region
}

// Snapshot captures the graph and every region.
func (d *Dual) Snapshot() Snapshot {
	return Snapshot{Graph: d.graph.Snapshot(), Regions: d.Faces()}
}

// Neighbors returns the names of regions sharing at least one edge with name, sorted.
func (d *Dual) Neighbors(name string) ([]string, error) {
	r, ok := d.faces[name]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", name, ErrUnknownFace)
	}
	ef := d.edgeFaces()
	seen := make(map[string]struct{})
	for _, e := range r.Boundary.Edges() {
		for _, n := range ef[e] {
			if n != name {
				seen[n] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

// TouchesOuter reports whether the named region has an edge on the outer face.
func (d *Dual) TouchesOuter(name string) (bool, error) {
	r, ok := d.faces[name]
	if !ok {
		return false, fmt.Errorf("TouchesOuter(%q): %w", name, ErrUnknownFace)
	}
	ef := d.edgeFaces()
	for _, e := range r.Boundary.Edges() {
		if len(ef[e]) == 1 {
			return true, nil
		}
	}
	return false, nil
}

// edgeFaces maps every edge to the (one or two) regions it bounds. An edge
// listed under a single region lies on the outer face.
func (d *Dual) edgeFaces() map[planar.Edge][]string {
	out := make(map[planar.Edge][]string, d.graph.EdgeCount())
	for _, n := range d.Names() {
		for _, e := range d.faces[n].Boundary.Edges() {
			out[e] = append(out[e], n)
		}
	}
	return out
}

// checkWeight rejects negative, NaN and infinite weights.
func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("weight %v: %w", w, ErrInvalidWeight)
	}
	return nil
}
