// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: The five dual invariants, checked globally or after a local edit.
// Determinism:
//   - Faces and edges are visited in sorted order, so the first reported
//     violation is stable across runs.

package dual

import (
	"fmt"

	"github.com/katalvlaran/polydual/planar"
)

// Validate checks all five invariants and returns the first violation,
// wrapped with ErrInvariantViolation, or nil.
// Complexity: O(E^2) for the crossing check, O(E·log d) for the rest.
func (d *Dual) Validate() error {
	if err := checkCrossings(d.graph); err != nil {
		return err
	}
	faces := make(map[string]*Region, len(d.faces))
	for n, r := range d.faces {
		c := r.clone()
		faces[n] = &c
	}

	return reconcile(d.graph, faces)
}

// checkCrossings enforces invariant 1 over the whole graph.
func checkCrossings(g *planar.Graph) error {
	if cr := g.Crossings(); len(cr) > 0 {
		return fmt.Errorf("edges %v and %v cross: %w", cr[0].A, cr[0].B, ErrInvariantViolation)
	}
	return nil
}

// checkLocalCrossings enforces invariant 1 for the edges incident to the
// given vertices only. Vertices no longer in g are skipped.
func checkLocalCrossings(g *planar.Graph, touched []planar.VertexID) error {
	for _, v := range touched {
		if !g.HasVertex(v) {
			continue
		}
		nbrs, _ := g.Neighbors(v)
		for _, n := range nbrs {
			if g.SegmentConflicts(v, n) {
				return fmt.Errorf("edge %v conflicts with the drawing: %w", planar.NewEdge(v, n), ErrInvariantViolation)
			}
		}
	}
	return nil
}

// reconcile checks invariants 2 to 5 of g against faces and, on success,
// replaces every stored boundary with its traced counter-clockwise walk.
// On failure faces may be partially rewritten.
func reconcile(g *planar.Graph, faces map[string]*Region) error {
	if g.EdgeCount() == 0 || !g.Connected() {
		return fmt.Errorf("graph is empty or disconnected: %w", ErrInvariantViolation)
	}
	emb := g.Faces()

	outer := emb.OuterFace()
	if len(outer) < 3 || !outer.IsSimple() {
		return fmt.Errorf("outer face %v is not a simple cycle: %w", outer, ErrInvariantViolation)
	}
	if p, _ := g.Polygon(outer); p.SignedArea() >= 0 {
		return fmt.Errorf("outer face has no unbounded orientation: %w", ErrInvariantViolation)
	}

	inner := emb.InnerFaces()
	if len(inner) != len(faces) {
		return fmt.Errorf("%d traced inner faces, %d regions: %w", len(inner), len(faces), ErrInvariantViolation)
	}
	byKey := make(map[string]planar.Face, len(inner))
	for _, f := range inner {
		if len(f) < 3 || !f.IsSimple() {
			return fmt.Errorf("face %v is not a simple cycle: %w", f, ErrInvariantViolation)
		}
		if p, _ := g.Polygon(f); p.SignedArea() <= 0 {
			return fmt.Errorf("face %v is degenerate: %w", f, ErrInvariantViolation)
		}
		byKey[f.Key()] = f
	}

	for name, r := range faces {
		if name == "" || r.Name != name {
			return fmt.Errorf("region %q: %w: %w", name, ErrInvalidName, ErrInvariantViolation)
		}
		if err := checkWeight(r.Weight); err != nil {
			return fmt.Errorf("region %q: %w: %w", name, err, ErrInvariantViolation)
		}
		traced, ok := byKey[r.Boundary.Key()]
		if !ok {
			return fmt.Errorf("region %q boundary %v is not a face: %w", name, r.Boundary, ErrInvariantViolation)
		}
		delete(byKey, r.Boundary.Key())
		r.Boundary = traced
	}

	for _, e := range g.Edges() {
		if emb.SameFaceBothSides(e.U, e.V) {
			return fmt.Errorf("edge %v has one face on both sides: %w", e, ErrInvariantViolation)
		}
	}

	return nil
}
