// SPDX-License-Identifier: MIT
//
// File: mutation.go
// Role: Copy-on-write edit sessions and the Apply entry point.
// Determinism:
//   - Every edit works on a clone; the live Dual is replaced only after the
//     clone passes the local crossing check and the face reconciliation.

package dual

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/polydual/planar"
)

// mutation is one pending edit on a private copy of the Dual state.
type mutation struct {
	op      Operation
	graph   *planar.Graph
	faces   map[string]*Region
	touched []planar.VertexID
}

// begin opens an edit session on a deep copy of d.
func (d *Dual) begin(op Operation) *mutation {
	m := &mutation{
		op:    op,
		graph: d.graph.Clone(),
		faces: make(map[string]*Region, len(d.faces)+1),
	}
	for n, r := range d.faces {
		c := r.clone()
		m.faces[n] = &c
	}
	return m
}

// touch records vertices whose incident edges are new or moved.
func (m *mutation) touch(ids ...planar.VertexID) { m.touched = append(m.touched, ids...) }

// fail wraps err as the reason this edit is illegal.
func (m *mutation) fail(err error) error {
	return fmt.Errorf("%v: %w: %w", m.op, ErrIllegalOperation, err)
}

// finish verifies the edited copy: no touched edge conflicts with the drawing
// and the traced faces match the edited regions one to one.
func (m *mutation) finish() error {
	if err := checkLocalCrossings(m.graph, m.touched); err != nil {
		return m.fail(err)
	}
	if err := reconcile(m.graph, m.faces); err != nil {
		return m.fail(err)
	}
	return nil
}

// commit installs m into d. The graph pointer held by d stays the same.
func (d *Dual) commit(m *mutation) {
	*d.graph = *m.graph
	d.faces = m.faces
}

// Apply performs op if it is legal against the current state.
// On failure the error wraps ErrIllegalOperation (and ErrUnknownFace,
// ErrInvalidName or ErrInvalidWeight where relevant) and d is unchanged.
func (d *Dual) Apply(op Operation) error {
	m, err := d.plan(op)
	if err != nil {
		d.logger.Debug("operation rejected", zap.Stringer("op", op), zap.Error(err))
		return err
	}
	d.commit(m)
	d.logger.Info("operation applied",
		zap.Stringer("op", op),
		zap.Int("faces", len(d.faces)),
		zap.Int("vertices", d.graph.VertexCount()),
	)

	return nil
}

// IsLegal reports whether op would succeed against the current state.
func (d *Dual) IsLegal(op Operation) bool {
	_, err := d.plan(op)
	return err == nil
}

// plan builds and verifies the edited copy for op without committing it.
func (d *Dual) plan(op Operation) (*mutation, error) {
	switch op.Kind {
	case InsertFaceInside:
		return d.planInsertInside(op)
	case InsertFaceOutside:
		return d.planInsertOutside(op)
	case RemoveFaceWithoutBoundaryToExternalFace:
		return d.planRemoveInterior(op)
	case RemoveFaceWithBoundaryToExternalFace:
		return d.planRemoveExterior(op)
	case FlipAdjacency:
		return d.planFlip(op)
	case CreateAdjacency:
		return d.planCreate(op)
	case RemoveAdjacency:
		return d.planRemoveAdjacency(op)
	default:
		return nil, illegal(op, "unknown kind")
	}
}

// region looks up a live region for op.
func (d *Dual) region(op Operation, name string) (*Region, error) {
	r, ok := d.faces[name]
	if !ok {
		return nil, fmt.Errorf("%v: %w: %w", op, ErrIllegalOperation, fmt.Errorf("%q: %w", name, ErrUnknownFace))
	}
	return r, nil
}

// pair looks up the two distinct regions named by op.Face and op.Other.
func (d *Dual) pair(op Operation) (*Region, *Region, error) {
	if op.Face == op.Other {
		return nil, nil, illegal(op, "a region cannot pair with itself")
	}
	f, err := d.region(op, op.Face)
	if err != nil {
		return nil, nil, err
	}
	g, err := d.region(op, op.Other)
	if err != nil {
		return nil, nil, err
	}
	return f, g, nil
}

// checkNewRegion validates the name and weight of a region op would insert.
func (d *Dual) checkNewRegion(op Operation) error {
	if op.Name == "" {
		return fmt.Errorf("%v: %w: empty name: %w", op, ErrIllegalOperation, ErrInvalidName)
	}
	if _, dup := d.faces[op.Name]; dup {
		return fmt.Errorf("%v: %w: %q exists: %w", op, ErrIllegalOperation, op.Name, ErrInvalidName)
	}
	if err := checkWeight(op.Weight); err != nil {
		return fmt.Errorf("%v: %w: %w", op, ErrIllegalOperation, err)
	}
	return nil
}

// checkChainInterior requires every inner vertex of a shared chain to have
// degree two, so removing the chain removes no other region's edges.
func (d *Dual) checkChainInterior(op Operation, chain []planar.VertexID) error {
	for _, v := range chain[1 : len(chain)-1] {
		if d.graph.Degree(v) != 2 {
			return illegal(op, "chain vertex %d has degree %d", v, d.graph.Degree(v))
		}
	}
	return nil
}

// removeChain deletes the inner vertices of chain and the edges between
// consecutive chain vertices.
func removeChain(g *planar.Graph, chain []planar.VertexID) error {
	if len(chain) == 2 {
		return g.RemoveEdge(chain[0], chain[1])
	}
	for _, v := range chain[1 : len(chain)-1] {
		if err := g.RemoveVertex(v); err != nil {
			return err
		}
	}
	return nil
}
