// SPDX-License-Identifier: MIT
//
// File: ops_remove.go
// Role: RemoveFaceWithoutBoundaryToExternalFace and RemoveFaceWithBoundaryToExternalFace.

package dual

import "github.com/katalvlaran/polydual/planar"

// planRemoveInterior deletes the boundary chain between op.Face and
// op.Other. op.Face must not touch the outer face; op.Other absorbs its
// area and keeps its own name and weight.
func (d *Dual) planRemoveInterior(op Operation) (*mutation, error) {
	f, g, err := d.pair(op)
	if err != nil {
		return nil, err
	}
	ef := d.edgeFaces()
	for _, e := range f.Boundary.Edges() {
		if len(ef[e]) < 2 {
			return nil, illegal(op, "%q touches the outer face at %v", op.Face, e)
		}
	}
	chain, start, ok := sharedChain(f.Boundary, g.Boundary)
	if !ok {
		return nil, illegal(op, "%q and %q do not share exactly one boundary chain", op.Face, op.Other)
	}
	if err := d.checkChainInterior(op, chain); err != nil {
		return nil, err
	}
	gChain, gStart, ok := sharedChain(g.Boundary, f.Boundary)
	if !ok {
		return nil, illegal(op, "shared chain is not contiguous on %q", op.Other)
	}

	// g from a to b the long way, then f from b back to a without the ends.
	merged := planar.Face(restPath(g.Boundary, gStart, len(gChain)))
	fRest := restPath(f.Boundary, start, len(chain))
	merged = append(merged, fRest[1:len(fRest)-1]...)

	m := d.begin(op)
	if err := removeChain(m.graph, chain); err != nil {
		return nil, m.fail(err)
	}
	delete(m.faces, op.Face)
	m.faces[op.Other].Boundary = merged

	if err := m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// planRemoveExterior deletes the chain op.Face shares with the outer face,
// merging op.Face into the outer face. The last region cannot be removed.
func (d *Dual) planRemoveExterior(op Operation) (*mutation, error) {
	f, err := d.region(op, op.Face)
	if err != nil {
		return nil, err
	}
	if len(d.faces) < 2 {
		return nil, illegal(op, "cannot remove the last region")
	}
	outer := d.OuterBoundary()
	chain, _, ok := sharedChain(f.Boundary, outer)
	if !ok {
		return nil, illegal(op, "%q does not share exactly one chain with the outer face", op.Face)
	}
	if err := d.checkChainInterior(op, chain); err != nil {
		return nil, err
	}

	m := d.begin(op)
	if err := removeChain(m.graph, chain); err != nil {
		return nil, m.fail(err)
	}
	delete(m.faces, op.Face)

	if err := m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}
