// SPDX-License-Identifier: MIT
//
// File: ops_insert.go
// Role: InsertFaceInside and InsertFaceOutside.

package dual

import (
	"math"

	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
)

// outwardHeights are the tried apex heights of a new outer triangle, as
// fractions of the base edge length.
var outwardHeights = []float64{math.Sqrt(3) / 2, 0.5, 0.25, 0.1}

// planInsertInside cuts the corner p-v-q of op.Face at v with a new vertex x
// at the centroid of triangle (p,v,q). The corner becomes region op.Name
// with boundary (p,v,q,x); op.Face keeps x in place of v.
func (d *Dual) planInsertInside(op Operation) (*mutation, error) {
	if err := d.checkNewRegion(op); err != nil {
		return nil, err
	}
	r, err := d.region(op, op.Face)
	if err != nil {
		return nil, err
	}
	f := r.Boundary
	if len(f) < 4 {
		return nil, illegal(op, "boundary has %d vertices, need at least 4", len(f))
	}
	i := f.IndexOf(op.Vertex)
	if i < 0 {
		return nil, illegal(op, "vertex %d is not on the boundary", op.Vertex)
	}
	p, v, q := f.At(i-1), op.Vertex, f.At(i+1)
	pp, _ := d.graph.Position(p)
	pv, _ := d.graph.Position(v)
	pq, _ := d.graph.Position(q)
	if geometry.Orientation(pp, pv, pq) <= 0 {
		return nil, illegal(op, "corner at %d is not convex", v)
	}

	m := d.begin(op)
	x := m.graph.AddVertex(geometry.Centroid([]geometry.Vec{pp, pv, pq}))
	if err := m.graph.AddEdge(p, x); err != nil {
		return nil, m.fail(err)
	}
	if err := m.graph.AddEdge(x, q); err != nil {
		return nil, m.fail(err)
	}
	m.touch(x)
	m.faces[op.Face].Boundary = replaceVertex(f, v, x)
	m.faces[op.Name] = &Region{Name: op.Name, Weight: op.Weight, Boundary: planar.Face{p, v, q, x}}

	if err := m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// planInsertOutside raises a triangle (u,x,v) on the outer side of the
// outer edge op.Edge. The apex height shrinks until the new edges fit.
func (d *Dual) planInsertOutside(op Operation) (*mutation, error) {
	if err := d.checkNewRegion(op); err != nil {
		return nil, err
	}
	u, v := op.Edge.U, op.Edge.V
	if !d.graph.HasEdge(u, v) {
		return nil, illegal(op, "edge %v does not exist", op.Edge)
	}
	emb := d.graph.Faces()
	if !emb.IsOuterEdge(u, v) {
		return nil, illegal(op, "edge %v is not on the outer face", op.Edge)
	}
	// Orient u->v with the inner region on its left.
	if emb.IsOuterLeftOf(u, v) {
		u, v = v, u
	}
	pu, _ := d.graph.Position(u)
	pv, _ := d.graph.Position(v)
	dir := geometry.Sub(pv, pu)
	out := geometry.Normalize(geometry.V(dir.Y, -dir.X))
	base := geometry.Length(dir)
	mid := geometry.Midpoint(pu, pv)

	var last error
	for _, h := range outwardHeights {
		m := d.begin(op)
		x := m.graph.AddVertex(geometry.Add(mid, geometry.Scale(out, h*base)))
		if err := m.graph.AddEdge(u, x); err != nil {
			return nil, m.fail(err)
		}
		if err := m.graph.AddEdge(x, v); err != nil {
			return nil, m.fail(err)
		}
		m.touch(x)
		m.faces[op.Name] = &Region{Name: op.Name, Weight: op.Weight, Boundary: planar.Face{u, x, v}}
		if last = m.finish(); last == nil {
			return m, nil
		}
	}

	return nil, last
}
