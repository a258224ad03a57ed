// SPDX-License-Identifier: MIT
//
// File: ops_adjacency.go
// Role: FlipAdjacency, CreateAdjacency and RemoveAdjacency.

package dual

import (
	"math"

	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
)

// relocationScales are the tried offsets when an operation moves vertices,
// from the preferred distance down.
var relocationScales = []float64{1, 0.5, 0.25}

// minSplit is the smallest accepted distance between the two halves of a
// split vertex.
const minSplit = 1e-9

// otherRegion returns the region on edge {u,v} other than skip, or "" when
// that side is the outer face.
func otherRegion(ef map[planar.Edge][]string, u, v planar.VertexID, skip string) string {
	for _, n := range ef[planar.NewEdge(u, v)] {
		if n != skip {
			return n
		}
	}
	return ""
}

// planFlip rotates the boundary between op.Face (f) and op.Other (g).
//
// With the shared chain a..b in f's order, a has neighbors p (on f) and q
// (on g), b has r (on f) and s (on g). Edges a-q and b-r are replaced by
// a-r and b-q, so the regions h (at p-a-q) and k (at r-b-s) become adjacent
// across a-b while f and g stop being adjacent. Inner chain vertices are
// dropped. a moves into f's side and b into g's side of the old chain.
func (d *Dual) planFlip(op Operation) (*mutation, error) {
	f, g, err := d.pair(op)
	if err != nil {
		return nil, err
	}
	chain, start, ok := sharedChain(f.Boundary, g.Boundary)
	if !ok {
		return nil, illegal(op, "%q and %q do not share exactly one boundary chain", op.Face, op.Other)
	}
	if err := d.checkChainInterior(op, chain); err != nil {
		return nil, err
	}
	a, b := chain[0], chain[len(chain)-1]
	if d.graph.Degree(a) != 3 || d.graph.Degree(b) != 3 {
		return nil, illegal(op, "chain ends %d and %d must both have degree 3", a, b)
	}
	lost := len(chain) - 1
	if len(f.Boundary)-lost < 3 || len(g.Boundary)-lost < 3 {
		return nil, illegal(op, "a region would drop below three vertices")
	}
	gChain, gStart, ok := sharedChain(g.Boundary, f.Boundary)
	if !ok {
		return nil, illegal(op, "shared chain is not contiguous on %q", op.Other)
	}
	p := f.Boundary.At(start - 1)
	r := f.Boundary.At(start + len(chain))
	q := g.Boundary.At(gStart + len(gChain))
	s := g.Boundary.At(gStart - 1)
	if q == r || p == s {
		return nil, illegal(op, "chain ends share a neighbor")
	}

	ef := d.edgeFaces()
	h := otherRegion(ef, a, p, op.Face)
	k := otherRegion(ef, b, r, op.Face)
	if h == k {
		return nil, illegal(op, "the regions at both chain ends coincide")
	}
	switch {
	case h == "":
		if touches, _ := d.TouchesOuter(k); touches {
			return nil, illegal(op, "%q is already adjacent to the outer face", k)
		}
	case k == "":
		if touches, _ := d.TouchesOuter(h); touches {
			return nil, illegal(op, "%q is already adjacent to the outer face", h)
		}
	default:
		if shareEdge(d.faces[h].Boundary, d.faces[k].Boundary) {
			return nil, illegal(op, "%q and %q are already adjacent", h, k)
		}
	}

	pa, _ := d.graph.Position(a)
	pb, _ := d.graph.Position(b)
	mid := geometry.Midpoint(pa, pb)
	half := geometry.Distance(pa, pb) / 2
	// Left of a->b is f's side.
	n := geometry.Normalize(geometry.Perp(geometry.Sub(pb, pa)))
	set := chainSet(chain)

	var last error
	for _, scale := range relocationScales {
		m := d.begin(op)
		if err := removeChain(m.graph, chain); err != nil {
			return nil, m.fail(err)
		}
		for _, e := range [][2]planar.VertexID{{a, q}, {b, r}} {
			if err := m.graph.RemoveEdge(e[0], e[1]); err != nil {
				return nil, m.fail(err)
			}
		}
		for _, e := range [][2]planar.VertexID{{a, b}, {a, r}, {b, q}} {
			if err := m.graph.AddEdge(e[0], e[1]); err != nil {
				return nil, m.fail(err)
			}
		}
		moves := map[planar.VertexID]geometry.Vec{
			a: geometry.Add(mid, geometry.Scale(n, scale*half)),
			b: geometry.Sub(mid, geometry.Scale(n, scale*half)),
		}
		if err := m.graph.SetPositions(moves); err != nil {
			return nil, m.fail(err)
		}
		m.touch(a, b)

		m.faces[op.Face].Boundary = collapse(f.Boundary, set, a)
		m.faces[op.Other].Boundary = collapse(g.Boundary, set, b)
		if h != "" {
			m.faces[h].Boundary, _ = insertBetween(d.faces[h].Boundary, a, q, b)
		}
		if k != "" {
			m.faces[k].Boundary, _ = insertBetween(d.faces[k].Boundary, b, r, a)
		}

		if last = m.finish(); last == nil {
			return m, nil
		}
	}

	return nil, last
}

// planCreate splits the single vertex c shared by op.Face and op.Other into
// c1 and c2 joined by a new edge, which becomes their shared boundary.
//
// Around c (counter-clockwise) c1 keeps the edges from just after op.Face's
// wedge up to op.Other's first edge; c2 keeps the rest. Each half moves a
// quarter of c's shortest edge toward the mean direction of its edges.
func (d *Dual) planCreate(op Operation) (*mutation, error) {
	f, g, err := d.pair(op)
	if err != nil {
		return nil, err
	}
	run, _, ok := sharedRun(f.Boundary, g.Boundary)
	if !ok || len(run) != 1 {
		return nil, illegal(op, "%q and %q must meet at exactly one vertex", op.Face, op.Other)
	}
	c := run[0]
	deg := d.graph.Degree(c)
	if deg < 4 {
		return nil, illegal(op, "shared vertex %d has degree %d, need at least 4", c, deg)
	}

	rot, _ := d.graph.RotationalNeighbors(c)
	wedge := func(face planar.Face) int {
		succ := face.At(face.IndexOf(c) + 1)
		for i, n := range rot {
			if n == succ {
				return i
			}
		}
		return -1
	}
	iF, iG := wedge(f.Boundary), wedge(g.Boundary)
	if iF < 0 || iG < 0 {
		return nil, illegal(op, "rotation at %d does not match the region boundaries", c)
	}

	first := make(map[planar.VertexID]struct{}, deg)
	for i := (iF + 1) % deg; ; i = (i + 1) % deg {
		first[rot[i]] = struct{}{}
		if i == iG {
			break
		}
	}
	var second []planar.VertexID
	for _, n := range rot {
		if _, in := first[n]; !in {
			second = append(second, n)
		}
	}

	pc, _ := d.graph.Position(c)
	shortest := math.Inf(1)
	var dir1, dir2 geometry.Vec
	for _, n := range rot {
		pn, _ := d.graph.Position(n)
		shortest = math.Min(shortest, geometry.Distance(pc, pn))
		u := geometry.Normalize(geometry.Sub(pn, pc))
		if _, in := first[n]; in {
			dir1 = geometry.Add(dir1, u)
		} else {
			dir2 = geometry.Add(dir2, u)
		}
	}
	dir1, dir2 = geometry.Normalize(dir1), geometry.Normalize(dir2)
	if dir1 == geometry.Zero || dir2 == geometry.Zero {
		return nil, illegal(op, "no split direction at %d", c)
	}

	owner := func(n, c2 planar.VertexID) planar.VertexID {
		if _, in := first[n]; in {
			return c
		}
		return c2
	}

	var last error
	for _, s := range relocationScales {
		delta := 0.25 * shortest * s
		p1 := geometry.Add(pc, geometry.Scale(dir1, delta))
		p2 := geometry.Add(pc, geometry.Scale(dir2, delta))
		if geometry.Distance(p1, p2) < minSplit {
			return nil, illegal(op, "split halves of %d coincide", c)
		}

		m := d.begin(op)
		c2 := m.graph.AddVertex(p2)
		for _, n := range second {
			if err := m.graph.RemoveEdge(c, n); err != nil {
				return nil, m.fail(err)
			}
			if err := m.graph.AddEdge(c2, n); err != nil {
				return nil, m.fail(err)
			}
		}
		if err := m.graph.AddEdge(c, c2); err != nil {
			return nil, m.fail(err)
		}
		if err := m.graph.SetPosition(c, p1); err != nil {
			return nil, m.fail(err)
		}
		m.touch(c, c2)

		for _, reg := range m.faces {
			i := reg.Boundary.IndexOf(c)
			if i < 0 {
				continue
			}
			prev := owner(reg.Boundary.At(i-1), c2)
			next := owner(reg.Boundary.At(i+1), c2)
			if prev == next {
				reg.Boundary = replaceVertex(reg.Boundary, c, prev)
			} else {
				reg.Boundary = replaceVertex(reg.Boundary, c, prev, next)
			}
		}

		if last = m.finish(); last == nil {
			return m, nil
		}
	}

	return nil, last
}

// planRemoveAdjacency contracts the shared chain of op.Face and op.Other
// into its first vertex a, placed at the midpoint of the chain ends. Both
// regions keep at least three vertices.
func (d *Dual) planRemoveAdjacency(op Operation) (*mutation, error) {
	f, g, err := d.pair(op)
	if err != nil {
		return nil, err
	}
	chain, _, ok := sharedChain(f.Boundary, g.Boundary)
	if !ok {
		return nil, illegal(op, "%q and %q do not share exactly one boundary chain", op.Face, op.Other)
	}
	if err := d.checkChainInterior(op, chain); err != nil {
		return nil, err
	}
	lost := len(chain) - 1
	if len(f.Boundary)-lost < 3 || len(g.Boundary)-lost < 3 {
		return nil, illegal(op, "a region would drop below three vertices")
	}
	a, b := chain[0], chain[len(chain)-1]
	set := chainSet(chain)

	nbrs, _ := d.graph.Neighbors(b)
	var moved []planar.VertexID
	for _, n := range nbrs {
		if _, in := set[n]; in {
			continue
		}
		if d.graph.HasEdge(a, n) {
			return nil, illegal(op, "contraction would double edge %d-%d", a, n)
		}
		moved = append(moved, n)
	}

	pa, _ := d.graph.Position(a)
	pb, _ := d.graph.Position(b)

	m := d.begin(op)
	if err := removeChain(m.graph, chain); err != nil {
		return nil, m.fail(err)
	}
	if err := m.graph.RemoveVertex(b); err != nil {
		return nil, m.fail(err)
	}
	for _, n := range moved {
		if err := m.graph.AddEdge(a, n); err != nil {
			return nil, m.fail(err)
		}
	}
	if err := m.graph.SetPosition(a, geometry.Midpoint(pa, pb)); err != nil {
		return nil, m.fail(err)
	}
	m.touch(a)

	for _, reg := range m.faces {
		for _, v := range chain {
			if reg.Boundary.Contains(v) {
				reg.Boundary = collapse(reg.Boundary, set, a)
				break
			}
		}
	}

	if err := m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// chainSet returns the chain's vertices as a set.
func chainSet(chain []planar.VertexID) map[planar.VertexID]struct{} {
	out := make(map[planar.VertexID]struct{}, len(chain))
	for _, v := range chain {
		out[v] = struct{}{}
	}
	return out
}
