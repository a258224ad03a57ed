// SPDX-License-Identifier: MIT
//
// File: chain.go
// Role: Sequence surgery on face boundaries (shared runs, collapsing, splicing).

package dual

import "github.com/katalvlaran/polydual/planar"

// sharedRun returns the vertices f shares with o as one contiguous run in
// f's cyclic order, plus the index of the run's first vertex in f.
// ok is false when they share nothing, share all of f, or share more than
// one run.
func sharedRun(f, o planar.Face) (run []planar.VertexID, start int, ok bool) {
	in := make(map[planar.VertexID]struct{}, len(o))
	for _, v := range o {
		in[v] = struct{}{}
	}
	n := len(f)
	member := make([]bool, n)
	count := 0
	for i, v := range f {
		if _, hit := in[v]; hit {
			member[i] = true
			count++
		}
	}
	if count == 0 || count == n {
		return nil, 0, false
	}

	start = -1
	for i := 0; i < n; i++ {
		if member[i] && !member[(i-1+n)%n] {
			if start >= 0 {
				return nil, 0, false
			}
			start = i
		}
	}
	for k := 0; k < count; k++ {
		run = append(run, f.At(start+k))
	}

	return run, start, true
}

// sharedChain is sharedRun restricted to runs of at least one edge, where
// every consecutive pair is an edge of both faces and the run is contiguous
// in o as well. This is the shared boundary of two adjacent regions.
func sharedChain(f, o planar.Face) (chain []planar.VertexID, start int, ok bool) {
	chain, start, ok = sharedRun(f, o)
	if !ok || len(chain) < 2 {
		return nil, 0, false
	}
	for k := 0; k+1 < len(chain); k++ {
		if !o.HasEdge(chain[k], chain[k+1]) {
			return nil, 0, false
		}
	}
	if back, _, ok2 := sharedRun(o, f); !ok2 || len(back) != len(chain) {
		return nil, 0, false
	}

	return chain, start, true
}

// restPath returns f's boundary from the last vertex of the run at start
// (length runLen) around to the run's first vertex, both ends included.
func restPath(f planar.Face, start, runLen int) []planar.VertexID {
	n := len(f)
	out := make([]planar.VertexID, 0, n-runLen+2)
	for k := runLen - 1; k <= n; k++ {
		out = append(out, f.At(start+k))
	}
	return out
}

// collapse replaces every maximal run of vertices from set with a single rep.
// A face that meets set in two places keeps two copies of rep and is no
// longer simple.
func collapse(f planar.Face, set map[planar.VertexID]struct{}, rep planar.VertexID) planar.Face {
	s := -1
	for i, v := range f {
		if _, in := set[v]; !in {
			s = i
			break
		}
	}
	if s < 0 {
		return planar.Face{rep}
	}

	out := make(planar.Face, 0, len(f))
	inRun := false
	for k := 0; k < len(f); k++ {
		v := f.At(s + k)
		if _, in := set[v]; in {
			if !inRun {
				out = append(out, rep)
			}
			inRun = true
			continue
		}
		out = append(out, v)
		inRun = false
	}

	return out
}

// insertBetween places x between the consecutive boundary vertices u and w.
// ok is false when {u,w} is not a boundary edge of f.
func insertBetween(f planar.Face, u, w, x planar.VertexID) (planar.Face, bool) {
	n := len(f)
	for i := 0; i < n; i++ {
		a, b := f[i], f.At(i+1)
		if (a == u && b == w) || (a == w && b == u) {
			out := make(planar.Face, 0, n+1)
			out = append(out, f[:i+1]...)
			out = append(out, x)
			out = append(out, f[i+1:]...)
			return out, true
		}
	}
	return f, false
}

// replaceVertex substitutes v with the sequence with (possibly empty).
func replaceVertex(f planar.Face, v planar.VertexID, with ...planar.VertexID) planar.Face {
	out := make(planar.Face, 0, len(f)+len(with))
	for _, u := range f {
		if u == v {
			out = append(out, with...)
			continue
		}
		out = append(out, u)
	}
	return out
}

// faceEdges returns f's edges as a set.
func faceEdges(f planar.Face) map[planar.Edge]struct{} {
	out := make(map[planar.Edge]struct{}, len(f))
	for _, e := range f.Edges() {
		out[e] = struct{}{}
	}
	return out
}

// shareEdge reports whether a and b have a boundary edge in common.
func shareEdge(a, b planar.Face) bool {
	ea := faceEdges(a)
	for _, e := range b.Edges() {
		if _, ok := ea[e]; ok {
			return true
		}
	}
	return false
}
