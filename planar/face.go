// SPDX-License-Identifier: MIT
//
// File: face.go
// Role: Face boundary sequences and their canonical identity.

package planar

import (
	"strconv"
	"strings"
)

// Face is a cyclic boundary sequence of vertex ids. Two faces are the same
// face when one is a rotation, possibly reversed, of the other.
type Face []VertexID

// Len returns the boundary length.
func (f Face) Len() int { return len(f) }

// At returns the vertex at position i modulo the boundary length.
func (f Face) At(i int) VertexID {
	n := len(f)
	return f[((i%n)+n)%n]
}

// IndexOf returns the first position of v, or -1.
func (f Face) IndexOf(v VertexID) int { return indexOf(f, v) }

// Contains reports whether v is on the boundary.
func (f Face) Contains(v VertexID) bool { return indexOf(f, v) >= 0 }

// HasEdge reports whether u and v are consecutive on the boundary, in either order.
func (f Face) HasEdge(u, v VertexID) bool {
	for i := range f {
		a, b := f[i], f.At(i+1)
		if (a == u && b == v) || (a == v && b == u) {
			return true
		}
	}
	return false
}

// Edges returns the boundary edges in boundary order.
func (f Face) Edges() []Edge {
	out := make([]Edge, 0, len(f))
	for i := range f {
		out = append(out, NewEdge(f[i], f.At(i+1)))
	}
	return out
}

// Reverse returns the boundary walked the other way, starting at the same vertex.
func (f Face) Reverse() Face {
	out := make(Face, len(f))
	if len(f) == 0 {
		return out
	}
	out[0] = f[0]
	for i := 1; i < len(f); i++ {
		out[i] = f[len(f)-i]
	}
	return out
}

// Rotate returns the boundary starting at position i.
func (f Face) Rotate(i int) Face {
	out := make(Face, len(f))
	for k := range f {
		out[k] = f.At(i + k)
	}
	return out
}

// IsSimple reports whether the boundary has at least three vertices and no
// repeated vertex.
func (f Face) IsSimple() bool {
	if len(f) < 3 {
		return false
	}
	seen := make(map[VertexID]struct{}, len(f))
	for _, v := range f {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Canonical returns the representative of f's equivalence class: rotated to
// start at its minimum id, then the lexicographically smaller of the forward
// and reversed walks.
func (f Face) Canonical() Face {
	if len(f) == 0 {
		return Face{}
	}
	m := 0
	for i, v := range f {
		if v < f[m] {
			m = i
		}
	}
	fwd := f.Rotate(m)
	rev := fwd.Reverse()
	if lessFace(rev, fwd) {
		return rev
	}
	return fwd
}

// Key returns a string usable as a map key for the face's equivalence class.
func (f Face) Key() string {
	c := f.Canonical()
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}

// Equal reports rotation/reflection equivalence.
func (f Face) Equal(o Face) bool {
	if len(f) != len(o) {
		return false
	}
	a, b := f.Canonical(), o.Canonical()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (f Face) Clone() Face {
	out := make(Face, len(f))
	copy(out, f)
	return out
}

func lessFace(a, b Face) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
