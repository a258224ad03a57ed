// SPDX-License-Identifier: MIT
//
// File: forces.go
// Role: The Forces result type.

package force

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
)

// Sentinel errors for the force package.
var (
	// ErrInvalidConfig indicates a negative strength or a bad shaping constant.
	ErrInvalidConfig = errors.New("force: invalid config")
)

// Forces maps every vertex to its summed force. Vertices whose sum was not
// finite are listed in Invalid (sorted) and carry a zero vector.
type Forces struct {
	Vectors map[planar.VertexID]geometry.Vec
	Invalid []planar.VertexID
}

// newForces returns zero forces for every vertex of g.
func newForces(g *planar.Graph) Forces {
	f := Forces{Vectors: make(map[planar.VertexID]geometry.Vec, g.VertexCount())}
	for _, v := range g.Vertices() {
		f.Vectors[v] = geometry.Zero
	}
	return f
}

// add accumulates p onto v.
func (f Forces) add(v planar.VertexID, p geometry.Vec) {
	f.Vectors[v] = geometry.Add(f.Vectors[v], p)
}

// Get returns the force on v (zero if absent).
func (f Forces) Get(v planar.VertexID) geometry.Vec { return f.Vectors[v] }

// MaxMagnitude returns the largest force length.
func (f Forces) MaxMagnitude() float64 {
	var m float64
	for _, p := range f.Vectors {
		m = math.Max(m, geometry.Length(p))
	}
	return m
}

func sortIDs(ids []planar.VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
