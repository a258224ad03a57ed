// SPDX-License-Identifier: MIT
//
// File: weighted.go
// Role: Vertex-weighted planar graph: the input of the dual transformer.

package planar

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/polydual/geometry"
)

// ErrInvalidLabel indicates an empty name, a duplicate name, or a negative,
// NaN or infinite weight.
var ErrInvalidLabel = errors.New("planar: invalid label")

// Label names and weighs a vertex of a WeightedGraph.
type Label struct {
	Name   string
	Weight float64
}

// WeightedGraph is a Graph whose vertices carry unique names and
// non-negative weights.
type WeightedGraph struct {
	*Graph
	labels map[VertexID]Label
	byName map[string]VertexID
}

// NewWeightedGraph returns an empty WeightedGraph.
func NewWeightedGraph() *WeightedGraph {
	return &WeightedGraph{
		Graph:  NewGraph(),
		labels: make(map[VertexID]Label),
		byName: make(map[string]VertexID),
	}
}

// AddLabeledVertex inserts a named, weighted vertex at pos.
// Returns ErrInvalidLabel for an empty or duplicate name or a bad weight.
func (w *WeightedGraph) AddLabeledVertex(name string, weight float64, pos geometry.Vec) (VertexID, error) {
	if err := w.checkLabel(0, Label{Name: name, Weight: weight}); err != nil {
		return 0, err
	}
	id := w.Graph.AddVertex(pos)
	w.labels[id] = Label{Name: name, Weight: weight}
	w.byName[name] = id

	return id, nil
}

// SetLabel (re)labels an existing vertex.
func (w *WeightedGraph) SetLabel(id VertexID, l Label) error {
	if !w.HasVertex(id) {
		return fmt.Errorf("SetLabel(%d): %w", id, ErrUnknownVertex)
	}
	if err := w.checkLabel(id, l); err != nil {
		return err
	}
	if old, ok := w.labels[id]; ok {
		delete(w.byName, old.Name)
	}
	w.labels[id] = l
	w.byName[l.Name] = id

	return nil
}

// Label returns the label of id.
func (w *WeightedGraph) Label(id VertexID) (Label, bool) {
	l, ok := w.labels[id]
	return l, ok
}

// VertexByName resolves a name to its vertex id.
func (w *WeightedGraph) VertexByName(name string) (VertexID, bool) {
	id, ok := w.byName[name]
	return id, ok
}

// Names returns every label name, sorted.
func (w *WeightedGraph) Names() []string {
	out := make([]string, 0, len(w.byName))
	for n := range w.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// AddEdgeByName connects two labeled vertices.
func (w *WeightedGraph) AddEdgeByName(a, b string) error {
	u, okU := w.byName[a]
	v, okV := w.byName[b]
	if !okU || !okV {
		return fmt.Errorf("AddEdgeByName(%q,%q): %w: %w", a, b, ErrInvalidEdge, ErrUnknownVertex)
	}
	return w.AddEdge(u, v)
}

func (w *WeightedGraph) checkLabel(id VertexID, l Label) error {
	if l.Name == "" {
		return fmt.Errorf("label: empty name: %w", ErrInvalidLabel)
	}
	if math.IsNaN(l.Weight) || math.IsInf(l.Weight, 0) || l.Weight < 0 {
		return fmt.Errorf("label %q: weight %v: %w", l.Name, l.Weight, ErrInvalidLabel)
	}
	if owner, taken := w.byName[l.Name]; taken && owner != id {
		return fmt.Errorf("label %q: duplicate name: %w", l.Name, ErrInvalidLabel)
	}
	return nil
}

// RemoveVertex deletes the vertex, its edges and its label.
func (w *WeightedGraph) RemoveVertex(id VertexID) error {
	if err := w.Graph.RemoveVertex(id); err != nil {
		return err
	}
	if l, ok := w.labels[id]; ok {
		delete(w.byName, l.Name)
		delete(w.labels, id)
	}
	return nil
}
