// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: BuildGraph orchestration and the shared vertex/edge emitters.
// Determinism:
//   - Vertex names come from cfg.idFn in emission order; the same
//     constructor sequence yields identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polydual/geometry"
	"github.com/katalvlaran/polydual/planar"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(g *planar.WeightedGraph, cfg builderConfig) error

// BuildGraph creates a WeightedGraph, resolves bopts, and applies cons in order.
// Constructor errors are wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*planar.WeightedGraph, error) {
	g := planar.NewWeightedGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// Build is BuildGraph for a single constructor.
func Build(con Constructor, bopts ...BuilderOption) (*planar.WeightedGraph, error) {
	return BuildGraph(bopts, con)
}

// emitter adds vertices named by cfg.idFn with weights from cfg.weightFn.
type emitter struct {
	method string
	g      *planar.WeightedGraph
	cfg    builderConfig
	next   int
}

func newEmitter(method string, g *planar.WeightedGraph, cfg builderConfig) *emitter {
	return &emitter{method: method, g: g, cfg: cfg, next: g.VertexCount()}
}

// vertex adds the next named vertex at fixture coordinates (x,y).
func (e *emitter) vertex(x, y float64) (planar.VertexID, error) {
	return e.vertexAt(e.cfg.at(x, y))
}

// vertexAt adds the next named vertex at p.
func (e *emitter) vertexAt(p geometry.Vec) (planar.VertexID, error) {
	name := e.cfg.idFn(e.next)
	e.next++
	id, err := e.g.AddLabeledVertex(name, e.cfg.weightFn(e.cfg.rng), p)
	if err != nil {
		return 0, fmt.Errorf("%s: AddLabeledVertex(%s): %w: %w", e.method, name, ErrConstructFailed, err)
	}
	return id, nil
}

// edge joins u and v.
func (e *emitter) edge(u, v planar.VertexID) error {
	if err := e.g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", e.method, u, v, ErrConstructFailed, err)
	}
	return nil
}

// ring joins ids in a closed cycle.
func (e *emitter) ring(ids []planar.VertexID) error {
	for i := range ids {
		if err := e.edge(ids[i], ids[(i+1)%len(ids)]); err != nil {
			return err
		}
	}
	return nil
}
