// SPDX-License-Identifier: MIT
//
// Package builder assembles deterministic vertex-weighted plane graphs: the
// source fixtures the transform package turns into polygonal duals.
//
// The package offers:
//
//   - Orchestration: BuildGraph(bopts, cons...) creates a WeightedGraph and
//     applies Constructors in order.
//   - Topologies (all plane, connected, without bridges or cut vertices):
//     Diamond, Cycle(n), Wheel(n), Fan(n), TriangulatedGrid(rows, cols),
//     JitteredGrid(rows, cols, jitter).
//   - Vertex names (IDFn): DefaultIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Vertex weights (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn.
//   - Options: WithIDScheme, WithWeightFn, WithSeed, WithRand, WithSpacing,
//     WithOrigin. Option constructors panic on meaningless values;
//     Constructors never panic and return sentinel errors.
//
// Determinism: the same options, seed and constructor order produce
// identical graphs, vertex ids included.
package builder
