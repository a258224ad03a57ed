// SPDX-License-Identifier: MIT
//
// File: enumerate.go
// Role: Enumeration of every legal instance of an operation kind.
// Determinism:
//   - Candidates are generated in sorted region order (and boundary or
//     outer-walk order within a region), so the result order is stable.

package dual

import (
	"fmt"
	"strconv"
)

// PossibleOperations returns every legal instance of kind against the
// current state. Each instance is verified by a dry run, so applying any
// returned operation immediately succeeds.
//
// name and weight are used for the inserted region of the two insert kinds;
// an empty name is replaced by FreshName(). An invalid weight or a taken
// name yields no insert instances. The list is recomputed on every call.
func (d *Dual) PossibleOperations(kind OperationKind, name string, weight float64) []Operation {
	if name == "" {
		name = d.FreshName()
	}
	var out []Operation
	for _, op := range d.candidates(kind, name, weight) {
		if d.IsLegal(op) {
			out = append(out, op)
		}
	}
	return out
}

// FreshName returns the first unused name of the form "F<n>", n >= 1.
func (d *Dual) FreshName() string {
	for i := len(d.faces) + 1; ; i++ {
		n := "F" + strconv.Itoa(i)
		if _, taken := d.faces[n]; !taken {
			return n
		}
	}
}

// candidates lists structurally plausible instances of kind before the dry run.
func (d *Dual) candidates(kind OperationKind, name string, weight float64) []Operation {
	names := d.Names()
	var out []Operation

	switch kind {
	case InsertFaceInside:
		for _, f := range names {
			b := d.faces[f].Boundary
			if len(b) < 4 {
				continue
			}
			for _, v := range b {
				out = append(out, Operation{Kind: kind, Face: f, Vertex: v, Name: name, Weight: weight})
			}
		}

	case InsertFaceOutside:
		for _, e := range d.OuterBoundary().Edges() {
			out = append(out, Operation{Kind: kind, Edge: e, Name: name, Weight: weight})
		}

	case RemoveFaceWithoutBoundaryToExternalFace:
		for _, f := range names {
			if touches, _ := d.TouchesOuter(f); touches {
				continue
			}
			nbrs, _ := d.Neighbors(f)
			for _, g := range nbrs {
				out = append(out, Operation{Kind: kind, Face: f, Other: g})
			}
		}

	case RemoveFaceWithBoundaryToExternalFace:
		for _, f := range names {
			if touches, _ := d.TouchesOuter(f); touches {
				out = append(out, Operation{Kind: kind, Face: f})
			}
		}

	case FlipAdjacency, RemoveAdjacency:
		for _, f := range names {
			nbrs, _ := d.Neighbors(f)
			for _, g := range nbrs {
				if f < g {
					out = append(out, Operation{Kind: kind, Face: f, Other: g})
				}
			}
		}

	case CreateAdjacency:
		for i, f := range names {
			for _, g := range names[i+1:] {
				if run, _, ok := sharedRun(d.faces[f].Boundary, d.faces[g].Boundary); ok && len(run) == 1 {
					out = append(out, Operation{Kind: kind, Face: f, Other: g})
				}
			}
		}
	}

	return out
}

// Operations returns every legal instance of every kind, in AllKinds order.
func (d *Dual) Operations(name string, weight float64) map[OperationKind][]Operation {
	out := make(map[OperationKind][]Operation, len(AllKinds))
	for _, k := range AllKinds {
		out[k] = d.PossibleOperations(k, name, weight)
	}
	return out
}

// Describe renders the operation count per kind, for logs.
func Describe(ops map[OperationKind][]Operation) string {
	s := ""
	for _, k := range AllKinds {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%s=%d", k, len(ops[k]))
	}
	return s
}
