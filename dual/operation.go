// SPDX-License-Identifier: MIT
//
// File: operation.go
// Role: Operation kinds and the Operation value.

package dual

import (
	"fmt"

	"github.com/katalvlaran/polydual/planar"
)

// OperationKind names one of the seven topology edits.
type OperationKind int

const (
	// InsertFaceInside cuts a corner off an existing region (boundary >= 4)
	// and makes it a new region.
	InsertFaceInside OperationKind = iota
	// InsertFaceOutside attaches a new triangular region to an outer edge.
	InsertFaceOutside
	// RemoveFaceWithoutBoundaryToExternalFace merges an interior region into
	// one of its neighbors.
	RemoveFaceWithoutBoundaryToExternalFace
	// RemoveFaceWithBoundaryToExternalFace merges a region that touches the
	// outer face into the outer face.
	RemoveFaceWithBoundaryToExternalFace
	// FlipAdjacency replaces the adjacency of two regions with an adjacency
	// of the two regions at the ends of their shared boundary.
	FlipAdjacency
	// CreateAdjacency makes two regions that meet at a single vertex share an edge.
	CreateAdjacency
	// RemoveAdjacency contracts the shared boundary of two regions to a single vertex.
	RemoveAdjacency
)

// AllKinds lists every kind in declaration order.
var AllKinds = []OperationKind{
	InsertFaceInside,
	InsertFaceOutside,
	RemoveFaceWithoutBoundaryToExternalFace,
	RemoveFaceWithBoundaryToExternalFace,
	FlipAdjacency,
	CreateAdjacency,
	RemoveAdjacency,
}

var kindNames = map[OperationKind]string{
	InsertFaceInside:                        "InsertFaceInside",
	InsertFaceOutside:                       "InsertFaceOutside",
	RemoveFaceWithoutBoundaryToExternalFace: "RemoveFaceWithoutBoundaryToExternalFace",
	RemoveFaceWithBoundaryToExternalFace:    "RemoveFaceWithBoundaryToExternalFace",
	FlipAdjacency:                           "FlipAdjacency",
	CreateAdjacency:                         "CreateAdjacency",
	RemoveAdjacency:                         "RemoveAdjacency",
}

// String returns the kind's name.
func (k OperationKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("OperationKind(%d)", int(k))
}

// Valid reports whether k is one of AllKinds.
func (k OperationKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Operation is one concrete, parameterized topology edit.
//
// Field use by kind:
//
//	InsertFaceInside       Face (region to cut), Vertex (corner), Name, Weight
//	InsertFaceOutside      Edge (outer edge), Name, Weight
//	RemoveFaceWithout...   Face (removed), Other (absorbing neighbor)
//	RemoveFaceWith...      Face (removed)
//	Flip/Create/Remove...  Face, Other (the two regions)
type Operation struct {
	Kind   OperationKind
	Face   string
	Other  string
	Vertex planar.VertexID
	Edge   planar.Edge
	Name   string
	Weight float64
}

// String renders the operation for logs and errors.
func (op Operation) String() string {
	switch op.Kind {
	case InsertFaceInside:
		return fmt.Sprintf("%s(%s@%d -> %s)", op.Kind, op.Face, op.Vertex, op.Name)
	case InsertFaceOutside:
		return fmt.Sprintf("%s(%v -> %s)", op.Kind, op.Edge, op.Name)
	case RemoveFaceWithBoundaryToExternalFace:
		return fmt.Sprintf("%s(%s)", op.Kind, op.Face)
	default:
		return fmt.Sprintf("%s(%s,%s)", op.Kind, op.Face, op.Other)
	}
}

// illegal wraps ErrIllegalOperation with the operation and a reason.
func illegal(op Operation, format string, args ...any) error {
	return fmt.Errorf("%v: %s: %w", op, fmt.Sprintf(format, args...), ErrIllegalOperation)
}
