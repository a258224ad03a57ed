// SPDX-License-Identifier: MIT
//
// Package dual maintains a polygonal dual: a plane straight-line graph whose
// inner faces are named, weighted regions.
//
// A Dual holds one planar.Graph and one Region per inner face. After every
// successful call the five invariants hold:
//
//  1. No two edges cross in the stored drawing.
//  2. The graph is connected and has exactly one outer face.
//  3. Every inner face is exactly one Region with a unique name and a
//     non-negative weight.
//  4. Every edge borders one or two faces (no bridges).
//  5. Every face boundary, outer face included, is a simple cycle.
//
// Topology edits come in seven kinds (see OperationKind). Each kind can be
// enumerated against the current state with PossibleOperations and applied
// with Apply. Apply re-checks legality against the current state, performs
// the edit on a private copy, verifies the touched edges and the traced
// faces, and only then commits. A failed Apply leaves the Dual exactly as it
// was.
//
// Face adjacency is the dual's notion of an edge of the source graph: two
// regions are adjacent when their boundaries share at least one edge. The
// adjacency operations (Flip, Create, Remove) change which regions are
// adjacent without adding or removing regions.
//
// Concurrency: a Dual has one logical owner and no internal locking.
//
// Errors:
//
//	ErrUnknownFace        - a region name does not exist.
//	ErrIllegalOperation   - an operation is not legal against the current state.
//	ErrInvalidWeight      - negative, NaN or infinite weight.
//	ErrInvalidName        - empty or duplicate region name.
//	ErrNoLegalOperation   - the sampler found no legal operation of any kind.
//	ErrInvariantViolation - a graph/region set fails one of the five invariants.
package dual
