// SPDX-License-Identifier: MIT
//
// Package engine owns one polygonal dual and drives it.
//
// An Engine is the single logical owner a dual.Dual requires. Every call
// (force steps, weight changes, topology edits, metric reads) takes the
// same mutex, so edits arriving from other goroutines are applied as whole
// steps between force iterations and never interleave with one.
//
// The continuous loop (Start/Stop) runs Step on a ticker until Stop is
// called or its context is cancelled. Cancellation is cooperative: a step
// in progress always completes.
//
// Configuration is YAML (LoadConfig, LoadConfigFile) layered over
// DefaultConfig and checked with struct tags. Metrics are exported through
// a private Prometheus registry (Metrics.Registry).
//
// Errors:
//
//	ErrInvalidConfig  - the configuration failed to decode or validate.
//	ErrAlreadyRunning - Start was called while the loop runs.
//	ErrNotRunning     - Stop was called while the loop is idle.
//
// Errors from the dual (dual.ErrUnknownFace, dual.ErrIllegalOperation, ...)
// are returned wrapped and unchanged in meaning.
package engine
