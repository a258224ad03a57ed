// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for the builder package.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a graph mutation that failed during construction
// (duplicate name, invalid weight, rejected edge).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidParameter indicates a non-size parameter outside its documented range.
var ErrInvalidParameter = errors.New("builder: parameter out of range")
