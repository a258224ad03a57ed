// SPDX-License-Identifier: MIT
//
// File: id_fn.go
// Role: Vertex naming schemes. Names become region names of the dual.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names a vertex from its zero-based construction index.
// It must be pure: the same idx always yields the same name.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index, e.g. 0->"0", 42->"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet column names: 0->"A", 25->"Z", 26->"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be >= 0, got %d", idx))
	}
	var letters []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		letters = append(letters, byte('A'+i%26))
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be >= 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
