// SPDX-License-Identifier: MIT
//
// File: scores.go
// Role: Evaluator interface, Scores aggregation and the name registry.

package quality

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/polydual/dual"
)

// ErrUnknownEvaluator indicates ByName was given a name it does not know.
var ErrUnknownEvaluator = errors.New("quality: unknown evaluator")

// Evaluator computes one score per region of a dual.
type Evaluator interface {
	Name() string
	Evaluate(d *dual.Dual) Scores
}

// Scores maps region names to scores.
type Scores map[string]float64

// Score is one named entry of Scores.
type Score struct {
	Name  string
	Value float64
}

// Mean returns the arithmetic mean, or 0 for no scores.
func (s Scores) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, e := range s.Sorted() {
		sum += e.Value
	}
	return sum / float64(len(s))
}

// Max returns the largest score, or 0 for no scores.
func (s Scores) Max() float64 {
	var m float64
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

// Sorted returns the entries ordered by region name.
func (s Scores) Sorted() []Score {
	out := make([]Score, 0, len(s))
	for n, v := range s {
		out = append(out, Score{Name: n, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByName returns the evaluator registered under name.
func ByName(name string) (Evaluator, error) {
	switch name {
	case CartographicErrorName:
		return CartographicError{}, nil
	case PolygonComplexityName:
		return PolygonComplexity{}, nil
	}
	return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownEvaluator)
}

// Names lists the registered evaluator names.
func Names() []string {
	return []string{CartographicErrorName, PolygonComplexityName}
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Min(math.Max(x, 0), 1)
}
