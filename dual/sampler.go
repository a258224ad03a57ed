// SPDX-License-Identifier: MIT
//
// File: sampler.go
// Role: Two-stage random operation sampling and seeded RNG helpers.
//
// Concurrency:
//   - math/rand.Rand is not goroutine-safe; do not share one across goroutines.

package dual

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand. seed == 0 selects defaultSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// SampleOperation picks a kind uniformly among the kinds not yet found
// empty, enumerates it, and returns a uniformly chosen instance. A kind with
// no instances is dropped from the candidate set, so it is enumerated at most
// once per call, and the draw repeats over the remaining kinds. Every
// non-empty kind is therefore chosen with equal probability regardless of
// its instance count or of how many kinds are empty.
// A nil rng uses NewRand(0).
// Returns ErrNoLegalOperation when every kind is empty.
func SampleOperation(rng *rand.Rand, enumerate func(OperationKind) []Operation) (Operation, error) {
	if rng == nil {
		rng = NewRand(0)
	}
	kinds := append([]OperationKind(nil), AllKinds...)
	for len(kinds) > 0 {
		i := rng.Intn(len(kinds))
		ops := enumerate(kinds[i])
		if len(ops) == 0 {
			kinds = append(kinds[:i], kinds[i+1:]...)
			continue
		}
		return ops[rng.Intn(len(ops))], nil
	}
	return Operation{}, ErrNoLegalOperation
}

// RandomOperation samples one legal operation of the current state.
// name and weight are passed to PossibleOperations for the insert kinds.
func (d *Dual) RandomOperation(rng *rand.Rand, name string, weight float64) (Operation, error) {
	op, err := SampleOperation(rng, func(k OperationKind) []Operation {
		return d.PossibleOperations(k, name, weight)
	})
	if err != nil {
		return Operation{}, fmt.Errorf("RandomOperation: %w", err)
	}
	return op, nil
}

// ApplyRandom samples and applies one legal operation, returning it.
func (d *Dual) ApplyRandom(rng *rand.Rand, name string, weight float64) (Operation, error) {
	op, err := d.RandomOperation(rng, name, weight)
	if err != nil {
		d.logger.Warn("no legal operation", zap.Int("faces", len(d.faces)))
		return Operation{}, err
	}
	if err := d.Apply(op); err != nil {
		return Operation{}, err
	}
	return op, nil
}
