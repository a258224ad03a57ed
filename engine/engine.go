// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: The serialized owner of one dual: force steps, edits, metric reads.
// Determinism:
//   - Given the same dual, config and call sequence, Step and ApplyRandom
//     produce the same results; the loop adds only timing.

package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/polydual/dual"
	"github.com/katalvlaran/polydual/force"
	"github.com/katalvlaran/polydual/quality"
)

// Engine drives one dual. All methods are safe for concurrent use.
type Engine struct {
	mu         sync.Mutex
	d          *dual.Dual
	computer   *force.Computer
	applicator *force.Applicator
	evaluators []quality.Evaluator
	rng        *rand.Rand
	iteration  int

	cfg     Config
	logger  *zap.Logger
	metrics *Metrics

	loopMu sync.Mutex
	loop   *loop
}

// StepReport summarizes one Step.
type StepReport struct {
	Iteration       int
	Moved           int
	MaxDisplacement float64
	InvalidForces   int
	Duration        time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}

// WithMetrics reports into m instead of a fresh Metrics. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("engine: WithMetrics(nil)")
	}
	return func(e *Engine) { e.metrics = m }
}

// New takes ownership of d. The caller must not use d afterwards except
// through the Engine.
func New(d *dual.Dual, cfg Config, opts ...Option) (*Engine, error) {
	if d == nil {
		return nil, fmt.Errorf("New: nil dual: %w", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	e := &Engine{d: d, cfg: cfg, logger: zap.NewNop(), rng: dual.NewRand(cfg.Seed)}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = NewMetrics(cfg.Namespace)
	}

	c, err := force.NewComputer(cfg.Force, force.WithLogger(e.logger))
	if err != nil {
		return nil, fmt.Errorf("New: %w: %w", ErrInvalidConfig, err)
	}
	e.computer = c

	e.applicator = force.NewApplicator(force.WithLogger(e.logger))
	e.applicator.Sectors = cfg.Apply.Sectors
	e.applicator.Padding = cfg.Apply.Padding
	e.applicator.Epsilon = cfg.Apply.Epsilon
	e.applicator.MaxDisplacement = cfg.Apply.MaxDisplacement

	for _, name := range cfg.Evaluators {
		ev, err := quality.ByName(name)
		if err != nil {
			return nil, fmt.Errorf("New: %w: %w", ErrInvalidConfig, err)
		}
		e.evaluators = append(e.evaluators, ev)
	}

	e.metrics.Regions.Set(float64(d.Len()))
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Metrics returns the engine's collectors.
func (e *Engine) Metrics() *Metrics { return e.metrics }

// Iteration returns the number of completed steps.
func (e *Engine) Iteration() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.iteration
}

// Step computes the forces on the current drawing and applies them.
func (e *Engine) Step() (StepReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	f := e.computer.Compute(e.d)
	rep, err := e.applicator.Apply(e.d.Graph(), f)
	if err != nil {
		return StepReport{}, fmt.Errorf("Step: %w", err)
	}
	e.iteration++
	elapsed := time.Since(start)

	e.metrics.Steps.Inc()
	e.metrics.StepDuration.Observe(elapsed.Seconds())
	e.metrics.InvalidForces.Add(float64(len(f.Invalid)))
	e.metrics.Displacement.Set(rep.MaxDisplacement)
	e.logger.Debug("step",
		zap.Int("iteration", e.iteration),
		zap.Int("moved", rep.Moved),
		zap.Float64("max_displacement", rep.MaxDisplacement),
		zap.Int("invalid_forces", len(f.Invalid)),
		zap.Duration("took", elapsed),
	)

	return StepReport{
		Iteration:       e.iteration,
		Moved:           rep.Moved,
		MaxDisplacement: rep.MaxDisplacement,
		InvalidForces:   len(f.Invalid),
		Duration:        elapsed,
	}, nil
}

// AdjustWeight sets the weight of region name.
func (e *Engine) AdjustWeight(name string, w float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.d.AdjustWeight(name, w); err != nil {
		return fmt.Errorf("AdjustWeight: %w", err)
	}
	return nil
}

// Apply performs op against the current state.
func (e *Engine) Apply(op dual.Operation) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.d.Apply(op)
	e.afterOperation(op.Kind, err)
	if err != nil {
		return fmt.Errorf("Apply: %w", err)
	}
	return nil
}

// PossibleOperations lists the legal instances of kind.
func (e *Engine) PossibleOperations(kind dual.OperationKind, name string, weight float64) []dual.Operation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.d.PossibleOperations(kind, name, weight)
}

// ApplyRandom samples and applies one legal operation with the engine's
// seeded source.
func (e *Engine) ApplyRandom(name string, weight float64) (dual.Operation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	op, err := e.d.ApplyRandom(e.rng, name, weight)
	if err != nil {
		e.logger.Debug("random operation failed",
			zap.String("available", dual.Describe(e.d.Operations(name, weight))),
			zap.Error(err),
		)
		return dual.Operation{}, fmt.Errorf("ApplyRandom: %w", err)
	}
	e.afterOperation(op.Kind, nil)
	return op, nil
}

func (e *Engine) afterOperation(kind dual.OperationKind, err error) {
	if kind.Valid() {
		e.metrics.operation(kind, err)
	}
	e.metrics.Regions.Set(float64(e.d.Len()))
}

// Evaluate runs every configured evaluator and updates the quality gauges.
func (e *Engine) Evaluate() map[string]quality.Scores {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]quality.Scores, len(e.evaluators))
	for _, ev := range e.evaluators {
		s := ev.Evaluate(e.d)
		out[ev.Name()] = s
		e.metrics.QualityMean.WithLabelValues(ev.Name()).Set(s.Mean())
		e.metrics.QualityMax.WithLabelValues(ev.Name()).Set(s.Max())
	}
	return out
}

// Snapshot returns an independent copy of the current dual.
func (e *Engine) Snapshot() *dual.Dual {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.d.Clone()
}

// Validate checks the dual invariants on the current state.
func (e *Engine) Validate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.d.Validate()
}
