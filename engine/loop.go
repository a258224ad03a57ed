// SPDX-License-Identifier: MIT
//
// File: loop.go
// Role: The continuous optimization loop.

package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type loop struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Start runs Step every Config.Interval until Stop is called or ctx is done.
// Returns ErrAlreadyRunning if the loop is active.
func (e *Engine) Start(ctx context.Context) error {
	e.loopMu.Lock()
	defer e.loopMu.Unlock()
	if e.loop != nil {
		select {
		case <-e.loop.done:
		default:
			return ErrAlreadyRunning
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	l := &loop{cancel: cancel, done: make(chan struct{})}
	e.loop = l
	go e.run(ctx, l)
	e.logger.Info("loop started", zap.Duration("interval", e.cfg.Interval))

	return nil
}

// Stop cancels the loop and waits for the step in progress to finish.
// Returns ErrNotRunning if the loop is idle.
func (e *Engine) Stop() error {
	e.loopMu.Lock()
	defer e.loopMu.Unlock()
	if e.loop == nil {
		return ErrNotRunning
	}
	l := e.loop
	e.loop = nil
	l.cancel()
	<-l.done

	return nil
}

// Running reports whether the loop is active.
func (e *Engine) Running() bool {
	e.loopMu.Lock()
	defer e.loopMu.Unlock()
	if e.loop == nil {
		return false
	}
	select {
	case <-e.loop.done:
		return false
	default:
		return true
	}
}

func (e *Engine) run(ctx context.Context, l *loop) {
	defer close(l.done)
	t := time.NewTicker(e.cfg.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("loop stopped", zap.Int("iteration", e.Iteration()), zap.Error(ctx.Err()))
			return
		case <-t.C:
			if _, err := e.Step(); err != nil {
				e.logger.Error("step failed, loop stopped", zap.Error(err))
				return
			}
		}
	}
}
