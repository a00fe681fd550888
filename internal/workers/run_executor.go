// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/service"
)

// RunExecutor executes queued runs on a fixed number of goroutines.
//
// Enqueue never blocks: when the queue is full the run stays running and
// the client has to execute it explicitly. On stop the executor refuses new
// runs and drains what is already queued.
type RunExecutor struct {
	runs        RunExecutorService
	queue       chan string
	concurrency int

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewRunExecutor(runs RunExecutorService, cfg config.Workers, log *logger.Logger) *RunExecutor {
	concurrency := max(cfg.RunConcurrency, 1)
	queueSize := max(cfg.RunQueueSize, 1)

	return &RunExecutor{
		runs:        runs,
		queue:       make(chan string, queueSize),
		concurrency: concurrency,
		done:        make(chan struct{}),
		logger:      log,
	}
}

// Enqueue schedules runID for execution and reports whether it was accepted.
func (e *RunExecutor) Enqueue(runID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return false
	}

	select {
	case e.queue <- runID:
		return true
	default:
		e.logger.Warn().Str("func", "*RunExecutor.Enqueue").Str("run_id", runID).Msg("run queue is full")
		return false
	}
}

func (e *RunExecutor) Run(ctx context.Context) {
	for range e.concurrency {
		e.wg.Add(1)
		go e.work(ctx)
	}

	go func() {
		select {
		case <-ctx.Done():
			e.close()
		case <-e.done:
		}
	}()

	e.logger.Info().Str("func", "*RunExecutor.Run").Int("concurrency", e.concurrency).Msg("run executor started")
}

func (e *RunExecutor) Stop() {
	e.close()
	e.wg.Wait()
	e.logger.Info().Str("func", "*RunExecutor.Stop").Msg("run executor stopped")
}

func (e *RunExecutor) close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	close(e.queue)
	close(e.done)
}

func (e *RunExecutor) work(ctx context.Context) {
	defer e.wg.Done()

	// queued runs are still executed after ctx is cancelled
	ctx = context.WithoutCancel(ctx)
	for runID := range e.queue {
		e.execute(ctx, runID)
	}
}

func (e *RunExecutor) execute(ctx context.Context, runID string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Str("func", "*RunExecutor.execute").Str("run_id", runID).Any("panic", r).Msg("run execution panicked")
		}
	}()

	ctx = e.logger.WithField("run_id", runID).IntoContext(ctx)

	run, err := e.runs.ExecuteTestRun(ctx, runID)
	if err != nil {
		// another caller got there first
		if errors.Is(err, service.ErrRunNotRunning) {
			return
		}
		e.logger.Err(err).Str("func", "*RunExecutor.execute").Str("run_id", runID).Msg("error executing run")
		return
	}

	e.logger.Debug().Str("func", "*RunExecutor.execute").Str("run_id", runID).Str("status", string(run.Status)).Msg("run executed")
}
