// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-snake-bench/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the worker's goroutines
// stop when ctx is cancelled or Stop is called. Stop blocks until every
// goroutine has returned.
//
// Example implementation:
//
//	type MyWorker struct{ wg sync.WaitGroup }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    w.wg.Add(1)
//	    go func() { defer w.wg.Done(); <-ctx.Done() }()
//	}
//
//	func (w *MyWorker) Stop() { w.wg.Wait() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// RunExecutorService executes the second phase of a test run.
type RunExecutorService interface {
	ExecuteTestRun(ctx context.Context, runID string) (models.TestRun, error)
}
