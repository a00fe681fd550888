// Package notify delivers terminal run events to waiters.
//
// A [RunNotifier] is published to after every terminal patch of a test run.
// Long-poll readers subscribe by run id. [LocalNotifier] fans events out
// inside one process; [RedisNotifier] relays them through a Redis pub/sub
// channel so every server instance sees every run.
package notify

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-snake-bench/models"
)

// RunNotifier publishes terminal runs and lets readers wait for them.
type RunNotifier interface {
	// Publish announces a run that reached a terminal status.
	Publish(ctx context.Context, run models.TestRun) error

	// Subscribe returns a channel receiving the next event for runID and a
	// cancel func that must be called once the caller stops waiting.
	Subscribe(runID string) (<-chan models.TestRun, func())

	Close() error
}

// hub is the in-process fan-out shared by both notifiers.
type hub struct {
	mu   sync.Mutex
	subs map[string]map[chan models.TestRun]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[chan models.TestRun]struct{})}
}

func (h *hub) subscribe(runID string) (<-chan models.TestRun, func()) {
	// buffered so dispatch never blocks on a slow reader
	ch := make(chan models.TestRun, 1)

	h.mu.Lock()
	if h.subs[runID] == nil {
		h.subs[runID] = make(map[chan models.TestRun]struct{})
	}
	h.subs[runID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[runID], ch)
			if len(h.subs[runID]) == 0 {
				delete(h.subs, runID)
			}
		})
	}

	return ch, cancel
}

func (h *hub) dispatch(run models.TestRun) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[run.ID] {
		select {
		case ch <- run:
		default:
		}
	}
}

func (h *hub) subscribers(runID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[runID])
}

// LocalNotifier delivers events to subscribers of the same process. It is
// used when no Redis address is configured.
type LocalNotifier struct {
	hub *hub
}

func NewLocalNotifier() *LocalNotifier {
	return &LocalNotifier{hub: newHub()}
}

func (n *LocalNotifier) Publish(_ context.Context, run models.TestRun) error {
	n.hub.dispatch(run)
	return nil
}

func (n *LocalNotifier) Subscribe(runID string) (<-chan models.TestRun, func()) {
	return n.hub.subscribe(runID)
}

func (n *LocalNotifier) Close() error {
	return nil
}
