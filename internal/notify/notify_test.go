package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedRun(id string) models.TestRun {
	move := "up"
	passed := true
	return models.TestRun{ID: id, Status: models.RunStatusCompleted, Move: &move, Passed: &passed}
}

func TestLocalNotifier_DeliversToSubscriber(t *testing.T) {
	n := NewLocalNotifier()
	ch, cancel := n.Subscribe("run-1")
	defer cancel()

	require.NoError(t, n.Publish(context.Background(), completedRun("run-1")))

	select {
	case got := <-ch:
		assert.Equal(t, "run-1", got.ID)
		assert.Equal(t, models.RunStatusCompleted, got.Status)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestLocalNotifier_OnlyMatchingRun(t *testing.T) {
	n := NewLocalNotifier()
	ch, cancel := n.Subscribe("run-1")
	defer cancel()

	require.NoError(t, n.Publish(context.Background(), completedRun("run-2")))

	select {
	case got := <-ch:
		t.Fatalf("unexpected event %s", got.ID)
	default:
	}
}

func TestLocalNotifier_FanOut(t *testing.T) {
	n := NewLocalNotifier()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		ch, cancel := n.Subscribe("run-1")
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer cancel()
			select {
			case <-ch:
			case <-time.After(time.Second):
				t.Error("subscriber missed event")
			}
		}()
	}

	require.NoError(t, n.Publish(context.Background(), completedRun("run-1")))
	wg.Wait()
}

func TestLocalNotifier_CancelUnsubscribes(t *testing.T) {
	n := NewLocalNotifier()
	_, cancel := n.Subscribe("run-1")
	assert.Equal(t, 1, n.hub.subscribers("run-1"))

	cancel()
	cancel()

	assert.Equal(t, 0, n.hub.subscribers("run-1"))
	assert.NoError(t, n.Publish(context.Background(), completedRun("run-1")))
	assert.NoError(t, n.Close())
}

func TestHub_DispatchNeverBlocks(t *testing.T) {
	h := newHub()
	_, cancel := h.subscribe("run-1")
	defer cancel()

	done := make(chan struct{})
	go func() {
		h.dispatch(completedRun("run-1"))
		h.dispatch(completedRun("run-1"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch blocked on a full subscriber")
	}
}

func TestRunEventCodec(t *testing.T) {
	raw, err := encodeRun(completedRun("run-1"))
	require.NoError(t, err)

	got, err := decodeRun(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
	require.NotNil(t, got.Move)
	assert.Equal(t, "up", *got.Move)

	_, err = decodeRun("not json")
	assert.Error(t, err)

	_, err = decodeRun(`{"status":"completed"}`)
	assert.Error(t, err)
}

func TestNewRedisNotifier_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisNotifier(ctx, config.Redis{Addr: "127.0.0.1:1", Channel: "runs"}, logger.Nop())

	assert.Error(t, err)
}

func TestNotifiersImplementInterface(t *testing.T) {
	var _ RunNotifier = NewLocalNotifier()
	var _ RunNotifier = (*RedisNotifier)(nil)
}
