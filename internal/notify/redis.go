// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/redis/go-redis/v9"
)

const redisDialTimeout = 5 * time.Second

var ErrNotifierClosed = errors.New("run notifier is closed")

// RedisNotifier publishes run events to a Redis channel and forwards every
// message received on that channel to local subscribers.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
	hub     *hub
	logger  *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRedisNotifier connects to Redis, verifies the connection and starts the
// forwarding loop. The loop stops when Close is called.
func NewRedisNotifier(ctx context.Context, cfg config.Redis, log *logger.Logger) (*RedisNotifier, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: redisDialTimeout,
	})

	pingCtx, cancelPing := context.WithTimeout(ctx, redisDialTimeout)
	defer cancelPing()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	sub := rdb.Subscribe(ctx, cfg.Channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	n := &RedisNotifier{
		rdb:     rdb,
		channel: cfg.Channel,
		hub:     newHub(),
		logger:  log,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go n.forward(loopCtx, sub)

	return n, nil
}

func (n *RedisNotifier) forward(ctx context.Context, sub *redis.PubSub) {
	defer close(n.done)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			run, err := decodeRun(msg.Payload)
			if err != nil {
				n.logger.Warn().Err(err).Str("func", "RedisNotifier.forward").Msg("bad run event payload")
				continue
			}
			n.hub.dispatch(run)
		}
	}
}

func (n *RedisNotifier) Publish(ctx context.Context, run models.TestRun) error {
	select {
	case <-n.done:
		return ErrNotifierClosed
	default:
	}

	raw, err := encodeRun(run)
	if err != nil {
		return err
	}
	if err = n.rdb.Publish(ctx, n.channel, raw).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

func (n *RedisNotifier) Subscribe(runID string) (<-chan models.TestRun, func()) {
	return n.hub.subscribe(runID)
}

// Close stops the forwarding loop and closes the Redis client.
func (n *RedisNotifier) Close() error {
	n.cancel()
	<-n.done
	return n.rdb.Close()
}

func encodeRun(run models.TestRun) ([]byte, error) {
	raw, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("encode run event: %w", err)
	}
	return raw, nil
}

func decodeRun(payload string) (models.TestRun, error) {
	var run models.TestRun
	if err := json.Unmarshal([]byte(payload), &run); err != nil {
		return models.TestRun{}, fmt.Errorf("decode run event: %w", err)
	}
	if run.ID == "" {
		return models.TestRun{}, errors.New("decode run event: missing id")
	}
	return run, nil
}
