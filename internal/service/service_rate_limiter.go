package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/models"
)

// rateLimiter is a fixed-window counter with a cooldown. The window length
// doubles as the block duration. Updates are read-modify-write without
// locking, so concurrent failures of one client may undercount.
type rateLimiter struct {
	repository store.RateLimitRepository

	attempts int
	window   time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewRateLimiter(repository store.RateLimitRepository, cfg config.App, logger *logger.Logger) RateLimiter {
	return &rateLimiter{
		repository: repository,
		attempts:   cfg.RateLimitAttempts,
		window:     cfg.RateLimitWindow,
		now:        time.Now,
		logger:     logger,
	}
}

func (r *rateLimiter) Check(ctx context.Context, clientID string) error {
	rl, err := r.repository.GetRateLimit(ctx, clientID)
	if errors.Is(err, store.ErrRateLimitNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading rate limit: %w", err)
	}

	if rl.BlockedUntil != nil && r.now().Before(*rl.BlockedUntil) {
		return &RateLimitError{RetryAt: *rl.BlockedUntil}
	}

	return nil
}

func (r *rateLimiter) RecordFailure(ctx context.Context, clientID string) error {
	now := r.now().UTC()

	rl, err := r.repository.GetRateLimit(ctx, clientID)
	if err != nil && !errors.Is(err, store.ErrRateLimitNotFound) {
		return fmt.Errorf("error reading rate limit: %w", err)
	}

	if err != nil || now.Sub(rl.WindowStart) >= r.window {
		rl = models.RateLimit{ClientID: clientID, AttemptCount: 1, WindowStart: now}
	} else {
		rl.AttemptCount++
	}

	if rl.AttemptCount >= r.attempts {
		blockedUntil := now.Add(r.window)
		rl.BlockedUntil = &blockedUntil
		logger.FromContext(ctx).Warn().
			Str("func", "*rateLimiter.RecordFailure").
			Str("client_id", clientID).
			Time("blocked_until", blockedUntil).
			Msg("client blocked after repeated auth failures")
	}

	if err = r.repository.SaveRateLimit(ctx, rl); err != nil {
		return fmt.Errorf("error saving rate limit: %w", err)
	}
	return nil
}

func (r *rateLimiter) Reset(ctx context.Context, clientID string) error {
	return r.repository.DeleteRateLimit(ctx, clientID)
}
