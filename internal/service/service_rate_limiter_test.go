package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRateLimits is an in-memory store.RateLimitRepository.
type memRateLimits struct {
	rows map[string]models.RateLimit
}

func newMemRateLimits() *memRateLimits {
	return &memRateLimits{rows: make(map[string]models.RateLimit)}
}

func (m *memRateLimits) GetRateLimit(_ context.Context, clientID string) (models.RateLimit, error) {
	rl, ok := m.rows[clientID]
	if !ok {
		return models.RateLimit{}, store.ErrRateLimitNotFound
	}
	return rl, nil
}

func (m *memRateLimits) SaveRateLimit(_ context.Context, rl models.RateLimit) error {
	m.rows[rl.ClientID] = rl
	return nil
}

func (m *memRateLimits) DeleteRateLimit(_ context.Context, clientID string) error {
	delete(m.rows, clientID)
	return nil
}

func newTestRateLimiter(repo *memRateLimits, now *time.Time) *rateLimiter {
	return &rateLimiter{
		repository: repo,
		attempts:   5,
		window:     5 * time.Minute,
		now:        func() time.Time { return *now },
		logger:     logger.Nop(),
	}
}

func TestRateLimiter_BlocksAfterFiveFailures(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	limiter := newTestRateLimiter(newMemRateLimits(), &now)

	for i := 0; i < 4; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "client"))
		require.NoError(t, limiter.Check(ctx, "client"), "attempt %d must not block", i+1)
	}

	require.NoError(t, limiter.RecordFailure(ctx, "client"))

	err := limiter.Check(ctx, "client")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	var rlErr *RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, fixedNow.Add(5*time.Minute), rlErr.RetryAt)
}

func TestRateLimiter_UnblocksAfterWindow(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	limiter := newTestRateLimiter(newMemRateLimits(), &now)

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "client"))
	}
	require.Error(t, limiter.Check(ctx, "client"))

	now = fixedNow.Add(5 * time.Minute)
	assert.NoError(t, limiter.Check(ctx, "client"))
}

func TestRateLimiter_WindowExpiryStartsFresh(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	repo := newMemRateLimits()
	limiter := newTestRateLimiter(repo, &now)

	for i := 0; i < 4; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "client"))
	}

	now = fixedNow.Add(6 * time.Minute)
	require.NoError(t, limiter.RecordFailure(ctx, "client"))

	assert.Equal(t, 1, repo.rows["client"].AttemptCount)
	assert.Nil(t, repo.rows["client"].BlockedUntil)
	assert.NoError(t, limiter.Check(ctx, "client"))
}

func TestRateLimiter_ResetClearsCounter(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	repo := newMemRateLimits()
	limiter := newTestRateLimiter(repo, &now)

	for i := 0; i < 4; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "client"))
	}
	require.NoError(t, limiter.Reset(ctx, "client"))
	assert.NotContains(t, repo.rows, "client")

	for i := 0; i < 4; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "client"))
	}
	assert.NoError(t, limiter.Check(ctx, "client"))
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	limiter := newTestRateLimiter(newMemRateLimits(), &now)

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "a"))
	}

	assert.Error(t, limiter.Check(ctx, "a"))
	assert.NoError(t, limiter.Check(ctx, "b"))
}
