package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrYouSnakeNotOnBoard), want: http.StatusBadRequest},
		{name: "ban without google id", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrNoLinkedGoogleAccount), want: http.StatusBadRequest},
		{name: "wrong credentials", err: service.ErrWrongCredentials, want: http.StatusUnauthorized},
		{name: "expired session", err: service.ErrSessionExpired, want: http.StatusUnauthorized},
		{name: "admin required", err: service.ErrAdminRequired, want: http.StatusForbidden},
		{name: "not owner", err: service.ErrNotTestOwner, want: http.StatusForbidden},
		{name: "wrapped store not found", err: fmt.Errorf("error reading: %w", store.ErrRunNotFound), want: http.StatusNotFound},
		{name: "duplicate email", err: service.ErrEmailAlreadyRegistered, want: http.StatusConflict},
		{name: "run already finished", err: service.ErrRunNotRunning, want: http.StatusConflict},
		{name: "perma rejected", err: service.ErrTestPermaRejected, want: http.StatusUnprocessableEntity},
		{name: "rate limited", err: &service.RateLimitError{RetryAt: time.Now()}, want: http.StatusTooManyRequests},
		{name: "engine quota", err: service.ErrEngineQuotaExceeded, want: http.StatusTooManyRequests},
		{name: "engine call", err: fmt.Errorf("%w: %w", service.ErrEngineCallFailed, errors.New("dial tcp")), want: http.StatusBadGateway},
		{name: "engine not configured", err: service.ErrEngineNotConfigured, want: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteServiceError_RateLimit(t *testing.T) {
	retryAt := time.Now().Add(90 * time.Second)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

	writeServiceError(rr, req, &service.RateLimitError{RetryAt: retryAt}, "blocked")

	require.Equal(t, http.StatusTooManyRequests, rr.Code)

	seconds, err := strconv.Atoi(rr.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.InDelta(t, 90, seconds, 1)

	body := errorBody(t, rr)
	require.NotNil(t, body.RetryAt)
	assert.Equal(t, retryAt.UnixMilli(), *body.RetryAt)
}

func TestWriteServiceError_HidesInternalErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tests", nil)

	writeServiceError(rr, req, errors.New("pq: relation \"tests\" does not exist"), "listing failed")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), errorBody(t, rr).Error)
}

func TestRetryAfterSeconds(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, retryAfterSeconds(now.Add(-time.Second), now))
	assert.Equal(t, 1, retryAfterSeconds(now.Add(100*time.Millisecond), now))
	assert.Equal(t, 300, retryAfterSeconds(now.Add(5*time.Minute), now))
}
