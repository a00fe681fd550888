package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

// errorStatusMap maps sentinels to HTTP statuses. A single error never wraps
// two sentinels with different statuses, so map order does not matter.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnknownModerationAction: http.StatusBadRequest,
	service.ErrBotURLRequired:          http.StatusBadRequest,
	service.ErrNoLinkedGoogleAccount:   http.StatusBadRequest,
	errInvalidJSON:                     http.StatusBadRequest,

	service.ErrWrongCredentials: http.StatusUnauthorized,
	service.ErrSessionInvalid:   http.StatusUnauthorized,
	service.ErrSessionExpired:   http.StatusUnauthorized,

	service.ErrAccountBanned:          http.StatusForbidden,
	service.ErrAdminRequired:          http.StatusForbidden,
	service.ErrSuperAdminRequired:     http.StatusForbidden,
	service.ErrUserBanned:             http.StatusForbidden,
	service.ErrNotTestOwner:           http.StatusForbidden,
	service.ErrNotCollectionOwner:     http.StatusForbidden,
	service.ErrEngineBanned:           http.StatusForbidden,
	service.ErrCannotBanSuperAdmin:    http.StatusForbidden,
	service.ErrCannotModifySuperAdmin: http.StatusForbidden,

	errRouteNotFound:               http.StatusNotFound,
	service.ErrUserNotFound:        http.StatusNotFound,
	service.ErrTestNotFound:        http.StatusNotFound,
	service.ErrRunNotFound:         http.StatusNotFound,
	service.ErrCollectionNotFound:  http.StatusNotFound,
	service.ErrTestNotInCollection: http.StatusNotFound,
	service.ErrAccountNotBanned:    http.StatusNotFound,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrTestNotFound:          http.StatusNotFound,
	store.ErrRunNotFound:           http.StatusNotFound,
	store.ErrCollectionNotFound:    http.StatusNotFound,

	service.ErrEmailAlreadyRegistered: http.StatusConflict,
	service.ErrAlreadyInCollection:    http.StatusConflict,
	service.ErrInvalidTransition:      http.StatusConflict,
	service.ErrRunNotRunning:          http.StatusConflict,

	service.ErrTestPermaRejected: http.StatusUnprocessableEntity,
	service.ErrTestNotAddable:    http.StatusUnprocessableEntity,

	service.ErrTooManyAttempts:     http.StatusTooManyRequests,
	service.ErrEngineQuotaExceeded: http.StatusTooManyRequests,

	service.ErrIdentityProvider: http.StatusBadGateway,
	service.ErrEngineCallFailed: http.StatusBadGateway,

	errStorageUnavailable:            http.StatusServiceUnavailable,
	service.ErrIdentityNotConfigured: http.StatusServiceUnavailable,
	service.ErrEngineNotConfigured:   http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and writes the JSON error body. Unmapped errors
// are reported as a bare 500 so storage details never reach the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	body := models.ErrorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
		body.Error = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	var rateLimitErr *service.RateLimitError
	if errors.As(err, &rateLimitErr) {
		retryAt := rateLimitErr.RetryAt.UnixMilli()
		body.RetryAt = &retryAt
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rateLimitErr.RetryAt, time.Now())))
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// retryAfterSeconds rounds up so a client never retries before the block ends.
func retryAfterSeconds(retryAt, now time.Time) int {
	d := retryAt.Sub(now)
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
