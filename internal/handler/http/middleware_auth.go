package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

// auth is the session gate of protected routes.
//
// The bearer token is resolved through [service.SessionService.Authenticate].
// On success the caller identity and the raw token are stored in the request
// context. Missing, malformed, unknown and expired tokens are rejected with
// 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrSessionInvalid, ErrEmptyAuthorizationHeader), "request without authorization header")
			return
		}

		ctx, err := h.authenticate(r.Context(), authHeader)
		if err != nil {
			writeServiceError(w, r, err, "authentication failed")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth resolves the identity when a token is sent and lets anonymous
// requests through. A token that is sent but invalid is still rejected, so a
// client with a stale session learns it must sign in again.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := h.authenticate(r.Context(), authHeader)
		if err != nil {
			writeServiceError(w, r, err, "authentication failed")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.RequireAdmin(identityFromRequest(r)); err != nil {
			writeServiceError(w, r, err, "admin route denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.RequireSuperAdmin(identityFromRequest(r)); err != nil {
			writeServiceError(w, r, err, "super-admin route denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) authenticate(ctx context.Context, authHeader string) (context.Context, error) {
	token, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return ctx, fmt.Errorf("%w: %w", service.ErrSessionInvalid, err)
	}

	identity, err := h.services.SessionService.Authenticate(ctx, token)
	if err != nil {
		return ctx, err
	}

	ctx = utils.WithIdentity(ctx, identity)
	ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, token)
	return ctx, nil
}

// identityFromRequest returns the caller identity or the anonymous identity.
func identityFromRequest(r *http.Request) models.Identity {
	identity, _ := utils.GetIdentityFromContext(r.Context())
	return identity
}

// getTokenFromAuthHeader extracts the token of a "Bearer <token>" header.
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
