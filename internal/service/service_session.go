package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

type sessionService struct {
	sessionRepository store.SessionRepository
	userRepository    store.UserRepository

	ttl time.Duration
	now func() time.Time

	logger *logger.Logger
}

func NewSessionService(sessions store.SessionRepository, users store.UserRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessions,
		userRepository:    users,
		ttl:               cfg.SessionTTL,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userID string) (models.Token, error) {
	raw, hashed, err := utils.NewSessionToken()
	if err != nil {
		return models.Token{}, err
	}

	now := s.now().UTC()
	session := models.Session{
		TokenHash: hashed,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err = s.sessionRepository.CreateSession(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.CreateSession").Str("user_id", userID).Msg("error storing session")
		return models.Token{}, fmt.Errorf("error storing session: %w", err)
	}

	return models.Token{Value: raw, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate implements [SessionService]. There is no background sweep:
// an expired session is removed the first time it is presented.
func (s *sessionService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrSessionInvalid
	}

	hashed := utils.HashToken(token)
	session, err := s.sessionRepository.GetSession(ctx, hashed)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Identity{}, ErrSessionInvalid
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("error reading session: %w", err)
	}

	if session.Expired(s.now()) {
		if err = s.sessionRepository.DeleteSession(ctx, hashed); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Authenticate").Msg("error deleting expired session")
		}
		return models.Identity{}, ErrSessionExpired
	}

	user, err := s.userRepository.GetUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Identity{}, ErrSessionInvalid
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("error reading session user: %w", err)
	}

	return user.Identity(), nil
}

func (s *sessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrSessionInvalid
	}
	return s.sessionRepository.DeleteSession(ctx, utils.HashToken(token))
}

func (s *sessionService) RevokeUserSessions(ctx context.Context, userID string) error {
	return s.sessionRepository.DeleteUserSessions(ctx, userID)
}

// RequireAdmin returns [ErrAdminRequired] unless identity is an admin.
// Super-admins are admins.
func RequireAdmin(identity models.Identity) error {
	if identity.Anonymous() {
		return ErrSessionInvalid
	}
	if !identity.IsAdmin && !identity.IsSuperAdmin {
		return ErrAdminRequired
	}
	return nil
}

// RequireSuperAdmin returns [ErrSuperAdminRequired] unless identity is a
// super-admin.
func RequireSuperAdmin(identity models.Identity) error {
	if identity.Anonymous() {
		return ErrSessionInvalid
	}
	if !identity.IsSuperAdmin {
		return ErrSuperAdminRequired
	}
	return nil
}

func requireUser(identity models.Identity) error {
	if identity.Anonymous() {
		return ErrSessionInvalid
	}
	return nil
}
