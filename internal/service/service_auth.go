package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-snake-bench/internal/adapter"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

// authService implements the three login paths. Every path is gated by the
// rate limiter keyed by the request's client id; only credential failures
// are counted.
type authService struct {
	userRepository   store.UserRepository
	bannedRepository store.BannedAccountRepository

	sessions SessionService
	limiter  RateLimiter
	verifier adapter.IdentityVerifier

	idGenerator utils.IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewAuthService(
	users store.UserRepository,
	banned store.BannedAccountRepository,
	sessions SessionService,
	limiter RateLimiter,
	verifier adapter.IdentityVerifier,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:   users,
		bannedRepository: banned,
		sessions:         sessions,
		limiter:          limiter,
		verifier:         verifier,
		idGenerator:      utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Register").Logger()

	if err := a.limiter.Check(ctx, req.ClientID); err != nil {
		return models.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.AuthResponse{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.idGenerator.Generate(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return models.AuthResponse{}, a.fail(ctx, req.ClientID, ErrEmailAlreadyRegistered)
	}
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issue(ctx, req.ClientID, user)
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Login").Logger()

	if err := a.limiter.Check(ctx, req.ClientID); err != nil {
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.AuthResponse{}, a.fail(ctx, req.ClientID, ErrWrongCredentials)
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.PasswordHash == "" {
		return models.AuthResponse{}, a.fail(ctx, req.ClientID, ErrWrongCredentials)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResponse{}, a.fail(ctx, req.ClientID, ErrWrongCredentials)
	}

	if err = a.checkBanned(ctx, user.GoogleID); err != nil {
		if errors.Is(err, ErrAccountBanned) {
			return models.AuthResponse{}, a.fail(ctx, req.ClientID, err)
		}
		return models.AuthResponse{}, err
	}

	return a.issue(ctx, req.ClientID, user)
}

func (a *authService) GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.GoogleSignIn").Logger()

	if err := a.limiter.Check(ctx, req.ClientID); err != nil {
		return models.AuthResponse{}, err
	}

	ext, err := a.verifier.Verify(ctx, req.IDToken)
	switch {
	case errors.Is(err, adapter.ErrIdentityNotConfigured):
		return models.AuthResponse{}, ErrIdentityNotConfigured
	case errors.Is(err, adapter.ErrJWKSUnavailable):
		log.Err(err).Msg("identity provider unavailable")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrIdentityProvider, err)
	case err != nil:
		log.Info().Err(err).Msg("id token rejected")
		return models.AuthResponse{}, a.fail(ctx, req.ClientID, fmt.Errorf("%w: %w", ErrWrongCredentials, err))
	}

	if err = a.checkBanned(ctx, ext.Subject); err != nil {
		if errors.Is(err, ErrAccountBanned) {
			return models.AuthResponse{}, a.fail(ctx, req.ClientID, err)
		}
		return models.AuthResponse{}, err
	}

	user, err := a.findOrCreateGoogleUser(ctx, ext)
	if err != nil {
		log.Err(err).Str("subject", ext.Subject).Msg("error resolving google user")
		return models.AuthResponse{}, err
	}

	return a.issue(ctx, req.ClientID, user)
}

// findOrCreateGoogleUser looks the subject up by google id, then by email
// (linking the subject to the existing account), and creates a new user
// only when both lookups miss.
func (a *authService) findOrCreateGoogleUser(ctx context.Context, ext models.ExternalIdentity) (models.User, error) {
	user, err := a.userRepository.GetUserByGoogleID(ctx, ext.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user search by google id failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(ext.Email))
	user, err = a.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		if err = a.userRepository.LinkGoogleID(ctx, user.ID, ext.Subject); err != nil {
			return models.User{}, fmt.Errorf("error linking google id: %w", err)
		}
		user.GoogleID = ext.Subject
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	name := strings.TrimSpace(ext.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	user, err = a.userRepository.CreateUser(ctx, models.User{
		ID:        a.idGenerator.Generate(),
		Email:     email,
		Name:      name,
		GoogleID:  ext.Subject,
		CreatedAt: a.now().UTC(),
	})
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	return user, nil
}

func (a *authService) checkBanned(ctx context.Context, googleID string) error {
	if googleID == "" {
		return nil
	}

	banned, err := a.bannedRepository.IsBanned(ctx, googleID)
	if err != nil {
		return fmt.Errorf("error checking ban: %w", err)
	}
	if banned {
		return ErrAccountBanned
	}
	return nil
}

// fail records a counted failure for clientID and returns cause. A limiter
// error never hides the original cause.
func (a *authService) fail(ctx context.Context, clientID string, cause error) error {
	if err := a.limiter.RecordFailure(ctx, clientID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.fail").Str("client_id", clientID).Msg("error recording auth failure")
	}
	return cause
}

func (a *authService) issue(ctx context.Context, clientID string, user models.User) (models.AuthResponse, error) {
	token, err := a.sessions.CreateSession(ctx, user.ID)
	if err != nil {
		return models.AuthResponse{}, err
	}

	if err = a.limiter.Reset(ctx, clientID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.issue").Str("client_id", clientID).Msg("error resetting rate limit")
	}

	return models.AuthResponse{Token: token, User: user}, nil
}

func (a *authService) Logout(ctx context.Context, token string) error {
	return a.sessions.Logout(ctx, token)
}

func (a *authService) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	if err := requireUser(identity); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.GetUserByID(ctx, identity.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error reading user: %w", err)
	}
	return user, nil
}
