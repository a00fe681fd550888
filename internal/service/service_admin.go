package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/models"
)

// adminService is the super-admin tooling: role and ban flags of users and
// bans of Google identities.
type adminService struct {
	userRepository   store.UserRepository
	bannedRepository store.BannedAccountRepository
	sessions         SessionService

	now func() time.Time

	logger *logger.Logger
}

func NewAdminService(users store.UserRepository, banned store.BannedAccountRepository, sessions SessionService, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository:   users,
		bannedRepository: banned,
		sessions:         sessions,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context, identity models.Identity) ([]models.User, error) {
	if err := RequireSuperAdmin(identity); err != nil {
		return nil, err
	}
	return s.userRepository.ListUsers(ctx)
}

func (s *adminService) UpdateUserFlags(ctx context.Context, identity models.Identity, userID string, update models.UserFlagsUpdate) (models.User, error) {
	if err := RequireSuperAdmin(identity); err != nil {
		return models.User{}, err
	}
	if update.Empty() {
		return models.User{}, fmt.Errorf("%w: no flag to update", ErrInvalidDataProvided)
	}

	target, err := s.getUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if target.IsSuperAdmin && restricts(update) {
		return models.User{}, ErrCannotModifySuperAdmin
	}

	err = s.userRepository.UpdateUserFlags(ctx, userID, update)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user flags: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*adminService.UpdateUserFlags").
		Str("actor", identity.UserID).
		Str("user_id", userID).
		Msg("user flags updated")

	return s.getUser(ctx, userID)
}

// restricts reports whether update demotes or bans its target.
func restricts(update models.UserFlagsUpdate) bool {
	isTrue := func(b *bool) bool { return b != nil && *b }

	return (update.IsAdmin != nil && !*update.IsAdmin) ||
		isTrue(update.BannedFromPendingTests) ||
		isTrue(update.BannedFromPublicCollections) ||
		isTrue(update.BannedFromEngine)
}

// BanGoogleAccount bans the Google identity linked to the target user and
// logs the user out everywhere.
func (s *adminService) BanGoogleAccount(ctx context.Context, identity models.Identity, req models.BanRequest) (models.BannedAccount, error) {
	if err := RequireSuperAdmin(identity); err != nil {
		return models.BannedAccount{}, err
	}

	target, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return models.BannedAccount{}, err
	}
	if target.IsSuperAdmin {
		return models.BannedAccount{}, ErrCannotBanSuperAdmin
	}
	if target.GoogleID == "" {
		return models.BannedAccount{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrNoLinkedGoogleAccount)
	}

	ban := models.BannedAccount{
		GoogleID: target.GoogleID,
		Email:    target.Email,
		Reason:   req.Reason,
		BannedBy: identity.UserID,
		BannedAt: s.now().UTC(),
	}
	if err = s.bannedRepository.BanAccount(ctx, ban); err != nil {
		return models.BannedAccount{}, fmt.Errorf("error banning account: %w", err)
	}

	if err = s.sessions.RevokeUserSessions(ctx, target.ID); err != nil {
		return models.BannedAccount{}, fmt.Errorf("error revoking sessions: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*adminService.BanGoogleAccount").
		Str("actor", identity.UserID).
		Str("user_id", target.ID).
		Msg("google account banned")

	return ban, nil
}

func (s *adminService) UnbanGoogleAccount(ctx context.Context, identity models.Identity, googleID string) error {
	if err := RequireSuperAdmin(identity); err != nil {
		return err
	}

	err := s.bannedRepository.UnbanAccount(ctx, googleID)
	if errors.Is(err, store.ErrBanNotFound) {
		return ErrAccountNotBanned
	}
	if err != nil {
		return fmt.Errorf("error unbanning account: %w", err)
	}
	return nil
}

func (s *adminService) ListBannedAccounts(ctx context.Context, identity models.Identity) ([]models.BannedAccount, error) {
	if err := RequireSuperAdmin(identity); err != nil {
		return nil, err
	}
	return s.bannedRepository.ListBannedAccounts(ctx)
}

func (s *adminService) getUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error reading user: %w", err)
	}
	return user, nil
}
