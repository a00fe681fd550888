package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

type testService struct {
	testRepository       store.TestRepository
	collectionRepository store.CollectionRepository

	idGenerator utils.IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewTestService(tests store.TestRepository, collections store.CollectionRepository, logger *logger.Logger) TestService {
	return &testService{
		testRepository:       tests,
		collectionRepository: collections,
		idGenerator:          utils.NewUUIDGenerator(),
		now:                  time.Now,
		logger:               logger,
	}
}

func (s *testService) CreateTest(ctx context.Context, identity models.Identity, req models.TestRequest) (models.Test, error) {
	if err := requireUser(identity); err != nil {
		return models.Test{}, err
	}
	if identity.BannedFromPendingTests {
		return models.Test{}, ErrUserBanned
	}

	now := s.now().UTC()
	test := models.Test{
		ID:        s.idGenerator.Generate(),
		Status:    models.TestStatusPending,
		OwnerID:   identity.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.Apply(&test)
	test.ExpectedSafeMoves = normalizeMoves(test.ExpectedSafeMoves)

	if err := s.testRepository.CreateTest(ctx, test); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testService.CreateTest").Str("user_id", identity.UserID).Msg("error creating test")
		return models.Test{}, fmt.Errorf("error creating test: %w", err)
	}

	return test, nil
}

func (s *testService) CreateAdminTest(ctx context.Context, identity models.Identity, req models.TestRequest) (models.Test, error) {
	if err := RequireAdmin(identity); err != nil {
		return models.Test{}, err
	}

	now := s.now().UTC()
	test := models.Test{
		ID:         s.idGenerator.Generate(),
		Status:     models.TestStatusApproved,
		ApprovedBy: identity.UserID,
		ApprovedAt: &now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	req.Apply(&test)
	test.ExpectedSafeMoves = normalizeMoves(test.ExpectedSafeMoves)

	if err := s.testRepository.CreateTest(ctx, test); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testService.CreateAdminTest").Msg("error creating test")
		return models.Test{}, fmt.Errorf("error creating test: %w", err)
	}

	return test, nil
}

func (s *testService) GetTest(ctx context.Context, identity models.Identity, testID string) (models.Test, error) {
	test, err := s.getTest(ctx, testID)
	if err != nil {
		return models.Test{}, err
	}
	if !canView(test, identity) {
		return models.Test{}, ErrTestNotFound
	}
	return test, nil
}

// UpdateTest replaces the test content. An owner edit sends the test back
// to pending; an admin edit leaves the moderation state alone.
func (s *testService) UpdateTest(ctx context.Context, identity models.Identity, testID string, req models.TestRequest) (models.Test, error) {
	if err := requireUser(identity); err != nil {
		return models.Test{}, err
	}

	test, err := s.getTest(ctx, testID)
	if err != nil {
		return models.Test{}, err
	}
	if !canView(test, identity) {
		return models.Test{}, ErrTestNotFound
	}

	now := s.now().UTC()
	req.Apply(&test)
	test.ExpectedSafeMoves = normalizeMoves(test.ExpectedSafeMoves)

	switch {
	case identity.IsAdmin || identity.IsSuperAdmin:
		test.UpdatedAt = now
	case test.OwnedBy(identity.UserID):
		if identity.BannedFromPendingTests {
			return models.Test{}, ErrUserBanned
		}
		if test, err = moderate(test, ActionOwnerEdit, identity, "", now); err != nil {
			return models.Test{}, err
		}
	default:
		return models.Test{}, ErrNotTestOwner
	}

	if err = s.save(ctx, test); err != nil {
		return models.Test{}, err
	}
	return test, nil
}

func (s *testService) DeleteTest(ctx context.Context, identity models.Identity, testID string) error {
	if err := requireUser(identity); err != nil {
		return err
	}

	test, err := s.getTest(ctx, testID)
	if err != nil {
		return err
	}
	if !canView(test, identity) {
		return ErrTestNotFound
	}
	if !test.OwnedBy(identity.UserID) && !identity.IsAdmin && !identity.IsSuperAdmin {
		return ErrNotTestOwner
	}

	err = s.testRepository.DeleteTest(ctx, testID)
	if errors.Is(err, store.ErrTestNotFound) {
		return ErrTestNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testService.DeleteTest").Str("test_id", testID).Msg("error deleting test")
		return fmt.Errorf("error deleting test: %w", err)
	}
	return nil
}

func (s *testService) ListPublicTests(ctx context.Context) ([]models.Test, error) {
	return s.testRepository.ListTestsByStatus(ctx, models.TestStatusApproved)
}

func (s *testService) ListMyTests(ctx context.Context, identity models.Identity) ([]models.Test, error) {
	if err := requireUser(identity); err != nil {
		return nil, err
	}
	return s.testRepository.ListTestsByOwner(ctx, identity.UserID)
}

func (s *testService) ListTestsByStatus(ctx context.Context, identity models.Identity, status models.TestStatus) ([]models.Test, error) {
	if err := RequireAdmin(identity); err != nil {
		return nil, err
	}
	return s.testRepository.ListTestsByStatus(ctx, status)
}

func (s *testService) Moderate(ctx context.Context, identity models.Identity, testID string, action ModerationAction, reason string) (models.Test, error) {
	if err := RequireAdmin(identity); err != nil {
		return models.Test{}, err
	}
	if !action.adminOnly() {
		return models.Test{}, ErrUnknownModerationAction
	}

	return s.transition(ctx, identity, testID, action, reason)
}

func (s *testService) Resubmit(ctx context.Context, identity models.Identity, testID string) (models.Test, error) {
	if err := requireUser(identity); err != nil {
		return models.Test{}, err
	}

	return s.transition(ctx, identity, testID, ActionResubmit, "")
}

func (s *testService) transition(ctx context.Context, identity models.Identity, testID string, action ModerationAction, reason string) (models.Test, error) {
	test, err := s.getTest(ctx, testID)
	if err != nil {
		return models.Test{}, err
	}
	if !canView(test, identity) {
		return models.Test{}, ErrTestNotFound
	}

	patched, err := moderate(test, action, identity, reason, s.now().UTC())
	if err != nil {
		return models.Test{}, err
	}

	if err = s.save(ctx, patched); err != nil {
		return models.Test{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*testService.transition").
		Str("test_id", testID).
		Str("action", string(action)).
		Str("from", string(test.Status)).
		Str("to", string(patched.Status)).
		Msg("test moderated")

	return patched, nil
}

func (s *testService) PruneOrphanMemberships(ctx context.Context, identity models.Identity) (int64, error) {
	if err := RequireAdmin(identity); err != nil {
		return 0, err
	}

	pruned, err := s.collectionRepository.PruneOrphanMemberships(ctx)
	if err != nil {
		return 0, fmt.Errorf("error pruning memberships: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*testService.PruneOrphanMemberships").Int64("pruned", pruned).Msg("orphan memberships pruned")
	return pruned, nil
}

func (s *testService) getTest(ctx context.Context, testID string) (models.Test, error) {
	test, err := s.testRepository.GetTest(ctx, testID)
	if errors.Is(err, store.ErrTestNotFound) {
		return models.Test{}, ErrTestNotFound
	}
	if err != nil {
		return models.Test{}, fmt.Errorf("error reading test: %w", err)
	}
	return test, nil
}

func (s *testService) save(ctx context.Context, test models.Test) error {
	err := s.testRepository.UpdateTest(ctx, test)
	if errors.Is(err, store.ErrTestNotFound) {
		return ErrTestNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testService.save").Str("test_id", test.ID).Msg("error updating test")
		return fmt.Errorf("error updating test: %w", err)
	}
	return nil
}

// normalizeMoves drops duplicates and sorts, since the moves are a set.
func normalizeMoves(moves []string) []string {
	out := slices.Clone(moves)
	slices.Sort(out)
	out = slices.Compact(out)
	if out == nil {
		out = []string{}
	}
	return out
}
