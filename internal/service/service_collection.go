package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/internal/utils"
	"github.com/MKhiriev/go-snake-bench/models"
)

// shareSlugAttempts is how many fresh slugs are tried before giving up on a
// collision.
const shareSlugAttempts = 3

type collectionService struct {
	collectionRepository store.CollectionRepository
	testRepository       store.TestRepository

	idGenerator utils.IDGenerator
	newSlug     func() (string, error)
	now         func() time.Time

	logger *logger.Logger
}

func NewCollectionService(collections store.CollectionRepository, tests store.TestRepository, logger *logger.Logger) CollectionService {
	return &collectionService{
		collectionRepository: collections,
		testRepository:       tests,
		idGenerator:          utils.NewUUIDGenerator(),
		newSlug:              utils.NewShareSlug,
		now:                  time.Now,
		logger:               logger,
	}
}

func (s *collectionService) CreateCollection(ctx context.Context, identity models.Identity, req models.CollectionRequest) (models.Collection, error) {
	if err := requireUser(identity); err != nil {
		return models.Collection{}, err
	}
	if req.IsPublic && identity.BannedFromPublicCollections {
		return models.Collection{}, ErrUserBanned
	}

	now := s.now().UTC()
	collection := models.Collection{
		ID:          s.idGenerator.Generate(),
		OwnerID:     identity.UserID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.withFreshSlug(func(slug string) error {
		collection.ShareSlug = slug
		return s.collectionRepository.CreateCollection(ctx, collection)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionService.CreateCollection").Msg("error creating collection")
		return models.Collection{}, fmt.Errorf("error creating collection: %w", err)
	}

	return collection, nil
}

func (s *collectionService) UpdateCollection(ctx context.Context, identity models.Identity, collectionID string, req models.CollectionRequest) (models.Collection, error) {
	collection, err := s.owned(ctx, identity, collectionID)
	if err != nil {
		return models.Collection{}, err
	}
	if req.IsPublic && identity.BannedFromPublicCollections {
		return models.Collection{}, ErrUserBanned
	}

	collection.Name = strings.TrimSpace(req.Name)
	collection.Description = req.Description
	collection.IsPublic = req.IsPublic
	collection.UpdatedAt = s.now().UTC()

	if err = s.collectionRepository.UpdateCollection(ctx, collection); err != nil {
		return models.Collection{}, mapCollectionError(err)
	}
	return collection, nil
}

func (s *collectionService) DeleteCollection(ctx context.Context, identity models.Identity, collectionID string) error {
	if _, err := s.owned(ctx, identity, collectionID); err != nil {
		return err
	}

	if err := s.collectionRepository.DeleteCollection(ctx, collectionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionService.DeleteCollection").Str("collection_id", collectionID).Msg("error deleting collection")
		return mapCollectionError(err)
	}
	return nil
}

// GetCollection returns the collection to its owner, or to anyone when it
// is public. Member tests the reader may not see are left out.
func (s *collectionService) GetCollection(ctx context.Context, identity models.Identity, collectionID string) (models.CollectionWithTests, error) {
	collection, err := s.collectionRepository.GetCollection(ctx, collectionID)
	if err != nil {
		return models.CollectionWithTests{}, mapCollectionError(err)
	}

	isOwner := !identity.Anonymous() && collection.OwnerID == identity.UserID
	if !collection.IsPublic && !isOwner {
		return models.CollectionWithTests{}, ErrCollectionNotFound
	}

	return s.withTests(ctx, identity, collection)
}

func (s *collectionService) GetSharedCollection(ctx context.Context, slug string) (models.CollectionWithTests, error) {
	collection, err := s.collectionRepository.GetCollectionBySlug(ctx, slug)
	if err != nil {
		return models.CollectionWithTests{}, mapCollectionError(err)
	}
	if !collection.IsPublic {
		return models.CollectionWithTests{}, ErrCollectionNotFound
	}

	return s.withTests(ctx, models.Identity{}, collection)
}

func (s *collectionService) ListMyCollections(ctx context.Context, identity models.Identity) ([]models.Collection, error) {
	if err := requireUser(identity); err != nil {
		return nil, err
	}
	return s.collectionRepository.ListCollectionsByOwner(ctx, identity.UserID)
}

func (s *collectionService) AddTest(ctx context.Context, identity models.Identity, collectionID, testID string) error {
	if _, err := s.owned(ctx, identity, collectionID); err != nil {
		return err
	}

	test, err := s.testRepository.GetTest(ctx, testID)
	if errors.Is(err, store.ErrTestNotFound) {
		return ErrTestNotFound
	}
	if err != nil {
		return fmt.Errorf("error reading test: %w", err)
	}
	if !test.OwnedBy(identity.UserID) && test.Status != models.TestStatusApproved {
		return ErrTestNotAddable
	}

	err = s.collectionRepository.AddTest(ctx, models.CollectionTest{
		CollectionID: collectionID,
		TestID:       testID,
		AddedAt:      s.now().UTC(),
	})
	return mapCollectionError(err)
}

func (s *collectionService) RemoveTest(ctx context.Context, identity models.Identity, collectionID, testID string) error {
	if _, err := s.owned(ctx, identity, collectionID); err != nil {
		return err
	}
	return mapCollectionError(s.collectionRepository.RemoveTest(ctx, collectionID, testID))
}

func (s *collectionService) RegenerateShareSlug(ctx context.Context, identity models.Identity, collectionID string) (models.Collection, error) {
	collection, err := s.owned(ctx, identity, collectionID)
	if err != nil {
		return models.Collection{}, err
	}

	now := s.now().UTC()
	err = s.withFreshSlug(func(slug string) error {
		collection.ShareSlug = slug
		return s.collectionRepository.UpdateShareSlug(ctx, collectionID, slug, now)
	})
	if err != nil {
		return models.Collection{}, mapCollectionError(err)
	}

	collection.UpdatedAt = now
	return collection, nil
}

// owned loads the collection and checks that identity owns it. A private
// collection of someone else is reported as missing.
func (s *collectionService) owned(ctx context.Context, identity models.Identity, collectionID string) (models.Collection, error) {
	if err := requireUser(identity); err != nil {
		return models.Collection{}, err
	}

	collection, err := s.collectionRepository.GetCollection(ctx, collectionID)
	if err != nil {
		return models.Collection{}, mapCollectionError(err)
	}

	if collection.OwnerID != identity.UserID {
		if !collection.IsPublic {
			return models.Collection{}, ErrCollectionNotFound
		}
		return models.Collection{}, ErrNotCollectionOwner
	}
	return collection, nil
}

func (s *collectionService) withTests(ctx context.Context, identity models.Identity, collection models.Collection) (models.CollectionWithTests, error) {
	tests, err := s.collectionRepository.ListCollectionTests(ctx, collection.ID)
	if err != nil {
		return models.CollectionWithTests{}, fmt.Errorf("error listing collection tests: %w", err)
	}

	visible := make([]models.Test, 0, len(tests))
	for _, t := range tests {
		if canView(t, identity) {
			visible = append(visible, t)
		}
	}

	return models.CollectionWithTests{Collection: collection, Tests: visible}, nil
}

func (s *collectionService) withFreshSlug(fn func(slug string) error) error {
	var err error
	for range shareSlugAttempts {
		var slug string
		if slug, err = s.newSlug(); err != nil {
			return err
		}
		if err = fn(slug); !errors.Is(err, store.ErrShareSlugTaken) {
			return err
		}
	}
	return err
}

func mapCollectionError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCollectionNotFound):
		return ErrCollectionNotFound
	case errors.Is(err, store.ErrAlreadyInCollection):
		return ErrAlreadyInCollection
	case errors.Is(err, store.ErrMembershipNotFound):
		return ErrTestNotInCollection
	default:
		return err
	}
}
