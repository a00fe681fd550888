package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
)

// Storages bundles every repository over one connection pool.
type Storages struct {
	UserRepository          UserRepository
	SessionRepository       SessionRepository
	RateLimitRepository     RateLimitRepository
	TestRepository          TestRepository
	RunRepository           RunRepository
	CollectionRepository    CollectionRepository
	BannedAccountRepository BannedAccountRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("dialect", string(db.Dialect())).Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Str("dialect", string(db.Dialect())).Msg("migrations applied")

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:          NewUserRepository(db, log),
		SessionRepository:       NewSessionRepository(db, log),
		RateLimitRepository:     NewRateLimitRepository(db, log),
		TestRepository:          NewTestRepository(db, log),
		RunRepository:           NewRunRepository(db, log),
		CollectionRepository:    NewCollectionRepository(db, log),
		BannedAccountRepository: NewBannedAccountRepository(db, log),
		db:                      db,
	}
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
