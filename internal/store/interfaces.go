package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-snake-bench/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts together with their role, ban and engine
// quota columns.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (models.User, error)
	LinkGoogleID(ctx context.Context, userID, googleID string) error
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserFlags(ctx context.Context, userID string, update models.UserFlagsUpdate) error
	// IncrementEngineUsage bumps the counter for month, resetting it to 1 when
	// the stored month differs. The update is a single statement.
	IncrementEngineUsage(ctx context.Context, userID string, month int) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, tokenHash string) (models.Session, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	DeleteUserSessions(ctx context.Context, userID string) error
}

type RateLimitRepository interface {
	GetRateLimit(ctx context.Context, clientID string) (models.RateLimit, error)
	SaveRateLimit(ctx context.Context, rateLimit models.RateLimit) error
	DeleteRateLimit(ctx context.Context, clientID string) error
}

type TestRepository interface {
	CreateTest(ctx context.Context, test models.Test) error
	GetTest(ctx context.Context, testID string) (models.Test, error)
	UpdateTest(ctx context.Context, test models.Test) error
	// DeleteTest removes the test and its collection memberships atomically.
	DeleteTest(ctx context.Context, testID string) error
	ListTestsByStatus(ctx context.Context, status models.TestStatus) ([]models.Test, error)
	ListTestsByOwner(ctx context.Context, ownerID string) ([]models.Test, error)
}

type RunRepository interface {
	CreateRun(ctx context.Context, run models.TestRun) error
	GetRun(ctx context.Context, runID string) (models.TestRun, error)
	// ClaimRun marks a running run as taken when it is unclaimed or its claim
	// is older than staleBefore. It reports false when another caller holds a
	// live claim or the run is no longer running.
	ClaimRun(ctx context.Context, runID string, now, staleBefore time.Time) (bool, error)
	// CompleteRun writes the terminal patch only while the run is still
	// running and reports whether a row was updated.
	CompleteRun(ctx context.Context, runID string, result models.RunResult) (bool, error)
	ListRuns(ctx context.Context, testID, userID string) ([]models.TestRun, error)
}

type CollectionRepository interface {
	CreateCollection(ctx context.Context, collection models.Collection) error
	GetCollection(ctx context.Context, collectionID string) (models.Collection, error)
	GetCollectionBySlug(ctx context.Context, slug string) (models.Collection, error)
	UpdateCollection(ctx context.Context, collection models.Collection) error
	UpdateShareSlug(ctx context.Context, collectionID, slug string, now time.Time) error
	// DeleteCollection removes the collection and its memberships atomically.
	DeleteCollection(ctx context.Context, collectionID string) error
	ListCollectionsByOwner(ctx context.Context, ownerID string) ([]models.Collection, error)

	AddTest(ctx context.Context, membership models.CollectionTest) error
	RemoveTest(ctx context.Context, collectionID, testID string) error
	ListCollectionTests(ctx context.Context, collectionID string) ([]models.Test, error)
	// PruneOrphanMemberships deletes memberships whose test or collection no
	// longer exists and returns how many rows were removed.
	PruneOrphanMemberships(ctx context.Context) (int64, error)
}

type BannedAccountRepository interface {
	BanAccount(ctx context.Context, ban models.BannedAccount) error
	UnbanAccount(ctx context.Context, googleID string) error
	IsBanned(ctx context.Context, googleID string) (bool, error)
	ListBannedAccounts(ctx context.Context) ([]models.BannedAccount, error)
}
