// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of go-snake-bench: the session
// gate, the auth rate limiter, test moderation, the two-phase run pipeline,
// collections, the engine quota and super-admin tooling.
//
// Services never read identity from global state. Every operation that acts
// on behalf of a user receives the [models.Identity] resolved by the HTTP
// layer and re-checks its role policy.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-snake-bench/models"
)

type AppInfoService interface {
	GetVersion(ctx context.Context) models.VersionResponse
}

// SessionService is the identity gate.
type SessionService interface {
	// CreateSession issues a new opaque token for userID. Only its hash is
	// stored.
	CreateSession(ctx context.Context, userID string) (models.Token, error)

	// Authenticate resolves a raw token. Expired sessions are deleted on
	// read and reported as [ErrSessionExpired].
	Authenticate(ctx context.Context, token string) (models.Identity, error)

	Logout(ctx context.Context, token string) error
	RevokeUserSessions(ctx context.Context, userID string) error
}

// RateLimiter counts failed auth attempts per client id.
type RateLimiter interface {
	// Check returns a *RateLimitError while the client is blocked. It never
	// consumes an attempt.
	Check(ctx context.Context, clientID string) error
	RecordFailure(ctx context.Context, clientID string) error
	Reset(ctx context.Context, clientID string) error
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) (models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, identity models.Identity) (models.User, error)
}

type TestService interface {
	CreateTest(ctx context.Context, identity models.Identity, req models.TestRequest) (models.Test, error)
	// CreateAdminTest creates an ownerless, already approved test.
	CreateAdminTest(ctx context.Context, identity models.Identity, req models.TestRequest) (models.Test, error)
	GetTest(ctx context.Context, identity models.Identity, testID string) (models.Test, error)
	UpdateTest(ctx context.Context, identity models.Identity, testID string, req models.TestRequest) (models.Test, error)
	DeleteTest(ctx context.Context, identity models.Identity, testID string) error

	ListPublicTests(ctx context.Context) ([]models.Test, error)
	ListMyTests(ctx context.Context, identity models.Identity) ([]models.Test, error)
	ListTestsByStatus(ctx context.Context, identity models.Identity, status models.TestStatus) ([]models.Test, error)

	Moderate(ctx context.Context, identity models.Identity, testID string, action ModerationAction, reason string) (models.Test, error)
	Resubmit(ctx context.Context, identity models.Identity, testID string) (models.Test, error)

	PruneOrphanMemberships(ctx context.Context, identity models.Identity) (int64, error)
}

// RunService is the two-phase run pipeline.
type RunService interface {
	// StartTestRun records a running run and returns at once. It performs no
	// network I/O.
	StartTestRun(ctx context.Context, identity models.Identity, testID, botURL string) (models.TestRun, error)

	// ExecuteTestRun performs the bot call of a running run and writes its
	// single terminal patch. Of concurrent callers exactly one executes.
	ExecuteTestRun(ctx context.Context, runID string) (models.TestRun, error)

	GetRun(ctx context.Context, identity models.Identity, runID string) (models.TestRun, error)
	WaitRun(ctx context.Context, identity models.Identity, runID string, timeout time.Duration) (models.TestRun, error)
	ListRuns(ctx context.Context, identity models.Identity, testID string) ([]models.TestRun, error)

	// RunTests starts and executes one run per test. Outcomes keep the input
	// order and one failure never affects another run.
	RunTests(ctx context.Context, identity models.Identity, testIDs []string, botURL string) ([]models.RunOutcome, error)
}

type CollectionService interface {
	CreateCollection(ctx context.Context, identity models.Identity, req models.CollectionRequest) (models.Collection, error)
	UpdateCollection(ctx context.Context, identity models.Identity, collectionID string, req models.CollectionRequest) (models.Collection, error)
	DeleteCollection(ctx context.Context, identity models.Identity, collectionID string) error
	GetCollection(ctx context.Context, identity models.Identity, collectionID string) (models.CollectionWithTests, error)
	GetSharedCollection(ctx context.Context, slug string) (models.CollectionWithTests, error)
	ListMyCollections(ctx context.Context, identity models.Identity) ([]models.Collection, error)
	AddTest(ctx context.Context, identity models.Identity, collectionID, testID string) error
	RemoveTest(ctx context.Context, identity models.Identity, collectionID, testID string) error
	RegenerateShareSlug(ctx context.Context, identity models.Identity, collectionID string) (models.Collection, error)
}

type EngineService interface {
	CheckUsage(ctx context.Context, identity models.Identity) (models.EngineUsage, error)
	IncrementUsage(ctx context.Context, identity models.Identity) error
	Analyse(ctx context.Context, identity models.Identity, req models.AnalyseRequest) (models.EngineAnalysis, error)
}

type AdminService interface {
	ListUsers(ctx context.Context, identity models.Identity) ([]models.User, error)
	UpdateUserFlags(ctx context.Context, identity models.Identity, userID string, update models.UserFlagsUpdate) (models.User, error)
	BanGoogleAccount(ctx context.Context, identity models.Identity, req models.BanRequest) (models.BannedAccount, error)
	UnbanGoogleAccount(ctx context.Context, identity models.Identity, googleID string) error
	ListBannedAccounts(ctx context.Context, identity models.Identity) ([]models.BannedAccount, error)
}

// TestServiceWrapper decorates a TestService, e.g. with validation.
type TestServiceWrapper interface {
	Wrap(TestService) TestService
}

// AuthServiceWrapper decorates an AuthService, e.g. with validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
