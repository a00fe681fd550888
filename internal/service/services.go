package service

import (
	"github.com/MKhiriev/go-snake-bench/internal/adapter"
	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/notify"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/models"
)

// Adapters groups the outbound integrations the services depend on.
type Adapters struct {
	Bot      adapter.BotClient
	Engine   adapter.EngineClient
	Verifier adapter.IdentityVerifier
	Secrets  config.Secrets
}

type Services struct {
	AppInfoService    AppInfoService
	SessionService    SessionService
	AuthService       AuthService
	TestService       TestService
	RunService        RunService
	CollectionService CollectionService
	EngineService     EngineService
	AdminService      AdminService
}

func NewServices(storages *store.Storages, adapters Adapters, notifier notify.RunNotifier, build models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	sessions := NewSessionService(storages.SessionRepository, storages.UserRepository, cfg.App, logger)
	limiter := NewRateLimiter(storages.RateLimitRepository, cfg.App, logger)

	auth := NewAuthService(
		storages.UserRepository,
		storages.BannedAccountRepository,
		sessions,
		limiter,
		adapters.Verifier,
		logger,
	)

	tests := NewTestService(storages.TestRepository, storages.CollectionRepository, logger)

	return &Services{
		AppInfoService:    appInfo,
		SessionService:    sessions,
		AuthService:       NewAuthValidationService().Wrap(auth),
		TestService:       NewTestValidationService().Wrap(tests),
		RunService:        NewRunService(storages.RunRepository, storages.TestRepository, adapters.Bot, notifier, cfg.Workers, cfg.Adapter, logger),
		CollectionService: NewCollectionService(storages.CollectionRepository, storages.TestRepository, logger),
		EngineService:     NewEngineService(storages.UserRepository, storages.TestRepository, adapters.Engine, adapters.Secrets, cfg.App, logger),
		AdminService:      NewAdminService(storages.UserRepository, storages.BannedAccountRepository, sessions, logger),
	}, nil
}
