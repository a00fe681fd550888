package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-snake-bench/internal/adapter"
	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/handler"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/notify"
	"github.com/MKhiriev/go-snake-bench/internal/server"
	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/internal/store"
	"github.com/MKhiriev/go-snake-bench/internal/workers"
	"github.com/MKhiriev/go-snake-bench/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("snake-bench-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	notifier, err := newNotifier(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating run notifier")
	}
	defer notifier.Close()

	secrets := config.NewEnvSecrets(cfg.Adapter)
	adapters := service.Adapters{
		Bot:      adapter.NewHTTPBotClient(cfg.Adapter),
		Engine:   adapter.NewHTTPEngineClient(cfg.Adapter),
		Verifier: adapter.NewGoogleIdentityVerifier(cfg.Adapter, secrets),
		Secrets:  secrets,
	}

	services, err := service.NewServices(storages, adapters, notifier, buildInfo, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	executor := workers.NewRunExecutor(services.RunService, cfg.Workers, log)

	handlers, err := handler.NewHandlers(services, handler.Dependencies{RunQueue: executor, Pinger: storages}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := []workers.Worker{executor}
	if handlers.GRPC != nil {
		background = append(background, handlers.GRPC)
	}
	bg := workers.NewWorkers(background...)
	bg.Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	// queued runs are drained before storage closes
	bg.Stop()
	log.Info().Msg("shutdown complete")
}

// newNotifier picks the Redis bus when an address is configured, so that
// long-polls on one replica see runs finished on another.
func newNotifier(ctx context.Context, cfg config.Redis, log *logger.Logger) (notify.RunNotifier, error) {
	if cfg.Addr == "" {
		log.Info().Msg("redis address is empty, using in-process run notifier")
		return notify.NewLocalNotifier(), nil
	}

	redisNotifier, err := notify.NewRedisNotifier(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return redisNotifier, nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
