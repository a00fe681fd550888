package http

import (
	"context"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/MKhiriev/go-snake-bench/internal/validators"
)

// RunQueue hands a started run to the background executor. Enqueue reports
// false when the run could not be queued.
type RunQueue interface {
	Enqueue(runID string) bool
}

// Pinger reports storage liveness for /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	runQueue RunQueue
	pinger   Pinger

	requestValidator validators.Validator

	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, runQueue RunQueue, pinger Pinger, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		runQueue:           runQueue,
		pinger:             pinger,
		requestValidator:   validators.NewRequestValidator(),
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}
}
