package handler

import (
	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/handler/grpc"
	"github.com/MKhiriev/go-snake-bench/internal/handler/http"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// Dependencies are the non-service collaborators of the transport layer.
type Dependencies struct {
	// RunQueue receives runs started over HTTP.
	RunQueue http.RunQueue
	// Pinger backs /healthz and the gRPC health status.
	Pinger http.Pinger
}

func NewHandlers(services *service.Services, deps Dependencies, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, deps.RunQueue, deps.Pinger, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(deps.Pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
