// Package grpc exposes the standard gRPC health service of go-snake-bench.
//
// The serving status follows storage liveness: a background probe pings the
// database and flips the status between SERVING and NOT_SERVING, so load
// balancers and orchestrators can use grpc_health_probe against the server.
package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health-check service name reported next to the
// overall ("") status.
const ServiceName = "snakebench.v1.Bench"

const defaultProbeInterval = 10 * time.Second

// Pinger reports storage liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server
	pinger Pinger

	probeInterval time.Duration
	probeTimeout  time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc

	logger *logger.Logger
}

// NewHandler returns a handler whose status starts as NOT_SERVING until the
// first successful probe.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health:        health.NewServer(),
		pinger:        pinger,
		probeInterval: defaultProbeInterval,
		probeTimeout:  defaultProbeInterval / 2,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register installs the health and reflection services on server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// Run probes storage once and then every probe interval until ctx is
// cancelled or Stop is called.
func (h *Handler) Run(ctx context.Context) {
	ctx, h.cancel = context.WithCancel(ctx)

	h.probe(ctx)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		ticker := time.NewTicker(h.probeInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.probe(ctx)
			}
		}
	}()
}

// Stop halts probing and reports NOT_SERVING to every watcher.
func (h *Handler) Stop() {
	if h.cancel != nil {
		h.cancel()
	}
	h.wg.Wait()
	h.health.Shutdown()
	h.logger.Info().Str("func", "*Handler.Stop").Msg("gRPC health probe stopped")
}

func (h *Handler) probe(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Err(err).Str("func", "*Handler.probe").Msg("storage ping failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	h.setStatus(status)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
