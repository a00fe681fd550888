package server

import (
	"context"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/handler"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		g.Go(s.gRPCServer.RunServer)
	}

	// a failed server cancels ctx, which stops the others
	g.Go(func() error {
		<-ctx.Done()
		s.Shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}
