package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	myGRPC "github.com/MKhiriev/go-snake-bench/internal/handler/grpc"
	"github.com/MKhiriev/go-snake-bench/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}

	g.logger.Info().Str("addr", g.address).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")
	g.server.GracefulStop()
}
