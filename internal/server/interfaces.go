package server

import "context"

// Server is the lifecycle contract of the transport servers.
type Server interface {
	// RunServer serves until ctx is cancelled or a server fails, then shuts
	// every server down. It returns the first serve error, if any.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops every server.
	Shutdown()
}
