// Package server runs the transport servers of go-snake-bench.
//
// The HTTP API and the optional gRPC health server are started together and
// stopped together: when the run context is cancelled, or either server
// fails, both are shut down gracefully.
package server
