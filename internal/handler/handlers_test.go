package handler

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopQueue struct{}

func (nopQueue) Enqueue(string) bool { return true }

type nopPinger struct{}

func (nopPinger) Ping(context.Context) error { return nil }

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both transports", cfg: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "grpc only", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "nothing configured", cfg: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := Dependencies{RunQueue: nopQueue{}, Pinger: nopPinger{}}

			h, err := NewHandlers(&service.Services{}, deps, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
