package service

import (
	"context"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService prefers the configured version and falls back to the
// one stamped into the binary, which reads "N/A" for local builds.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.Version
		if !build.Stamped() {
			logger.Warn().Str("func", "NewAppInfoService").Msg("no version configured and binary is not stamped")
		}
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("func", "NewAppInfoService").Str("version", version).Str("build", build.String()).Send()

	return &appInfoService{
		version: models.VersionResponse{
			Version:     version,
			BuildDate:   build.Date,
			BuildCommit: build.Commit,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
