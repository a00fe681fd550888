// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults].
const (
	DefaultHTTPAddress        = "localhost:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultSessionTTL         = 30 * 24 * time.Hour
	DefaultRateLimitAttempts  = 5
	DefaultRateLimitWindow    = 5 * time.Minute
	DefaultEngineMonthlyLimit = 5
	DefaultBotTimeout         = 10 * time.Second
	DefaultEngineTimeout      = 30 * time.Second
	DefaultMaxResponseBytes   = 1 << 20
	DefaultGoogleJWKSURL      = "https://www.googleapis.com/oauth2/v3/certs"
	DefaultRunConcurrency     = 4
	DefaultRunQueueSize       = 256
	DefaultRedisChannel       = "snake-bench:runs"
	DefaultLogLevel           = "info"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}
	if cfg.App.RateLimitAttempts == 0 {
		cfg.App.RateLimitAttempts = DefaultRateLimitAttempts
	}
	if cfg.App.RateLimitWindow == 0 {
		cfg.App.RateLimitWindow = DefaultRateLimitWindow
	}
	if cfg.App.EngineMonthlyLimit == 0 {
		cfg.App.EngineMonthlyLimit = DefaultEngineMonthlyLimit
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.BotTimeout == 0 {
		cfg.Adapter.BotTimeout = DefaultBotTimeout
	}
	if cfg.Adapter.EngineTimeout == 0 {
		cfg.Adapter.EngineTimeout = DefaultEngineTimeout
	}
	if cfg.Adapter.MaxResponseBytes == 0 {
		cfg.Adapter.MaxResponseBytes = DefaultMaxResponseBytes
	}
	if cfg.Adapter.GoogleJWKSURL == "" {
		cfg.Adapter.GoogleJWKSURL = DefaultGoogleJWKSURL
	}
	if cfg.Workers.RunConcurrency == 0 {
		cfg.Workers.RunConcurrency = DefaultRunConcurrency
	}
	if cfg.Workers.RunQueueSize == 0 {
		cfg.Workers.RunQueueSize = DefaultRunQueueSize
	}
	if cfg.Redis.Channel == "" {
		cfg.Redis.Channel = DefaultRedisChannel
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.SessionTTL <= 0 || cfg.App.RateLimitAttempts <= 0 ||
		cfg.App.RateLimitWindow <= 0 || cfg.App.EngineMonthlyLimit < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.MaxResponseBytes < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RunConcurrency <= 0 || cfg.Workers.RunQueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
