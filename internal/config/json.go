package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
// Durations are written as strings ("30s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version            string   `json:"version"`
		LogLevel           string   `json:"log_level"`
		SessionTTL         Duration `json:"session_ttl"`
		RateLimitAttempts  int      `json:"rate_limit_attempts"`
		RateLimitWindow    Duration `json:"rate_limit_window"`
		EngineMonthlyLimit int      `json:"engine_monthly_limit"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		GRPCAddress        string   `json:"grpc_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		BotTimeout       Duration `json:"bot_timeout"`
		EngineTimeout    Duration `json:"engine_timeout"`
		MaxResponseBytes int      `json:"max_response_bytes"`
		EngineURL        string   `json:"engine_url"`
		EnginePassword   string   `json:"engine_password"`
		GoogleClientID   string   `json:"google_client_id"`
		GoogleJWKSURL    string   `json:"google_jwks_url"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RunConcurrency int `json:"run_concurrency"`
		RunQueueSize   int `json:"run_queue_size"`
	} `json:"workers,omitempty"`

	Redis struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
		Channel  string `json:"channel"`
	} `json:"redis,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:            jsonCfg.App.Version,
			LogLevel:           jsonCfg.App.LogLevel,
			SessionTTL:         time.Duration(jsonCfg.App.SessionTTL),
			RateLimitAttempts:  jsonCfg.App.RateLimitAttempts,
			RateLimitWindow:    time.Duration(jsonCfg.App.RateLimitWindow),
			EngineMonthlyLimit: jsonCfg.App.EngineMonthlyLimit,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			GRPCAddress:        jsonCfg.Server.GRPCAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
		},
		Adapter: Adapter{
			BotTimeout:       time.Duration(jsonCfg.Adapter.BotTimeout),
			EngineTimeout:    time.Duration(jsonCfg.Adapter.EngineTimeout),
			MaxResponseBytes: jsonCfg.Adapter.MaxResponseBytes,
			EngineURL:        jsonCfg.Adapter.EngineURL,
			EnginePassword:   jsonCfg.Adapter.EnginePassword,
			GoogleClientID:   jsonCfg.Adapter.GoogleClientID,
			GoogleJWKSURL:    jsonCfg.Adapter.GoogleJWKSURL,
		},
		Workers: Workers{
			RunConcurrency: jsonCfg.Workers.RunConcurrency,
			RunQueueSize:   jsonCfg.Workers.RunQueueSize,
		},
		Redis: Redis{
			Addr:     jsonCfg.Redis.Addr,
			Password: jsonCfg.Redis.Password,
			DB:       jsonCfg.Redis.DB,
			Channel:  jsonCfg.Redis.Channel,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
