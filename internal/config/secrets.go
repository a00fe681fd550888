package config

import "os"

// Environment variables consulted by [EnvSecrets] on every call.
const (
	EnvEngineAnalyseURL      = "ENGINE_ANALYSE_URL"
	EnvEngineAnalysePassword = "ENGINE_ANALYSE_PASSWORD"
	EnvGoogleClientID        = "GOOGLE_CLIENT_ID"
)

// Secrets exposes deployment secrets that are resolved at call time rather
// than captured once at startup.
type Secrets interface {
	EngineURL() string
	EnginePassword() string
	GoogleClientID() string
}

// EnvSecrets reads secrets from the process environment and falls back to
// the loaded adapter configuration when a variable is unset or empty.
type EnvSecrets struct {
	fallback Adapter
}

func NewEnvSecrets(fallback Adapter) *EnvSecrets {
	return &EnvSecrets{fallback: fallback}
}

func (s *EnvSecrets) EngineURL() string {
	return lookup(EnvEngineAnalyseURL, s.fallback.EngineURL)
}

func (s *EnvSecrets) EnginePassword() string {
	return lookup(EnvEngineAnalysePassword, s.fallback.EnginePassword)
}

func (s *EnvSecrets) GoogleClientID() string {
	return lookup(EnvGoogleClientID, s.fallback.GoogleClientID)
}

func lookup(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
