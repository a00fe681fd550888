package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// defaultDotEnvPath is loaded when present; a missing file is not an error.
const defaultDotEnvPath = ".env"

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	dotEnvPath string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:    make([]*StructuredConfig, 0, 4),
		dotEnvPath: defaultDotEnvPath,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}

// withDotEnv loads variables from a .env file into the process environment.
// Variables that are already set are never overwritten.
func (b *configBuilder) withDotEnv() *configBuilder {
	if b.dotEnvPath == "" {
		return b
	}

	if _, err := os.Stat(b.dotEnvPath); errors.Is(err, os.ErrNotExist) {
		return b
	}

	if err := godotenv.Load(b.dotEnvPath); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", b.dotEnvPath, err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args ...string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
