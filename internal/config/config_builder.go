package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

// withDefaults appends the built-in fallback values: the auth server listens
// on :5000, the storage service is reachable at http://storage:5001, and the
// remember cookie lives for a year.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			SecretKey:        "secret",
			TokenIssuer:      "authentication",
			SessionDuration:  24 * time.Hour,
			RememberDuration: 365 * 24 * time.Hour,
		},
		Storage: Storage{
			URL:            "http://storage:5001",
			RequestTimeout: 5 * time.Second,
		},
		Server: Server{
			HTTPAddress: "0.0.0.0:5000",
		},
	})

	return b
}
