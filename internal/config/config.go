// Package config loads the parser configuration from a TOML file with
// sane defaults. A missing file is not an error; everything has a default
// and the remote token can come from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/cashflow-ng/cashflow-parser/constants"
)

// EnvToken is the environment fallback for the remote credential.
const EnvToken = "HUGGING_FACE_TOKEN"

// Router policy names.
const (
	RouterOrchestrator = "orchestrator"
	RouterProvider     = "provider"
)

type Config struct {
	// Router selects the routing policy behind the service facade:
	// "orchestrator" (confidence-gated two-tier, the default) or
	// "provider" (single configured strategy with fallback).
	Router string `toml:"router"`

	// Provider selects the provider-client strategy: "regex" or
	// "huggingface". The orchestrator ignores this and always runs its
	// two-tier policy.
	Provider string `toml:"provider"`

	Remote       Remote       `toml:"remote"`
	Parser       Parser       `toml:"parser"`
	Orchestrator Orchestrator `toml:"orchestrator"`
}

type Remote struct {
	Model          string `toml:"model"`
	BaseURL        string `toml:"base_url"`
	Token          string `toml:"token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxNewTokens   int    `toml:"max_new_tokens"`
}

type Parser struct {
	// ExtraItems extends the closed item vocabulary without a code change.
	// Entries are appended after the defaults, preserving precedence.
	ExtraItems []string `toml:"extra_items"`
}

type Orchestrator struct {
	UseAIForComplexCases bool `toml:"use_ai_for_complex_cases"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Router:   RouterOrchestrator,
		Provider: constants.StrategyRegex,
		Remote: Remote{
			Model:          "microsoft/DialoGPT-medium",
			TimeoutSeconds: 30,
			MaxNewTokens:   200,
		},
		Orchestrator: Orchestrator{
			UseAIForComplexCases: true,
		},
	}
}

// Load reads path over the defaults. An empty path or absent file yields
// the defaults. The remote token falls back to the environment when the
// file does not set one.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if cfg.Remote.Token == "" {
		cfg.Remote.Token = os.Getenv(EnvToken)
	}
	if cfg.Router == "" {
		cfg.Router = RouterOrchestrator
	}
	if cfg.Provider == "" {
		cfg.Provider = constants.StrategyRegex
	}
	if cfg.Remote.TimeoutSeconds <= 0 {
		cfg.Remote.TimeoutSeconds = 30
	}
	if cfg.Remote.MaxNewTokens <= 0 {
		cfg.Remote.MaxNewTokens = 200
	}
	return cfg, nil
}

// RemoteTimeout converts the configured timeout to a duration.
func (c Config) RemoteTimeout() time.Duration {
	return time.Duration(c.Remote.TimeoutSeconds) * time.Second
}

// RemoteReady reports whether the remote strategy has a credential.
func (c Config) RemoteReady() bool {
	return c.Remote.Token != ""
}
