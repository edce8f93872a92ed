package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/numsafe/internal/core/observability/log"
	"github.com/zeusync/numsafe/pkg/validation"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the sync server configuration. YAML is loaded first and
// NUMSAFE_* environment variables override it.
type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Policy PolicyConfig `json:"policy" yaml:"policy"`
	Server ServerConfig `json:"server" yaml:"server"`
}

type LogConfig struct {
	Level log.Level `json:"level" yaml:"level" env:"NUMSAFE_LOG_LEVEL"`
}

// PolicyConfig selects a preset and optionally overrides one axis of it.
type PolicyConfig struct {
	Preset        string `json:"preset" yaml:"preset" env:"NUMSAFE_POLICY"`
	InvalidNumber string `json:"invalid_number,omitempty" yaml:"invalid_number,omitempty" env:"NUMSAFE_POLICY_INVALID_NUMBER"`
	Range         string `json:"range,omitempty" yaml:"range,omitempty" env:"NUMSAFE_POLICY_RANGE"`
}

type ServerConfig struct {
	Addr         string        `json:"addr" yaml:"addr" env:"NUMSAFE_ADDR"`
	Path         string        `json:"path" yaml:"path" env:"NUMSAFE_PATH"`
	ReadLimit    int64         `json:"read_limit" yaml:"read_limit" env:"NUMSAFE_READ_LIMIT"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" env:"NUMSAFE_WRITE_TIMEOUT"`
	Workers      int           `json:"workers" yaml:"workers" env:"NUMSAFE_WORKERS"`
	Shards       int           `json:"shards" yaml:"shards" env:"NUMSAFE_SHARDS"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: log.LevelInfo},
		Policy: PolicyConfig{Preset: "safe"},
		Server: ServerConfig{
			Addr:         ":8080",
			Path:         "/sync",
			ReadLimit:    4096,
			WriteTimeout: 5 * time.Second,
			Workers:      4,
			Shards:       16,
		},
	}
}

// LoadYAML decodes r on top of Default. An empty reader yields Default.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &c, nil
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	c := Default()
	cfg := &c

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		if cfg, err = LoadYAML(f); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and that the policy resolves.
func (c *Config) Validate() error {
	if _, err := c.ResolvePolicy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is required", ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.Server.Path, "/") {
		return fmt.Errorf("%w: server.path must start with '/'", ErrInvalidConfig)
	}
	if c.Server.ReadLimit <= 0 {
		return fmt.Errorf("%w: server.read_limit must be positive", ErrInvalidConfig)
	}
	if c.Server.Workers < 0 || c.Server.Shards < 0 {
		return fmt.Errorf("%w: server.workers and server.shards must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Resolve turns the preset and axis overrides into a validation.Policy.
// An empty preset means "safe".
func (p PolicyConfig) Resolve() (validation.Policy, error) {
	preset := p.Preset
	if preset == "" {
		preset = "safe"
	}

	policy, err := validation.ParsePolicy(preset)
	if err != nil {
		return validation.Policy{}, err
	}

	if p.InvalidNumber != "" {
		if policy.InvalidNumber, err = validation.ParseInvalidNumberPolicy(p.InvalidNumber); err != nil {
			return validation.Policy{}, err
		}
	}
	if p.Range != "" {
		if policy.Range, err = validation.ParseRangePolicy(p.Range); err != nil {
			return validation.Policy{}, err
		}
	}
	return policy, nil
}

// ResolvePolicy resolves the configured preset and axis overrides.
func (c *Config) ResolvePolicy() (validation.Policy, error) {
	return c.Policy.Resolve()
}
