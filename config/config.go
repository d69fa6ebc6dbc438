// Package config loads the YAML configuration of the vecstore command.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/vecstore/internal/logging"
	"github.com/viant/vecstore/vector"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the database file used when none is configured.
const DefaultPath = "vector_store.db"

// EnvDB overrides Store.Path when set.
const EnvDB = "VECSTORE_DB"

// Config is the root configuration.
type Config struct {
	Store StoreConfig    `yaml:"store"`
	Log   logging.Config `yaml:"log"`
}

// StoreConfig defines the document store settings.
type StoreConfig struct {
	Path          string `yaml:"path"`
	Mode          string `yaml:"mode"`  // reset or keep
	Codec         string `yaml:"codec"` // json or binary
	WAL           bool   `yaml:"wal"`
	BusyTimeoutMS int    `yaml:"busyTimeoutMs"` // 0 selects the default
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path:          DefaultPath,
			Mode:          vector.ResetOnOpen.String(),
			Codec:         vector.CodecJSON,
			BusyTimeoutMS: 5000,
		},
		Log: logging.DefaultConfig(),
	}
}

// Load reads a config from path. If the file does not exist, defaults are
// returned. Missing fields are filled with defaults and the result is
// validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config file %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, "validate config")
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvDB)); v != "" {
		c.Store.Path = v
	}
}

func (c *Config) applyDefaults() {
	def := Default()
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = def.Store.Path
	}
	if c.Store.Mode == "" {
		c.Store.Mode = def.Store.Mode
	}
	if c.Store.Codec == "" {
		c.Store.Codec = def.Store.Codec
	}
	if c.Store.BusyTimeoutMS == 0 {
		c.Store.BusyTimeoutMS = def.Store.BusyTimeoutMS
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// Validate checks the store and log sections.
func (c *Config) Validate() error {
	if err := c.Store.Validate(); err != nil {
		return errors.WithMessage(err, "store")
	}
	if err := c.Log.Validate(); err != nil {
		return errors.WithMessage(err, "log")
	}
	return nil
}

// Validate checks the store settings.
func (s *StoreConfig) Validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return errors.New("path is required")
	}
	if _, err := vector.ParseOpenMode(s.Mode); err != nil {
		return err
	}
	if _, err := vector.CodecByName(s.Codec); err != nil {
		return err
	}
	if s.BusyTimeoutMS < 0 {
		return errors.Errorf("busyTimeoutMs must not be negative: %d", s.BusyTimeoutMS)
	}
	return nil
}
