// SPDX-License-Identifier: MIT

// Package config loads the deficit tool configuration: defaults, then a
// YAML file, then DEFICIT_* environment variables, then validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DEFICIT_"

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Report  ReportConfig  `yaml:"report"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig tunes the analysis.
type EngineConfig struct {
	RowCeiling  int  `yaml:"row_ceiling" validate:"min=1,max=30"`
	FixedInputs bool `yaml:"fixed_inputs"` // positive deficit reads as contradictory
	MixedStatus bool `yaml:"mixed_status"` // split calculation into mixed
	Profile     bool `yaml:"profile"`
}

// ReportConfig tunes rendering.
type ReportConfig struct {
	SubsetLimit int    `yaml:"subset_limit" validate:"min=1"`
	Format      string `yaml:"format" validate:"oneof=text markdown html json"`
}

// ServerConfig tunes the HTTP service.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	MaxConcurrent   int64         `yaml:"max_concurrent" validate:"min=1"`
	AnalysisTimeout time.Duration `yaml:"analysis_timeout" validate:"min=1ms"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" validate:"min=1024"`
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{RowCeiling: 15},
		Report: ReportConfig{SubsetLimit: 10, Format: "text"},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			MaxConcurrent:   4,
			AnalysisTimeout: 30 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load reads path over the defaults; a missing file yields the defaults.
// Environment overrides apply in both cases, then the result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c as YAML, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// applyEnvOverrides reads DEFICIT_<SECTION>_<KEY>.
func (c *Config) applyEnvOverrides() error {
	ints := map[string]*int{
		"ENGINE_ROW_CEILING":  &c.Engine.RowCeiling,
		"REPORT_SUBSET_LIMIT": &c.Report.SubsetLimit,
	}
	int64s := map[string]*int64{
		"SERVER_MAX_CONCURRENT": &c.Server.MaxConcurrent,
		"SERVER_MAX_BODY_BYTES": &c.Server.MaxBodyBytes,
	}
	bools := map[string]*bool{
		"ENGINE_FIXED_INPUTS": &c.Engine.FixedInputs,
		"ENGINE_MIXED_STATUS": &c.Engine.MixedStatus,
		"ENGINE_PROFILE":      &c.Engine.Profile,
	}
	strs := map[string]*string{
		"REPORT_FORMAT": &c.Report.Format,
		"SERVER_ADDR":   &c.Server.Addr,
		"LOG_LEVEL":     &c.Logging.Level,
		"LOG_FORMAT":    &c.Logging.Format,
	}

	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return envError(key, v, err)
			}
			*dst = n
		}
	}
	for key, dst := range int64s {
		if v, ok := lookup(key); ok {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return envError(key, v, err)
			}
			*dst = n
		}
	}
	for key, dst := range bools {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return envError(key, v, err)
			}
			*dst = b
		}
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	if v, ok := lookup("SERVER_ANALYSIS_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("SERVER_ANALYSIS_TIMEOUT", v, err)
		}
		c.Server.AnalysisTimeout = d
	}

	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}

	return v, true
}

func envError(key, value string, err error) error {
	return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, value, err)
}
