// SPDX-License-Identifier: MIT

// Package config holds the runtime settings of the splinegen binaries.
// Values come from SPLINEGEN_* environment variables (optionally seeded
// from a .env file) and are validated once at startup.
package config

import (
	"fmt"
	"strings"
	"time"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "SPLINEGEN_"

// Config holds all settings shared by the CLI and the HTTP service.
type Config struct {
	HTTP     HTTPConfig
	Logging  LoggingConfig
	Sampling SamplingConfig
}

// HTTPConfig holds HTTP service settings.
type HTTPConfig struct {
	// Addr is the listen address (default: :8080)
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// MaxBodyBytes caps request bodies (default: 1 MiB)
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// RequestTimeout is the middleware timeout per request (default: 15s)
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// ShutdownTimeout bounds graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is text or json (default: text)
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// SamplingConfig holds the defaults used when a request leaves a field unset.
type SamplingConfig struct {
	// Precision is the number of decimals in rendered equations (default: 5)
	Precision int `env:"DEFAULT_PRECISION" envDefault:"5"`

	// Samples is the number of points generated per axis (default: 100)
	Samples int `env:"DEFAULT_SAMPLES" envDefault:"100"`

	// Step is the parameter increment between samples (default: 0.1)
	Step float64 `env:"DEFAULT_STEP" envDefault:"0.1"`

	// MaxSamples caps the sample count a request may ask for (default: 100000)
	MaxSamples int `env:"MAX_SAMPLES" envDefault:"100000"`
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks that the configuration is usable and reports every
// failure at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, EnvPrefix+"HTTP_ADDR is required")
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, EnvPrefix+"MAX_BODY_BYTES must be positive")
	}
	if c.HTTP.RequestTimeout <= 0 {
		errs = append(errs, EnvPrefix+"REQUEST_TIMEOUT must be positive")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, EnvPrefix+"SHUTDOWN_TIMEOUT must be positive")
	}

	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("%sLOG_LEVEL (%q) must be one of: debug, info, warn, error", EnvPrefix, c.Logging.Level))
	}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("%sLOG_FORMAT (%q) must be one of: text, json", EnvPrefix, c.Logging.Format))
	}

	if c.Sampling.Precision < 0 {
		errs = append(errs, EnvPrefix+"DEFAULT_PRECISION must be non-negative")
	}
	if c.Sampling.Samples <= 0 {
		errs = append(errs, EnvPrefix+"DEFAULT_SAMPLES must be positive")
	}
	if c.Sampling.MaxSamples <= 0 {
		errs = append(errs, EnvPrefix+"MAX_SAMPLES must be positive")
	} else if c.Sampling.Samples > c.Sampling.MaxSamples {
		errs = append(errs, fmt.Sprintf("%sDEFAULT_SAMPLES (%d) exceeds %sMAX_SAMPLES (%d)",
			EnvPrefix, c.Sampling.Samples, EnvPrefix, c.Sampling.MaxSamples))
	}
	if !(c.Sampling.Step > 0) {
		errs = append(errs, EnvPrefix+"DEFAULT_STEP must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
