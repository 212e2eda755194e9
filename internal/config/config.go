// seehuhn.de/go/lagoon - exact cell counts for rectilinear paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the YAML configuration of the lagoon command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/lagoon/digplan"
)

// Config is the top-level configuration, usually read from lagoon.yaml.
type Config struct {
	// Decode selects how dig plans are read ("plain" or "hex").
	Decode string `yaml:"decode"`

	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Render  RenderConfig  `yaml:"render"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path.  If empty, logs go to stderr.
	Path string `yaml:"path"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  string `yaml:"read_timeout"`  // e.g. "5s"
	WriteTimeout string `yaml:"write_timeout"` // e.g. "30s"

	// MaxBody limits the size of request bodies, in bytes.
	MaxBody int64 `yaml:"max_body"`
	// MaxBatch limits the number of paths in one batch request.
	MaxBatch int `yaml:"max_batch"`
}

// RenderConfig configures PNG previews.
type RenderConfig struct {
	// Scale is the number of pixels per cell.
	Scale int `yaml:"scale"`
	// MaxCells limits the bounding box of a preview, in cells.
	MaxCells int64 `yaml:"max_cells"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads, completes and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a configuration from r.  Unknown keys are an error.
// An empty document gives the default configuration.
func Decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	ApplyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are
// missing.
func ApplyDefaults(cfg *Config) {
	if cfg.Decode == "" {
		cfg.Decode = "plain"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = "localhost:8080"
	}
	if cfg.Server.ReadTimeout == "" {
		cfg.Server.ReadTimeout = "5s"
	}
	if cfg.Server.WriteTimeout == "" {
		cfg.Server.WriteTimeout = "30s"
	}
	if cfg.Server.MaxBody == 0 {
		cfg.Server.MaxBody = 1 << 20
	}
	if cfg.Server.MaxBatch == 0 {
		cfg.Server.MaxBatch = 64
	}
	if cfg.Render.Scale == 0 {
		cfg.Render.Scale = 4
	}
	if cfg.Render.MaxCells == 0 {
		cfg.Render.MaxCells = 4_000_000
	}
}

// Validate checks the configuration for errors.
func Validate(cfg *Config) error {
	if _, err := digplan.ParseMode(cfg.Decode); err != nil {
		return err
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", cfg.Logging.Level)
	}

	if _, _, err := cfg.Server.Timeouts(); err != nil {
		return err
	}
	if cfg.Server.MaxBody < 0 {
		return fmt.Errorf("server.max_body must be positive, got %d", cfg.Server.MaxBody)
	}
	if cfg.Server.MaxBatch < 0 {
		return fmt.Errorf("server.max_batch must be positive, got %d", cfg.Server.MaxBatch)
	}

	if cfg.Render.Scale < 1 || cfg.Render.Scale > 64 {
		return fmt.Errorf("render.scale must be between 1 and 64, got %d", cfg.Render.Scale)
	}
	if cfg.Render.MaxCells < 0 {
		return fmt.Errorf("render.max_cells must be positive, got %d", cfg.Render.MaxCells)
	}
	return nil
}

// Timeouts returns the parsed read and write timeouts.
func (s ServerConfig) Timeouts() (read, write time.Duration, err error) {
	read, err = time.ParseDuration(s.ReadTimeout)
	if err != nil {
		return 0, 0, fmt.Errorf("server.read_timeout: %w", err)
	}
	write, err = time.ParseDuration(s.WriteTimeout)
	if err != nil {
		return 0, 0, fmt.Errorf("server.write_timeout: %w", err)
	}
	return read, write, nil
}
