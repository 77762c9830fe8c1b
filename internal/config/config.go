/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the configuration of the httperr command from YAML
// or TOML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/httperr/httpx"
	"dirpx.dev/httperr/mapper"
	"dirpx.dev/httperr/status"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the complete command configuration.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http" toml:"http"`
	GRPC   GRPCConfig   `yaml:"grpc" toml:"grpc"`
	Log    LogConfig    `yaml:"log" toml:"log"`
	Mapper MapperConfig `yaml:"mapper" toml:"mapper"`
}

// HTTPConfig configures the demo HTTP server.
type HTTPConfig struct {
	Addr            string   `yaml:"addr" toml:"addr"`
	Variant         string   `yaml:"variant" toml:"variant"`
	ReadTimeout     Duration `yaml:"read_timeout" toml:"read_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// GRPCConfig configures the optional gRPC listener.
type GRPCConfig struct {
	Enabled   bool   `yaml:"enabled" toml:"enabled"`
	Addr      string `yaml:"addr" toml:"addr"`
	DebugInfo bool   `yaml:"debug_info" toml:"debug_info"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// MapperConfig holds per-status gRPC code overrides, keyed by HTTP status
// ("409") with gRPC code names as values ("ALREADY_EXISTS").
type MapperConfig struct {
	Overrides map[string]string `yaml:"overrides" toml:"overrides"`
}

// Duration wraps time.Duration for text-based parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string such as "5s".
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the file at path; the format follows the extension (.yaml,
// .yml or .toml). Defaults are applied and the result is validated.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".toml":
		format = "toml"
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
	}
	return Parse(data, format)
}

// Parse decodes data in the given format ("yaml" or "toml"), applies
// defaults and validates the result.
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("config: parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.Variant == "" {
		c.HTTP.Variant = httpx.JSON.String()
	}
	if c.HTTP.ReadTimeout.Duration == 0 {
		c.HTTP.ReadTimeout.Duration = 10 * time.Second
	}
	if c.HTTP.ShutdownTimeout.Duration == 0 {
		c.HTTP.ShutdownTimeout.Duration = 30 * time.Second
	}
	if c.GRPC.Addr == "" {
		c.GRPC.Addr = ":50051"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks every field that is interpreted later.
func (c *Config) Validate() error {
	if _, err := httpx.ParseVariant(c.HTTP.Variant); err != nil {
		return fmt.Errorf("%w: http.variant: %w", ErrInvalid, err)
	}
	if c.HTTP.ReadTimeout.Duration < 0 || c.HTTP.ShutdownTimeout.Duration < 0 {
		return fmt.Errorf("%w: http timeouts must not be negative", ErrInvalid)
	}
	if c.GRPC.Enabled && c.GRPC.Addr == c.HTTP.Addr {
		return fmt.Errorf("%w: grpc.addr and http.addr are both %q", ErrInvalid, c.HTTP.Addr)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}
	if _, err := c.Mapper.Options(); err != nil {
		return fmt.Errorf("%w: mapper: %w", ErrInvalid, err)
	}
	return nil
}

// ParsedVariant returns the parsed response variant, Plain if invalid.
func (c HTTPConfig) ParsedVariant() httpx.Variant {
	v, err := httpx.ParseVariant(c.Variant)
	if err != nil {
		return httpx.Plain
	}
	return v
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.Level))
	return l, err
}

// Options converts the overrides into mapper options.
func (c MapperConfig) Options() ([]mapper.Option, error) {
	opts := make([]mapper.Option, 0, len(c.Overrides))
	for tok, name := range c.Overrides {
		st, err := status.Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("status %q: %w", tok, err)
		}
		var code codes.Code
		if err := code.UnmarshalJSON([]byte(strconv.Quote(strings.ToUpper(name)))); err != nil {
			return nil, fmt.Errorf("status %s: %w", tok, err)
		}
		opts = append(opts, mapper.WithGRPCOverride(st, code))
	}
	return opts, nil
}
