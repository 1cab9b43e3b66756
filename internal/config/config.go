// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/termraster/internal/gfx"
	"github.com/jeranaias/termraster/internal/util"
)

// ErrInvalidConfig is returned when a configuration value cannot be used
// even after clamping.
var ErrInvalidConfig = errors.New("invalid configuration")

// Backend selection values for Config.Backend.
const (
	BackendAuto      = "auto"
	BackendKitty     = "kitty"
	BackendHalfBlock = "halfblock"
)

// FPS bounds for the animation loop.
const (
	MinFPS     = 1
	MaxFPS     = 120
	DefaultFPS = 30
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config holds the render configuration for the termraster engine and demo.
type Config struct {
	// Backend forces a rasterizer backend: "auto", "kitty", or "halfblock".
	Backend string `toml:"backend"`
	// Background is the canvas background color as a hex string.
	Background string `toml:"background"`
	// FPS is the demo animation rate, clamped to [1,120].
	FPS int `toml:"fps"`
	// AsciiOnly forces the ASCII Unicode tier regardless of locale.
	AsciiOnly bool `toml:"ascii_only"`
	// CellWidth/CellHeight override the detected per-cell pixel geometry
	// when positive.
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend:    BackendAuto,
		Background: "#000000",
		FPS:        DefaultFPS,
	}
}

// BackgroundColor parses the configured background into a gfx.Color,
// falling back to black for malformed values.
func (c Config) BackgroundColor() gfx.Color {
	col, err := gfx.FromHex(c.Background)
	if err != nil {
		return gfx.Black
	}
	return col
}

// Validate normalizes the configuration in place, clamping numeric fields
// and rejecting unknown backend names.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendKitty, BackendHalfBlock:
	case "":
		c.Backend = BackendAuto
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if _, err := gfx.FromHex(c.Background); err != nil {
		return fmt.Errorf("%w: background %q is not a hex color", ErrInvalidConfig, c.Background)
	}
	c.FPS = util.Clamp(c.FPS, MinFPS, MaxFPS)
	if c.CellWidth < 0 {
		c.CellWidth = 0
	}
	if c.CellHeight < 0 {
		c.CellHeight = 0
	}
	return nil
}

// =============================================================================
// LOADING AND SAVING
// =============================================================================

// Path returns the default configuration file location,
// ~/.termraster/config.toml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".termraster", "config.toml"), nil
}

// Load reads the configuration from the default path, applies environment
// overrides, and validates. A missing file is not an error: defaults are
// used.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg, os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the configuration atomically to the default path.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration atomically to an explicit path.
func (c Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// applyEnvOverrides layers TERMRASTER_* variables over the file values.
func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if v := getenv("TERMRASTER_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := getenv("TERMRASTER_BACKGROUND"); v != "" {
		cfg.Background = v
	}
	if v := getenv("TERMRASTER_FPS"); v != "" {
		if fps, err := strconv.Atoi(v); err == nil {
			cfg.FPS = fps
		}
	}
	if v := getenv("TERMRASTER_ASCII_ONLY"); v != "" {
		cfg.AsciiOnly = v == "1" || v == "true"
	}
}
