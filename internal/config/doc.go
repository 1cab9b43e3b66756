// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides render configuration loading and management for
// termraster.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, validation with clamping, atomic save, and hot-reload via a
// filesystem watcher.
//
// Configuration precedence (highest first):
//   - Environment variables (TERMRASTER_*)
//   - ~/.termraster/config.toml
//   - Built-in defaults
//
// Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // fall back to config.Default()
//	}
package config
