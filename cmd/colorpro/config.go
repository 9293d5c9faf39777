// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tool settings, loadable from a TOML file and
// overridable by flags.
type Config struct {
	// Space is the color space ramps are blended in.
	Space string `toml:"space"`
	// Steps is the number of colors in a printed ramp.
	Steps int `toml:"steps"`
	// Similar is the number of named neighbors to list.
	Similar int `toml:"similar"`

	Logging LoggingConfig `toml:"logging"`
}

// LoggingConfig holds the diagnostic logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// defaultConfig returns the settings used when no file or flag says
// otherwise.
func defaultConfig() *Config {
	return &Config{
		Space:   "OKLchA",
		Steps:   8,
		Similar: 3,
		Logging: LoggingConfig{Level: "warn"},
	}
}

// loadConfig reads settings from the given TOML file on top of the
// defaults. An empty path falls back to the standard locations, and
// no file at all is fine.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// findConfigFile looks for a config in the working directory and then
// in the user config directory.
func findConfigFile() string {
	candidates := []string{"colorpro.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "colorpro", "colorpro.toml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
