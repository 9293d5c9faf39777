// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "OKLchA", cfg.Space)
	assert.Equal(t, 8, cfg.Steps)
	assert.Equal(t, 3, cfg.Similar)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorpro.toml")
	err := os.WriteFile(path, []byte(`
space = "HSLA"
steps = 16

[logging]
level = "debug"
`), 0o644)
	assert.NoError(t, err)

	cfg, err := loadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "HSLA", cfg.Space)
	assert.Equal(t, 16, cfg.Steps)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// unset keys keep their defaults
	assert.Equal(t, 3, cfg.Similar)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	assert.NoError(t, os.WriteFile(path, []byte("steps = \"many\""), 0o644))
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(""))
}
