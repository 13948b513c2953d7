// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level and encoding of the process logger.
type Config struct {
	// Level is a zerolog level name; "warning" is accepted for warn.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	Caller    bool `koanf:"caller"`
	Timestamp bool `koanf:"timestamp"`

	// Output defaults to stderr. The CLI keeps stdout for command output.
	Output io.Writer `koanf:"-"`
}

// DefaultConfig returns JSON logs at info with timestamps.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Timestamp: true, Output: os.Stderr}
}

// Validate rejects unknown levels and formats.
func (c Config) Validate() error {
	if _, err := level(c.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Format != "" && c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("logging.format must be json or console, got %q", c.Format)
	}
	return nil
}

// level parses a level name. Empty means info.
func level(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(name)
}

var (
	mu     sync.RWMutex
	global = build(DefaultConfig())
)

// Init replaces the process logger and the zerolog global level. An invalid
// level falls back to info.
func Init(cfg Config) {
	l := build(cfg)
	mu.Lock()
	global = l
	mu.Unlock()
}

func build(cfg Config) zerolog.Logger {
	lvl, err := level(cfg.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).With().Str("service", "tastecore")
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// With starts a child of the process logger.
func With() zerolog.Context {
	l := Logger()
	return l.With()
}

// Info logs at info level on the process logger.
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn logs at warn level on the process logger.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}
