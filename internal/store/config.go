// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package store

import "errors"

// Config holds snapshot store settings.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	// Default: ./data/snapshots
	Path string `koanf:"path"`

	// InMemory keeps all snapshots in memory; nothing survives a restart.
	InMemory bool `koanf:"in_memory"`

	// SyncWrites fsyncs every commit.
	// Default: true
	SyncWrites bool `koanf:"sync_writes"`

	// Compression enables Snappy block compression.
	Compression bool `koanf:"compression"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Path:       "./data/snapshots",
		SyncWrites: true,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if !c.InMemory && c.Path == "" {
		return errors.New("store.path is required unless store.in_memory is set")
	}
	return nil
}
