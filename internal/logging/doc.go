// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

// Package logging provides centralized zerolog-based structured logging for Tastecore.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once at startup
//   - JSON output for production, console output for development
//   - Context-aware logging with correlation and user ID propagation
//   - An slog adapter for the Suture v4 supervisor (via sutureslog)
//   - A watermill.LoggerAdapter for the ingest pipeline
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("path", cfg.Store.Path).Msg("snapshot store opened")
//	logging.Warn().Err(err).Msg("skipping raw transaction")
//
//	ctx = logging.ContextWithUserID(logging.ContextWithNewCorrelationID(ctx), userID)
//	logging.Ctx(ctx).Debug().Msg("transaction ingested")
//
// # Component Loggers
//
// Engines receive a zerolog.Logger at construction and tag it with a
// component field:
//
//	logger.With().Str("component", "matching").Logger()
//
// Tests pass zerolog.Nop().
//
// # Adapters
//
//	slogger := logging.NewSlogLogger(logging.WithComponent("supervisor"))
//	wmLogger := logging.NewWatermillAdapter(logging.WithComponent("pipeline"))
package logging
