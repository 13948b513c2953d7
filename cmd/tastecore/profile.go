// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tastecore/internal/aggregate"
	"github.com/tomtom215/tastecore/internal/config"
	"github.com/tomtom215/tastecore/internal/fusion"
	"github.com/tomtom215/tastecore/internal/logging"
	"github.com/tomtom215/tastecore/internal/models"
	"github.com/tomtom215/tastecore/internal/normalize"
	"github.com/tomtom215/tastecore/internal/quiz"
	"github.com/tomtom215/tastecore/internal/store"
	"github.com/tomtom215/tastecore/internal/validation"
)

// profileInput is the on-disk user profile read by score and ring.
type profileInput struct {
	UserID          string                     `json:"user_id"`
	Declared        *models.DeclaredTaste      `json:"declared,omitempty"`
	Quiz            []quiz.Answer              `json:"quiz,omitempty"`
	Transactions    []models.Transaction       `json:"transactions,omitempty"`
	RawTransactions []normalize.RawTransaction `json:"raw_transactions,omitempty"`
}

// profile is a user's analysis, declared taste and matching input.
type profile struct {
	Analysis *models.UserAnalysis
	Declared *models.DeclaredTaste
	Fused    models.FusedTaste
	Taste    models.UserTaste
}

// readJSON decodes path into out. "-" reads stdin.
func readJSON(path string, stdin io.Reader, out interface{}) error {
	if path == "" {
		return errors.New("no input file given")
	}

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // path is operator input
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// declaredTaste returns the declared taste of a profile. Quiz answers take
// precedence over a declared block.
func declaredTaste(in *profileInput) (*models.DeclaredTaste, error) {
	if len(in.Quiz) == 0 {
		return in.Declared, nil
	}
	for i := range in.Quiz {
		if err := validation.Validate(&in.Quiz[i]); err != nil {
			return nil, fmt.Errorf("quiz answer %d: %w", i, err)
		}
	}
	return quiz.Process(in.Quiz), nil
}

// loadProfile reads a profile file and builds the fused matching input.
func loadProfile(path string, stdin io.Reader, cfg *config.Config) (*profile, error) {
	var in profileInput
	if err := readJSON(path, stdin, &in); err != nil {
		return nil, err
	}

	declared, err := declaredTaste(&in)
	if err != nil {
		return nil, err
	}

	txns := make([]models.Transaction, 0, len(in.Transactions)+len(in.RawTransactions))
	for i := range in.Transactions {
		if err := validation.Validate(&in.Transactions[i]); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txns = append(txns, in.Transactions[i])
	}

	normalized, errs := normalize.Batch(in.RawTransactions, true)
	for _, err := range errs {
		logging.Warn().Err(err).Msg("skipping raw transaction")
	}
	txns = append(txns, normalized...)

	agg := aggregate.NewAggregator(cfg.Aggregate, logging.WithComponent("aggregate"))
	return fuseProfile(cfg, agg.Resync(in.UserID, txns), declared)
}

// profileSource reads the snapshots written by serve.
type profileSource interface {
	GetAnalysis(ctx context.Context, userID string) (*models.UserAnalysis, error)
	GetDeclared(ctx context.Context, userID string) (*models.DeclaredTaste, error)
}

// storedProfile builds a profile from a user's stored analysis and declared
// taste. Either may be missing, but not both.
func storedProfile(ctx context.Context, src profileSource, userID string, cfg *config.Config) (*profile, error) {
	analysis, err := src.GetAnalysis(ctx, userID)
	missingAnalysis := errors.Is(err, store.ErrNotFound)
	switch {
	case missingAnalysis:
		analysis = models.NewUserAnalysis(userID)
	case err != nil:
		return nil, err
	default:
		aggregate.Rebuild(analysis)
	}

	declared, err := src.GetDeclared(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if missingAnalysis {
			return nil, fmt.Errorf("user %q: %w", userID, store.ErrNotFound)
		}
		declared = nil
	case err != nil:
		return nil, err
	}

	return fuseProfile(cfg, analysis, declared)
}

// loadUserProfile opens the configured store and loads userID from it.
func loadUserProfile(ctx context.Context, userID string, cfg *config.Config) (*profile, error) {
	snapshots, err := store.Open(cfg.Store, logging.Logger())
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := snapshots.Close(); err != nil {
			logging.Warn().Err(err).Msg("error closing snapshot store")
		}
	}()
	return storedProfile(ctx, snapshots, userID, cfg)
}

// selectProfile loads a profile from a file, or from the store when userID
// is set.
func selectProfile(ctx context.Context, path, userID string, stdin io.Reader, cfg *config.Config) (*profile, error) {
	switch {
	case userID != "" && path != "":
		return nil, errors.New("-profile and -user are mutually exclusive")
	case userID != "":
		return loadUserProfile(ctx, userID, cfg)
	default:
		return loadProfile(path, stdin, cfg)
	}
}

func fuseProfile(cfg *config.Config, analysis *models.UserAnalysis, declared *models.DeclaredTaste) (*profile, error) {
	engine, err := fusion.NewEngine(cfg.Fusion, logging.WithComponent("fusion"))
	if err != nil {
		return nil, err
	}
	fused := engine.Fuse(declared, analysis)

	taste := fusion.NewUserTaste(declared)
	if analysis.TotalTransactions > 0 {
		taste = fusion.UserTaste(declared, &fused)
	}

	return &profile{
		Analysis: analysis,
		Declared: declared,
		Fused:    fused,
		Taste:    taste,
	}, nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
