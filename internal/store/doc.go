// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package store persists per-user snapshots in BadgerDB.

Two record types are stored, each under its own key prefix:

  - analysis:<user_id>  UserAnalysis, JSON encoded with goccy/go-json
  - declared:<user_id>  DeclaredTaste from the quiz

Analysis writes use optimistic concurrency. The caller passes the version it
loaded (0 for a new user) and SaveAnalysis fails with ErrVersionConflict if
the stored snapshot has moved on. Exploration seen-sets are not persisted;
GetAnalysis rebuilds them from the per-category merchant sets.

Usage:

	s, err := store.Open(store.Config{InMemory: true}, logger)
	if err != nil {
	    return err
	}
	defer s.Close()

	analysis, err := s.GetAnalysis(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
	    analysis = models.NewUserAnalysis(userID)
	}
	agg.Ingest(&txn, analysis)
	err = s.SaveAnalysis(ctx, analysis, analysis.Version)
*/
package store
