// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package models defines the records shared by the taste core and its wrappers.

# Record Groups

Behavior:
  - Transaction: one categorized spending event
  - UserAnalysis: per-user aggregate state with per-category stats, top
    merchants and cuisines, exploration and streak data, and a version used
    for optimistic snapshot writes

Taste:
  - DeclaredTaste: quiz-derived preferences
  - FusedTaste: declared and observed taste blended under a confidence law
  - UserTaste: the flattened profile consumed by the matching engine

Venues:
  - Venue: a candidate with cluster, cuisine, price, energy and tags
  - MatchResult and RankedVenue: scores, components and reasons

# JSON

All records carry snake_case JSON tags and are encoded with goccy/go-json by
the store, the pipeline and the CLI. Money uses shopspring/decimal so that
totals never drift.

# Thread Safety

Records are plain values with no internal locking. UserAnalysis has a single
writer per user; Clone before sharing it across goroutines.
*/
package models
