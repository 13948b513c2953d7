// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package metrics provides Prometheus instrumentation for the ingest pipeline,
the snapshot store and the matching engine.

Collectors are registered on the default registry with promauto and exposed
by the metrics service at /metrics:

	curl http://localhost:9464/metrics

# Available Metrics

Ingest Metrics:
  - tastecore_transactions_ingested_total: Transactions folded into an analysis (counter)
    Labels: category
  - tastecore_ingest_duration_seconds: Load, ingest and save latency (histogram)
  - tastecore_duplicate_transactions_total: Redelivered transactions skipped (counter)
  - tastecore_poison_messages_total: Malformed messages sent to the poison topic (counter)

Store Metrics:
  - tastecore_snapshot_writes_total: Snapshot writes (counter)
    Labels: result (ok, conflict, error)

Matching Metrics:
  - tastecore_match_score: Match score distribution (histogram)
    Labels: mode (dining, non_dining, new_user)
  - tastecore_mood_filter_runs_total: Mood-filtered rankings (counter)
    Labels: mood
  - tastecore_mood_filter_venues: Venues per mood ranking (histogram)
  - tastecore_score_cache_hits_total / tastecore_score_cache_misses_total: Score memo efficiency (counters)

# Usage

Callers use the Record* helpers rather than touching collectors directly:

	metrics.RecordTransactionIngested(txn.TasteCategory, time.Since(start))
	metrics.RecordSnapshotWrite(metrics.SnapshotConflict)
*/
package metrics
