// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Snapshot write outcomes.
const (
	SnapshotOK       = "ok"
	SnapshotConflict = "conflict"
	SnapshotError    = "error"
)

var (
	// Ingest Pipeline Metrics
	TransactionsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastecore_transactions_ingested_total",
			Help: "Total number of transactions folded into a user analysis",
		},
		[]string{"category"},
	)

	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tastecore_ingest_duration_seconds",
			Help:    "Duration of a single transaction ingest including load and save",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	DuplicatesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastecore_duplicate_transactions_total",
			Help: "Total number of redelivered transactions skipped by deduplication",
		},
	)

	PoisonMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastecore_poison_messages_total",
			Help: "Total number of malformed messages routed to the poison topic",
		},
	)

	// Snapshot Store Metrics
	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastecore_snapshot_writes_total",
			Help: "Total number of analysis snapshot writes by outcome",
		},
		[]string{"result"}, // "ok", "conflict", "error"
	)

	// Matching Metrics
	MatchScores = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tastecore_match_score",
			Help:    "Distribution of venue match scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10), // 10, 20, ... 100
		},
		[]string{"mode"}, // "dining", "non_dining", "new_user"
	)

	MoodFilterRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastecore_mood_filter_runs_total",
			Help: "Total number of mood-filtered rankings",
		},
		[]string{"mood"},
	)

	MoodFilterVenues = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tastecore_mood_filter_venues",
			Help:    "Number of venues ranked per mood filter run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7), // 1 .. 4096
		},
	)

	ScoreCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastecore_score_cache_hits_total",
			Help: "Total number of memoized match score hits",
		},
	)

	ScoreCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tastecore_score_cache_misses_total",
			Help: "Total number of memoized match score misses",
		},
	)
)

// RecordTransactionIngested records a successful ingest for a category.
func RecordTransactionIngested(category string, duration time.Duration) {
	if category == "" {
		category = "unknown"
	}
	TransactionsIngested.WithLabelValues(category).Inc()
	IngestDuration.Observe(duration.Seconds())
}

// RecordDuplicateSkipped records a transaction skipped as already seen.
func RecordDuplicateSkipped() {
	DuplicatesSkipped.Inc()
}

// RecordPoisonMessage records a message that can never be processed.
func RecordPoisonMessage() {
	PoisonMessages.Inc()
}

// RecordSnapshotWrite records a snapshot write outcome.
func RecordSnapshotWrite(result string) {
	SnapshotWrites.WithLabelValues(result).Inc()
}

// RecordMatchScore records a computed match score for a scoring mode.
func RecordMatchScore(mode string, score int) {
	MatchScores.WithLabelValues(mode).Observe(float64(score))
}

// RecordMoodFilter records a mood filter run over n venues.
func RecordMoodFilter(mood string, n int) {
	if mood == "" {
		mood = "none"
	}
	MoodFilterRuns.WithLabelValues(mood).Inc()
	MoodFilterVenues.Observe(float64(n))
}

// RecordScoreCache records a score memo lookup.
func RecordScoreCache(hit bool) {
	if hit {
		ScoreCacheHits.Inc()
	} else {
		ScoreCacheMisses.Inc()
	}
}
