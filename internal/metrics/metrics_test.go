// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Metrics are process-global, so tests compare deltas and do not run in parallel.

func TestRecordTransactionIngested(t *testing.T) {
	before := testutil.ToFloat64(TransactionsIngested.WithLabelValues("coffee"))
	RecordTransactionIngested("coffee", 2*time.Millisecond)
	RecordTransactionIngested("coffee", time.Millisecond)

	if got := testutil.ToFloat64(TransactionsIngested.WithLabelValues("coffee")) - before; got != 2 {
		t.Errorf("coffee ingested delta = %v, want 2", got)
	}

	beforeUnknown := testutil.ToFloat64(TransactionsIngested.WithLabelValues("unknown"))
	RecordTransactionIngested("", time.Millisecond)
	if got := testutil.ToFloat64(TransactionsIngested.WithLabelValues("unknown")) - beforeUnknown; got != 1 {
		t.Errorf("unknown ingested delta = %v, want 1", got)
	}
}

func TestRecordDuplicateAndPoison(t *testing.T) {
	dup := testutil.ToFloat64(DuplicatesSkipped)
	poison := testutil.ToFloat64(PoisonMessages)

	RecordDuplicateSkipped()
	RecordPoisonMessage()
	RecordPoisonMessage()

	if got := testutil.ToFloat64(DuplicatesSkipped) - dup; got != 1 {
		t.Errorf("duplicates delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(PoisonMessages) - poison; got != 2 {
		t.Errorf("poison delta = %v, want 2", got)
	}
}

func TestRecordSnapshotWrite(t *testing.T) {
	tests := []string{SnapshotOK, SnapshotConflict, SnapshotError}
	for _, result := range tests {
		t.Run(result, func(t *testing.T) {
			before := testutil.ToFloat64(SnapshotWrites.WithLabelValues(result))
			RecordSnapshotWrite(result)
			if got := testutil.ToFloat64(SnapshotWrites.WithLabelValues(result)) - before; got != 1 {
				t.Errorf("%s delta = %v, want 1", result, got)
			}
		})
	}
}

func TestRecordMatchScore(t *testing.T) {
	RecordMatchScore("dining", 87)
	RecordMatchScore("new_user", 0)

	if n := testutil.CollectAndCount(MatchScores); n < 2 {
		t.Errorf("MatchScores series = %d, want at least 2", n)
	}
}

func TestRecordMoodFilter(t *testing.T) {
	before := testutil.ToFloat64(MoodFilterRuns.WithLabelValues("none"))
	RecordMoodFilter("", 3)
	if got := testutil.ToFloat64(MoodFilterRuns.WithLabelValues("none")) - before; got != 1 {
		t.Errorf("none mood delta = %v, want 1", got)
	}
}

func TestRecordScoreCache(t *testing.T) {
	hits := testutil.ToFloat64(ScoreCacheHits)
	misses := testutil.ToFloat64(ScoreCacheMisses)

	RecordScoreCache(true)
	RecordScoreCache(false)
	RecordScoreCache(false)

	if got := testutil.ToFloat64(ScoreCacheHits) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ScoreCacheMisses) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	before := testutil.ToFloat64(TransactionsIngested.WithLabelValues("nightlife"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				RecordTransactionIngested("nightlife", time.Microsecond)
				RecordMatchScore("non_dining", j)
			}
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(TransactionsIngested.WithLabelValues("nightlife")) - before; got != 1000 {
		t.Errorf("nightlife delta = %v, want 1000", got)
	}
}
