// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tastecore/internal/models"
)

// Aggregator folds transactions into a UserAnalysis one at a time.
// Ingest never rescans history; every update is constant time for a fixed
// top-N limit. An Aggregator holds no per-user state and is safe for
// concurrent use across different analyses.
type Aggregator struct {
	cfg    Config
	logger zerolog.Logger
}

// NewAggregator creates an aggregator. Invalid limits fall back to defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAggregator(cfg Config, logger zerolog.Logger) *Aggregator {
	def := DefaultConfig()
	if cfg.TopMerchantsLimit <= 0 {
		cfg.TopMerchantsLimit = def.TopMerchantsLimit
	}
	if cfg.TopCuisinesLimit <= 0 {
		cfg.TopCuisinesLimit = def.TopCuisinesLimit
	}
	return &Aggregator{
		cfg:    cfg,
		logger: logger.With().Str("component", "aggregate").Logger(),
	}
}

// Config returns the effective configuration.
func (a *Aggregator) Config() Config {
	return a.cfg
}

// Ingest applies one transaction to analysis and returns the same pointer.
// Transactions must arrive in non-decreasing timestamp order for streaks to
// be correct. A transaction without merchant identity still updates category,
// time, day and metadata counters.
func (a *Aggregator) Ingest(txn *models.Transaction, analysis *models.UserAnalysis) *models.UserAnalysis {
	analysis.EnsureMaps()
	merchantKey := txn.MerchantKey()

	a.updateCategory(txn, merchantKey, analysis)
	analysis.TimeBuckets[txn.TimeBucket]++
	analysis.DayTypes[txn.DayType]++
	a.updateMerchantVisits(txn, merchantKey, analysis)
	a.updateCuisine(txn, analysis)
	a.updateExploration(txn, merchantKey, analysis)
	a.updateStreak(txn, analysis)
	a.updateMetadata(txn, analysis)

	return analysis
}

// Resync rebuilds an analysis from a full transaction history.
// The input is sorted by timestamp (stable) before ingestion; the caller's
// slice is not modified.
func (a *Aggregator) Resync(userID string, txns []models.Transaction) *models.UserAnalysis {
	ordered := make([]models.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	analysis := models.NewUserAnalysis(userID)
	for i := range ordered {
		a.Ingest(&ordered[i], analysis)
	}

	a.logger.Debug().
		Str("user_id", userID).
		Int("transactions", analysis.TotalTransactions).
		Int("categories", len(analysis.Categories)).
		Msg("analysis resynced")

	return analysis
}

// Rebuild restores the unpersisted exploration seen-sets from the per-category
// merchant sets after a snapshot has been decoded.
func Rebuild(analysis *models.UserAnalysis) {
	analysis.EnsureMaps()
	for cat, stats := range analysis.Categories {
		exp, ok := analysis.Exploration[cat]
		if !ok {
			continue
		}
		exp.SeenMerchants = make(map[string]struct{}, len(stats.Merchants))
		for m := range stats.Merchants {
			exp.SeenMerchants[m] = struct{}{}
		}
	}
	for _, exp := range analysis.Exploration {
		if exp.SeenMerchants == nil {
			exp.SeenMerchants = make(map[string]struct{})
		}
	}
}

func (a *Aggregator) updateCategory(txn *models.Transaction, merchantKey string, analysis *models.UserAnalysis) {
	stats, ok := analysis.Categories[txn.TasteCategory]
	if !ok {
		stats = models.NewCategoryStats()
		analysis.Categories[txn.TasteCategory] = stats
	}
	if stats.Merchants == nil {
		stats.Merchants = make(map[string]struct{})
	}

	stats.Count++
	if txn.Amount.IsPositive() {
		stats.TotalSpend = stats.TotalSpend.Add(txn.Amount)
	} else if txn.Amount.IsNegative() {
		stats.TotalSpend = stats.TotalSpend.Add(txn.Amount.Abs())
	}
	if merchantKey != "" {
		stats.Merchants[merchantKey] = struct{}{}
	}
}

func (a *Aggregator) updateMerchantVisits(txn *models.Transaction, merchantKey string, analysis *models.UserAnalysis) {
	if merchantKey == "" {
		return
	}
	analysis.MerchantVisits[merchantKey]++
	count := analysis.MerchantVisits[merchantKey]

	analysis.TopMerchants = upsertTop(
		analysis.TopMerchants,
		a.cfg.TopMerchantsLimit,
		merchantKey,
		count,
		func(m models.MerchantCount) string { return m.MerchantID },
		func(m models.MerchantCount) int { return m.Count },
		func(m *models.MerchantCount, c int) { m.Count = c },
		func() models.MerchantCount {
			return models.MerchantCount{MerchantID: merchantKey, MerchantName: txn.MerchantName, Count: count}
		},
	)
}

func (a *Aggregator) updateCuisine(txn *models.Transaction, analysis *models.UserAnalysis) {
	cuisine := strings.ToLower(strings.TrimSpace(txn.Cuisine))
	if cuisine == "" {
		return
	}
	analysis.Cuisines[cuisine]++
	count := analysis.Cuisines[cuisine]

	analysis.TopCuisines = upsertTop(
		analysis.TopCuisines,
		a.cfg.TopCuisinesLimit,
		cuisine,
		count,
		func(c models.CuisineCount) string { return c.Cuisine },
		func(c models.CuisineCount) int { return c.Count },
		func(c *models.CuisineCount, n int) { c.Count = n },
		func() models.CuisineCount { return models.CuisineCount{Cuisine: cuisine, Count: count} },
	)
}

func (a *Aggregator) updateExploration(txn *models.Transaction, merchantKey string, analysis *models.UserAnalysis) {
	if merchantKey == "" {
		return
	}
	exp, ok := analysis.Exploration[txn.TasteCategory]
	if !ok {
		exp = &models.ExplorationData{}
		analysis.Exploration[txn.TasteCategory] = exp
	}
	if exp.SeenMerchants == nil {
		exp.SeenMerchants = make(map[string]struct{})
	}

	exp.Total++
	if _, seen := exp.SeenMerchants[merchantKey]; !seen {
		exp.SeenMerchants[merchantKey] = struct{}{}
		exp.Unique++
	}
}

func (a *Aggregator) updateStreak(txn *models.Transaction, analysis *models.UserAnalysis) {
	streak, ok := analysis.Streaks[txn.TasteCategory]
	if !ok {
		streak = &models.StreakData{}
		analysis.Streaks[txn.TasteCategory] = streak
	}

	day := calendarDate(txn.Timestamp)
	if streak.LastDate == nil {
		streak.Current = 1
		streak.Longest = 1
		streak.LastDate = &day
		return
	}

	switch diff := daysBetween(*streak.LastDate, day); {
	case diff == 0:
		// Same-day repeat.
	case diff == 1:
		streak.Current++
		if streak.Current > streak.Longest {
			streak.Longest = streak.Current
		}
		streak.LastDate = &day
	case diff > 1:
		streak.Current = 1
		streak.LastDate = &day
	default:
		// Out-of-order input leaves the streak untouched.
	}
}

func (a *Aggregator) updateMetadata(txn *models.Transaction, analysis *models.UserAnalysis) {
	analysis.TotalTransactions++
	ts := txn.Timestamp
	if analysis.FirstTransactionAt == nil {
		first := ts
		analysis.FirstTransactionAt = &first
	}
	analysis.LastTransactionAt = &ts
}

// upsertTop maintains a bounded list sorted by count descending.
// An entry already present is updated in place; a new entry is appended when
// there is room, otherwise it replaces the current minimum only if its count
// is strictly greater. Ties keep insertion order.
func upsertTop[T any](
	list []T,
	limit int,
	key string,
	count int,
	keyOf func(T) string,
	countOf func(T) int,
	setCount func(*T, int),
	newEntry func() T,
) []T {
	changed := false
	found := false
	for i := range list {
		if keyOf(list[i]) == key {
			setCount(&list[i], count)
			found = true
			changed = true
			break
		}
	}

	if !found {
		switch {
		case len(list) < limit:
			list = append(list, newEntry())
			changed = true
		case len(list) > 0:
			minIdx := 0
			for i := range list {
				if countOf(list[i]) <= countOf(list[minIdx]) {
					minIdx = i
				}
			}
			if count > countOf(list[minIdx]) {
				list[minIdx] = newEntry()
				changed = true
			}
		}
	}

	if changed {
		sort.SliceStable(list, func(i, j int) bool {
			return countOf(list[i]) > countOf(list[j])
		})
	}
	return list
}

// calendarDate truncates a timestamp to its UTC calendar date.
func calendarDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(calendarDate(to).Sub(calendarDate(from)).Hours() / 24)
}
