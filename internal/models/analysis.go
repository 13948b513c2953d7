// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package models

import (
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// CategoryStats aggregates spending for one taste category.
type CategoryStats struct {
	Count      int                 `json:"count"`
	TotalSpend decimal.Decimal     `json:"total_spend"`
	Merchants  map[string]struct{} `json:"-"`
}

type categoryStatsJSON struct {
	Count      int             `json:"count"`
	TotalSpend decimal.Decimal `json:"total_spend"`
	Merchants  []string        `json:"merchants"`
}

// NewCategoryStats returns an empty CategoryStats with an initialized merchant set.
func NewCategoryStats() *CategoryStats {
	return &CategoryStats{Merchants: make(map[string]struct{})}
}

// MerchantList returns the distinct merchant keys in sorted order.
func (c *CategoryStats) MerchantList() []string {
	out := make([]string, 0, len(c.Merchants))
	for k := range c.Merchants {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the merchant set as a sorted list.
func (c CategoryStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(categoryStatsJSON{
		Count:      c.Count,
		TotalSpend: c.TotalSpend,
		Merchants:  c.MerchantList(),
	})
}

// UnmarshalJSON decodes the merchant list back into a set.
func (c *CategoryStats) UnmarshalJSON(data []byte) error {
	var raw categoryStatsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Count = raw.Count
	c.TotalSpend = raw.TotalSpend
	c.Merchants = make(map[string]struct{}, len(raw.Merchants))
	for _, m := range raw.Merchants {
		c.Merchants[m] = struct{}{}
	}
	return nil
}

// StreakData tracks consecutive active days for one category.
// Current never exceeds Longest.
type StreakData struct {
	Current  int        `json:"current"`
	Longest  int        `json:"longest"`
	LastDate *time.Time `json:"last_date,omitempty"`
}

// ExplorationData counts unique versus total merchant visits in a category.
// SeenMerchants is not persisted; it is rebuilt from CategoryStats.Merchants.
type ExplorationData struct {
	Unique        int                 `json:"unique"`
	Total         int                 `json:"total"`
	SeenMerchants map[string]struct{} `json:"-"`
}

// MerchantCount is an entry in the bounded top merchants list.
type MerchantCount struct {
	MerchantID   string `json:"merchant_id"`
	MerchantName string `json:"merchant_name"`
	Count        int    `json:"count"`
}

// CuisineCount is an entry in the bounded top cuisines list.
type CuisineCount struct {
	Cuisine string `json:"cuisine"`
	Count   int    `json:"count"`
}

// UserAnalysis is the per-user behavioral aggregate built from transactions.
// It is owned by a single writer at a time; Version increases on every
// persisted recompute and is used for optimistic concurrency at the store.
type UserAnalysis struct {
	UserID string `json:"user_id"`

	Categories map[string]*CategoryStats `json:"categories"`

	TimeBuckets map[string]int `json:"time_buckets"`
	DayTypes    map[string]int `json:"day_types"`

	MerchantVisits map[string]int  `json:"merchant_visits"`
	TopMerchants   []MerchantCount `json:"top_merchants"`

	Cuisines    map[string]int `json:"cuisines"`
	TopCuisines []CuisineCount `json:"top_cuisines"`

	Streaks     map[string]*StreakData      `json:"streaks"`
	Exploration map[string]*ExplorationData `json:"exploration"`

	TotalTransactions  int        `json:"total_transactions"`
	FirstTransactionAt *time.Time `json:"first_transaction_at,omitempty"`
	LastTransactionAt  *time.Time `json:"last_transaction_at,omitempty"`
	Version            int64      `json:"version"`
}

// NewUserAnalysis returns an empty analysis with all maps initialized.
func NewUserAnalysis(userID string) *UserAnalysis {
	a := &UserAnalysis{UserID: userID}
	a.EnsureMaps()
	return a
}

// EnsureMaps initializes any nil map and drops nil entries, typically after
// decoding a snapshot.
func (a *UserAnalysis) EnsureMaps() {
	dropNil(a.Categories)
	dropNil(a.Streaks)
	dropNil(a.Exploration)

	if a.Categories == nil {
		a.Categories = make(map[string]*CategoryStats)
	}
	if a.TimeBuckets == nil {
		a.TimeBuckets = make(map[string]int)
	}
	if a.DayTypes == nil {
		a.DayTypes = make(map[string]int)
	}
	if a.MerchantVisits == nil {
		a.MerchantVisits = make(map[string]int)
	}
	if a.Cuisines == nil {
		a.Cuisines = make(map[string]int)
	}
	if a.Streaks == nil {
		a.Streaks = make(map[string]*StreakData)
	}
	if a.Exploration == nil {
		a.Exploration = make(map[string]*ExplorationData)
	}
}

// dropNil removes entries decoded from JSON null.
func dropNil[V any](m map[string]*V) {
	for k, v := range m {
		if v == nil {
			delete(m, k)
		}
	}
}

// TopCuisineNames returns the ranked cuisine names, most frequent first.
func (a *UserAnalysis) TopCuisineNames() []string {
	out := make([]string, 0, len(a.TopCuisines))
	for _, c := range a.TopCuisines {
		out = append(out, c.Cuisine)
	}
	return out
}

// Clone returns a deep copy of the analysis.
func (a *UserAnalysis) Clone() *UserAnalysis {
	c := &UserAnalysis{
		UserID:            a.UserID,
		TotalTransactions: a.TotalTransactions,
		Version:           a.Version,
	}
	c.EnsureMaps()

	for k, v := range a.Categories {
		stats := &CategoryStats{
			Count:      v.Count,
			TotalSpend: v.TotalSpend,
			Merchants:  make(map[string]struct{}, len(v.Merchants)),
		}
		for m := range v.Merchants {
			stats.Merchants[m] = struct{}{}
		}
		c.Categories[k] = stats
	}
	for k, v := range a.TimeBuckets {
		c.TimeBuckets[k] = v
	}
	for k, v := range a.DayTypes {
		c.DayTypes[k] = v
	}
	for k, v := range a.MerchantVisits {
		c.MerchantVisits[k] = v
	}
	for k, v := range a.Cuisines {
		c.Cuisines[k] = v
	}
	c.TopMerchants = append([]MerchantCount(nil), a.TopMerchants...)
	c.TopCuisines = append([]CuisineCount(nil), a.TopCuisines...)

	for k, v := range a.Streaks {
		s := *v
		if v.LastDate != nil {
			d := *v.LastDate
			s.LastDate = &d
		}
		c.Streaks[k] = &s
	}
	for k, v := range a.Exploration {
		e := &ExplorationData{
			Unique:        v.Unique,
			Total:         v.Total,
			SeenMerchants: make(map[string]struct{}, len(v.SeenMerchants)),
		}
		for m := range v.SeenMerchants {
			e.SeenMerchants[m] = struct{}{}
		}
		c.Exploration[k] = e
	}

	if a.FirstTransactionAt != nil {
		t := *a.FirstTransactionAt
		c.FirstTransactionAt = &t
	}
	if a.LastTransactionAt != nil {
		t := *a.LastTransactionAt
		c.LastTransactionAt = &t
	}
	return c
}
