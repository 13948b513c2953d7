// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// --- Test: MerchantKey ---

func TestTransaction_MerchantKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		txn  Transaction
		want string
	}{
		{"id wins", Transaction{MerchantID: "m1", MerchantName: "Blue Bottle"}, "m1"},
		{"name fallback", Transaction{MerchantName: "Blue Bottle"}, "Blue Bottle"},
		{"no identity", Transaction{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.txn.MerchantKey(); got != tt.want {
				t.Errorf("MerchantKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Test: CategoryStats JSON ---

func TestCategoryStats_JSONMerchantSet(t *testing.T) {
	t.Parallel()

	stats := NewCategoryStats()
	stats.Count = 3
	stats.TotalSpend = decimal.RequireFromString("12.50")
	stats.Merchants["b"] = struct{}{}
	stats.Merchants["a"] = struct{}{}

	data, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw struct {
		Merchants []string `json:"merchants"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(raw.Merchants) != 2 || raw.Merchants[0] != "a" || raw.Merchants[1] != "b" {
		t.Errorf("merchants = %v, want [a b]", raw.Merchants)
	}

	var decoded CategoryStats
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Count != 3 {
		t.Errorf("Count = %d, want 3", decoded.Count)
	}
	if !decoded.TotalSpend.Equal(stats.TotalSpend) {
		t.Errorf("TotalSpend = %s, want %s", decoded.TotalSpend, stats.TotalSpend)
	}
	if _, ok := decoded.Merchants["a"]; !ok {
		t.Error("decoded merchant set missing \"a\"")
	}
}

// --- Test: Clone ---

func TestUserAnalysis_CloneIsDeep(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	a := NewUserAnalysis("u1")
	a.Categories["coffee"] = &CategoryStats{Count: 1, Merchants: map[string]struct{}{"m1": {}}}
	a.Streaks["coffee"] = &StreakData{Current: 1, Longest: 1, LastDate: &day}
	a.TopCuisines = []CuisineCount{{Cuisine: "thai", Count: 2}}
	a.Version = 4

	c := a.Clone()
	c.Categories["coffee"].Count = 9
	c.Categories["coffee"].Merchants["m2"] = struct{}{}
	*c.Streaks["coffee"].LastDate = day.AddDate(0, 0, 1)
	c.TopCuisines[0].Count = 7

	if a.Categories["coffee"].Count != 1 {
		t.Errorf("original Count = %d, want 1", a.Categories["coffee"].Count)
	}
	if len(a.Categories["coffee"].Merchants) != 1 {
		t.Errorf("original merchants = %d, want 1", len(a.Categories["coffee"].Merchants))
	}
	if !a.Streaks["coffee"].LastDate.Equal(day) {
		t.Errorf("original LastDate = %v, want %v", a.Streaks["coffee"].LastDate, day)
	}
	if a.TopCuisines[0].Count != 2 {
		t.Errorf("original top cuisine count = %d, want 2", a.TopCuisines[0].Count)
	}
	if c.Version != 4 || c.UserID != "u1" {
		t.Errorf("clone = (%s, %d), want (u1, 4)", c.UserID, c.Version)
	}
}

func TestUserAnalysis_TopCuisineNames(t *testing.T) {
	t.Parallel()

	a := NewUserAnalysis("u1")
	a.TopCuisines = []CuisineCount{{Cuisine: "thai", Count: 3}, {Cuisine: "ramen", Count: 1}}

	got := a.TopCuisineNames()
	if len(got) != 2 || got[0] != "thai" || got[1] != "ramen" {
		t.Errorf("TopCuisineNames() = %v, want [thai ramen]", got)
	}
}
