// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package fusion

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tastecore/internal/affinity"
	"github.com/tomtom215/tastecore/internal/models"
)

// Engine blends declared quiz taste with observed transaction behavior.
// Fuse is a pure function of its inputs; the engine is safe for concurrent use.
type Engine struct {
	cfg    Config
	logger zerolog.Logger
}

// NewEngine creates a fusion engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fusion config: %w", err)
	}
	return &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "fusion").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Fuse combines declared and observed taste. A nil observed analysis is
// treated as an empty history.
func (e *Engine) Fuse(declared *models.DeclaredTaste, observed *models.UserAnalysis) models.FusedTaste {
	if declared == nil {
		declared = &models.DeclaredTaste{}
	}
	if observed == nil {
		observed = models.NewUserAnalysis("")
	}

	n := observed.TotalTransactions
	txWeight := e.TxWeight(n)

	fused := models.FusedTaste{
		Categories:       CategoryScores(observed),
		Vibes:            append([]string{}, declared.VibePreferences...),
		TopCuisines:      observed.TopCuisineNames(),
		ExplorationRatio: ExplorationRatio(observed),
		Confidence:       e.Confidence(n),
		TxWeight:         txWeight,
		QuizWeight:       1.0 - txWeight,
	}

	e.logger.Debug().
		Str("user_id", observed.UserID).
		Int("transactions", n).
		Float64("tx_weight", fused.TxWeight).
		Float64("confidence", fused.Confidence).
		Int("categories", len(fused.Categories)).
		Msg("taste fused")

	return fused
}

// TxWeight returns min(n/saturation, max_tx_weight), or 0 for no transactions.
func (e *Engine) TxWeight(n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Min(float64(n)/float64(e.cfg.SaturationCount), e.cfg.MaxTxWeight)
}

// Confidence ramps linearly from 0.1 at one transaction to 1.0 at the full count.
func (e *Engine) Confidence(n int) float64 {
	switch {
	case n <= 0:
		return 0
	case n >= e.cfg.ConfidenceFullCount:
		return 1.0
	default:
		return 0.1 + 0.9*float64(n)/float64(e.cfg.ConfidenceFullCount)
	}
}

// ExplorationRatio is distinct merchants over total transactions.
func ExplorationRatio(observed *models.UserAnalysis) float64 {
	if observed.TotalTransactions == 0 {
		return 0
	}
	return math.Min(float64(len(observed.MerchantVisits))/float64(observed.TotalTransactions), 1.0)
}

// CategoryScores converts category counts into percentages that sum to
// exactly 100. The rounding remainder is added to the largest bucket. A
// negative remainder larger than that bucket spills into the next buckets in
// order, with each floored at 0.
func CategoryScores(observed *models.UserAnalysis) []models.CategoryScore {
	if observed.TotalTransactions == 0 || len(observed.Categories) == 0 {
		return []models.CategoryScore{}
	}

	total := float64(observed.TotalTransactions)
	scores := make([]models.CategoryScore, 0, len(observed.Categories))
	for key, stats := range observed.Categories {
		if stats == nil {
			continue
		}
		spend, _ := stats.TotalSpend.Float64()
		scores = append(scores, models.CategoryScore{
			Key:        key,
			Name:       affinity.FormatCategoryName(key),
			Percentage: int(math.Round(float64(stats.Count) / total * 100)),
			Color:      affinity.CategoryColor(key),
			Count:      stats.Count,
			TotalSpend: spend,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Percentage != scores[j].Percentage {
			return scores[i].Percentage > scores[j].Percentage
		}
		if scores[i].Count != scores[j].Count {
			return scores[i].Count > scores[j].Count
		}
		return scores[i].Key < scores[j].Key
	})

	if len(scores) == 0 {
		return scores
	}

	sum := 0
	for _, s := range scores {
		sum += s.Percentage
	}
	remainder := 100 - sum
	if remainder >= 0 {
		scores[0].Percentage += remainder
		return scores
	}
	for i := range scores {
		if remainder == 0 {
			break
		}
		take := min(scores[i].Percentage, -remainder)
		scores[i].Percentage -= take
		remainder += take
	}

	return scores
}

// UserTaste flattens a fused profile and the declared taste into the
// matching engine input.
func UserTaste(declared *models.DeclaredTaste, fused *models.FusedTaste) models.UserTaste {
	taste := NewUserTaste(declared)
	if fused == nil {
		return taste
	}

	taste.Categories = make(map[string]float64, len(fused.Categories))
	for _, c := range fused.Categories {
		taste.Categories[c.Key] = float64(c.Percentage)
	}
	taste.TopCuisines = append([]string{}, fused.TopCuisines...)
	taste.TxWeight = fused.TxWeight
	return taste
}

// NewUserTaste builds a quiz-only matching input for a user with no
// transaction history.
func NewUserTaste(declared *models.DeclaredTaste) models.UserTaste {
	if declared == nil {
		return models.UserTaste{}
	}
	return models.UserTaste{
		Vibes:              append([]string{}, declared.VibePreferences...),
		PriceTier:          declared.PriceTier,
		ExplorationStyle:   declared.ExplorationStyle,
		SocialPreference:   declared.SocialPreference,
		CoffeePreference:   declared.CoffeePreference,
		CuisinePreferences: append([]string{}, declared.CuisinePreferences...),
	}
}
