// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package matching

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tastecore/internal/affinity"
	"github.com/tomtom215/tastecore/internal/cache"
	"github.com/tomtom215/tastecore/internal/metrics"
	"github.com/tomtom215/tastecore/internal/models"
)

// Scoring modes, used as metric labels.
const (
	ModeDining    = "dining"
	ModeNonDining = "non_dining"
	ModeNewUser   = "new_user"
)

// Engine scores venues against a user taste profile with an adaptive
// weighted sum. It holds no per-request state and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	// scores memoizes ScoreAuto results when set.
	scores *cache.LRU[models.MatchResult]
}

// NewEngine creates a matching engine. A nil config uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matching config: %w", err)
	}
	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "matching").Logger(),
	}, nil
}

// SetScoreCache enables memoization of ScoreAuto results.
func (e *Engine) SetScoreCache(c *cache.LRU[models.MatchResult]) {
	e.scores = c
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Score rates a venue for a user with transaction history. Dining venues use
// the cuisine component; every other venue uses the venue-fit heuristics.
func (e *Engine) Score(user *models.UserTaste, venue *models.Venue) models.MatchResult {
	scores := map[string]float64{
		models.ComponentCategory: clamp01(e.categoryScore(user, venue)),
	}

	var weights Weights
	mode := ModeNonDining
	if venue.IsDining() {
		mode = ModeDining
		weights = e.config.Dining
		scores[models.ComponentCuisine] = clamp01(e.cuisineScore(user, venue))
	} else {
		weights = e.config.NonDining
		scores[models.ComponentVenueFit] = clamp01(venueFitScore(user, venue))
	}
	e.sharedComponents(user, venue, scores)

	return e.finish(mode, weights, scores, venue)
}

// ScoreNewUser rates a venue for a user known only through the quiz.
// Dining venues match declared cuisines; others use the venue-fit heuristics.
func (e *Engine) ScoreNewUser(user *models.UserTaste, venue *models.Venue) models.MatchResult {
	scores := make(map[string]float64, 5)
	if venue.IsDining() {
		scores[models.ComponentCuisineOrFit] = clamp01(e.cuisineRankScore(user.CuisinePreferences, venue.CuisineType))
	} else {
		scores[models.ComponentCuisineOrFit] = clamp01(venueFitScore(user, venue))
	}
	e.sharedComponents(user, venue, scores)

	return e.finish(ModeNewUser, e.config.NewUser, scores, venue)
}

// ScoreAuto uses Score when the user has category data and ScoreNewUser
// otherwise.
func (e *Engine) ScoreAuto(user *models.UserTaste, venue *models.Venue) models.MatchResult {
	if e.scores == nil {
		return e.scoreAuto(user, venue)
	}

	key, err := memoKey(user, venue)
	if err != nil {
		e.logger.Debug().Err(err).Msg("score memo key failed")
		return e.scoreAuto(user, venue)
	}
	if cached, ok := e.scores.Get(key); ok {
		metrics.RecordScoreCache(true)
		return copyResult(cached)
	}
	metrics.RecordScoreCache(false)

	result := e.scoreAuto(user, venue)
	e.scores.Add(key, copyResult(result))
	return result
}

func (e *Engine) scoreAuto(user *models.UserTaste, venue *models.Venue) models.MatchResult {
	if user.HasHistory() {
		return e.Score(user, venue)
	}
	return e.ScoreNewUser(user, venue)
}

// Rank scores every venue and returns them sorted by match score descending.
// Ties keep input order. A positive limit truncates the result.
func (e *Engine) Rank(user *models.UserTaste, venues []models.Venue, limit int) []models.RankedVenue {
	ranked := make([]models.RankedVenue, 0, len(venues))
	for i := range venues {
		result := e.ScoreAuto(user, &venues[i])
		ranked = append(ranked, models.RankedVenue{
			Venue:      venues[i],
			MatchScore: result.MatchScore,
			Scores:     result.Scores,
			Reasons:    result.Reasons,
			SortScore:  result.MatchScore,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SortScore > ranked[j].SortScore
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ApplyMoodFilter ranks venues by match score plus mood boost. The reported
// MatchScore never includes the boost and is bounded by DisplayCap. Ties break by base score, then by
// input order. An unknown mood ranks by base score alone.
func (e *Engine) ApplyMoodFilter(venues []models.Venue, mood string, user *models.UserTaste) []models.RankedVenue {
	ranked := make([]models.RankedVenue, 0, len(venues))
	for i := range venues {
		v := &venues[i]
		result := e.ScoreAuto(user, v)
		boost := affinity.MoodBoost(mood, v.Energy, v.BestFor, v.Standout, e.config.MoodBoostCap)
		ranked = append(ranked, models.RankedVenue{
			Venue:      *v,
			MatchScore: min(result.MatchScore, e.config.DisplayCap),
			Scores:     result.Scores,
			Reasons:    result.Reasons,
			MoodBoost:  boost,
			SortScore:  result.MatchScore + boost,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].SortScore != ranked[j].SortScore {
			return ranked[i].SortScore > ranked[j].SortScore
		}
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	metrics.RecordMoodFilter(mood, len(ranked))
	e.logger.Debug().
		Str("mood", mood).
		Int("venues", len(ranked)).
		Msg("mood filter applied")

	return ranked
}

func (e *Engine) sharedComponents(user *models.UserTaste, venue *models.Venue, scores map[string]float64) {
	scores[models.ComponentPrice] = clamp01(affinity.PriceMatch(user.PriceTier, venue.PriceTier))
	scores[models.ComponentEnergy] = clamp01(affinity.EnergyMatch(user.Vibes, venue.Energy))
	scores[models.ComponentContext] = clamp01(contextScore(user, venue))
	scores[models.ComponentDiscovery] = clamp01(affinity.ExplorationBonus(user.ExplorationStyle, venue.Standout))
}

//nolint:gocritic // Weights passed by value is intentional
func (e *Engine) finish(mode string, weights Weights, scores map[string]float64, venue *models.Venue) models.MatchResult {
	w := weights.ToMap()
	var total float64
	for component, s := range scores {
		total += w[component] * s
	}

	score := int(math.Round(total * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	metrics.RecordMatchScore(mode, score)

	return models.MatchResult{
		MatchScore: score,
		Scores:     scores,
		Reasons:    e.Reasons(scores, venue),
	}
}

// memoKey hashes the canonical JSON encoding of both inputs. Map keys are
// encoded in sorted order, so equal inputs produce equal keys.
func memoKey(user *models.UserTaste, venue *models.Venue) (string, error) {
	data, err := json.Marshal(struct {
		User  *models.UserTaste `json:"u"`
		Venue *models.Venue     `json:"v"`
	}{user, venue})
	if err != nil {
		return "", fmt.Errorf("encode score key: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return strconv.FormatUint(h.Sum64(), 16), nil
}

//nolint:gocritic // MatchResult passed by value is intentional
func copyResult(r models.MatchResult) models.MatchResult {
	scores := make(map[string]float64, len(r.Scores))
	for k, v := range r.Scores {
		scores[k] = v
	}
	return models.MatchResult{
		MatchScore: r.MatchScore,
		Scores:     scores,
		Reasons:    append([]string{}, r.Reasons...),
	}
}
