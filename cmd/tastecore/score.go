// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/tomtom215/tastecore/internal/affinity"
	"github.com/tomtom215/tastecore/internal/cache"
	"github.com/tomtom215/tastecore/internal/logging"
	"github.com/tomtom215/tastecore/internal/matching"
	"github.com/tomtom215/tastecore/internal/models"
	"github.com/tomtom215/tastecore/internal/validation"
)

func runScore(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, configPath := newFlagSet("score", stderr)
	profilePath := fs.String("profile", "", "user profile JSON file (- for stdin)")
	userID := fs.String("user", "", "load the user from the snapshot store instead of -profile")
	venuesPath := fs.String("venues", "", "venue list JSON file")
	mood := fs.String("mood", "", "rank with a mood boost (e.g. chill, romantic, social)")
	limit := fs.Int("limit", 0, "show at most this many venues (0 = all)")
	format := fs.String("format", "table", "output format: table or json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *profilePath == "-" && *venuesPath == "-" {
		return fmt.Errorf("only one of -profile and -venues may read stdin")
	}

	cfg, err := loadConfig(*configPath, stderr)
	if err != nil {
		return err
	}

	p, err := selectProfile(ctx, *profilePath, *userID, stdin, cfg)
	if err != nil {
		return err
	}

	var venues []models.Venue
	if err := readJSON(*venuesPath, stdin, &venues); err != nil {
		return err
	}
	for i := range venues {
		if err := validation.Validate(&venues[i]); err != nil {
			return fmt.Errorf("venue %d (%s): %w", i, venues[i].ID, err)
		}
	}

	engine, err := matching.NewEngine(&cfg.Matching, logging.WithComponent("matching"))
	if err != nil {
		return err
	}
	if cfg.Cache.Capacity > 0 {
		engine.SetScoreCache(cache.NewLRU[models.MatchResult](cfg.Cache.Capacity, cfg.Cache.TTL))
	}

	var ranked []models.RankedVenue
	if *mood != "" {
		if _, ok := affinity.LookupMood(*mood); !ok {
			logging.Warn().Str("mood", *mood).Msg("unknown mood, ranking by match score only")
		}
		ranked = engine.ApplyMoodFilter(venues, *mood, &p.Taste)
		if *limit > 0 && len(ranked) > *limit {
			ranked = ranked[:*limit]
		}
	} else {
		ranked = engine.Rank(&p.Taste, venues, *limit)
	}

	switch *format {
	case "json":
		return writeJSON(stdout, ranked)
	case "table":
		renderScores(stdout, ranked, *mood != "")
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func renderScores(w io.Writer, ranked []models.RankedVenue, withBoost bool) {
	table := tablewriter.NewWriter(w)
	headers := []string{"#", "Venue", "Cluster", "Score"}
	if withBoost {
		headers = append(headers, "Boost")
	}
	headers = append(headers, "Reasons")
	table.SetHeader(headers)
	table.SetAutoWrapText(false)

	for i := range ranked {
		rv := &ranked[i]
		name := rv.Venue.Name
		if name == "" {
			name = rv.Venue.ID
		}
		row := []string{strconv.Itoa(i + 1), name, rv.Venue.TasteCluster, strconv.Itoa(rv.MatchScore)}
		if withBoost {
			row = append(row, "+"+strconv.Itoa(rv.MoodBoost))
		}
		row = append(row, strings.Join(rv.Reasons, "; "))
		table.Append(row)
	}

	table.Render()
}
