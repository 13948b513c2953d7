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

	"github.com/olekukonko/tablewriter"

	"github.com/tomtom215/tastecore/internal/affinity"
	"github.com/tomtom215/tastecore/internal/models"
	"github.com/tomtom215/tastecore/internal/ring"
)

// ringOutput is the JSON form of the ring command.
type ringOutput struct {
	ring.Ring
	Fused models.FusedTaste `json:"fused"`
}

func runRing(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, configPath := newFlagSet("ring", stderr)
	profilePath := fs.String("profile", "", "user profile JSON file (- for stdin)")
	userID := fs.String("user", "", "load the user from the snapshot store instead of -profile")
	format := fs.String("format", "table", "output format: table or json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, stderr)
	if err != nil {
		return err
	}

	p, err := selectProfile(ctx, *profilePath, *userID, stdin, cfg)
	if err != nil {
		return err
	}
	r := ring.Build(p.Analysis, p.Declared)

	switch *format {
	case "json":
		return writeJSON(stdout, ringOutput{Ring: r, Fused: p.Fused})
	case "table":
		renderRing(stdout, &r, &p.Fused)
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func renderRing(w io.Writer, r *ring.Ring, fused *models.FusedTaste) {
	fmt.Fprintf(w, "%s\n%s\n\n", r.ProfileTitle, r.Tagline)

	if len(r.Segments) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Category", "Share", "Visits", "Color"})
		for _, s := range r.Segments {
			table.Append([]string{
				affinity.FormatCategoryName(s.Category),
				strconv.Itoa(s.Percentage) + "%",
				strconv.Itoa(s.Count),
				s.Color,
			})
		}
		table.Render()
	}

	if len(r.Traits) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Trait", "Score", "Description"})
		for _, t := range r.Traits {
			table.Append([]string{t.Emoji + " " + t.Name, strconv.Itoa(t.Score), t.Description})
		}
		table.Render()
	}

	fmt.Fprintf(w, "confidence %.2f  quiz weight %.2f  transaction weight %.2f\n",
		fused.Confidence, fused.QuizWeight, fused.TxWeight)
}
