// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package matching scores venues against a user taste profile.

The engine uses an adaptive weighted sum. The weight set depends on the venue
and the user:

	dining      category .20  cuisine .25       price .20  energy .15  context .15  discovery .05
	non-dining  category .25  venue_fit .20     price .20  energy .15  context .15  discovery .05
	new user    cuisine_or_fit .30              price .25  energy .20  context .15  discovery .10

A venue is dining when it has a cuisine type. A user is new when the profile
carries no category percentages.

Every component is clamped to [0, 1] and the final score is
round(100 * sum(w * s)) clamped to [0, DisplayCap].

Usage:

	engine, err := matching.NewEngine(matching.DefaultConfig(), logger)
	if err != nil {
		return err
	}
	ranked := engine.ApplyMoodFilter(venues, "chill", &taste)

Mood boosts affect ranking only. RankedVenue.MatchScore is always the
unboosted score.
*/
package matching
