// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
)

func TestWatermillAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewWatermillAdapter(zerolog.New(&buf))

	adapter.Info("subscribing", watermill.LogFields{"topic": "transactions"})
	adapter.Error("handler failed", errors.New("boom"), watermill.LogFields{"message_uuid": "m1"})

	output := buf.String()
	for _, want := range []string{`"topic":"transactions"`, "subscribing", `"error":"boom"`, `"message_uuid":"m1"`} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}

func TestWatermillAdapter_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewWatermillAdapter(zerolog.New(&buf)).With(watermill.LogFields{"handler": "ingest"})

	adapter.Info("started", nil)

	if !strings.Contains(buf.String(), `"handler":"ingest"`) {
		t.Errorf("With() fields missing: %s", buf.String())
	}
}

func TestWatermillAdapter_DebugRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewWatermillAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))

	adapter.Debug("noisy", nil)
	adapter.Trace("noisier", nil)

	if buf.Len() != 0 {
		t.Errorf("debug/trace logged at info level: %s", buf.String())
	}
}
