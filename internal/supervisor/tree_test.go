// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/tastecore/internal/logging"
)

// mockService runs until canceled, optionally failing its first runs.
type mockService struct {
	name     string
	starts   atomic.Int32
	failures int32
	started  chan struct{}
}

func newMockService(name string, failures int32) *mockService {
	return &mockService{name: name, failures: failures, started: make(chan struct{}, 16)}
}

func (m *mockService) Serve(ctx context.Context) error {
	n := m.starts.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}
	if n <= m.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string { return m.name }

func testLogger() *slog.Logger {
	return logging.NewSlogLogger(zerolog.Nop())
}

func waitStarts(t *testing.T, svc *mockService, n int32) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for svc.starts.Load() < n {
		select {
		case <-svc.started:
		case <-deadline:
			t.Fatalf("%s started %d times, want at least %d", svc.name, svc.starts.Load(), n)
		}
	}
}

var _ suture.Service = (*mockService)(nil)

// --- Test: Construction ---

func TestNewTree_Defaults(t *testing.T) {
	t.Parallel()

	tree := NewTree(testLogger(), TreeConfig{})
	want := DefaultTreeConfig()

	if tree.config != want {
		t.Errorf("config = %+v, want %+v", tree.config, want)
	}
	if tree.Root() == nil {
		t.Error("Root() = nil")
	}
}

func TestNewTree_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := TreeConfig{
		FailureThreshold: 2,
		FailureDecay:     1,
		FailureBackoff:   time.Millisecond,
		ShutdownTimeout:  time.Second,
	}
	tree := NewTree(testLogger(), cfg)
	if tree.config != cfg {
		t.Errorf("config = %+v, want %+v", tree.config, cfg)
	}
}

// --- Test: Lifecycle ---

func TestTree_StartsBothLayers(t *testing.T) {
	t.Parallel()

	tree := NewTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})
	ingest := newMockService("ingest", 0)
	ops := newMockService("ops", 0)
	tree.AddIngestService(ingest)
	tree.AddOpsService(ops)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitStarts(t, ingest, 1)
	waitStarts(t, ops, 1)
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down in time")
	}
}

func TestTree_RestartsFailingServiceOnly(t *testing.T) {
	t.Parallel()

	tree := NewTree(testLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	failing := newMockService("failing", 2)
	stable := newMockService("stable", 0)
	tree.AddOpsService(failing)
	tree.AddIngestService(stable)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	waitStarts(t, failing, 3)
	waitStarts(t, stable, 1)
	if got := stable.starts.Load(); got != 1 {
		t.Errorf("stable starts = %d, want 1", got)
	}

	cancel()
	<-errCh
}

func TestTree_RemoveAndWait(t *testing.T) {
	t.Parallel()

	tree := NewTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})
	svc := newMockService("removable", 0)
	token := tree.Root().Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	waitStarts(t, svc, 1)
	if err := tree.RemoveAndWait(token, time.Second); err != nil {
		t.Errorf("RemoveAndWait() error = %v", err)
	}

	if got := svc.starts.Load(); got != 1 {
		t.Errorf("starts after removal = %d, want 1", got)
	}

	cancel()
	<-errCh
}
