// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package services

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tastecore/internal/logging"
	"github.com/tomtom215/tastecore/internal/metrics"
	"github.com/tomtom215/tastecore/internal/supervisor"
)

// localAddr reserves a loopback port and releases it for the server.
func localAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	addr := l.Addr().String()
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return addr
}

// scrape GETs url until it answers or the deadline passes.
func scrape(t *testing.T, url string) string {
	t.Helper()
	client := &http.Client{Timeout: 500 * time.Millisecond}
	deadline := time.Now().Add(3 * time.Second)
	for {
		resp, err := client.Get(url) //nolint:noctx // test helper
		if err == nil {
			body, readErr := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if readErr != nil {
				t.Fatalf("read body: %v", readErr)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("GET %s status = %d, want 200", url, resp.StatusCode)
			}
			return string(body)
		}
		if time.Now().After(deadline) {
			t.Fatalf("GET %s: %v", url, err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// shutdownRecorder is an HTTPServer whose Shutdown result is scripted.
type shutdownRecorder struct {
	shutdownErr error
	stop        chan struct{}
	deadline    time.Time
}

func (s *shutdownRecorder) ListenAndServe() error {
	<-s.stop
	return http.ErrServerClosed
}

func (s *shutdownRecorder) Shutdown(ctx context.Context) error {
	s.deadline, _ = ctx.Deadline()
	close(s.stop)
	return s.shutdownErr
}

// --- Test: metrics server ---

func TestNewMetricsServer_Routes(t *testing.T) {
	t.Parallel()

	metrics.RecordMoodFilter("chill", 3)
	server := NewMetricsServer(":9090", "/metrics")

	if server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", server.Addr)
	}
	if server.ReadHeaderTimeout <= 0 {
		t.Error("ReadHeaderTimeout should be set")
	}

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/metrics", http.StatusOK},
		{"/", http.StatusNotFound},
		{"/debug/pprof/", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.wantStatus {
			t.Errorf("GET %s status = %d, want %d", tt.path, rec.Code, tt.wantStatus)
		}
		if tt.path == "/metrics" && !strings.Contains(rec.Body.String(), "tastecore_mood_filter_runs_total") {
			t.Error("metrics body missing tastecore_mood_filter_runs_total")
		}
	}
}

// --- Test: metrics-http lifecycle ---

func TestHTTPServerService_ServesUntilCanceled(t *testing.T) {
	t.Parallel()

	addr := localAddr(t)
	svc := NewHTTPServerService(NewMetricsServer(addr, "/metrics"), time.Second)
	if svc.String() != "metrics-http" {
		t.Errorf("String() = %q, want metrics-http", svc.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	if body := scrape(t, "http://"+addr+"/metrics"); !strings.Contains(body, "go_goroutines") {
		t.Error("metrics body missing runtime collectors")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}

	if _, err := (&http.Client{Timeout: 200 * time.Millisecond}).Get("http://" + addr + "/metrics"); err == nil { //nolint:noctx // test
		t.Error("server still answering after shutdown")
	}
}

func TestHTTPServerService_ListenFailure(t *testing.T) {
	t.Parallel()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer l.Close()

	svc := NewHTTPServerService(NewMetricsServer(l.Addr().String(), "/metrics"), time.Second)
	err = svc.Serve(context.Background())
	if err == nil || !strings.Contains(err.Error(), "http server failed") {
		t.Errorf("Serve() error = %v, want listen failure", err)
	}
}

func TestHTTPServerService_Shutdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		timeout     time.Duration
		shutdownErr error
		wantErr     string
		wantWithin  time.Duration
	}{
		{"clean", 2 * time.Second, nil, "", 2 * time.Second},
		{"default timeout", 0, nil, "", 10 * time.Second},
		{"shutdown error", time.Second, errors.New("listener stuck"), "shutdown failed", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := &shutdownRecorder{shutdownErr: tt.shutdownErr, stop: make(chan struct{})}
			svc := NewHTTPServerService(server, tt.timeout)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			start := time.Now()
			err := svc.Serve(ctx)

			if tt.wantErr == "" {
				if !errors.Is(err, context.Canceled) {
					t.Errorf("Serve() error = %v, want context.Canceled", err)
				}
			} else if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Serve() error = %v, want %q", err, tt.wantErr)
			}

			if server.deadline.IsZero() {
				t.Fatal("Shutdown called without a deadline")
			}
			if limit := start.Add(tt.wantWithin + time.Second); server.deadline.After(limit) {
				t.Errorf("shutdown deadline %v exceeds %v", server.deadline, tt.wantWithin)
			}
		})
	}
}

// --- Test: shutdown through the tree ---

func TestHTTPServerService_StopsWithTree(t *testing.T) {
	t.Parallel()

	addr := localAddr(t)
	cfg := supervisor.DefaultTreeConfig()
	cfg.ShutdownTimeout = 2 * time.Second
	tree := supervisor.NewTree(logging.NewSlogLogger(zerolog.Nop()), cfg)
	tree.AddOpsService(NewHTTPServerService(NewMetricsServer(addr, "/metrics"), time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	scrape(t, "http://"+addr+"/metrics")

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree error = %v, want nil or context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("tree did not stop")
	}

	if _, err := (&http.Client{Timeout: 200 * time.Millisecond}).Get("http://" + addr + "/metrics"); err == nil { //nolint:noctx // test
		t.Error("metrics server still answering after tree shutdown")
	}
}
