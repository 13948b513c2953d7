// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestLRU[V any](capacity int, ttl time.Duration) (*LRU[V], *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRU[V](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestLRU_BasicOperations(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU[int](3, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := c.Get(key)
		if !ok || got != want {
			t.Errorf("Get(%q) = (%d, %v), want (%d, true)", key, got, ok, want)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU[string](3, time.Minute)
	c.Add("a", "A")
	c.Add("b", "B")
	c.Add("c", "C")

	c.Get("a")
	c.Add("d", "D")

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %q to be present", key)
		}
	}
}

func TestLRU_TTLExpiration(t *testing.T) {
	t.Parallel()

	c, clock := newTestLRU[int](10, time.Minute)
	c.Add("a", 1)

	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected a before expiry")
	}
	clock.Advance(61 * time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("expected a to expire")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after lazy expiry", c.Len())
	}
}

func TestLRU_IsDuplicate(t *testing.T) {
	t.Parallel()

	c, clock := newTestLRU[struct{}](10, time.Minute)

	if c.IsDuplicate("txn-1") {
		t.Error("first sighting reported as duplicate")
	}
	if !c.IsDuplicate("txn-1") {
		t.Error("second sighting not reported as duplicate")
	}
	if c.IsDuplicate("txn-2") {
		t.Error("distinct key reported as duplicate")
	}

	clock.Advance(2 * time.Minute)
	if c.IsDuplicate("txn-1") {
		t.Error("expired key reported as duplicate")
	}
}

func TestLRU_Remove(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU[int](10, time.Minute)
	c.Add("a", 1)

	if !c.Remove("a") {
		t.Error("Remove(a) = false, want true")
	}
	if c.Remove("a") {
		t.Error("second Remove(a) = true, want false")
	}
	if c.Contains("a") {
		t.Error("Contains(a) after Remove")
	}
}

func TestLRU_Clear(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU[int](10, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	c.Add("c", 3)
	if got, ok := c.Get("c"); !ok || got != 3 {
		t.Error("cache unusable after Clear")
	}
}

func TestLRU_CleanupExpired(t *testing.T) {
	t.Parallel()

	c, clock := newTestLRU[int](10, time.Minute)
	c.Add("old1", 1)
	c.Add("old2", 2)
	clock.Advance(45 * time.Second)
	c.Add("fresh", 3)
	clock.Advance(30 * time.Second)

	if removed := c.CleanupExpired(); removed != 2 {
		t.Errorf("CleanupExpired() = %d, want 2", removed)
	}
	if !c.Contains("fresh") {
		t.Error("fresh entry removed")
	}
}

func TestLRU_Stats(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU[int](10, time.Minute)
	c.Add("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")
	c.Contains("a")

	hits, misses, size := c.Stats()
	if hits != 2 || misses != 1 || size != 1 {
		t.Errorf("Stats() = (%d, %d, %d), want (2, 1, 1)", hits, misses, size)
	}
}

func TestLRU_UpdateExisting(t *testing.T) {
	t.Parallel()

	c, clock := newTestLRU[int](2, time.Minute)
	c.Add("a", 1)
	clock.Advance(50 * time.Second)
	c.Add("a", 2)
	clock.Advance(50 * time.Second)

	got, ok := c.Get("a")
	if !ok || got != 2 {
		t.Errorf("Get(a) = (%d, %v), want (2, true) with refreshed TTL", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRU_Defaults(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](0, 0)
	if c.capacity != DefaultCapacity || c.ttl != DefaultTTL {
		t.Errorf("defaults = (%d, %v), want (%d, %v)", c.capacity, c.ttl, DefaultCapacity, DefaultTTL)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](100, time.Minute)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("k%d", (g*500+i)%150)
				c.Add(key, i)
				c.Get(key)
				c.IsDuplicate(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Len() = %d exceeds capacity 100", c.Len())
	}
}
