package store

import (
	"testing"
	"time"

	"github.com/vremea/weather-dashboard/internal/weather"
)

func snapshot(id string) *weather.Snapshot {
	return &weather.Snapshot{ID: id, Location: "Braila, RO"}
}

func TestGetMissingKey(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)
	if _, ok := cache.Get("city:braila"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestPutAndGet(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)
	cache.Put("city:braila", snapshot("a"))

	got, ok := cache.Get("city:braila")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.ID != "a" {
		t.Errorf("expected snapshot a, got %q", got.ID)
	}
}

func TestPutReplacesWholesale(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)
	cache.Put("city:braila", snapshot("a"))
	cache.Put("city:braila", snapshot("b"))

	got, ok := cache.Get("city:braila")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.ID != "b" {
		t.Errorf("expected the replacement snapshot, got %q", got.ID)
	}
}

// TestExpiry drives the injected clock past the TTL and checks both the read
// path and the Entries sweep.
func TestExpiry(t *testing.T) {
	cache := NewSnapshotCache(10 * time.Minute)

	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Put("city:braila", snapshot("a"))

	current = current.Add(5 * time.Minute)
	if _, ok := cache.Get("city:braila"); !ok {
		t.Fatal("expected a hit inside the TTL")
	}

	current = current.Add(6 * time.Minute)
	if _, ok := cache.Get("city:braila"); ok {
		t.Error("expected a miss past the TTL")
	}
	if entries := cache.Entries(); len(entries) != 0 {
		t.Errorf("expected the sweep to drop expired entries, got %d", len(entries))
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	cache := NewSnapshotCache(0)

	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Put("city:braila", snapshot("a"))
	current = current.Add(24 * time.Hour)

	if _, ok := cache.Get("city:braila"); !ok {
		t.Error("expected zero TTL to disable expiry")
	}
}

func TestEntries(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)
	cache.Put("city:braila", snapshot("a"))
	cache.Put("coords:45.27:27.96", snapshot("b"))

	entries := cache.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	seen := map[string]bool{}
	for _, e := range entries {
		seen[e.Key] = true
	}
	if !seen["city:braila"] || !seen["coords:45.27:27.96"] {
		t.Errorf("unexpected entry keys: %v", seen)
	}
}
