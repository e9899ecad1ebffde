package weather

import (
	"context"
	"time"
)

// GeoCandidate is one geocoding result. LocalNames carries the localized
// spellings keyed by language code ("ro", "en", ...).
type GeoCandidate struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
}

// OneCall is the raw combined current/hourly/daily payload for a coordinate
// pair, before it is resolved into a Snapshot.
type OneCall struct {
	Lat            float64  `json:"lat"`
	Lon            float64  `json:"lon"`
	Timezone       string   `json:"timezone"`
	TimezoneOffset int      `json:"timezone_offset"`
	Current        Current  `json:"current"`
	Hourly         []Hourly `json:"hourly"`
	Daily          []Daily  `json:"daily"`
}

// Provider abstracts the geocoding/weather backend (OpenWeather in
// production, stubs in tests).
type Provider interface {
	// DirectGeocode resolves a free-text city name to candidate locations.
	DirectGeocode(ctx context.Context, city string) ([]GeoCandidate, error)
	// ReverseGeocode resolves coordinates to candidate place names. An empty
	// result is not an error.
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]GeoCandidate, error)
	// OneCall fetches the combined forecast for a coordinate pair.
	OneCall(ctx context.Context, lat, lon float64) (*OneCall, error)
}

// CacheEntry pairs a cache key with the snapshot stored under it.
type CacheEntry struct {
	Key      string
	Snapshot *Snapshot
}

// Store is the contract the in-memory snapshot cache (and any future
// persistent cache) must satisfy.
type Store interface {
	Get(key string) (*Snapshot, bool)
	Put(key string, snapshot *Snapshot)
	Entries() []CacheEntry
}

// nowFunc is swapped in tests.
var nowFunc = time.Now
