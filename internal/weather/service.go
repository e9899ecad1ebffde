package weather

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
)

// UnknownLocation is the display string used when reverse geocoding returns
// no candidates.
const UnknownLocation = "Locație necunoscută"

// Service resolves a location (free-text city or coordinate pair) into a
// Snapshot, caching results per resolved location.
type Service struct {
	provider Provider
	cache    Store
}

// NewService creates a Service on top of a provider and a snapshot cache.
func NewService(provider Provider, cache Store) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
	}
}

// ByCity geocodes the city name, picks the candidate whose Romanian localized
// name matches the input diacritics-insensitively, and fetches its forecast.
// A (nil, nil) return means no candidate matched; callers treat it as "no
// weather data", not as an error.
func (s *Service) ByCity(ctx context.Context, city string) (*Snapshot, error) {
	key := cityKey(city)
	if snap, ok := s.cache.Get(key); ok {
		return snap, nil
	}

	candidates, err := s.provider.DirectGeocode(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", city, err)
	}

	match := matchCandidate(candidates, city)
	if match == nil {
		log.Printf("INFO: no geocoding candidate matched %q", city)
		return nil, nil
	}

	oc, err := s.provider.OneCall(ctx, match.Lat, match.Lon)
	if err != nil {
		return nil, fmt.Errorf("fetch weather for %q: %w", city, err)
	}

	snap := newSnapshot(fmt.Sprintf("%s, %s", match.Name, match.Country), oc)
	s.cache.Put(key, snap)
	return snap, nil
}

// ByCoords fetches the forecast for a coordinate pair and then reverse
// geocodes a display name. An empty reverse lookup falls back to
// UnknownLocation instead of failing.
func (s *Service) ByCoords(ctx context.Context, lat, lon float64) (*Snapshot, error) {
	key := coordsKey(lat, lon)
	if snap, ok := s.cache.Get(key); ok {
		return snap, nil
	}

	oc, err := s.provider.OneCall(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("fetch weather for %.4f,%.4f: %w", lat, lon, err)
	}

	location := UnknownLocation
	candidates, err := s.provider.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode %.4f,%.4f: %w", lat, lon, err)
	}
	if len(candidates) > 0 {
		location = fmt.Sprintf("%s, %s", candidates[0].Name, candidates[0].Country)
	}

	snap := newSnapshot(location, oc)
	s.cache.Put(key, snap)
	return snap, nil
}

// Refresh re-fetches the forecast behind a cached snapshot, keeping its
// resolved location string, and stores the result under the same key.
func (s *Service) Refresh(ctx context.Context, entry CacheEntry) error {
	old := entry.Snapshot
	oc, err := s.provider.OneCall(ctx, old.Lat, old.Lon)
	if err != nil {
		return fmt.Errorf("refresh %s: %w", old.Location, err)
	}
	s.cache.Put(entry.Key, newSnapshot(old.Location, oc))
	return nil
}

// Cached exposes the live cache entries for the refresh scheduler.
func (s *Service) Cached() []CacheEntry {
	return s.cache.Entries()
}

// matchCandidate applies the original matching rule: the candidate's Romanian
// localized name (falling back to the plain name when absent) is folded for
// diacritics, the input is only case-folded.
func matchCandidate(candidates []GeoCandidate, city string) *GeoCandidate {
	want := strings.ToLower(city)
	for i := range candidates {
		name := candidates[i].LocalNames["ro"]
		if name == "" {
			name = candidates[i].Name
		}
		if FoldDiacritics(name) == want {
			return &candidates[i]
		}
	}
	return nil
}

func newSnapshot(location string, oc *OneCall) *Snapshot {
	return &Snapshot{
		ID:        uuid.NewString(),
		Location:  location,
		Lat:       oc.Lat,
		Lon:       oc.Lon,
		Timezone:  oc.Timezone,
		Current:   oc.Current,
		Hourly:    oc.Hourly,
		Daily:     oc.Daily,
		FetchedAt: nowFunc().UTC(),
	}
}

// cityKey lowercases but does not fold diacritics, matching exactly what
// matchCandidate compares the input against. Folding here would let a warmed
// "braila" entry answer a "brăila" query that resolves to nothing cold.
func cityKey(city string) string {
	return "city:" + strings.ToLower(city)
}

// coordsKey rounds to 2 decimal places (roughly 1.1km) so nearby geolocation
// requests share a cache entry.
func coordsKey(lat, lon float64) string {
	const precision = 100.0
	return fmt.Sprintf("coords:%.2f:%.2f",
		math.Round(lat*precision)/precision,
		math.Round(lon*precision)/precision)
}
