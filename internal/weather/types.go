package weather

import (
	"time"
)

// Condition is one weather-condition record as reported by the provider
// (e.g. id 502, main "Rain", description "ploaie puternică", icon "10d").
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Current is the current weather sample. Same shape as an hourly sample
// plus sunrise/sunset.
type Current struct {
	Dt         int64       `json:"dt"`
	Sunrise    int64       `json:"sunrise"`
	Sunset     int64       `json:"sunset"`
	Temp       float64     `json:"temp"`
	FeelsLike  float64     `json:"feels_like"`
	Pressure   int         `json:"pressure"`
	Humidity   int         `json:"humidity"`
	DewPoint   float64     `json:"dew_point"`
	UVI        float64     `json:"uvi"`
	Clouds     int         `json:"clouds"`
	Visibility int         `json:"visibility"`
	WindSpeed  float64     `json:"wind_speed"`
	WindDeg    int         `json:"wind_deg"`
	WindGust   float64     `json:"wind_gust,omitempty"`
	Weather    []Condition `json:"weather"`
}

// Hourly is one hour's forecast sample. Immutable once received.
type Hourly struct {
	Dt         int64       `json:"dt"`
	Temp       float64     `json:"temp"`
	FeelsLike  float64     `json:"feels_like"`
	Pressure   int         `json:"pressure"`
	Humidity   int         `json:"humidity"`
	DewPoint   float64     `json:"dew_point"`
	UVI        float64     `json:"uvi"`
	Clouds     int         `json:"clouds"`
	Visibility int         `json:"visibility"`
	WindSpeed  float64     `json:"wind_speed"`
	WindDeg    int         `json:"wind_deg"`
	WindGust   float64     `json:"wind_gust,omitempty"`
	Weather    []Condition `json:"weather"`
	// Pop is the precipitation probability as a 0-1 fraction.
	Pop float64 `json:"pop"`
}

// Temp holds the per-moment temperature breakdown of a daily forecast.
type Temp struct {
	Day   float64 `json:"day"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Night float64 `json:"night"`
	Eve   float64 `json:"eve"`
	Morn  float64 `json:"morn"`
}

// FeelsLike holds the per-moment feels-like breakdown of a daily forecast.
type FeelsLike struct {
	Day   float64 `json:"day"`
	Night float64 `json:"night"`
	Eve   float64 `json:"eve"`
	Morn  float64 `json:"morn"`
}

// Daily is one day's aggregate forecast.
type Daily struct {
	Dt        int64       `json:"dt"`
	Sunrise   int64       `json:"sunrise"`
	Sunset    int64       `json:"sunset"`
	Summary   string      `json:"summary,omitempty"`
	Temp      Temp        `json:"temp"`
	FeelsLike FeelsLike   `json:"feels_like"`
	Pressure  int         `json:"pressure"`
	Humidity  int         `json:"humidity"`
	WindSpeed float64     `json:"wind_speed"`
	WindDeg   int         `json:"wind_deg"`
	WindGust  float64     `json:"wind_gust,omitempty"`
	Weather   []Condition `json:"weather"`
	Clouds    int         `json:"clouds"`
	Pop       float64     `json:"pop"`
	UVI       float64     `json:"uvi"`
	Rain      float64     `json:"rain,omitempty"`
	Snow      float64     `json:"snow,omitempty"`
}

// Snapshot is the aggregate current+hourly+daily payload for one resolved
// location. A new snapshot replaces the previous one wholesale; there is no
// incremental merge. The ID changes with every fetch, which lets callers
// detect that the underlying weather context moved on.
type Snapshot struct {
	ID        string    `json:"id"`
	Location  string    `json:"location"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timezone  string    `json:"timezone"`
	Current   Current   `json:"current"`
	Hourly    []Hourly  `json:"hourly"`
	Daily     []Daily   `json:"daily"`
	FetchedAt time.Time `json:"fetched_at"`
}

// TimeLocation resolves the snapshot's IANA timezone, falling back to UTC
// when the zone database does not know it.
func (s *Snapshot) TimeLocation() *time.Location {
	if s == nil || s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ClockLabel formats a unix timestamp as a "HH:MM" label in the given
// location. A nil location means UTC.
func ClockLabel(dt int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(dt, 0).In(loc).Format("15:04")
}
