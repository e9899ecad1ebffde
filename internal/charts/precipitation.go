package charts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vremea/weather-dashboard/internal/weather"
)

// PrecipitationType tags the kind of precipitation expected for one hour.
type PrecipitationType string

const (
	PrecipNone  PrecipitationType = "none"
	PrecipRain  PrecipitationType = "rain"
	PrecipSnow  PrecipitationType = "snow"
	PrecipSleet PrecipitationType = "sleet"
)

// PrecipitationTypeOf classifies an hourly sample by its first condition's
// main category, case-insensitively. Only the first condition is considered;
// secondary conditions on the same sample are ignored.
func PrecipitationTypeOf(h weather.Hourly) PrecipitationType {
	if len(h.Weather) == 0 {
		return PrecipNone
	}
	switch strings.ToLower(h.Weather[0].Main) {
	case "rain":
		return PrecipRain
	case "snow":
		return PrecipSnow
	case "sleet":
		return PrecipSleet
	default:
		return PrecipNone
	}
}

// EstimatedPrecipitation estimates the precipitation amount in millimeters
// for one hour. The One Call API does not report amounts on the free tier, so
// the estimate scales the probability by a per-type constant (rain ~5mm at
// 100%, snow ~3mm, sleet ~4mm), rounded to one decimal. The type is read from
// the caller-supplied bucketed slice at index, so the caller must keep index
// aligned with types.
func EstimatedPrecipitation(h weather.Hourly, index int, types []PrecipitationType) float64 {
	if index < 0 || index >= len(types) {
		return 0
	}
	t := types[index]
	if h.Pop == 0 || t == PrecipNone {
		return 0
	}

	var base float64
	switch t {
	case PrecipRain:
		base = h.Pop * 5
	case PrecipSnow:
		base = h.Pop * 3
	case PrecipSleet:
		base = h.Pop * 4
	}

	return math.Round(base*10) / 10
}

// PrecipitationSeries holds the bucketed precipitation chart inputs. All
// slices are the same length; Hourly is the truncated window the values were
// derived from.
type PrecipitationSeries struct {
	Labels      []string            `json:"labels"`
	Probability []float64           `json:"probability"`
	Types       []PrecipitationType `json:"types"`
	Estimated   []float64           `json:"estimated"`
	Hourly      []weather.Hourly    `json:"hourly"`
}

// ProcessPrecipitationData buckets at most the first 8 hourly samples into
// aligned label/probability/type/estimate arrays. Probabilities are
// percentages (pop × 100). An empty input yields empty (non-nil) slices.
func ProcessPrecipitationData(hourly []weather.Hourly, loc *time.Location) PrecipitationSeries {
	window := truncateHours(hourly)

	series := PrecipitationSeries{
		Labels:      make([]string, 0, len(window)),
		Probability: make([]float64, 0, len(window)),
		Types:       make([]PrecipitationType, 0, len(window)),
		Estimated:   make([]float64, 0, len(window)),
		Hourly:      window,
	}
	if series.Hourly == nil {
		series.Hourly = []weather.Hourly{}
	}

	for _, h := range window {
		series.Labels = append(series.Labels, weather.ClockLabel(h.Dt, loc))
		series.Probability = append(series.Probability, h.Pop*100)
		series.Types = append(series.Types, PrecipitationTypeOf(h))
	}
	for i, h := range window {
		series.Estimated = append(series.Estimated, EstimatedPrecipitation(h, i, series.Types))
	}
	return series
}

// BarDataset is the single bar series of the precipitation chart, with
// per-bar colors.
type BarDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     []string  `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
	BorderRadius    int       `json:"borderRadius"`
	BarThickness    int       `json:"barThickness"`
	MaxBarThickness int       `json:"maxBarThickness"`
}

// PrecipitationChartProps is the declarative configuration for the
// precipitation bar chart.
type PrecipitationChartProps struct {
	Labels        []string   `json:"labels"`
	Dataset       BarDataset `json:"dataset"`
	Title         string     `json:"title"`
	XTitle        string     `json:"xTitle"`
	YTitle        string     `json:"yTitle"`
	YTickSuffix   string     `json:"yTickSuffix"`
	YMax          int        `json:"yMax"`
	YStepSize     int        `json:"yStepSize"`
	TooltipTitles []string   `json:"tooltipTitles"`
	TooltipLines  [][]string `json:"tooltipLines"`
}

// GeneratePrecipitationChartProps builds the chart configuration from a
// bucketed precipitation series. Pure function, no I/O.
func GeneratePrecipitationChartProps(series PrecipitationSeries) PrecipitationChartProps {
	n := len(series.Labels)

	background := make([]string, 0, n)
	border := make([]string, 0, n)
	titles := make([]string, 0, n)
	lines := make([][]string, 0, n)

	for i := 0; i < n; i++ {
		prob := series.Probability[i]
		t := series.Types[i]

		background = append(background, barColor(prob, t, false))
		border = append(border, barColor(prob, t, true))
		titles = append(titles, fmt.Sprintf("Ora: %s", series.Labels[i]))

		description := ""
		if len(series.Hourly[i].Weather) > 0 {
			description = series.Hourly[i].Weather[0].Description
		}
		lines = append(lines, []string{
			fmt.Sprintf("%s: %.0f%% probabilitate", localizedTypeName(t), prob),
			fmt.Sprintf("Descriere: %s", description),
			fmt.Sprintf("Cantitate estimată: ~%v mm", series.Estimated[i]),
		})
	}

	return PrecipitationChartProps{
		Labels: series.Labels,
		Dataset: BarDataset{
			Label:           "Probabilitatea precipitațiilor (%)",
			Data:            series.Probability,
			BackgroundColor: background,
			BorderColor:     border,
			BorderWidth:     2,
			BorderRadius:    6,
			BarThickness:    30,
			MaxBarThickness: 40,
		},
		Title:         "🌧️ Probabilitatea Precipitațiilor pe 24h",
		XTitle:        "Ora",
		YTitle:        "Probabilitate (%)",
		YTickSuffix:   "%",
		YMax:          100,
		YStepSize:     20,
		TooltipTitles: titles,
		TooltipLines:  lines,
	}
}

// barColor maps a probability percentage and type to an rgba color. Hue is
// fixed per type, opacity scales linearly with probability; a zero
// probability renders a neutral grey regardless of type. Solid=true yields
// the full-opacity border variant.
func barColor(probability float64, t PrecipitationType, solid bool) string {
	if probability == 0 {
		if solid {
			return "rgba(200, 200, 200, 1)"
		}
		return "rgba(200, 200, 200, 0.3)"
	}

	var hue string
	switch t {
	case PrecipSnow:
		hue = "147, 197, 253"
	case PrecipSleet:
		hue = "156, 163, 175"
	default: // rain and anything else
		hue = "59, 130, 246"
	}

	if solid {
		return fmt.Sprintf("rgba(%s, 1)", hue)
	}
	alpha := 0.3 + (probability/100)*0.5
	return fmt.Sprintf("rgba(%s, %.2f)", hue, alpha)
}

// localizedTypeName returns the Romanian display name for a precipitation
// type, with a generic label for "none".
func localizedTypeName(t PrecipitationType) string {
	switch t {
	case PrecipRain:
		return "Ploaie"
	case PrecipSnow:
		return "Zăpadă"
	case PrecipSleet:
		return "Lapoviță"
	default:
		return "Precipitații"
	}
}
