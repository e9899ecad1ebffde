// Package charts turns raw hourly forecasts into chart-ready parallel arrays
// and declarative chart configurations for the dashboard frontend.
package charts

import (
	"fmt"
	"math"
	"time"

	"github.com/vremea/weather-dashboard/internal/weather"
)

// maxHours caps every chart at the first 8 hourly samples.
const maxHours = 8

// TemperatureSeries holds the bucketed temperature chart inputs. The three
// slices are always the same length.
type TemperatureSeries struct {
	Labels       []string `json:"labels"`
	Temperatures []int    `json:"temperatures"`
	FeelsLike    []int    `json:"feelsLike"`
}

// ProcessTemperatureData buckets at most the first 8 hourly samples into
// label/temperature/feels-like arrays. Temperatures are rounded to the
// nearest integer, labels are "HH:MM" in loc. An empty input yields empty
// (non-nil) slices.
func ProcessTemperatureData(hourly []weather.Hourly, loc *time.Location) TemperatureSeries {
	window := truncateHours(hourly)

	series := TemperatureSeries{
		Labels:       make([]string, 0, len(window)),
		Temperatures: make([]int, 0, len(window)),
		FeelsLike:    make([]int, 0, len(window)),
	}
	for _, h := range window {
		series.Labels = append(series.Labels, weather.ClockLabel(h.Dt, loc))
		series.Temperatures = append(series.Temperatures, int(math.Round(h.Temp)))
		series.FeelsLike = append(series.FeelsLike, int(math.Round(h.FeelsLike)))
	}
	return series
}

// truncateHours takes the leading samples, never more than maxHours. No
// sampling or interpolation.
func truncateHours(hourly []weather.Hourly) []weather.Hourly {
	if len(hourly) > maxHours {
		return hourly[:maxHours]
	}
	return hourly
}

// LineDataset is one line series in a chart.js-style configuration.
type LineDataset struct {
	Label                string  `json:"label"`
	Data                 []int   `json:"data"`
	BorderColor          string  `json:"borderColor"`
	BackgroundColor      string  `json:"backgroundColor"`
	BorderWidth          int     `json:"borderWidth"`
	PointBackgroundColor string  `json:"pointBackgroundColor"`
	PointBorderColor     string  `json:"pointBorderColor"`
	PointBorderWidth     int     `json:"pointBorderWidth"`
	PointRadius          int     `json:"pointRadius"`
	PointHoverRadius     int     `json:"pointHoverRadius"`
	Tension              float64 `json:"tension"`
	Fill                 bool    `json:"fill"`
	BorderDash           []int   `json:"borderDash,omitempty"`
}

// TemperatureChartProps is the declarative configuration for the temperature
// line chart: series, axis formatting and precomputed tooltip lines.
type TemperatureChartProps struct {
	Labels        []string      `json:"labels"`
	Datasets      []LineDataset `json:"datasets"`
	Title         string        `json:"title"`
	XTitle        string        `json:"xTitle"`
	YTitle        string        `json:"yTitle"`
	YTickSuffix   string        `json:"yTickSuffix"`
	TooltipTitles []string      `json:"tooltipTitles"`
	TooltipLines  [][]string    `json:"tooltipLines"`
}

// GenerateTemperatureChartProps builds the chart configuration from a
// bucketed temperature series. Pure function, no I/O.
func GenerateTemperatureChartProps(series TemperatureSeries) TemperatureChartProps {
	datasets := []LineDataset{
		{
			Label:                "Temperatura (°C)",
			Data:                 series.Temperatures,
			BorderColor:          "rgb(75, 192, 192)",
			BackgroundColor:      "rgba(75, 192, 192, 0.1)",
			BorderWidth:          3,
			PointBackgroundColor: "rgb(75, 192, 192)",
			PointBorderColor:     "#fff",
			PointBorderWidth:     2,
			PointRadius:          6,
			PointHoverRadius:     8,
			Tension:              0.4,
			Fill:                 true,
		},
		{
			Label:                "Senzație termică (°C)",
			Data:                 series.FeelsLike,
			BorderColor:          "rgb(255, 99, 132)",
			BackgroundColor:      "rgba(255, 99, 132, 0.05)",
			BorderWidth:          2,
			PointBackgroundColor: "rgb(255, 99, 132)",
			PointBorderColor:     "#fff",
			PointBorderWidth:     2,
			PointRadius:          4,
			PointHoverRadius:     6,
			Tension:              0.4,
			BorderDash:           []int{5, 5},
		},
	}

	titles := make([]string, 0, len(series.Labels))
	lines := make([][]string, 0, len(series.Labels))
	for i, label := range series.Labels {
		titles = append(titles, fmt.Sprintf("Ora: %s", label))
		lines = append(lines, []string{
			fmt.Sprintf("Temperatura (°C): %d°C", series.Temperatures[i]),
			fmt.Sprintf("Senzație termică (°C): %d°C", series.FeelsLike[i]),
		})
	}

	return TemperatureChartProps{
		Labels:        series.Labels,
		Datasets:      datasets,
		Title:         "🌡️ Temperatura pe următoarele 24 ore",
		XTitle:        "Ora",
		YTitle:        "Temperatura (°C)",
		YTickSuffix:   "°C",
		TooltipTitles: titles,
		TooltipLines:  lines,
	}
}
