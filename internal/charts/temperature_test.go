package charts

import (
	"testing"
	"time"

	"github.com/vremea/weather-dashboard/internal/weather"
)

func hourlySamples(n int, start int64) []weather.Hourly {
	samples := make([]weather.Hourly, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, weather.Hourly{
			Dt:        start + int64(i)*3600,
			Temp:      20 + float64(i),
			FeelsLike: 19 + float64(i),
		})
	}
	return samples
}

// TestProcessTemperatureDataTruncates verifies the fixed 8-sample window over
// a longer input.
func TestProcessTemperatureDataTruncates(t *testing.T) {
	series := ProcessTemperatureData(hourlySamples(48, 0), time.UTC)

	if len(series.Labels) != 8 {
		t.Fatalf("expected 8 labels, got %d", len(series.Labels))
	}
	if len(series.Temperatures) != 8 || len(series.FeelsLike) != 8 {
		t.Fatalf("expected aligned slices of 8, got %d and %d",
			len(series.Temperatures), len(series.FeelsLike))
	}
	if series.Labels[0] != "00:00" || series.Labels[7] != "07:00" {
		t.Errorf("unexpected label window: %v", series.Labels)
	}
}

func TestProcessTemperatureDataShortInput(t *testing.T) {
	series := ProcessTemperatureData(hourlySamples(3, 0), time.UTC)
	if len(series.Labels) != 3 {
		t.Errorf("expected 3 labels for a 3-sample input, got %d", len(series.Labels))
	}
}

func TestProcessTemperatureDataEmptyInput(t *testing.T) {
	series := ProcessTemperatureData(nil, time.UTC)

	if series.Labels == nil || series.Temperatures == nil || series.FeelsLike == nil {
		t.Fatal("expected non-nil empty slices")
	}
	if len(series.Labels) != 0 {
		t.Errorf("expected empty series, got %d labels", len(series.Labels))
	}
}

// TestProcessTemperatureDataRounding verifies round-half-away-from-zero to
// integers.
func TestProcessTemperatureDataRounding(t *testing.T) {
	hourly := []weather.Hourly{
		{Dt: 0, Temp: 21.5, FeelsLike: 20.4},
		{Dt: 3600, Temp: -0.5, FeelsLike: -1.6},
	}
	series := ProcessTemperatureData(hourly, time.UTC)

	if series.Temperatures[0] != 22 || series.Temperatures[1] != -1 {
		t.Errorf("unexpected temperatures: %v", series.Temperatures)
	}
	if series.FeelsLike[0] != 20 || series.FeelsLike[1] != -2 {
		t.Errorf("unexpected feels-like: %v", series.FeelsLike)
	}
}

func TestProcessTemperatureDataLocalizedLabels(t *testing.T) {
	loc := time.FixedZone("EET", 2*3600)
	series := ProcessTemperatureData(hourlySamples(1, 0), loc)
	if series.Labels[0] != "02:00" {
		t.Errorf("expected label in the snapshot timezone, got %q", series.Labels[0])
	}
}

func TestGenerateTemperatureChartProps(t *testing.T) {
	series := ProcessTemperatureData(hourlySamples(2, 0), time.UTC)
	props := GenerateTemperatureChartProps(series)

	if len(props.Datasets) != 2 {
		t.Fatalf("expected 2 datasets, got %d", len(props.Datasets))
	}
	if props.Datasets[0].Label != "Temperatura (°C)" {
		t.Errorf("unexpected first dataset label %q", props.Datasets[0].Label)
	}
	if props.Datasets[1].BorderDash == nil {
		t.Error("expected dashed feels-like series")
	}
	if len(props.TooltipTitles) != 2 || len(props.TooltipLines) != 2 {
		t.Fatalf("expected tooltip entries per label, got %d and %d",
			len(props.TooltipTitles), len(props.TooltipLines))
	}
	if props.TooltipTitles[0] != "Ora: 00:00" {
		t.Errorf("unexpected tooltip title %q", props.TooltipTitles[0])
	}
	if props.YTickSuffix != "°C" {
		t.Errorf("unexpected tick suffix %q", props.YTickSuffix)
	}
}
