package assistant

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vremea/weather-dashboard/internal/weather"
)

// FormatWeatherContext condenses a snapshot into the Romanian text block sent
// to the model as grounding context: current conditions, a 6-hour preview and
// threshold alerts.
func FormatWeatherContext(snap *weather.Snapshot) string {
	loc := snap.TimeLocation()
	cur := snap.Current

	temp := int(math.Round(cur.Temp))
	feelsLike := int(math.Round(cur.FeelsLike))
	windKmh := int(math.Round(cur.WindSpeed * 3.6))
	visibilityKm := int(math.Round(float64(cur.Visibility) / 1000))

	description := ""
	if len(cur.Weather) > 0 {
		description = cur.Weather[0].Description
	}

	var b strings.Builder
	b.WriteString("CONTEXT METEO ACTUAL:\n")
	fmt.Fprintf(&b, "📍 Locație: %s\n", snap.Location)
	fmt.Fprintf(&b, "🌡️ Temperatura: %d°C (senzație %d°C)\n", temp, feelsLike)
	fmt.Fprintf(&b, "💧 Umiditate: %d%%\n", cur.Humidity)
	fmt.Fprintf(&b, "💨 Vânt: %d km/h\n", windKmh)
	fmt.Fprintf(&b, "☁️ Condiții: %s\n", description)
	fmt.Fprintf(&b, "👁️ Vizibilitate: %d km\n", visibilityKm)
	if cur.UVI != 0 {
		fmt.Fprintf(&b, "☀️ UV Index: %s\n", strconv.FormatFloat(cur.UVI, 'f', -1, 64))
	}

	b.WriteString("\nPROGNOZA URMĂTOARELE 6 ORE:\n")
	for _, h := range nextSixHours(snap.Hourly, loc) {
		fmt.Fprintf(&b, "%s: %d°C, %s\n", h.Time, h.Temp, h.Condition)
	}

	if alerts := WeatherAlerts(snap); len(alerts) > 0 {
		fmt.Fprintf(&b, "\n🚨 ALERTE: %s\n", strings.Join(alerts, ", "))
	}

	b.WriteString("\nRăspunde pe baza acestor date actuale.")
	return b.String()
}

type hourPreview struct {
	Time      string
	Temp      int
	Condition string
	Pop       int
}

// nextSixHours previews the first six hourly samples (fewer when the input is
// shorter).
func nextSixHours(hourly []weather.Hourly, loc *time.Location) []hourPreview {
	window := hourly
	if len(window) > 6 {
		window = window[:6]
	}

	preview := make([]hourPreview, 0, len(window))
	for _, h := range window {
		condition := ""
		if len(h.Weather) > 0 {
			condition = h.Weather[0].Main
		}
		preview = append(preview, hourPreview{
			Time:      weather.ClockLabel(h.Dt, loc),
			Temp:      int(math.Round(h.Temp)),
			Condition: condition,
			Pop:       int(math.Round(h.Pop * 100)),
		})
	}
	return preview
}

// WeatherAlerts derives simple threshold alerts from the current sample plus
// the full hourly sequence. The wind threshold compares the raw m/s value
// even though the context block displays km/h; the frontend tuned its alert
// levels against that behavior, so it stays.
func WeatherAlerts(snap *weather.Snapshot) []string {
	var alerts []string

	if snap.Current.Temp > 35 {
		alerts = append(alerts, "Căldură extremă")
	}
	if snap.Current.Temp < -10 {
		alerts = append(alerts, "Ger intens")
	}
	if snap.Current.WindSpeed > 15 {
		alerts = append(alerts, "Vânt puternic")
	}
	for _, h := range snap.Hourly {
		if h.Pop > 0.8 {
			alerts = append(alerts, "Probabilitate mare de precipitații")
			break
		}
	}

	return alerts
}
