// Package openweather implements the weather.Provider interface against the
// OpenWeather geocoding and One Call 3.0 HTTP APIs.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/vremea/weather-dashboard/internal/weather"
)

const defaultBaseURL = "https://api.openweathermap.org"

// StatusError reports a non-200 response from the provider. The numeric
// status is kept so callers can map it onto their own error surface.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// Config bundles the client settings. BaseURL defaults to the public API,
// RequestsPerSecond/Burst default to an unthrottled limiter.
type Config struct {
	APIKey            string
	BaseURL           string
	RequestsPerSecond float64
	Burst             int
}

// Client talks to the OpenWeather API. Outbound calls pass through a rate
// limiter and a circuit breaker; each call is a single attempt, a failed
// request is surfaced to the caller rather than retried.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates an OpenWeather client on top of a shared *http.Client.
func NewClient(httpClient *http.Client, cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = float64(rate.Inf)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		circuit:    cb,
	}
}

// DirectGeocode implements weather.Provider.
func (c *Client) DirectGeocode(ctx context.Context, city string) ([]weather.GeoCandidate, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("limit", "5")
	values.Set("appid", c.apiKey)
	values.Set("lang", "ro")

	var candidates []weather.GeoCandidate
	if err := c.get(ctx, "/geo/1.0/direct", values, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// ReverseGeocode implements weather.Provider. An empty candidate list is a
// valid result.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) ([]weather.GeoCandidate, error) {
	values := url.Values{}
	values.Set("lat", formatCoord(lat))
	values.Set("lon", formatCoord(lon))
	values.Set("limit", "1")
	values.Set("appid", c.apiKey)

	var candidates []weather.GeoCandidate
	if err := c.get(ctx, "/geo/1.0/reverse", values, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// OneCall implements weather.Provider.
func (c *Client) OneCall(ctx context.Context, lat, lon float64) (*weather.OneCall, error) {
	values := url.Values{}
	values.Set("lat", formatCoord(lat))
	values.Set("lon", formatCoord(lon))
	values.Set("units", "metric")
	values.Set("lang", "ro")
	values.Set("appid", c.apiKey)

	var oc weather.OneCall
	if err := c.get(ctx, "/data/3.0/onecall", values, &oc); err != nil {
		return nil, err
	}
	return &oc, nil
}

// get performs one rate-limited GET through the circuit breaker and decodes
// the body into out. A non-200 status becomes a StatusError.
func (c *Client) get(ctx context.Context, path string, values url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())

	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return fmt.Errorf("unexpected result type from circuit breaker")
	}
	return json.Unmarshal(body, out)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
