package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/vremea/weather-dashboard/internal/assistant"
	"github.com/vremea/weather-dashboard/internal/charts"
	"github.com/vremea/weather-dashboard/internal/weather"
	"github.com/vremea/weather-dashboard/internal/weather/openweather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, assist *assistant.Assistant) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		city, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snap, err := service.ByCity(c.Context(), city)
		if err != nil {
			return providerError(err)
		}
		if snap == nil {
			return fiber.NewError(fiber.StatusNotFound, "no weather data for requested location")
		}

		return c.JSON(snap)
	})

	v1.Get("/weather/coordinates", func(c *fiber.Ctx) error {
		coords, err := parseCoordsQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snap, err := service.ByCoords(c.Context(), coords.Lat, coords.Lon)
		if err != nil {
			return providerError(err)
		}

		return c.JSON(snap)
	})

	v1.Get("/charts/temperature", func(c *fiber.Ctx) error {
		snap, err := resolveSnapshot(c, service)
		if err != nil {
			return err
		}

		series := charts.ProcessTemperatureData(snap.Hourly, snap.TimeLocation())
		return c.JSON(charts.GenerateTemperatureChartProps(series))
	})

	v1.Get("/charts/precipitation", func(c *fiber.Ctx) error {
		snap, err := resolveSnapshot(c, service)
		if err != nil {
			return err
		}

		series := charts.ProcessPrecipitationData(snap.Hourly, snap.TimeLocation())
		return c.JSON(charts.GeneratePrecipitationChartProps(series))
	})

	v1.Post("/assistant/messages", func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snap, err := req.resolve(c, service)
		if err != nil {
			return err
		}

		sess := assist.Ask(c.Context(), snap, req.SessionID, req.Message)
		return c.JSON(sess)
	})
}

// providerError maps an outbound provider failure onto the API surface: a
// non-200 upstream status becomes a 502 carrying the upstream code, anything
// else a 500.
func providerError(err error) error {
	var statusErr *openweather.StatusError
	if errors.As(err, &statusErr) {
		return fiber.NewError(fiber.StatusBadGateway,
			"weather provider error: status "+strconv.Itoa(statusErr.StatusCode))
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
}

func parseCityQuery(c *fiber.Ctx) (string, error) {
	q := struct {
		City string `validate:"required"`
	}{City: c.Query("city")}

	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return q.City, nil
}

type coordsQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func parseCoordsQuery(c *fiber.Ctx) (coordsQuery, error) {
	var q coordsQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("invalid lat value")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("invalid lon value")
	}

	q.Lat = lat
	q.Lon = lon
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// resolveSnapshot resolves a snapshot from either a city or a lat/lon query,
// mirroring the two entry points of the dashboard.
func resolveSnapshot(c *fiber.Ctx, service *weather.Service) (*weather.Snapshot, error) {
	if city := c.Query("city"); city != "" {
		snap, err := service.ByCity(c.Context(), city)
		if err != nil {
			return nil, providerError(err)
		}
		if snap == nil {
			return nil, fiber.NewError(fiber.StatusNotFound, "no weather data for requested location")
		}
		return snap, nil
	}

	coords, err := parseCoordsQuery(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "city or lat/lon query parameters are required")
	}
	snap, err := service.ByCoords(c.Context(), coords.Lat, coords.Lon)
	if err != nil {
		return nil, providerError(err)
	}
	return snap, nil
}

// chatRequest is the assistant endpoint body. The snapshot the conversation
// is grounded in comes from city or coordinates, resolved through the same
// cache as the weather endpoints.
type chatRequest struct {
	SessionID string   `json:"session_id"`
	Message   string   `json:"message" validate:"required"`
	City      string   `json:"city"`
	Lat       *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lon       *float64 `json:"lon" validate:"omitempty,gte=-180,lte=180"`
}

func (r *chatRequest) resolve(c *fiber.Ctx, service *weather.Service) (*weather.Snapshot, error) {
	if r.City != "" {
		snap, err := service.ByCity(c.Context(), r.City)
		if err != nil {
			return nil, providerError(err)
		}
		if snap == nil {
			return nil, fiber.NewError(fiber.StatusNotFound, "no weather data for requested location")
		}
		return snap, nil
	}

	if r.Lat == nil || r.Lon == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "city or lat/lon is required")
	}
	snap, err := service.ByCoords(c.Context(), *r.Lat, *r.Lon)
	if err != nil {
		return nil, providerError(err)
	}
	return snap, nil
}
