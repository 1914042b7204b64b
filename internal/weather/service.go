package weather

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"hazardwatch/internal/observability"
	"hazardwatch/internal/providers/openweather"
	"hazardwatch/internal/types"
)

// CurrentWeatherProvider defines the interface for current-conditions providers
type CurrentWeatherProvider interface {
	GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*openweather.CurrentWeatherAPIResponse, error)
}

// Service normalizes upstream weather data for risk scoring
type Service interface {
	// Fetch returns current conditions for the coordinate. Transient upstream
	// trouble resolves to a fixed fallback record so scoring always proceeds;
	// only an upstream auth rejection or an unknown location fails the caller.
	Fetch(ctx context.Context, coords types.Coordinates) (types.WeatherRecord, error)
}

// fallbackRecord is served whenever the upstream is unreachable or malformed
var fallbackRecord = types.WeatherRecord{
	Temperature: 25.0,
	Humidity:    60.0,
	WindSpeed:   5.0,
	Rainfall:    0.0,
}

type weatherService struct {
	provider CurrentWeatherProvider
	metrics  *observability.Metrics
	logger   *slog.Logger
}

func NewWeatherService(provider CurrentWeatherProvider, metrics *observability.Metrics, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		metrics:  metrics,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Fetch(ctx context.Context, coords types.Coordinates) (types.WeatherRecord, error) {
	resp, err := s.provider.GetCurrentWeather(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		// Key rejection and unknown locations are fatal, never faked
		if errors.Is(err, openweather.ErrAuthentication) || errors.Is(err, openweather.ErrLocationNotFound) {
			return types.WeatherRecord{}, err
		}

		s.logger.Warn("weather fetch failed, using fallback record",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		s.metrics.WeatherFallbacks.Inc()
		return fallbackRecord, nil
	}

	// The "main" group is required; a payload without it is malformed
	if resp == nil || resp.Main == nil {
		s.logger.Warn("weather payload missing required fields, using fallback record",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
		)
		s.metrics.WeatherFallbacks.Inc()
		return fallbackRecord, nil
	}

	return types.WeatherRecord{
		Temperature: round1(resp.Main.Temp),
		Humidity:    round1(resp.Main.Humidity),
		WindSpeed:   round1(resp.Wind.Speed),
		Rainfall:    round1(resp.Rain.OneHour),
	}, nil
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
