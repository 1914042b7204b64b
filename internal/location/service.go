package location

import (
	"context"
	"fmt"
	"log/slog"

	"hazardwatch/internal/observability"
	"hazardwatch/internal/providers/openweather"
	"hazardwatch/internal/types"
)

// ReverseGeocodeProvider defines the interface for reverse-geocoding providers
type ReverseGeocodeProvider interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) ([]openweather.GeoAPIResult, error)
}

// Service resolves coordinates to human-readable place names
type Service interface {
	// ResolveName returns a display name for the coordinate. It never fails:
	// an empty result set or any provider error degrades to a synthesized
	// "Location <lat>, <lon>" label.
	ResolveName(ctx context.Context, coords types.Coordinates) string
}

type locationService struct {
	provider ReverseGeocodeProvider
	metrics  *observability.Metrics
	logger   *slog.Logger
}

func NewLocationService(provider ReverseGeocodeProvider, metrics *observability.Metrics, logger *slog.Logger) Service {
	return &locationService{
		provider: provider,
		metrics:  metrics,
		logger:   logger.With("component", "location-service"),
	}
}

func (s *locationService) ResolveName(ctx context.Context, coords types.Coordinates) string {
	results, err := s.provider.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("reverse geocoding failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		s.metrics.GeocodeFallbacks.Inc()
		return fallbackLabel(coords)
	}

	if len(results) == 0 {
		s.metrics.GeocodeFallbacks.Inc()
		return fallbackLabel(coords)
	}

	place := results[0]
	if place.State != "" {
		return fmt.Sprintf("%s, %s, %s", place.Name, place.State, place.Country)
	}
	return fmt.Sprintf("%s, %s", place.Name, place.Country)
}

func fallbackLabel(coords types.Coordinates) string {
	return fmt.Sprintf("Location %.3f, %.3f", coords.Latitude, coords.Longitude)
}
