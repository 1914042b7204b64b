package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://openweathermap.org/current and https://openweathermap.org/api/geocoding-api
// Sample request: https://api.openweathermap.org/data/2.5/weather?lat=12.34&lon=56.78&units=metric&appid=KEY
const (
	baseWeatherURL = "https://api.openweathermap.org/data/2.5/weather"
	baseGeoURL     = "https://api.openweathermap.org/geo/1.0/reverse"

	weatherTimeout = 10 * time.Second
	geocodeTimeout = 5 * time.Second
)

var (
	// ErrAuthentication indicates the API key was rejected (HTTP 401)
	ErrAuthentication = errors.New("weather API authentication failed")
	// ErrLocationNotFound indicates the upstream does not know the location (HTTP 404)
	ErrLocationNotFound = errors.New("location not found")
)

type Client struct {
	weatherClient *http.Client
	geoClient     *http.Client
	weatherURL    string
	geoURL        string
	apiKey        string
	logger        *slog.Logger
}

func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		weatherClient: &http.Client{Timeout: weatherTimeout},
		geoClient:     &http.Client{Timeout: geocodeTimeout},
		weatherURL:    baseWeatherURL,
		geoURL:        baseGeoURL,
		apiKey:        apiKey,
		logger:        logger.With("component", "openweather-client"),
	}
}

// NewClientWithURLs creates a client pointed at custom endpoints, used by tests
func NewClientWithURLs(apiKey, weatherURL, geoURL string, logger *slog.Logger) *Client {
	c := NewClient(apiKey, logger)
	c.weatherURL = weatherURL
	c.geoURL = geoURL
	return c
}

// GetCurrentWeather fetches current conditions for the coordinate in metric units.
// HTTP 401 and 404 are returned as ErrAuthentication and ErrLocationNotFound so
// the caller can distinguish fatal upstream rejections from transient trouble.
func (c *Client) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*CurrentWeatherAPIResponse, error) {
	u, err := url.Parse(c.weatherURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching current weather",
		"latitude", latitude,
		"longitude", longitude,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.weatherClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch current weather",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		c.logger.Error("weather API key rejected", "status_code", resp.StatusCode)
		return nil, ErrAuthentication
	case http.StatusNotFound:
		c.logger.Error("weather API location not found",
			"latitude", latitude,
			"longitude", longitude,
		)
		return nil, ErrLocationNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("weather API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp CurrentWeatherAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// ReverseGeocode resolves the coordinate to at most one named place
func (c *Client) ReverseGeocode(ctx context.Context, latitude, longitude float64) ([]GeoAPIResult, error) {
	u, err := url.Parse(c.geoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.geoClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []GeoAPIResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return results, nil
}
