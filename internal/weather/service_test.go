package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"hazardwatch/internal/observability"
	"hazardwatch/internal/providers/openweather"
	"hazardwatch/internal/types"
)

type mockWeatherProvider struct {
	response *openweather.CurrentWeatherAPIResponse
	err      error
}

func (m *mockWeatherProvider) GetCurrentWeather(_ context.Context, _, _ float64) (*openweather.CurrentWeatherAPIResponse, error) {
	return m.response, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func currentWeather(temp, humidity, wind, rain float64) *openweather.CurrentWeatherAPIResponse {
	resp := &openweather.CurrentWeatherAPIResponse{}
	resp.Main = &struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	}{Temp: temp, Humidity: humidity}
	resp.Wind.Speed = wind
	resp.Rain.OneHour = rain
	return resp
}

func TestWeatherService_Fetch(t *testing.T) {
	coords := types.NewCoordinates(12.34, 56.78)

	tests := []struct {
		name     string
		response *openweather.CurrentWeatherAPIResponse
		err      error
		want     types.WeatherRecord
		wantErr  error
	}{
		{
			name:     "values rounded to one decimal",
			response: currentWeather(21.57, 63.04, 4.86, 1.25),
			want: types.WeatherRecord{
				Temperature: 21.6,
				Humidity:    63.0,
				WindSpeed:   4.9,
				Rainfall:    1.3,
			},
		},
		{
			name:     "missing wind and rain default to zero",
			response: currentWeather(18.0, 70.0, 0, 0),
			want: types.WeatherRecord{
				Temperature: 18.0,
				Humidity:    70.0,
				WindSpeed:   0,
				Rainfall:    0,
			},
		},
		{
			name: "transient failure serves fallback",
			err:  errors.New("connection refused"),
			want: fallbackRecord,
		},
		{
			name:     "payload without main group serves fallback",
			response: &openweather.CurrentWeatherAPIResponse{},
			want:     fallbackRecord,
		},
		{
			name:    "auth rejection is fatal",
			err:     openweather.ErrAuthentication,
			wantErr: openweather.ErrAuthentication,
		},
		{
			name:    "unknown location is fatal",
			err:     openweather.ErrLocationNotFound,
			wantErr: openweather.ErrLocationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockWeatherProvider{response: tt.response, err: tt.err}
			service := NewWeatherService(provider, observability.NewMetricsForTesting(), testLogger())

			got, err := service.Fetch(context.Background(), coords)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Fetch() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Fetch() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Fetch() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
