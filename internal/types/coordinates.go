package types

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLocationFormat indicates the location string could not be split into two floats
	ErrInvalidLocationFormat = errors.New("invalid location format")
	// ErrCoordinatesOutOfRange indicates latitude or longitude is outside valid bounds
	ErrCoordinatesOutOfRange = errors.New("coordinates out of range")
)

// Coordinates represents a geographic point in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoordinates(latitude, longitude float64) Coordinates {
	return Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks that latitude is in [-90, 90] and longitude in [-180, 180]
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return ErrCoordinatesOutOfRange
	}
	return nil
}

// ParseLocation parses a "lat,lon" string into validated Coordinates
func ParseLocation(location string) (Coordinates, error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return Coordinates{}, ErrInvalidLocationFormat
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, ErrInvalidLocationFormat
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, ErrInvalidLocationFormat
	}

	coords := NewCoordinates(lat, lon)
	if err := coords.Validate(); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}
