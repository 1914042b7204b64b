package openweather

// CurrentWeatherAPIResponse mirrors the subset of the OpenWeatherMap
// current-weather payload the service consumes. Main is required; Wind and
// Rain are optional and default to zero values when absent.
type CurrentWeatherAPIResponse struct {
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Name string `json:"name"`
}

// GeoAPIResult is one entry of the reverse-geocoding response array
type GeoAPIResult struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}
