package types

// WeatherRecord is a normalized snapshot of current conditions at a point.
// Temperature is in °C, humidity in %, wind speed in m/s, rainfall in mm.
// All values are rounded to one decimal place by the weather service.
type WeatherRecord struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Rainfall    float64 `json:"rainfall"`
}
