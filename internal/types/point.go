package types

// Point is one completed risk analysis for a coordinate, bundling the weather
// snapshot, the resolved location name, and the risk verdict. Points are
// immutable once appended to the store.
type Point struct {
	ID           string        `json:"id"`
	Lat          float64       `json:"lat"`
	Lon          float64       `json:"lon"`
	LocationName string        `json:"location_name"`
	Data         WeatherRecord `json:"data"`
	RiskReport   RiskReport    `json:"risk_report"`
}
