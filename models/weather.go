package models

// CurrentWeather is a snapshot of present conditions at a coordinate pair
type CurrentWeather struct {
	TemperatureC float64 `json:"temperatureC"` // in Celsius
	WeatherCode  int     `json:"weatherCode"`  // WMO weather interpretation code
}

// Report is the fully resolved result of a weather lookup for a city
type Report struct {
	City         string  `json:"city"`
	TemperatureC float64 `json:"temperatureC"`
	WeatherCode  int     `json:"weatherCode"`
	Condition    string  `json:"condition"`
}
