package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"weather-lookup/models"
)

// ErrNoMatch is returned by a Geocoder when the query matched no location.
var ErrNoMatch = errors.New("no matching location found")

// ErrNoCurrent is returned by a WeatherSource when the response carries no
// usable current-conditions block.
var ErrNoCurrent = errors.New("no current weather data in response")

// Geocoder is an interface for services that resolve a free-text place name
// to geographic coordinates
type Geocoder interface {
	// Geocode returns the best candidate location for the given city name
	Geocode(ctx context.Context, city string) (models.Location, error)

	// Name returns the geocoder's name
	Name() string
}

// WeatherSource is an interface for services that fetch current conditions
// for a coordinate pair
type WeatherSource interface {
	// FetchCurrent fetches the current temperature and weather code
	FetchCurrent(ctx context.Context, lat, lon float64) (models.CurrentWeather, error)

	// Name returns the source's name
	Name() string
}

// Config represents the application configuration
type Config struct {
	Nominatim struct {
		BaseURL string `json:"baseURL"`
		// UserAgent identifies this client to Nominatim. Their usage policy
		// rejects requests without contact info.
		UserAgent string `json:"userAgent"`
	} `json:"nominatim"`

	OpenMeteo struct {
		BaseURL string `json:"baseURL"`
	} `json:"openMeteo"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Nominatim.BaseURL = "https://nominatim.openstreetmap.org"
	config.Nominatim.UserAgent = "WeatherLookup (contact@example.com)"
	config.OpenMeteo.BaseURL = "https://api.open-meteo.com"
	return config
}
