// Package lookup runs the city-to-report pipeline: geocode the city name,
// fetch current conditions at the resolved coordinates, translate the
// weather code.
package lookup

import (
	"context"
	"errors"
	"fmt"

	"weather-lookup/conditions"
	"weather-lookup/datasource"
	"weather-lookup/models"
)

// LocationNotFoundError indicates the geocoder matched no location for the
// supplied city name.
type LocationNotFoundError struct {
	City string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("no location found for %q", e.City)
}

// WeatherUnavailableError indicates weather data could not be retrieved for
// a successfully geocoded city.
type WeatherUnavailableError struct {
	City string
	Err  error
}

func (e *WeatherUnavailableError) Error() string {
	return fmt.Sprintf("weather data unavailable for %q", e.City)
}

func (e *WeatherUnavailableError) Unwrap() error {
	return e.Err
}

// Service performs weather lookups. Each lookup is independent and
// stateless; the service only holds its two providers.
type Service struct {
	geocoder datasource.Geocoder
	weather  datasource.WeatherSource
}

// NewService creates a lookup service over the given providers
func NewService(geocoder datasource.Geocoder, weather datasource.WeatherSource) *Service {
	return &Service{
		geocoder: geocoder,
		weather:  weather,
	}
}

// Lookup resolves a city name to a weather report. The two upstream calls
// are strictly sequential: the weather fetch only starts once geocoding has
// yielded coordinates, and a geocoding failure means the weather endpoint is
// never called.
func (s *Service) Lookup(ctx context.Context, city string) (models.Report, error) {
	location, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		if errors.Is(err, datasource.ErrNoMatch) {
			return models.Report{}, &LocationNotFoundError{City: city}
		}
		return models.Report{}, fmt.Errorf("failed to fetch location data: %w", err)
	}

	current, err := s.weather.FetchCurrent(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return models.Report{}, &WeatherUnavailableError{City: city, Err: err}
	}

	return models.Report{
		City:         city,
		TemperatureC: current.TemperatureC,
		WeatherCode:  current.WeatherCode,
		Condition:    conditions.Describe(current.WeatherCode),
	}, nil
}
