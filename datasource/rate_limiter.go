package datasource

import (
	"context"
	"fmt"

	"weather-lookup/models"

	"golang.org/x/time/rate"
)

// RateLimitedGeocoder wraps a Geocoder with rate limiting
type RateLimitedGeocoder struct {
	geocoder Geocoder
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedGeocoder creates a new rate limited geocoder
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedGeocoder(geocoder Geocoder, rps float64, burst int) *RateLimitedGeocoder {
	return &RateLimitedGeocoder{
		geocoder: geocoder,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", geocoder.Name()),
	}
}

// Geocode resolves a city name, respecting rate limits
func (r *RateLimitedGeocoder) Geocode(ctx context.Context, city string) (models.Location, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Location{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying geocoder
	return r.geocoder.Geocode(ctx, city)
}

// Name returns the geocoder name
func (r *RateLimitedGeocoder) Name() string {
	return r.name
}

// RateLimitedWeatherSource wraps a WeatherSource with rate limiting
type RateLimitedWeatherSource struct {
	source  WeatherSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedWeatherSource creates a new rate limited weather source
// rps is the maximum requests per second allowed
// burst is the maximum burst size allowed
func NewRateLimitedWeatherSource(source WeatherSource, rps float64, burst int) *RateLimitedWeatherSource {
	return &RateLimitedWeatherSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchCurrent fetches current conditions, respecting rate limits
func (r *RateLimitedWeatherSource) FetchCurrent(ctx context.Context, lat, lon float64) (models.CurrentWeather, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return models.CurrentWeather{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying source
	return r.source.FetchCurrent(ctx, lat, lon)
}

// Name returns the source name
func (r *RateLimitedWeatherSource) Name() string {
	return r.name
}

// Verify that our rate limited types implement the required interfaces
var (
	_ Geocoder      = (*RateLimitedGeocoder)(nil)
	_ WeatherSource = (*RateLimitedWeatherSource)(nil)
)
