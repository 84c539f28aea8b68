package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-lookup/datasource"
	"weather-lookup/models"
)

type fakeGeocoder struct {
	location models.Location
	err      error
	calls    int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, city string) (models.Location, error) {
	f.calls++
	return f.location, f.err
}

func (f *fakeGeocoder) Name() string { return "fake-geocoder" }

type fakeWeatherSource struct {
	current models.CurrentWeather
	err     error
	calls   int
	lastLat float64
	lastLon float64
}

func (f *fakeWeatherSource) FetchCurrent(ctx context.Context, lat, lon float64) (models.CurrentWeather, error) {
	f.calls++
	f.lastLat = lat
	f.lastLon = lon
	return f.current, f.err
}

func (f *fakeWeatherSource) Name() string { return "fake-weather" }

func TestLookup_Success(t *testing.T) {
	geocoder := &fakeGeocoder{
		location: models.Location{Name: "Berlin, Deutschland", Latitude: 52.52, Longitude: 13.41},
	}
	weather := &fakeWeatherSource{
		current: models.CurrentWeather{TemperatureC: 18.3, WeatherCode: 2},
	}

	service := NewService(geocoder, weather)
	report, err := service.Lookup(context.Background(), "Berlin")

	require.NoError(t, err)
	assert.Equal(t, "Berlin", report.City)
	assert.InDelta(t, 18.3, report.TemperatureC, 0.001)
	assert.Equal(t, 2, report.WeatherCode)
	assert.Equal(t, "Partly cloudy", report.Condition)

	// The weather fetch uses the geocoded coordinates
	assert.Equal(t, 1, weather.calls)
	assert.InDelta(t, 52.52, weather.lastLat, 0.001)
	assert.InDelta(t, 13.41, weather.lastLon, 0.001)
}

func TestLookup_UnknownCodeFallsBack(t *testing.T) {
	geocoder := &fakeGeocoder{location: models.Location{Latitude: 1, Longitude: 2}}
	weather := &fakeWeatherSource{
		current: models.CurrentWeather{TemperatureC: -4, WeatherCode: 9999},
	}

	service := NewService(geocoder, weather)
	report, err := service.Lookup(context.Background(), "Nowhere")

	require.NoError(t, err)
	assert.Equal(t, "Unknown weather condition", report.Condition)
}

func TestLookup_LocationNotFound(t *testing.T) {
	geocoder := &fakeGeocoder{err: datasource.ErrNoMatch}
	weather := &fakeWeatherSource{}

	service := NewService(geocoder, weather)
	_, err := service.Lookup(context.Background(), "Atlantis")

	require.Error(t, err)

	var notFound *LocationNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Atlantis", notFound.City)

	// No weather call after a geocoding miss
	assert.Equal(t, 0, weather.calls)
}

func TestLookup_GeocodeFetchFailure(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("failed to parse response: invalid character")}
	weather := &fakeWeatherSource{}

	service := NewService(geocoder, weather)
	_, err := service.Lookup(context.Background(), "Berlin")

	require.Error(t, err)

	// Transport/parse failures are not typed as not-found or unavailable
	var notFound *LocationNotFoundError
	assert.False(t, errors.As(err, &notFound))
	var unavailable *WeatherUnavailableError
	assert.False(t, errors.As(err, &unavailable))

	assert.Equal(t, 0, weather.calls)
}

func TestLookup_WeatherUnavailable(t *testing.T) {
	geocoder := &fakeGeocoder{location: models.Location{Latitude: 52.52, Longitude: 13.41}}
	weather := &fakeWeatherSource{err: datasource.ErrNoCurrent}

	service := NewService(geocoder, weather)
	_, err := service.Lookup(context.Background(), "Berlin")

	require.Error(t, err)

	var unavailable *WeatherUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Berlin", unavailable.City)
	assert.ErrorIs(t, err, datasource.ErrNoCurrent)
}
