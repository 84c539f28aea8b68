package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-lookup/models"
)

// OpenMeteoSource implements the WeatherSource interface against the
// Open-Meteo forecast API. No API key is required.
type OpenMeteoSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoSource creates a new Open-Meteo weather source
func NewOpenMeteoSource(baseURL string) *OpenMeteoSource {
	return &OpenMeteoSource{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the source name
func (s *OpenMeteoSource) Name() string {
	return "Open-Meteo"
}

// FetchCurrent fetches the current temperature and weather code for a
// coordinate pair
func (s *OpenMeteoSource) FetchCurrent(ctx context.Context, lat, lon float64) (models.CurrentWeather, error) {
	// Build URL
	endpoint := fmt.Sprintf("%s/v1/forecast", s.baseURL)
	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("current", "temperature_2m,weathercode")

	// Create request
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.CurrentWeather{}, fmt.Errorf("failed to create request: %w", err)
	}

	// Execute request
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return models.CurrentWeather{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.CurrentWeather{}, fmt.Errorf("failed to read response body: %w", err)
	}

	// Check for error status code
	if resp.StatusCode != http.StatusOK {
		return models.CurrentWeather{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	// Parse response. Pointer fields distinguish absent keys from zero values.
	var response struct {
		Current *struct {
			Temperature *float64 `json:"temperature_2m"`
			WeatherCode *int     `json:"weathercode"`
		} `json:"current"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.CurrentWeather{}, fmt.Errorf("failed to parse response: %w", err)
	}

	// A missing current block, or one lacking either field, is reported as
	// missing weather data rather than a raw key error.
	if response.Current == nil || response.Current.Temperature == nil || response.Current.WeatherCode == nil {
		return models.CurrentWeather{}, ErrNoCurrent
	}

	return models.CurrentWeather{
		TemperatureC: *response.Current.Temperature,
		WeatherCode:  *response.Current.WeatherCode,
	}, nil
}

// Ensure OpenMeteoSource implements the WeatherSource interface
var _ WeatherSource = (*OpenMeteoSource)(nil)
