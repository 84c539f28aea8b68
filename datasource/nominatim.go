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

// NominatimGeocoder implements the Geocoder interface against the
// OpenStreetMap Nominatim search API
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimGeocoder creates a new Nominatim geocoder. The userAgent must
// identify the client and carry contact info per Nominatim's usage policy.
func NewNominatimGeocoder(baseURL, userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the geocoder name
func (g *NominatimGeocoder) Name() string {
	return "Nominatim"
}

// Geocode resolves a city name to the coordinates of the first search result
func (g *NominatimGeocoder) Geocode(ctx context.Context, city string) (models.Location, error) {
	// Build URL
	endpoint := fmt.Sprintf("%s/search", g.baseURL)
	params := url.Values{}
	params.Add("city", city)
	params.Add("format", "json")

	// Create request
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	// Execute request
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to read response body: %w", err)
	}

	// Check for error status code
	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	// Parse response. Nominatim sends lat/lon as JSON strings.
	var response []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.Location{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response) == 0 {
		return models.Location{}, ErrNoMatch
	}

	// Only the first candidate is used
	first := response[0]

	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to parse latitude %q: %w", first.Lat, err)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to parse longitude %q: %w", first.Lon, err)
	}

	return models.Location{
		Name:      first.DisplayName,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// Ensure NominatimGeocoder implements the Geocoder interface
var _ Geocoder = (*NominatimGeocoder)(nil)
