package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-lookup/lookup"
	"weather-lookup/models"
)

type fakeLookuper struct {
	report models.Report
	err    error
	calls  int
}

func (f *fakeLookuper) Lookup(ctx context.Context, city string) (models.Report, error) {
	f.calls++
	return f.report, f.err
}

func TestHandleGetWeather_Success(t *testing.T) {
	fake := &fakeLookuper{
		report: models.Report{City: "Berlin", TemperatureC: 18.3, WeatherCode: 2, Condition: "Partly cloudy"},
	}
	s := NewServer(fake, 0)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/weather?city=Berlin", nil)
	s.handleGetWeather(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var report models.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "Berlin", report.City)
	assert.InDelta(t, 18.3, report.TemperatureC, 0.001)
	assert.Equal(t, "Partly cloudy", report.Condition)
}

func TestHandleGetWeather_MissingCity(t *testing.T) {
	fake := &fakeLookuper{}
	s := NewServer(fake, 0)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/weather", nil)
	s.handleGetWeather(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, fake.calls)
}

func TestHandleGetWeather_LocationNotFound(t *testing.T) {
	fake := &fakeLookuper{err: &lookup.LocationNotFoundError{City: "Atlantis"}}
	s := NewServer(fake, 0)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/weather?city=Atlantis", nil)
	s.handleGetWeather(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Atlantis")
}

func TestHandleGetWeather_UpstreamFailure(t *testing.T) {
	fake := &fakeLookuper{err: errors.New("failed to fetch location data")}
	s := NewServer(fake, 0)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/weather?city=Berlin", nil)
	s.handleGetWeather(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestHandleGetWeather_MethodNotAllowed(t *testing.T) {
	fake := &fakeLookuper{}
	s := NewServer(fake, 0)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/weather?city=Berlin", nil)
	s.handleGetWeather(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, 0, fake.calls)
}

func TestHandleHealthCheck(t *testing.T) {
	s := NewServer(&fakeLookuper{}, 0)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	s.handleHealthCheck(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
