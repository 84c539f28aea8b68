package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"weather-lookup/lookup"
	"weather-lookup/models"
)

// Lookuper is the lookup capability the server needs
type Lookuper interface {
	Lookup(ctx context.Context, city string) (models.Report, error)
}

// Server represents the API server
type Server struct {
	lookups Lookuper
	server  *http.Server
}

// NewServer creates a new API server
func NewServer(lookups Lookuper, port int) *Server {
	mux := http.NewServeMux()

	server := &Server{
		lookups: lookups,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	// Register handler for current weather by city
	mux.HandleFunc("/api/weather", server.handleGetWeather)

	// Health check
	mux.HandleFunc("/api/health", server.handleHealthCheck)

	return server
}

// Start begins the API server
func (s *Server) Start() error {
	fmt.Printf("Starting API server on %s\n", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops the API server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleGetWeather handles requests for current weather by city name
func (s *Server) handleGetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		http.Error(w, "City not specified", http.StatusBadRequest)
		return
	}

	// Bound the lookup; its two upstream calls run sequentially
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	report, err := s.lookups.Lookup(ctx, city)

	w.Header().Set("Content-Type", "application/json")

	if err != nil {
		status := http.StatusBadGateway
		message := fmt.Sprintf("Unable to retrieve weather data for: %s", city)

		var notFound *lookup.LocationNotFoundError
		if errors.As(err, &notFound) {
			status = http.StatusNotFound
			message = fmt.Sprintf("No location found for: %s", city)
		}

		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{
			"error": message,
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
