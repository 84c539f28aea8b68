package main

import (
	"context"
	"flag"
	"fmt"
	"sync"
	"time"

	"weather-lookup/datasource"
	"weather-lookup/models"
)

// MockGeocoder is a simple mock that simulates latency and counts calls
type MockGeocoder struct {
	callCount int
	mutex     sync.Mutex
	latency   time.Duration
}

func NewMockGeocoder(latency time.Duration) *MockGeocoder {
	return &MockGeocoder{
		latency: latency,
	}
}

func (m *MockGeocoder) Geocode(ctx context.Context, city string) (models.Location, error) {
	m.mutex.Lock()
	m.callCount++
	currentCount := m.callCount
	m.mutex.Unlock()

	// Log request time
	now := time.Now()
	fmt.Printf("%s - Processing request #%d for %s\n", now.Format("15:04:05.000"), currentCount, city)

	// Simulate work/latency
	select {
	case <-time.After(m.latency):
		// Continue processing
	case <-ctx.Done():
		return models.Location{}, ctx.Err()
	}

	return models.Location{
		Name:      city,
		Latitude:  52.52,
		Longitude: 13.41,
	}, nil
}

func (m *MockGeocoder) Name() string {
	return "MockGeocoder"
}

func (m *MockGeocoder) CallCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.callCount
}

func main() {
	fmt.Println("=== Running Rate Limit Demo ===")
	fmt.Println("This demonstrates how the rate limited geocoder paces requests")

	requests := flag.Int("requests", 5, "Number of geocode requests to issue")
	rps := flag.Float64("rps", 1.0, "Requests per second allowed")
	burst := flag.Int("burst", 1, "Burst size allowed")
	flag.Parse()

	mock := NewMockGeocoder(50 * time.Millisecond)
	geocoder := datasource.NewRateLimitedGeocoder(mock, *rps, *burst)

	fmt.Printf("Issuing %d requests through %s at %.1f rps (burst %d)\n\n",
		*requests, geocoder.Name(), *rps, *burst)

	ctx := context.Background()
	start := time.Now()

	for i := 0; i < *requests; i++ {
		if _, err := geocoder.Geocode(ctx, "Berlin"); err != nil {
			fmt.Printf("Request failed: %v\n", err)
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("\nCompleted %d requests in %s (%.2f requests/second)\n",
		mock.CallCount(), elapsed.Round(time.Millisecond),
		float64(mock.CallCount())/elapsed.Seconds())
}
