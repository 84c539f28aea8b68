package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"weather-lookup/api"
	"weather-lookup/datasource"
	"weather-lookup/lookup"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	serve := flag.Bool("serve", false, "Run the HTTP API server instead of the interactive prompt")
	port := flag.Int("port", 8080, "Port to run the server on")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	flag.Parse()

	// Load configuration, falling back to defaults when no file is present
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		config = datasource.DefaultConfig()
	}

	// A contact address from the environment overrides the configured
	// Nominatim User-Agent; their usage policy wants reachable operators
	if contact := os.Getenv("WEATHER_CONTACT"); contact != "" {
		config.Nominatim.UserAgent = fmt.Sprintf("WeatherLookup (%s)", contact)
	}

	// Create the providers
	var geocoder datasource.Geocoder = datasource.NewNominatimGeocoder(config.Nominatim.BaseURL, config.Nominatim.UserAgent)
	var weather datasource.WeatherSource = datasource.NewOpenMeteoSource(config.OpenMeteo.BaseURL)

	// Apply rate limiting if enabled
	if *enableRateLimiting {
		// Nominatim's usage policy allows at most 1 request per second
		geocoder = datasource.NewRateLimitedGeocoder(geocoder, 1.0, 1)
		log.Println("Applied rate limiting to Nominatim geocoder")
	}

	service := lookup.NewService(geocoder, weather)

	if *serve {
		runServer(service, *port)
		return
	}

	runPrompt(service)
}

// runPrompt reads one city name from standard input and prints either a
// weather report or an error message. All paths terminate normally.
func runPrompt(service *lookup.Service) {
	fmt.Print("Enter city name: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return
	}
	city := strings.TrimSpace(scanner.Text())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := service.Lookup(ctx, city)
	if err != nil {
		fmt.Println(lookup.ErrorMessage(err))
		return
	}

	fmt.Println(lookup.Render(report))
}

// runServer runs the HTTP API until an interrupt or termination signal
func runServer(service *lookup.Service, port int) {
	server := api.NewServer(service, port)

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdownChan
	fmt.Printf("Shutting down due to %s signal\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	fmt.Println("Shutdown complete")
}
