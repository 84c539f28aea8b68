package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

func main() {
	fmt.Println("Weather Lookup API Client Example")
	fmt.Println("=================================")

	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the weather lookup server")
	city := flag.String("city", "Berlin", "City to look up")
	flag.Parse()

	// Check the server is up
	healthURL := fmt.Sprintf("%s/api/health", *baseURL)
	healthResp, err := http.Get(healthURL)
	if err != nil {
		fmt.Printf("Error reaching server: %v\n", err)
		os.Exit(1)
	}
	healthResp.Body.Close()

	// Look up weather for the requested city
	fmt.Printf("Fetching weather data for %s...\n", *city)
	weatherURL := fmt.Sprintf("%s/api/weather?city=%s", *baseURL, url.QueryEscape(*city))
	weatherResp, err := http.Get(weatherURL)
	if err != nil {
		fmt.Printf("Error fetching weather: %v\n", err)
		os.Exit(1)
	}
	defer weatherResp.Body.Close()

	weatherBody, _ := io.ReadAll(weatherResp.Body)

	if weatherResp.StatusCode != http.StatusOK {
		fmt.Printf("Server returned status %d: %s\n", weatherResp.StatusCode, string(weatherBody))
		return
	}

	// Parse the JSON for pretty printing
	var weatherData map[string]interface{}
	json.Unmarshal(weatherBody, &weatherData)

	prettyJSON, _ := json.MarshalIndent(weatherData, "", "  ")
	fmt.Printf("\nWeather data for %s:\n%s\n", *city, string(prettyJSON))
}
