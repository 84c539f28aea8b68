package models

// Location is a single geocoding candidate resolved from a place name.
// Coordinates are in decimal degrees.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
