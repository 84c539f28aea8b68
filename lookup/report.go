package lookup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-lookup/models"
)

// Render formats a report as three lines: a title-cased city header, a
// temperature line in degrees Celsius, and a condition line. The returned
// string has no trailing newline.
func Render(report models.Report) string {
	// cases.Caser is not safe for concurrent use, so build one per call
	city := cases.Title(language.English).String(report.City)
	temperature := strconv.FormatFloat(report.TemperatureC, 'f', -1, 64)

	var b strings.Builder
	fmt.Fprintf(&b, "Weather in %s:\n", city)
	fmt.Fprintf(&b, "Temperature: %s°C\n", temperature)
	fmt.Fprintf(&b, "Condition: %s", report.Condition)
	return b.String()
}

// ErrorMessage converts a lookup failure into its user-facing console
// message. Every failure mode maps to one of three fixed messages.
func ErrorMessage(err error) string {
	var notFound *LocationNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("Error: Unable to find location data for '%s'. Please check the city name.", notFound.City)
	}

	var unavailable *WeatherUnavailableError
	if errors.As(err, &unavailable) {
		return fmt.Sprintf("Error: Unable to retrieve weather data for '%s'.", unavailable.City)
	}

	return "Error: Unable to fetch location data. Try again later."
}
