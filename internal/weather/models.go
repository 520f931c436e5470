package weather

import (
	"context"
	"fmt"
)

// Report is the normalized weather summary returned to API clients.
type Report struct {
	City        string `json:"city"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
}

// Observation is a provider's resolved reading for a single query.
// Optional fields are pointers so an absent value can be told apart from zero.
type Observation struct {
	Temperature         *float64
	TemperatureApparent *float64
	WeatherCode         *int

	// Resolved place, as reported by the provider.
	Name    string
	Address string
}

// Client abstracts the realtime weather upstream.
type Client interface {
	Realtime(ctx context.Context, query string) (Observation, error)
}

// APIError is a non-2xx response from the weather upstream.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("weather upstream returned status %d", e.StatusCode)
}

// weatherCodes maps Tomorrow.io weather codes to descriptions.
var weatherCodes = map[int]string{
	0:    "Unknown",
	1000: "Clear, Sunny",
	1100: "Mostly Clear",
	1101: "Partly Cloudy",
	1102: "Mostly Cloudy",
	1001: "Cloudy",
	2000: "Fog",
	2100: "Light Fog",
	3000: "Light Wind",
	3001: "Wind",
	3002: "Strong Wind",
	4000: "Drizzle",
	4001: "Rain",
	4200: "Light Rain",
	4201: "Heavy Rain",
	5000: "Snow",
	5001: "Flurries",
	5100: "Light Snow",
	5101: "Heavy Snow",
	6000: "Freezing Drizzle",
	6001: "Freezing Rain",
	6200: "Light Freezing Rain",
	6201: "Heavy Freezing Rain",
	7000: "Ice Pellets",
	7101: "Heavy Ice Pellets",
	7102: "Light Ice Pellets",
	8000: "Thunderstorm",
}

// DescribeCode resolves a provider weather code to a human-readable string.
// A nil code means the provider sent none.
func DescribeCode(code *int) string {
	if code == nil {
		return "N/A"
	}
	if desc, ok := weatherCodes[*code]; ok {
		return desc
	}
	return fmt.Sprintf("Weather code %d", *code)
}
