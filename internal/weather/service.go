package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// User-facing lookup failures. The HTTP layer forwards these messages as-is.
var (
	ErrKeyNotSet   = errors.New("API key not set. Add TOMORROW_API_KEY to your environment")
	ErrInvalidKey  = errors.New("Invalid API key. Check TOMORROW_API_KEY")
	ErrRateLimited = errors.New("Too many requests to the weather service. Try again shortly")
	ErrNotFound    = errors.New("Location not found")
	ErrUpstream    = errors.New("Could not fetch weather data")
)

// Service resolves a free-form location to a normalized weather report.
type Service struct {
	client Client
	apiKey string
	log    zerolog.Logger
}

// NewService creates a new Service. An empty apiKey marks the lookup as
// unconfigured; Fetch then fails without touching the network.
func NewService(client Client, apiKey string, log zerolog.Logger) *Service {
	return &Service{
		client: client,
		apiKey: apiKey,
		log:    log,
	}
}

// Fetch normalizes the location, queries the upstream, and maps the response
// into a Report. A "not found" answer for a query with a country suffix is
// retried exactly once with the city portion alone; no other retries happen.
func (s *Service) Fetch(ctx context.Context, location string) (Report, error) {
	if s.apiKey == "" {
		return Report{}, ErrKeyNotSet
	}

	query := Normalize(location)

	obs, err := s.client.Realtime(ctx, query)
	if err == nil {
		return buildReport(query, obs), nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		// Transport-level failure: no response to classify.
		s.log.Error().Err(err).Str("query", query).Msg("weather upstream request failed")
		return Report{}, err
	}

	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return Report{}, ErrInvalidKey

	case http.StatusTooManyRequests:
		return Report{}, ErrRateLimited

	case http.StatusBadRequest, http.StatusNotFound:
		// The full "city,CC" query was rejected; try the city alone.
		if city, _, found := strings.Cut(query, ","); found {
			retryObs, retryErr := s.client.Realtime(ctx, city)
			if retryErr == nil {
				return buildReport(city, retryObs), nil
			}
		}
		if apiErr.Message != "" {
			return Report{}, apiErr
		}
		return Report{}, ErrNotFound

	default:
		s.log.Error().
			Int("status", apiErr.StatusCode).
			Str("message", apiErr.Message).
			Str("query", query).
			Msg("unexpected weather upstream error")
		if apiErr.Message != "" {
			return Report{}, apiErr
		}
		return Report{}, ErrUpstream
	}
}

// buildReport maps a provider observation onto the client-facing Report.
func buildReport(query string, obs Observation) Report {
	temp := obs.Temperature
	if temp == nil {
		temp = obs.TemperatureApparent
	}
	temperature := "—°C"
	if temp != nil {
		temperature = fmt.Sprintf("%.2f°C", *temp)
	}

	city := obs.Name
	if city == "" {
		city = obs.Address
	}
	if city == "" {
		city = query
		if before, _, found := strings.Cut(query, ","); found {
			city = before
		}
	}

	return Report{
		City:        city,
		Temperature: temperature,
		Description: DescribeCode(obs.WeatherCode),
	}
}
