package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"weather-now/internal/weather"
)

// API Docs: https://docs.tomorrow.io/reference/realtime-weather
const realtimeURL = "https://api.tomorrow.io/v4/weather/realtime"

// TomorrowClient implements the weather.Client interface for Tomorrow.io.
type TomorrowClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewTomorrowClient creates a Tomorrow.io realtime client. The circuit
// breaker guards against a flapping upstream; it never re-issues requests.
func NewTomorrowClient(client *http.Client, apiKey string) *TomorrowClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "tomorrow",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &TomorrowClient{
		apiKey:  apiKey,
		baseURL: realtimeURL,
		client:  client,
		circuit: cb,
	}
}

// Realtime fetches current conditions for the given location query.
// Non-2xx responses come back as *weather.APIError carrying the upstream
// status and error message so the caller can classify them.
func (c *TomorrowClient) Realtime(ctx context.Context, query string) (weather.Observation, error) {
	values := url.Values{}
	values.Set("location", query)
	values.Set("apikey", c.apiKey)
	values.Set("units", "metric")

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return weather.Observation{}, err
	}
	req.Header.Set("Accept", "application/json")

	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.client.Do(req)
	})
	if err != nil {
		return weather.Observation{}, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return weather.Observation{}, fmt.Errorf("unexpected result type from circuit breaker")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload struct {
			Code    int    `json:"code"`
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		// A malformed error body still yields a classifiable status code.
		_ = json.NewDecoder(resp.Body).Decode(&payload)

		return weather.Observation{}, &weather.APIError{
			StatusCode: resp.StatusCode,
			Message:    payload.Message,
		}
	}

	var payload struct {
		Data struct {
			Time   string `json:"time"`
			Values struct {
				Temperature         *float64 `json:"temperature"`
				TemperatureApparent *float64 `json:"temperatureApparent"`
				WeatherCode         *int     `json:"weatherCode"`
			} `json:"values"`
		} `json:"data"`
		Location struct {
			Lat     float64 `json:"lat"`
			Lon     float64 `json:"lon"`
			Name    string  `json:"name"`
			Address string  `json:"address"`
		} `json:"location"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, err
	}

	return weather.Observation{
		Temperature:         payload.Data.Values.Temperature,
		TemperatureApparent: payload.Data.Values.TemperatureApparent,
		WeatherCode:         payload.Data.Values.WeatherCode,
		Name:                payload.Location.Name,
		Address:             payload.Location.Address,
	}, nil
}
