package openweather

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/types"
)

// API Docs: https://openweathermap.org/current
// Sample request: https://api.openweathermap.org/data/2.5/weather?lat=59.91&lon=10.75&units=metric&appid=KEY
const (
	baseWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

	// Bounded so a slow upstream cannot block the endpoint indefinitely.
	requestTimeout = 15 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates an OpenWeather client. The API key is injected
// rather than read from ambient settings so the client is testable and
// the key has a single owner (the configuration).
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseWeatherURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "openweather-client"),
	}
}

// GetCurrent fetches current conditions for the given coordinate pair in
// the requested unit system. String fields of the response are
// HTML-escaped before return. Transport errors, non-200 statuses and
// malformed bodies are all returned as errors; the client performs no
// caching and no unit conversion of its own.
func (c *Client) GetCurrent(latitude, longitude float64, units types.Units) (*CurrentAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("units", string(units))
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching current weather",
		"latitude", latitude,
		"longitude", longitude,
		"units", units,
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch current weather", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("weather API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp CurrentAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode weather response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	apiResp.sanitize()

	return &apiResp, nil
}
