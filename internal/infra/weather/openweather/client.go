package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
	"github.com/yanqian/outfit-advisor/pkg/util"
)

const (
	defaultBaseURL     = "https://api.openweathermap.org/data/2.5/weather"
	defaultDescription = "No description available"
	maxErrorBody       = 512
)

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL, apiKey string) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current retrieves the observation for a location in metric units.
func (c *Client) Current(ctx context.Context, location string) (wardrobe.Observation, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return wardrobe.Observation{}, errors.New("location cannot be empty")
	}
	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return wardrobe.Observation{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wardrobe.Observation{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return wardrobe.Observation{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, util.Truncate(string(payload), maxErrorBody))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return wardrobe.Observation{}, fmt.Errorf("decode weather response: %w", err)
	}
	if raw.Main.Temp == nil {
		return wardrobe.Observation{}, errors.New("weather response missing temperature")
	}

	description := defaultDescription
	if len(raw.Weather) > 0 && strings.TrimSpace(raw.Weather[0].Description) != "" {
		description = raw.Weather[0].Description
	}
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = location
	}
	return wardrobe.Observation{
		Location:     name,
		Description:  description,
		TemperatureC: *raw.Main.Temp,
	}, nil
}

type apiResponse struct {
	Name    string       `json:"name"`
	Main    apiMain      `json:"main"`
	Weather []apiWeather `json:"weather"`
}

type apiMain struct {
	Temp *float64 `json:"temp"`
}

type apiWeather struct {
	Description string `json:"description"`
}

var _ wardrobe.WeatherClient = (*Client)(nil)
