package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/daily-look/internal/domain/weather"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client. An empty key makes every fetch report weather.ErrUnavailable.
func NewClient(baseURL, apiKey string) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current retrieves metric conditions for the coordinates.
func (c *Client) Current(ctx context.Context, coords weather.Coordinates) (weather.Snapshot, error) {
	if c.apiKey == "" {
		return weather.Snapshot{}, fmt.Errorf("openweather api key not configured: %w", weather.ErrUnavailable)
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', 4, 64))
	query.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', 4, 64))
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Snapshot{}, fmt.Errorf("weather request error: status=%d body=%s: %w", resp.StatusCode, string(payload), weather.ErrUnavailable)
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode weather response: %w", err)
	}
	return normalize(raw)
}

type apiResponse struct {
	Weather []weatherEntry `json:"weather"`
	Main    mainBlock      `json:"main"`
	Wind    windBlock      `json:"wind"`
}

type weatherEntry struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type windBlock struct {
	Speed float64 `json:"speed"`
}

func normalize(raw apiResponse) (weather.Snapshot, error) {
	if len(raw.Weather) == 0 {
		return weather.Snapshot{}, fmt.Errorf("weather response has no conditions: %w", weather.ErrUnavailable)
	}
	entry := raw.Weather[0]
	condition := weather.Condition(strings.TrimSpace(entry.Main))
	if condition == "" {
		condition = weather.ConditionClear
	}
	return weather.Snapshot{
		Temp:        int(math.Round(raw.Main.Temp)),
		FeelsLike:   int(math.Round(raw.Main.FeelsLike)),
		Humidity:    raw.Main.Humidity,
		Condition:   condition,
		Description: entry.Description,
		Icon:        entry.Icon,
		WindSpeed:   raw.Wind.Speed,
	}, nil
}

var _ weather.Provider = (*Client)(nil)
