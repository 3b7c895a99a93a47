package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"time"

	"tripmood/internal/models/response_models"
)

var (
	// ErrNoAPIKey means the upstream credential is not configured.
	ErrNoAPIKey = errors.New("gateway: api key not configured")
	// ErrUpstream covers non-200 responses and transport failures.
	ErrUpstream = errors.New("gateway: upstream request failed")
	// ErrNotFound means the place could not be resolved.
	ErrNotFound = errors.New("gateway: place not found")
)

const (
	openWeatherGeoURL      = "http://api.openweathermap.org/geo/1.0/direct"
	openWeatherForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
	openTripMapBaseURL     = "https://api.opentripmap.com/0.1/en/places"
	wikipediaSummaryURL    = "https://en.wikipedia.org/api/rest_v1/page/summary/"
)

// Client fetches places, hotels and weather from the upstream APIs. Every
// method returns a typed error on failure so callers can decide whether a
// mock fallback is acceptable.
type Client interface {
	ResolveCoordinates(ctx context.Context, place string) (*response_models.Coordinates, error)
	FetchWeather(ctx context.Context, place string, days int) ([]response_models.WeatherDay, error)
	FetchPOIs(ctx context.Context, city string, interests []string, days int, mood string) ([]response_models.POI, error)
	FetchHotels(ctx context.Context, city string, budgetMin, budgetMax *int) ([]response_models.Hotel, error)
	MapLink(ctx context.Context, destination string) string
}

type client struct {
	http           *http.Client
	weatherKey     string
	openTripMapKey string
	now            func() time.Time
}

func NewClient() Client {
	return &client{
		http:           &http.Client{Timeout: 15 * time.Second},
		weatherKey:     os.Getenv("OPENWEATHER_API_KEY"),
		openTripMapKey: os.Getenv("OPENTRIPMAP_API_KEY"),
		now:            time.Now,
	}
}

func (c *client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d from %s", ErrUpstream, resp.StatusCode, rawURL)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

func (c *client) ResolveCoordinates(ctx context.Context, place string) (*response_models.Coordinates, error) {
	if c.weatherKey == "" {
		return nil, ErrNoAPIKey
	}

	u := fmt.Sprintf("%s?q=%s&limit=1&appid=%s", openWeatherGeoURL, url.QueryEscape(place), c.weatherKey)
	var results []struct {
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		Name    string  `json:"name"`
		Country string  `json:"country"`
	}
	if err := c.getJSON(ctx, u, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	return &response_models.Coordinates{Lat: results[0].Lat, Lon: results[0].Lon}, nil
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

func (c *client) FetchWeather(ctx context.Context, place string, days int) ([]response_models.WeatherDay, error) {
	coords, err := c.ResolveCoordinates(ctx, place)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=metric",
		openWeatherForecastURL, coords.Lat, coords.Lon, c.weatherKey)
	var data forecastResponse
	if err := c.getJSON(ctx, u, &data); err != nil {
		return nil, err
	}
	if len(data.List) == 0 {
		return nil, fmt.Errorf("%w: empty forecast list", ErrUpstream)
	}

	samples := make([]forecastSample, 0, len(data.List))
	for _, item := range data.List {
		desc := ""
		if len(item.Weather) > 0 {
			desc = item.Weather[0].Description
		}
		samples = append(samples, forecastSample{
			Date:        time.Unix(item.Dt, 0).Format("2006-01-02"),
			Temp:        item.Main.Temp,
			Description: desc,
		})
	}

	return AggregateForecast(samples, days, c.now()), nil
}

// forecastSample is one 3-hourly reading from the upstream forecast.
type forecastSample struct {
	Date        string
	Temp        float64
	Description string
}

// AggregateForecast groups sub-daily samples by calendar date and produces
// one entry per requested day. Days with no samples get randomized but
// plausible values.
func AggregateForecast(samples []forecastSample, days int, start time.Time) []response_models.WeatherDay {
	type bucket struct {
		temps []float64
		descs []string
	}
	buckets := make(map[string]*bucket)
	for _, s := range samples {
		b := buckets[s.Date]
		if b == nil {
			b = &bucket{}
			buckets[s.Date] = b
		}
		b.temps = append(b.temps, s.Temp)
		if s.Description != "" {
			b.descs = append(b.descs, s.Description)
		}
	}

	out := make([]response_models.WeatherDay, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		day := response_models.WeatherDay{Day: i + 1, Date: date}
		if b, ok := buckets[date]; ok && len(b.temps) > 0 {
			high, low := b.temps[0], b.temps[0]
			for _, t := range b.temps[1:] {
				high = math.Max(high, t)
				low = math.Min(low, t)
			}
			day.High = int(math.Round(high))
			day.Low = int(math.Round(low))
			day.Forecast = titleCase(mostFrequent(b.descs))
		} else {
			day.High = 24 + rand.Intn(11)
			day.Low = day.High - (4 + rand.Intn(5))
			day.Forecast = "Partly Cloudy"
		}
		out = append(out, day)
	}
	return out
}

// mostFrequent returns the description seen the most times; ties resolve to
// the first one encountered.
func mostFrequent(descs []string) string {
	if len(descs) == 0 {
		return "Partly Cloudy"
	}
	counts := make(map[string]int, len(descs))
	best, bestCount := descs[0], 0
	for _, d := range descs {
		counts[d]++
		if counts[d] > bestCount {
			best, bestCount = d, counts[d]
		}
	}
	return best
}

func titleCase(s string) string {
	out := []rune(s)
	upper := true
	for i, r := range out {
		if upper && r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
		upper = r == ' '
	}
	return string(out)
}
