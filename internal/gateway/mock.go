package gateway

import (
	"fmt"
	"math/rand"
	"strings"

	"tripmood/internal/models/response_models"
)

// Mock generators cover the no-credential and upstream-failure paths. The
// shapes are deterministic, the values are randomized.

var mockWeatherTypes = []string{
	"Sunny", "Partly Cloudy", "Cloudy", "Light Rain", "Clear Sky",
	"Overcast", "Misty", "Foggy", "Thunderstorm", "Drizzle",
}

func MockWeather(destination string, days int) []response_models.WeatherDay {
	out := make([]response_models.WeatherDay, 0, days)
	for i := 0; i < days; i++ {
		high := 25 + rand.Intn(10)
		out = append(out, response_models.WeatherDay{
			Day:      i + 1,
			Forecast: mockWeatherTypes[rand.Intn(len(mockWeatherTypes))],
			High:     high,
			Low:      high - (4 + rand.Intn(5)),
		})
	}
	return out
}

var mockPOITemplates = []struct {
	name  string
	kinds string
}{
	{"%s City Center", "interesting_places"},
	{"%s Heritage Museum", "museums"},
	{"%s Central Park", "gardens"},
	{"%s Old Market", "marketplaces"},
	{"%s Riverside Walk", "natural"},
}

func MockPOIs(city string, days int) []response_models.POI {
	out := make([]response_models.POI, 0, len(mockPOITemplates))
	for i, tpl := range mockPOITemplates {
		out = append(out, response_models.POI{
			ID:      fmt.Sprintf("mock_poi_%d", i),
			Name:    fmt.Sprintf(tpl.name, city),
			Kinds:   tpl.kinds,
			Summary: fmt.Sprintf("A popular spot to experience %s.", city),
		})
	}
	return out
}

func MockHotels(city string) []response_models.Hotel {
	tiers := []struct {
		suffix string
		price  int
		rng    string
	}{
		{"Budget Inn (Economy)", 2000, "₹2,000–₹5,000"},
		{"Comfort Stay (Mid-Range)", 8000, "₹5,000–₹12,000"},
		{"Grand Resort (Luxury)", 18000, "₹12,000–₹30,000"},
	}
	out := make([]response_models.Hotel, 0, len(tiers))
	for i, t := range tiers {
		out = append(out, response_models.Hotel{
			ID:             fmt.Sprintf("mock_hotel_%d", i),
			Name:           fmt.Sprintf("%s %s", strings.TrimSpace(city), t.suffix),
			PriceInINREst:  t.price,
			BudgetRangeINR: t.rng,
		})
	}
	return out
}
