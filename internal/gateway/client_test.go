package gateway

import (
	"testing"
	"time"

	"tripmood/internal/models/response_models"
)

func TestAggregateForecast(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	day1 := start.Format("2006-01-02")

	samples := []forecastSample{
		{Date: day1, Temp: 24.6, Description: "clear sky"},
		{Date: day1, Temp: 26.9, Description: "clear sky"},
		{Date: day1, Temp: 22.4, Description: "scattered clouds"},
	}

	got := AggregateForecast(samples, 2, start)
	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}

	first := got[0]
	if first.High != 27 {
		t.Errorf("high: expected 27, got %d", first.High)
	}
	if first.Low != 22 {
		t.Errorf("low: expected 22, got %d", first.Low)
	}
	if first.Forecast != "Clear Sky" {
		t.Errorf("forecast: expected %q, got %q", "Clear Sky", first.Forecast)
	}

	// second day has no samples, values are randomized but bounded
	second := got[1]
	if second.High < 24 || second.High > 34 {
		t.Errorf("filled high out of range: %d", second.High)
	}
	spread := second.High - second.Low
	if spread < 4 || spread > 8 {
		t.Errorf("filled spread out of range: %d", spread)
	}
	if second.Day != 2 {
		t.Errorf("expected day 2, got %d", second.Day)
	}
}

func TestMostFrequentTiebreak(t *testing.T) {
	// ties resolve to the first description encountered
	if got := mostFrequent([]string{"light rain", "clear sky"}); got != "light rain" {
		t.Fatalf("expected first-encountered winner, got %q", got)
	}
	if got := mostFrequent(nil); got != "Partly Cloudy" {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestHotelTier(t *testing.T) {
	tests := []struct {
		rank  int
		price int
		tier  string
	}{
		{0, 2000, "Economy"},
		{4, 2000, "Economy"},
		{5, 8000, "Mid-Range"},
		{9, 8000, "Mid-Range"},
		{10, 18000, "Luxury"},
		{14, 18000, "Luxury"},
	}
	for _, tt := range tests {
		price, tier, _ := HotelTier(tt.rank)
		if price != tt.price || tier != tt.tier {
			t.Errorf("rank %d: expected %d/%s, got %d/%s", tt.rank, tt.price, tt.tier, price, tier)
		}
	}
}

func tierHotels() []response_models.Hotel {
	return []response_models.Hotel{
		{ID: "a", PriceInINREst: 2000},
		{ID: "b", PriceInINREst: 8000},
		{ID: "c", PriceInINREst: 18000},
	}
}

func TestFilterHotelsByBudget(t *testing.T) {
	min, max := 3000, 20000
	got := FilterHotelsByBudget(tierHotels(), &min, &max)
	if len(got) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(got))
	}
	for _, h := range got {
		if h.PriceInINREst == 2000 {
			t.Fatal("economy tier should have been excluded")
		}
	}

	// bounds are inclusive
	min2 := 2000
	got = FilterHotelsByBudget(tierHotels(), &min2, nil)
	if len(got) != 3 {
		t.Fatalf("inclusive lower bound: expected 3 hotels, got %d", len(got))
	}

	got = FilterHotelsByBudget(tierHotels(), nil, nil)
	if len(got) != 3 {
		t.Fatalf("open bounds keep everything, got %d", len(got))
	}
}

func TestSampleHotels(t *testing.T) {
	var many []response_models.Hotel
	for i := 0; i < 10; i++ {
		many = append(many, response_models.Hotel{PriceInINREst: i})
	}

	got := SampleHotels(many)
	if len(got) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(got))
	}
	if got[0].PriceInINREst != 0 || got[1].PriceInINREst != 5 || got[2].PriceInINREst != 9 {
		t.Fatalf("unexpected sample positions: %v", got)
	}

	two := many[:2]
	if len(SampleHotels(two)) != 2 {
		t.Fatal("short lists pass through unchanged")
	}
}

func TestKindsFor(t *testing.T) {
	if got := KindsFor("Relaxing", nil); got != "gardens,parks,natural" {
		t.Fatalf("mood kinds: got %q", got)
	}
	if got := KindsFor("relaxing", []string{"History", " nature "}); got != "historic,natural" {
		t.Fatalf("interest kinds override mood: got %q", got)
	}
	if got := KindsFor("unknown-mood", nil); got != "interesting_places" {
		t.Fatalf("default kinds: got %q", got)
	}
}

func TestMockGenerators(t *testing.T) {
	weather := MockWeather("Puri", 4)
	if len(weather) != 4 {
		t.Fatalf("expected 4 weather days, got %d", len(weather))
	}
	for i, w := range weather {
		if w.Day != i+1 {
			t.Errorf("day numbering: expected %d, got %d", i+1, w.Day)
		}
		if w.High <= w.Low {
			t.Errorf("day %d: high %d not above low %d", w.Day, w.High, w.Low)
		}
	}

	pois := MockPOIs("Puri", 3)
	if len(pois) == 0 {
		t.Fatal("expected mock pois")
	}

	hotels := MockHotels("Puri")
	if len(hotels) != 3 {
		t.Fatalf("expected 3 mock hotels, got %d", len(hotels))
	}
	if hotels[0].PriceInINREst != 2000 || hotels[2].PriceInINREst != 18000 {
		t.Fatalf("unexpected tier prices: %v", hotels)
	}
}
