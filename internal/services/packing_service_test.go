package services

import (
	"testing"

	"tripmood/internal/models/response_models"
)

func itemSet(t *testing.T, items []string) map[string]bool {
	t.Helper()
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item] {
			t.Fatalf("duplicate packing item %q", item)
		}
		seen[item] = true
	}
	return seen
}

func TestComposeMinimumTwentyUniqueItems(t *testing.T) {
	svc := NewPackingService()

	list := svc.Compose("relaxing", nil, 0, "")
	set := itemSet(t, list)
	if len(set) < 20 {
		t.Fatalf("expected at least 20 items, got %d", len(set))
	}
}

func TestComposeWeatherGear(t *testing.T) {
	svc := NewPackingService()

	rainy := []response_models.WeatherDay{{Day: 1, Forecast: "Light Rain", High: 22, Low: 18}}
	set := itemSet(t, svc.Compose("relaxing", rainy, 0, ""))
	if !set["☂️ Umbrella"] {
		t.Fatal("rain forecast should add rain gear")
	}

	hot := []response_models.WeatherDay{{Day: 1, Forecast: "Sunny", High: 33, Low: 26}}
	set = itemSet(t, svc.Compose("relaxing", hot, 0, ""))
	if !set["🧴 Sunscreen"] {
		t.Fatal("hot forecast should add sun protection")
	}

	cold := []response_models.WeatherDay{{Day: 1, Forecast: "Clear Sky", High: 8, Low: 2}}
	set = itemSet(t, svc.Compose("relaxing", cold, 0, ""))
	if !set["🧤 Gloves"] {
		t.Fatal("cold forecast should add warm clothing")
	}
}

func TestComposeMoodItems(t *testing.T) {
	svc := NewPackingService()

	set := itemSet(t, svc.Compose("adventure", nil, 0, ""))
	if !set["🥾 Hiking Shoes"] {
		t.Fatal("adventure synonym should map onto the adventurous set")
	}

	set = itemSet(t, svc.Compose("office trip", nil, 0, ""))
	if !set["💼 Briefcase"] {
		t.Fatal("office trip items missing")
	}
}

func TestComposeDemographics(t *testing.T) {
	svc := NewPackingService()

	set := itemSet(t, svc.Compose("relaxing", nil, 2, ""))
	if !set["🍼 Diapers"] {
		t.Fatal("infant bracket items missing")
	}

	set = itemSet(t, svc.Compose("relaxing", nil, 7, "female"))
	if !set["🍱 Lunch Box"] {
		t.Fatal("children use the age-only set regardless of gender")
	}

	set = itemSet(t, svc.Compose("relaxing", nil, 11, ""))
	if !set["📐 Geometry Box"] {
		t.Fatal("pre-teen bracket items missing")
	}

	set = itemSet(t, svc.Compose("relaxing", nil, 28, "female"))
	if !set["👠 Heels"] {
		t.Fatal("female young-adult items missing")
	}

	set = itemSet(t, svc.Compose("relaxing", nil, 28, "male"))
	if !set["🤵 Blazers"] {
		t.Fatal("male young-adult items missing")
	}

	set = itemSet(t, svc.Compose("relaxing", nil, 28, ""))
	if !set["💼 Bag"] {
		t.Fatal("gender-neutral young-adult items missing")
	}

	set = itemSet(t, svc.Compose("relaxing", nil, 60, "male"))
	if !set["👕 Dhoti/Kurta"] {
		t.Fatal("senior male items missing")
	}
}

func TestComposeBaselineAlwaysFirst(t *testing.T) {
	svc := NewPackingService()

	list := svc.Compose("foodie", nil, 30, "female")
	if list[0] != "🪪 Passport/ID" {
		t.Fatalf("baseline items should lead the list, got %q first", list[0])
	}
}
