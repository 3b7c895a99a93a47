package services

import (
	"strings"

	"tripmood/internal/catalog"
	"tripmood/internal/models/response_models"
)

type PackingServiceInterface interface {
	Compose(mood string, weather []response_models.WeatherDay, age int, gender string) []string
}

type PackingService struct{}

func NewPackingService() PackingServiceInterface {
	return &PackingService{}
}

// Compose builds the packing list: baseline, weather gear, mood items, then
// demographic items, deduplicated in order and topped up to twenty.
func (p *PackingService) Compose(mood string, weather []response_models.WeatherDay, age int, gender string) []string {
	items := append([]string{}, catalog.BasePackingItems...)
	items = append(items, weatherItems(weather)...)
	items = append(items, catalog.MoodPackingItems[catalog.NormalizeMood(mood)]...)
	items = append(items, demographicItems(age, gender)...)

	seen := make(map[string]bool, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		unique = append(unique, item)
	}

	for _, item := range catalog.SupplementPackingItems {
		if len(unique) >= 20 {
			break
		}
		if !seen[item] {
			seen[item] = true
			unique = append(unique, item)
		}
	}
	return unique
}

func weatherItems(weather []response_models.WeatherDay) []string {
	var out []string
	rainy, hot, cold := false, false, false
	for _, w := range weather {
		if strings.Contains(strings.ToLower(w.Forecast), "rain") {
			rainy = true
		}
		if w.High >= 30 {
			hot = true
		}
		if w.High <= 10 {
			cold = true
		}
	}
	if rainy {
		out = append(out, catalog.RainPackingItems...)
	}
	if hot {
		out = append(out, catalog.SunPackingItems...)
	}
	if cold {
		out = append(out, catalog.ColdPackingItems...)
	}
	return out
}

func demographicItems(age int, gender string) []string {
	if age <= 0 {
		return nil
	}
	bracket := catalog.AgeBracket(age)
	switch bracket {
	case "":
		return nil
	case "infant":
		return catalog.InfantPackingItems
	case "child":
		return catalog.ChildPackingItems
	case "pre-teen":
		return catalog.PreTeenPackingItems
	}

	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "female":
		return catalog.FemalePackingItems[bracket]
	case "male":
		return catalog.MalePackingItems[bracket]
	default:
		return catalog.GeneralPackingItems[bracket]
	}
}
