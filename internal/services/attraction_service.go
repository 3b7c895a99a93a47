package services

import (
	"fmt"
	"math/rand"
	"strings"

	"tripmood/internal/catalog"
	"tripmood/internal/models/response_models"
)

type AttractionServiceInterface interface {
	MustVisit(destination, mood string) []response_models.Attraction
	HotelRecommendations(mood string, age int) []string
}

type AttractionService struct{}

func NewAttractionService() AttractionServiceInterface {
	return &AttractionService{}
}

// MustVisit returns up to four attractions: the curated list when the
// destination is known, mood-generic pseudo-attractions otherwise.
func (a *AttractionService) MustVisit(destination, mood string) []response_models.Attraction {
	key := strings.ToLower(strings.TrimSpace(destination))
	if curated, ok := catalog.CuratedAttractions[key]; ok {
		out := make([]response_models.Attraction, 0, 4)
		for _, c := range curated {
			out = append(out, response_models.Attraction{
				Name:           c.Name,
				Description:    c.Description,
				Image:          c.Image,
				Source:         c.MapsLink,
				EntryFee:       c.EntryFee,
				BestTime:       c.BestTime,
				Rating:         c.Rating,
				GoogleMapsLink: c.MapsLink,
				Category:       c.Category,
			})
			if len(out) == 4 {
				break
			}
		}
		return out
	}

	normalized := catalog.NormalizeMood(mood)
	names, ok := catalog.MoodGenericAttractions[normalized]
	if !ok {
		names = catalog.MoodGenericAttractions["relaxing"]
	}

	out := make([]response_models.Attraction, 0, 4)
	for _, name := range names {
		mapsLink := fmt.Sprintf("https://maps.google.com/?q=%s+%s",
			strings.ReplaceAll(name, " ", "+"), strings.ReplaceAll(destination, " ", "+"))
		out = append(out, response_models.Attraction{
			Name:           name,
			Description:    fmt.Sprintf("Explore %s in %s", strings.ToLower(name), destination),
			Image:          fmt.Sprintf("https://images.unsplash.com/photo-%d?w=400&h=300&fit=crop", 1000000000+rand.Intn(9000000000)),
			Source:         mapsLink,
			EntryFee:       "Varies",
			BestTime:       "Morning or Evening",
			Rating:         fmt.Sprintf("4.%d", rand.Intn(6)),
			GoogleMapsLink: mapsLink,
			Category:       normalized,
		})
		if len(out) == 4 {
			break
		}
	}
	return out
}

// HotelRecommendations merges mood archetypes with the budget bracket list,
// deduplicated, capped at eight.
func (a *AttractionService) HotelRecommendations(mood string, age int) []string {
	normalized := catalog.NormalizeMood(mood)
	base, ok := catalog.MoodHotels[normalized]
	if !ok {
		base = catalog.CustomMoodHotels(mood)
	}

	all := append(append([]string{}, base...), catalog.BudgetHotels[budgetPreference(age)]...)

	seen := make(map[string]bool, len(all))
	out := make([]string, 0, 8)
	for _, h := range all {
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
		if len(out) == 8 {
			break
		}
	}
	return out
}

func budgetPreference(age int) string {
	switch {
	case age <= 0:
		return "mid-range"
	case age < 25:
		return "budget"
	case age < 40:
		return "mid-range"
	default:
		return "premium"
	}
}
