package services

import (
	"fmt"
	"math/rand"

	"tripmood/internal/catalog"
)

// SynthesizedDay carries the five slot strings for one trip day.
type SynthesizedDay struct {
	Day           int
	Morning       string
	Afternoon     string
	Evening       string
	Dinner        string
	Accommodation string
}

type ItineraryServiceInterface interface {
	Synthesize(destination string, days int, mood string) []SynthesizedDay
}

type ItineraryService struct{}

func NewItineraryService() ItineraryServiceInterface {
	return &ItineraryService{}
}

func (i *ItineraryService) Synthesize(destination string, days int, mood string) []SynthesizedDay {
	pools := activityPools(mood)
	sel := newActivitySelector()

	out := make([]SynthesizedDay, 0, days)
	for day := 1; day <= days; day++ {
		out = append(out, SynthesizedDay{
			Day:           day,
			Morning:       sel.pick(pools.Morning, day),
			Afternoon:     sel.pick(pools.Afternoon, day),
			Evening:       sel.pick(pools.Evening, day),
			Dinner:        sel.pick(pools.Dinner, day),
			Accommodation: sel.pick(pools.Accommodation, day),
		})
	}
	return out
}

func activityPools(mood string) catalog.SlotActivities {
	if pools, ok := catalog.MoodActivities[catalog.NormalizeMood(mood)]; ok {
		return pools
	}
	return catalog.CustomMoodActivities(mood)
}

// activitySelector tracks used candidates across one synthesis call so
// activities do not repeat until each slot pool is exhausted.
type activitySelector struct {
	used map[string]bool
}

func newActivitySelector() *activitySelector {
	return &activitySelector{used: make(map[string]bool)}
}

func (s *activitySelector) pick(pool []string, day int) string {
	available := make([]string, 0, len(pool))
	for _, a := range pool {
		if !s.used[a] {
			available = append(available, a)
		}
	}

	if len(available) == 0 {
		base := pool[rand.Intn(len(pool))]
		tpl := catalog.VariationTemplates[rand.Intn(len(catalog.VariationTemplates))]
		return fmt.Sprintf(tpl, day, base)
	}

	selected := available[rand.Intn(len(available))]
	s.used[selected] = true
	return selected
}
