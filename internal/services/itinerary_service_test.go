package services

import (
	"strings"
	"testing"
)

func TestSynthesizeNoRepeatsWithinPoolSize(t *testing.T) {
	svc := NewItineraryService()

	days := svc.Synthesize("Puri", 5, "relaxing")
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}

	slots := map[string][]string{}
	for _, d := range days {
		slots["morning"] = append(slots["morning"], d.Morning)
		slots["afternoon"] = append(slots["afternoon"], d.Afternoon)
		slots["evening"] = append(slots["evening"], d.Evening)
		slots["dinner"] = append(slots["dinner"], d.Dinner)
		slots["accommodation"] = append(slots["accommodation"], d.Accommodation)
	}

	for slot, activities := range slots {
		seen := map[string]bool{}
		for _, a := range activities {
			if a == "" {
				t.Fatalf("%s: empty activity", slot)
			}
			if seen[a] {
				t.Errorf("%s: activity repeated within 5 days: %q", slot, a)
			}
			seen[a] = true
		}
	}
}

func TestSynthesizeLongTripsDecorateExhaustedPools(t *testing.T) {
	svc := NewItineraryService()

	days := svc.Synthesize("Puri", 8, "romantic")
	if len(days) != 8 {
		t.Fatalf("expected 8 days, got %d", len(days))
	}

	// after the 5 candidates are spent the later days must still produce
	// non-empty, day-tagged activities
	decorated := 0
	for _, d := range days[5:] {
		for _, a := range []string{d.Morning, d.Afternoon, d.Evening, d.Dinner, d.Accommodation} {
			if a == "" {
				t.Fatal("empty activity on exhausted pool")
			}
			if strings.Contains(a, "ay") && strings.ContainsAny(a, "0123456789") {
				decorated++
			}
		}
	}
	if decorated == 0 {
		t.Fatal("expected decorated variants after pool exhaustion")
	}
}

func TestSynthesizeCustomMood(t *testing.T) {
	svc := NewItineraryService()

	days := svc.Synthesize("Puri", 2, "spiritual")
	for _, d := range days {
		for _, a := range []string{d.Morning, d.Afternoon, d.Evening, d.Dinner, d.Accommodation} {
			if !strings.Contains(strings.ToLower(a), "spiritual") {
				t.Fatalf("custom mood activities should mention the mood, got %q", a)
			}
		}
	}
}
