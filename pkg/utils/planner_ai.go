package utils

import (
	"context"
	"strings"
)

// PlannerPrompt carries everything the generative planner needs to ground an
// itinerary: the request parameters plus the already-fetched POI and hotel
// summaries it must not stray from.
type PlannerPrompt struct {
	Destination string
	StartDate   string
	Days        int
	Mood        string
	Interests   []string
	POIs        []string
	Hotels      []string
}

// PlannerClientInterface is implemented by the OpenAI and Gemini clients.
// GenerateItineraryJSON returns a JSON document with an "itinerary" array of
// day objects (morning/afternoon/evening/dinner/accommodation strings).
type PlannerClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt PlannerPrompt) (string, error)
}

// ExtractJSONObject pulls the outermost {...} substring out of model output
// that wrapped its JSON in prose or code fences. Returns "" when no braces
// are present.
func ExtractJSONObject(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return content[start : end+1]
}

// StripCodeFences removes markdown fence lines from model output.
func StripCodeFences(content string) string {
	if !strings.Contains(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
