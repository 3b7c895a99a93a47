package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIPlannerClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlannerClient(apiKey, model string) PlannerClientInterface {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIPlannerClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

const plannerSystemPrompt = `You are a meticulous travel planner. Follow ALL rules strictly:
- Use ONLY real, well-known attractions/places. Prefer those in provided POIs; do not invent.
- No duplicates across days.
- Blend selected interests across each day.
- Keep activities geographically plausible for the city.
- Vary activity types across the trip.
- Return JSON strictly matching the required schema.`

func (c *OpenAIPlannerClient) GenerateItineraryJSON(ctx context.Context, prompt PlannerPrompt) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: plannerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPlannerUserPrompt(prompt)},
		},
		MaxTokens:   1400,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return StripCodeFences(strings.TrimSpace(resp.Choices[0].Message.Content)), nil
}

func buildPlannerUserPrompt(p PlannerPrompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day %s trip to %s", p.Days, p.Mood, p.Destination)
	if p.StartDate != "" {
		fmt.Fprintf(&b, " starting %s", p.StartDate)
	}
	b.WriteString(".\n")
	if len(p.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s.\n", strings.Join(p.Interests, ", "))
	}
	if len(p.POIs) > 0 {
		b.WriteString("Known POIs (ground activities on these):\n")
		for _, poi := range p.POIs {
			fmt.Fprintf(&b, "- %s\n", poi)
		}
	}
	if len(p.Hotels) > 0 {
		b.WriteString("Known hotels:\n")
		for _, h := range p.Hotels {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	fmt.Fprintf(&b, `Required schema (match keys exactly, %d day objects):
{"itinerary":[{"day":1,"morning":"...","afternoon":"...","evening":"...","dinner":"...","accommodation":"..."}]}
Return JSON only. No comments, no markdown.`, p.Days)
	return b.String()
}
