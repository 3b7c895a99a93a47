package plannerfx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"tripmood/pkg/utils"
)

var Module = fx.Provide(providePlannerClient)

// providePlannerClient picks the generative backend from the environment:
// OpenAI when OPENAI_API_KEY is set, Gemini when GEMINI_API_KEY is set, nil
// otherwise. A nil client makes the plan service use deterministic synthesis.
func providePlannerClient() utils.PlannerClientInterface {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return utils.NewOpenAIPlannerClient(key, os.Getenv("OPENAI_MODEL"))
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := utils.NewGeminiPlannerClient(key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("gemini client init failed, itineraries fall back to deterministic synthesis: %v", err)
			return nil
		}
		return client
	}
	log.Println("no planner api key configured, itineraries use deterministic synthesis")
	return nil
}
