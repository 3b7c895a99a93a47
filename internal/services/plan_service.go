package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripmood/internal/catalog"
	"tripmood/internal/gateway"
	"tripmood/internal/models/db_models"
	"tripmood/internal/models/request_models"
	"tripmood/internal/models/response_models"
	"tripmood/internal/repositories"
	"tripmood/pkg/memcache"
	"tripmood/pkg/utils"
)

type PlanServiceInterface interface {
	// GeneratePlan always returns a usable plan; failures degrade to mock
	// data and deterministic synthesis.
	GeneratePlan(ctx context.Context, req request_models.PlanRequest) response_models.Plan
	LookupPOIs(ctx context.Context, city string, days int, interests []string, mood string) ([]response_models.POI, error)
	LookupHotels(ctx context.Context, city string, budgetMin, budgetMax *int, mood string) ([]response_models.Hotel, error)
	LocalEvents(mood string) []string
}

type PlanService struct {
	gateway    gateway.Client
	planner    utils.PlannerClientInterface
	itinerary  ItineraryServiceInterface
	attraction AttractionServiceInterface
	budget     BudgetServiceInterface
	packing    PackingServiceInterface
	planCache  repositories.PlanCacheRepository
	poisCache  *memcache.TTLStore
	hotelCache *memcache.TTLStore
}

func NewPlanService(
	gw gateway.Client,
	planner utils.PlannerClientInterface,
	itinerary ItineraryServiceInterface,
	attraction AttractionServiceInterface,
	budget BudgetServiceInterface,
	packing PackingServiceInterface,
	planCache repositories.PlanCacheRepository,
	poisCache *memcache.TTLStore,
	hotelCache *memcache.TTLStore,
) PlanServiceInterface {
	return &PlanService{
		gateway:    gw,
		planner:    planner,
		itinerary:  itinerary,
		attraction: attraction,
		budget:     budget,
		packing:    packing,
		planCache:  planCache,
		poisCache:  poisCache,
		hotelCache: hotelCache,
	}
}

func (p *PlanService) GeneratePlan(ctx context.Context, req request_models.PlanRequest) response_models.Plan {
	destination := strings.TrimSpace(req.City)
	days := req.Days
	if days < 1 {
		days = 1
	}
	mood := strings.TrimSpace(req.Mood)
	if mood == "" {
		mood = "relaxing"
	}

	cacheKey := utils.PlanCacheKey(destination, days, mood)
	if p.planCache != nil {
		if entry, err := p.planCache.FindFresh(ctx, cacheKey); err == nil && entry != nil {
			var cached response_models.Plan
			if err := json.Unmarshal(entry.PlanData, &cached); err == nil {
				return cached
			}
		}
	}

	weather, err := p.gateway.FetchWeather(ctx, destination, days)
	if err != nil {
		log.Printf("weather fetch failed for %q, using mock data: %v", destination, err)
		weather = gateway.MockWeather(destination, days)
	}

	pois, err := p.gateway.FetchPOIs(ctx, destination, req.Interests, days, mood)
	if err != nil || len(pois) == 0 {
		if err != nil {
			log.Printf("poi fetch failed for %q, using mock data: %v", destination, err)
		}
		pois = gateway.MockPOIs(destination, days)
	}

	hotels, err := p.gateway.FetchHotels(ctx, destination, req.BudgetMin, req.BudgetMax)
	if err != nil || len(hotels) == 0 {
		if err != nil {
			log.Printf("hotel fetch failed for %q, using mock data: %v", destination, err)
		}
		hotels = gateway.MockHotels(destination)
	}

	synthesized := p.synthesizedDays(ctx, destination, days, mood, req, pois, hotels)
	itinerary := mergeDayPlans(synthesized, pois, hotels, weather)

	attractions := p.attraction.MustVisit(destination, mood)
	hotelCards := hotelCardsFrom(hotels)
	suggestions := p.attraction.HotelRecommendations(mood, req.Age)
	packing := p.packing.Compose(mood, weather, req.Age, req.Gender)
	events := p.LocalEvents(mood)
	breakdown := p.budget.Breakdown(days, mood, req.Interests, attractions, hotelCards)

	plan := response_models.Plan{
		Destination:      destination,
		StartDate:        req.StartDate,
		Days:             days,
		Mood:             mood,
		Itinerary:        itinerary,
		FamousPlaces:     attractions,
		Hotels:           hotelCards,
		HotelSuggestions: suggestions,
		PackingList:      packing,
		Events:           events,
		Weather:          weather,
		MapLink:          p.gateway.MapLink(ctx, destination),
		TotalBudgetINR:   utils.FormatINR(breakdown.Total),
		BudgetBreakdown:  breakdown,
	}

	if p.planCache != nil {
		if data, err := json.Marshal(plan); err == nil {
			entry := &db_models.PlanCacheEntry{
				CacheKey:    cacheKey,
				Destination: destination,
				Days:        days,
				Mood:        mood,
				PlanData:    data,
			}
			if err := p.planCache.Upsert(ctx, entry); err != nil {
				log.Printf("plan cache write failed: %v", err)
			}
		}
	}

	return plan
}

// aiItinerary is the schema the planner clients are prompted to return.
type aiItinerary struct {
	Itinerary []struct {
		Day           int    `json:"day"`
		Morning       string `json:"morning"`
		Afternoon     string `json:"afternoon"`
		Evening       string `json:"evening"`
		Dinner        string `json:"dinner"`
		Accommodation string `json:"accommodation"`
	} `json:"itinerary"`
}

// synthesizedDays tries the AI planner once, retries after JSON-object
// extraction, and falls back to deterministic synthesis.
func (p *PlanService) synthesizedDays(ctx context.Context, destination string, days int, mood string,
	req request_models.PlanRequest, pois []response_models.POI, hotels []response_models.Hotel) []SynthesizedDay {
	if p.planner != nil {
		poiNames := make([]string, 0, len(pois))
		for _, poi := range pois {
			poiNames = append(poiNames, poi.Name)
		}
		hotelNames := make([]string, 0, len(hotels))
		for _, h := range hotels {
			hotelNames = append(hotelNames, h.Name)
		}
		prompt := utils.PlannerPrompt{
			Destination: destination,
			StartDate:   req.StartDate,
			Days:        days,
			Mood:        mood,
			Interests:   req.Interests,
			POIs:        poiNames,
			Hotels:      hotelNames,
		}
		raw, err := p.planner.GenerateItineraryJSON(ctx, prompt)
		if err == nil {
			if parsed, ok := parseAIItinerary(raw, days); ok {
				return parsed
			}
		} else {
			log.Printf("planner generation failed, using deterministic synthesis: %v", err)
		}
	}
	return p.itinerary.Synthesize(destination, days, mood)
}

func parseAIItinerary(raw string, days int) ([]SynthesizedDay, bool) {
	var parsed aiItinerary
	if err := json.Unmarshal([]byte(utils.StripCodeFences(raw)), &parsed); err != nil {
		extracted := utils.ExtractJSONObject(raw)
		if extracted == "" || json.Unmarshal([]byte(extracted), &parsed) != nil {
			return nil, false
		}
	}
	// a short itinerary would leave the plan with fewer day entries than
	// weather days, so the whole parse is rejected
	if len(parsed.Itinerary) < days {
		return nil, false
	}

	out := make([]SynthesizedDay, 0, days)
	for i, d := range parsed.Itinerary {
		if i >= days {
			break
		}
		day := d.Day
		if day == 0 {
			day = i + 1
		}
		out = append(out, SynthesizedDay{
			Day:           day,
			Morning:       orDefault(d.Morning, "Explore the city"),
			Afternoon:     orDefault(d.Afternoon, "Visit local attractions"),
			Evening:       orDefault(d.Evening, "Enjoy local cuisine"),
			Dinner:        orDefault(d.Dinner, "Try local specialties"),
			Accommodation: orDefault(d.Accommodation, "Local Hotel"),
		})
	}
	return out, true
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func mergeDayPlans(days []SynthesizedDay, pois []response_models.POI,
	hotels []response_models.Hotel, weather []response_models.WeatherDay) []response_models.DayPlan {

	out := make([]response_models.DayPlan, 0, len(days))
	for i, d := range days {
		var ref response_models.POIRef
		if len(pois) > 0 {
			poi := pois[i%len(pois)]
			ref = response_models.POIRef{
				Name:   poi.Name,
				Lat:    poi.Lat,
				Lon:    poi.Lon,
				Image:  poi.PhotoURL,
				Source: poi.SourceURL,
			}
		}

		stay := response_models.Stay{Name: d.Accommodation, PriceInINR: "₹5,000–₹12,000"}
		if len(hotels) > 0 {
			h := hotels[i%len(hotels)]
			stay.PriceInINR = h.BudgetRangeINR
			stay.Link = h.SourceURL
		}

		dw := response_models.DayWeather{Summary: "Pleasant weather", High: "25°C", Low: "18°C"}
		if i < len(weather) {
			dw = response_models.DayWeather{
				Summary: weather[i].Forecast,
				High:    fmt.Sprintf("%d°C", weather[i].High),
				Low:     fmt.Sprintf("%d°C", weather[i].Low),
			}
		}

		out = append(out, response_models.DayPlan{
			Day:           d.Day,
			Morning:       response_models.Slot{Activity: d.Morning, POI: ref},
			Afternoon:     response_models.Slot{Activity: d.Afternoon, POI: ref},
			Evening:       response_models.Slot{Activity: d.Evening, POI: ref},
			Dinner:        response_models.Dinner{Suggestion: d.Dinner},
			Accommodation: stay,
			Weather:       dw,
		})
	}
	return out
}

func hotelCardsFrom(hotels []response_models.Hotel) []response_models.HotelCard {
	out := make([]response_models.HotelCard, 0, 3)
	for _, h := range hotels {
		rng := h.BudgetRangeINR
		if rng == "" {
			rng = utils.FormatINR(h.PriceInINREst)
		}
		out = append(out, response_models.HotelCard{
			Name:           h.Name,
			PriceInINREst:  h.PriceInINREst,
			BudgetRangeINR: rng,
			Image:          h.PhotoURL,
			Link:           h.SourceURL,
		})
		if len(out) == 3 {
			break
		}
	}
	return out
}

func (p *PlanService) LookupPOIs(ctx context.Context, city string, days int, interests []string, mood string) ([]response_models.POI, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return []response_models.POI{}, nil
	}

	key := utils.Fingerprint("places", city, fmt.Sprint(days), mood, strings.Join(interests, ","))
	if p.poisCache != nil {
		if data, ok := p.poisCache.Get(key); ok {
			var cached []response_models.POI
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	pois, err := p.gateway.FetchPOIs(ctx, city, interests, days, mood)
	if err != nil {
		log.Printf("poi lookup failed for %q: %v", city, err)
		return []response_models.POI{}, nil
	}

	if p.poisCache != nil {
		if data, err := json.Marshal(pois); err == nil {
			p.poisCache.Set(key, data)
		}
	}
	return pois, nil
}

func (p *PlanService) LookupHotels(ctx context.Context, city string, budgetMin, budgetMax *int, mood string) ([]response_models.Hotel, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return []response_models.Hotel{}, nil
	}

	key := utils.Fingerprint("hotels", city, mood, fmtBound(budgetMin), fmtBound(budgetMax))
	if p.hotelCache != nil {
		if data, ok := p.hotelCache.Get(key); ok {
			var cached []response_models.Hotel
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	hotels, err := p.gateway.FetchHotels(ctx, city, budgetMin, budgetMax)
	if err != nil {
		log.Printf("hotel lookup failed for %q: %v", city, err)
		return []response_models.Hotel{}, nil
	}

	if p.hotelCache != nil {
		if data, err := json.Marshal(hotels); err == nil {
			p.hotelCache.Set(key, data)
		}
	}
	return hotels, nil
}

func fmtBound(v *int) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprint(*v)
}

// LocalEvents returns the mood events plus seasonal generics, top six.
func (p *PlanService) LocalEvents(mood string) []string {
	base, ok := catalog.MoodEvents[catalog.NormalizeMood(mood)]
	if !ok {
		base = catalog.CustomMoodEvents(mood)
	}

	all := append(append([]string{}, base...), catalog.SeasonalEvents...)
	seen := make(map[string]bool, len(all))
	out := make([]string, 0, 6)
	for _, e := range all {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
		if len(out) == 6 {
			break
		}
	}
	return out
}
