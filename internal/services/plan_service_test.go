package services

import (
	"context"
	"strings"
	"testing"

	"tripmood/internal/gateway"
	"tripmood/internal/models/request_models"
	"tripmood/internal/models/response_models"
	"tripmood/pkg/memcache"
	"tripmood/pkg/utils"

	"time"
)

// offlineGateway simulates missing credentials on every upstream call and
// counts fetches so caching behavior is observable.
type offlineGateway struct {
	poiCalls   int
	hotelCalls int
	pois       []response_models.POI
	hotels     []response_models.Hotel
}

func (o *offlineGateway) ResolveCoordinates(ctx context.Context, place string) (*response_models.Coordinates, error) {
	return nil, gateway.ErrNoAPIKey
}

func (o *offlineGateway) FetchWeather(ctx context.Context, place string, days int) ([]response_models.WeatherDay, error) {
	return nil, gateway.ErrNoAPIKey
}

func (o *offlineGateway) FetchPOIs(ctx context.Context, city string, interests []string, days int, mood string) ([]response_models.POI, error) {
	o.poiCalls++
	if o.pois == nil {
		return nil, gateway.ErrNoAPIKey
	}
	return o.pois, nil
}

func (o *offlineGateway) FetchHotels(ctx context.Context, city string, budgetMin, budgetMax *int) ([]response_models.Hotel, error) {
	o.hotelCalls++
	if o.hotels == nil {
		return nil, gateway.ErrNoAPIKey
	}
	return o.hotels, nil
}

func (o *offlineGateway) MapLink(ctx context.Context, destination string) string {
	return "https://www.google.com/maps/search/" + strings.ReplaceAll(destination, " ", "+")
}

type scriptedPlanner struct {
	responses []string
	calls     int
}

func (s *scriptedPlanner) GenerateItineraryJSON(ctx context.Context, prompt utils.PlannerPrompt) (string, error) {
	resp := s.responses[s.calls%len(s.responses)]
	s.calls++
	return resp, nil
}

func newTestPlanService(gw gateway.Client, planner utils.PlannerClientInterface) PlanServiceInterface {
	return NewPlanService(
		gw,
		planner,
		NewItineraryService(),
		NewAttractionService(),
		NewBudgetService(),
		NewPackingService(),
		nil,
		memcache.NewTTLStore(6*time.Hour, time.Now),
		memcache.NewTTLStore(6*time.Hour, time.Now),
	)
}

func TestGeneratePlanOfflineEndToEnd(t *testing.T) {
	svc := newTestPlanService(&offlineGateway{}, nil)

	plan := svc.GeneratePlan(context.Background(), request_models.PlanRequest{
		City: "Puri",
		Days: 3,
		Mood: "relaxing",
		Age:  30,
	})

	if plan.Destination != "Puri" {
		t.Fatalf("destination: got %q", plan.Destination)
	}
	if len(plan.Itinerary) != 3 {
		t.Fatalf("expected 3 day plans, got %d", len(plan.Itinerary))
	}
	if len(plan.Weather) != 3 {
		t.Fatalf("expected 3 weather days, got %d", len(plan.Weather))
	}
	for i, d := range plan.Itinerary {
		if d.Day != i+1 {
			t.Errorf("day numbering: expected %d, got %d", i+1, d.Day)
		}
		if d.Morning.Activity == "" || d.Dinner.Suggestion == "" {
			t.Errorf("day %d has empty slots", d.Day)
		}
	}

	// Puri is curated, so the famous places come from the curated table
	if len(plan.FamousPlaces) == 0 || plan.FamousPlaces[0].Name != "Jagannath Temple" {
		t.Fatalf("expected curated Puri attractions, got %+v", plan.FamousPlaces)
	}

	if len(plan.Hotels) != 3 {
		t.Fatalf("expected 3 mock hotel cards, got %d", len(plan.Hotels))
	}
	// age 30 lands in the mid-range bracket
	if len(plan.HotelSuggestions) != 8 {
		t.Fatalf("expected 8 hotel recommendations, got %d", len(plan.HotelSuggestions))
	}
	if len(plan.PackingList) < 20 {
		t.Fatalf("packing list too short: %d", len(plan.PackingList))
	}
	if len(plan.Events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(plan.Events))
	}

	b := plan.BudgetBreakdown
	if b.Total != b.Accommodation+b.Food+b.Transportation+b.Activities+b.Shopping {
		t.Fatal("budget total does not match the sum of categories")
	}
	if plan.TotalBudgetINR != utils.FormatINR(b.Total) {
		t.Fatalf("rendered budget mismatch: %q", plan.TotalBudgetINR)
	}
	if !strings.Contains(plan.MapLink, "Puri") {
		t.Fatalf("map link missing destination: %q", plan.MapLink)
	}
}

func TestGeneratePlanDefaultsAndClamping(t *testing.T) {
	svc := newTestPlanService(&offlineGateway{}, nil)

	plan := svc.GeneratePlan(context.Background(), request_models.PlanRequest{City: "Goa"})
	if plan.Days != 1 {
		t.Fatalf("days should clamp to 1, got %d", plan.Days)
	}
	if plan.Mood != "relaxing" {
		t.Fatalf("mood should default to relaxing, got %q", plan.Mood)
	}
}

func TestGeneratePlanUsesPlannerOutput(t *testing.T) {
	planner := &scriptedPlanner{responses: []string{
		`Here is your plan: {"itinerary":[` +
			`{"day":1,"morning":"Beach walk","afternoon":"Temple visit","evening":"Market stroll","dinner":"Seafood thali","accommodation":"Sea View Hotel"},` +
			`{"day":2,"morning":"Sunrise","afternoon":"Museum","evening":"Ghat visit","dinner":"Local cuisine","accommodation":"Sea View Hotel"}]}`,
	}}
	svc := newTestPlanService(&offlineGateway{}, planner)

	plan := svc.GeneratePlan(context.Background(), request_models.PlanRequest{City: "Puri", Days: 2, Mood: "relaxing"})
	if planner.calls != 1 {
		t.Fatalf("expected one planner call, got %d", planner.calls)
	}
	if plan.Itinerary[0].Morning.Activity != "Beach walk" {
		t.Fatalf("planner output not used: %q", plan.Itinerary[0].Morning.Activity)
	}
	if plan.Itinerary[1].Dinner.Suggestion != "Local cuisine" {
		t.Fatalf("planner output not used: %q", plan.Itinerary[1].Dinner.Suggestion)
	}
}

func TestGeneratePlanFallsBackOnShortPlannerOutput(t *testing.T) {
	planner := &scriptedPlanner{responses: []string{
		`{"itinerary":[{"day":1,"morning":"Beach walk","afternoon":"Temple visit",` +
			`"evening":"Market stroll","dinner":"Seafood thali","accommodation":"Sea View Hotel"}]}`,
	}}
	svc := newTestPlanService(&offlineGateway{}, planner)

	plan := svc.GeneratePlan(context.Background(), request_models.PlanRequest{City: "Puri", Days: 3, Mood: "relaxing"})
	if len(plan.Itinerary) != 3 {
		t.Fatalf("expected 3 day plans, got %d", len(plan.Itinerary))
	}
	if len(plan.Weather) != len(plan.Itinerary) {
		t.Fatalf("weather days (%d) must match day plans (%d)", len(plan.Weather), len(plan.Itinerary))
	}
	// the truncated planner response is discarded wholesale
	if plan.Itinerary[0].Morning.Activity == "Beach walk" {
		t.Fatal("short planner output should not be used")
	}
	for _, d := range plan.Itinerary {
		if d.Morning.Activity == "" {
			t.Fatal("fallback produced empty slots")
		}
	}
}

func TestGeneratePlanFallsBackOnBadPlannerOutput(t *testing.T) {
	planner := &scriptedPlanner{responses: []string{"I cannot produce JSON today."}}
	svc := newTestPlanService(&offlineGateway{}, planner)

	plan := svc.GeneratePlan(context.Background(), request_models.PlanRequest{City: "Puri", Days: 2, Mood: "relaxing"})
	if len(plan.Itinerary) != 2 {
		t.Fatalf("fallback synthesis missing: %d days", len(plan.Itinerary))
	}
	for _, d := range plan.Itinerary {
		if d.Morning.Activity == "" {
			t.Fatal("fallback produced empty slots")
		}
	}
}

func TestLookupPOIsCachesByNormalizedKey(t *testing.T) {
	gw := &offlineGateway{pois: []response_models.POI{{ID: "x", Name: "Beach"}}}
	svc := newTestPlanService(gw, nil)

	ctx := context.Background()
	first, err := svc.LookupPOIs(ctx, "Puri", 3, nil, "Relaxing")
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 poi, got %d", len(first))
	}

	// same request with different casing and whitespace hits the cache
	second, err := svc.LookupPOIs(ctx, "  PURI ", 3, nil, "relaxing")
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 1 {
		t.Fatalf("expected cached poi, got %d", len(second))
	}
	if gw.poiCalls != 1 {
		t.Fatalf("expected one upstream fetch, got %d", gw.poiCalls)
	}
}

func TestLookupEmptyCityShortCircuits(t *testing.T) {
	gw := &offlineGateway{}
	svc := newTestPlanService(gw, nil)

	pois, err := svc.LookupPOIs(context.Background(), "   ", 3, nil, "relaxing")
	if err != nil || len(pois) != 0 {
		t.Fatalf("expected empty result, got %v (%v)", pois, err)
	}
	hotels, err := svc.LookupHotels(context.Background(), "", nil, nil, "")
	if err != nil || len(hotels) != 0 {
		t.Fatalf("expected empty result, got %v (%v)", hotels, err)
	}
	if gw.poiCalls != 0 || gw.hotelCalls != 0 {
		t.Fatal("empty city must not hit the gateway")
	}
}

func TestLocalEvents(t *testing.T) {
	svc := newTestPlanService(&offlineGateway{}, nil).(*PlanService)

	events := svc.LocalEvents("foodie")
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}
	if events[0] != "Food festivals and culinary events" {
		t.Fatalf("mood events should lead, got %q", events[0])
	}
	if events[5] != "Local cultural festivals" {
		t.Fatalf("seasonal events should fill the tail, got %q", events[5])
	}

	custom := svc.LocalEvents("spiritual")
	if custom[0] != "Spiritual themed events and workshops" {
		t.Fatalf("custom mood events: got %q", custom[0])
	}
}
