package response_models

// Plan is the full assembled travel plan returned by the itinerary endpoint.
type Plan struct {
	Destination      string          `json:"destination"`
	StartDate        string          `json:"start_date"`
	Days             int             `json:"days"`
	Mood             string          `json:"mood"`
	Itinerary        []DayPlan       `json:"itinerary"`
	FamousPlaces     []Attraction    `json:"famous_places"`
	Hotels           []HotelCard     `json:"hotels"`
	HotelSuggestions []string        `json:"hotel_recommendations"`
	PackingList      []string        `json:"packing_list"`
	Events           []string        `json:"events"`
	Weather          []WeatherDay    `json:"weather"`
	MapLink          string          `json:"map_embed_url"`
	TotalBudgetINR   string          `json:"total_budget_inr"`
	BudgetBreakdown  BudgetBreakdown `json:"budget_breakdown"`
}

type DayPlan struct {
	Day           int        `json:"day"`
	Morning       Slot       `json:"morning"`
	Afternoon     Slot       `json:"afternoon"`
	Evening       Slot       `json:"evening"`
	Dinner        Dinner     `json:"dinner"`
	Accommodation Stay       `json:"accommodation"`
	Weather       DayWeather `json:"weather"`
}

type Slot struct {
	Activity string `json:"activity"`
	POI      POIRef `json:"poi"`
}

type POIRef struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Image  string  `json:"image"`
	Source string  `json:"source"`
}

type Dinner struct {
	Suggestion     string `json:"suggestion"`
	RestaurantLink string `json:"restaurant_link"`
}

type Stay struct {
	Name       string `json:"name"`
	PriceInINR string `json:"price_in_inr"`
	Link       string `json:"link"`
}

type DayWeather struct {
	Summary string `json:"summary"`
	High    string `json:"high"`
	Low     string `json:"low"`
}

type Attraction struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	Source         string `json:"source"`
	EntryFee       string `json:"entry_fee"`
	BestTime       string `json:"best_time"`
	Rating         string `json:"rating"`
	GoogleMapsLink string `json:"google_maps_link"`
	Category       string `json:"category"`
}

type HotelCard struct {
	Name           string `json:"name"`
	PriceInINREst  int    `json:"price_in_inr_est"`
	BudgetRangeINR string `json:"budget_range_in_inr"`
	Image          string `json:"image"`
	Link           string `json:"link"`
}

type BudgetBreakdown struct {
	Accommodation  int `json:"accommodation"`
	Food           int `json:"food"`
	Transportation int `json:"transportation"`
	Activities     int `json:"activities"`
	Shopping       int `json:"shopping"`
	Total          int `json:"total"`
}
