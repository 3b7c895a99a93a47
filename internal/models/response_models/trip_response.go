package response_models

import "encoding/json"

// TripSummary is the compact row returned by plan listings.
type TripSummary struct {
	ID             string   `json:"id"`
	Country        string   `json:"country"`
	State          string   `json:"state"`
	Destination    string   `json:"destination"`
	StartDate      string   `json:"start_date"`
	Days           int      `json:"days"`
	Mood           string   `json:"mood"`
	Interests      []string `json:"interests"`
	TotalBudgetINR int      `json:"total_budget_inr"`
	CreatedAt      int64    `json:"created_at"`
}

// TripDetail carries the stored plan documents verbatim.
type TripDetail struct {
	TripSummary
	TravelerName   string          `json:"name"`
	TravelerAge    int             `json:"age"`
	TravelerGender string          `json:"gender"`
	City           string          `json:"city"`
	BudgetRange    string          `json:"budget_range_inr"`
	POIs           json.RawMessage `json:"pois"`
	Hotels         json.RawMessage `json:"hotels"`
	Itinerary      json.RawMessage `json:"itinerary"`
	PackingList    json.RawMessage `json:"packing_list"`
	Weather        json.RawMessage `json:"weather"`
	Events         json.RawMessage `json:"events"`
	MapData        json.RawMessage `json:"map_data"`
}

type PageResult[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
