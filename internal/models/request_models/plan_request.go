package request_models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// INRAmount binds either a bare integer or a grouped rupee string such as
// "₹7,000", so generated plans can be persisted verbatim.
type INRAmount int

func (a *INRAmount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		digits := strings.Builder{}
		for _, ch := range s {
			if ch >= '0' && ch <= '9' {
				digits.WriteRune(ch)
			}
		}
		if digits.Len() == 0 {
			*a = 0
			return nil
		}
		n, err := strconv.Atoi(digits.String())
		if err != nil {
			return err
		}
		*a = INRAmount(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = INRAmount(n)
	return nil
}

type PlanRequest struct {
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Country   string   `json:"country"`
	State     string   `json:"state"`
	City      string   `json:"city" binding:"required"`
	StartDate string   `json:"start_date"`
	Days      int      `json:"days" binding:"required,min=1"`
	Mood      string   `json:"mood" binding:"required"`
	Interests []string `json:"interests"`
	BudgetMin *int     `json:"budget_min"`
	BudgetMax *int     `json:"budget_max"`
}

type SaveTripRequest struct {
	Name        string   `json:"name"`
	Age         int      `json:"age"`
	Gender      string   `json:"gender"`
	Country     string   `json:"country"`
	State       string   `json:"state"`
	City        string   `json:"city"`
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date"`
	Days        int      `json:"days" binding:"required,min=1"`
	Mood        string   `json:"mood"`
	BudgetRange string   `json:"budget_range_inr"`
	Interests   []string `json:"interests"`

	POIs        any `json:"pois"`
	Hotels      any `json:"hotels"`
	Itinerary   any `json:"itinerary"`
	PackingList any `json:"packing_list"`
	Weather     any `json:"weather"`
	Events      any `json:"events"`
	MapData     any `json:"map_data"`

	TotalBudgetINR INRAmount `json:"total_budget_inr"`
}

type UpdateTripRequest struct {
	TripID      string   `json:"trip_id" binding:"required,uuid4"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	Days        int      `json:"days"`
	Mood        string   `json:"mood"`
	Interests   []string `json:"interests"`
}
