package request_models

import (
	"encoding/json"
	"testing"
)

func TestSaveTripRequestBindsFormattedBudget(t *testing.T) {
	// generated plans render the total as a grouped rupee string; saving
	// that payload verbatim must still bind
	var req SaveTripRequest
	payload := `{"destination":"Puri","days":3,"total_budget_inr":"₹12,750"}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if req.TotalBudgetINR != 12750 {
		t.Fatalf("expected 12750, got %d", req.TotalBudgetINR)
	}

	var plain SaveTripRequest
	if err := json.Unmarshal([]byte(`{"destination":"Puri","days":3,"total_budget_inr":12750}`), &plain); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if plain.TotalBudgetINR != 12750 {
		t.Fatalf("expected 12750, got %d", plain.TotalBudgetINR)
	}
}
