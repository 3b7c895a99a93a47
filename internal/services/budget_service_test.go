package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tripmood/internal/models/response_models"
)

func TestBreakdownTotalInvariant(t *testing.T) {
	svc := NewBudgetService()

	moods := []string{"relaxing", "adventurous", "foodie", "romantic", "family", "office trip", "spiritual"}
	for _, mood := range moods {
		b := svc.Breakdown(3, mood, []string{"shopping"}, nil, nil)
		sum := b.Accommodation + b.Food + b.Transportation + b.Activities + b.Shopping
		assert.Equal(t, sum, b.Total, "mood %s", mood)
	}
}

func TestBreakdownDefaults(t *testing.T) {
	svc := NewBudgetService()

	b := svc.Breakdown(2, "", nil, nil, nil)
	assert.Equal(t, 5000, b.Accommodation) // 2500 default nightly
	assert.Equal(t, 1400, b.Food)          // 700 baseline
	assert.Equal(t, 1000, b.Transportation)
	assert.Equal(t, 600, b.Activities) // 300 avg fee, 1 entry per day
	assert.Equal(t, 600, b.Shopping)
}

func TestBreakdownFoodMultiplierFirstMatchOnly(t *testing.T) {
	svc := NewBudgetService()

	// foodie wins over any other mood rule: 700*1.5 = 1050/day
	b := svc.Breakdown(1, "foodie", nil, nil, nil)
	assert.Equal(t, 1050, b.Food)

	// a food interest triggers the same branch regardless of mood
	b = svc.Breakdown(1, "relaxing", []string{"Food"}, nil, nil)
	assert.Equal(t, 1050, b.Food)

	// without the interest, relaxing applies its own reduction only
	b = svc.Breakdown(1, "relaxing", nil, nil, nil)
	assert.Equal(t, 630, b.Food)

	b = svc.Breakdown(1, "romantic", nil, nil, nil)
	assert.Equal(t, 910, b.Food)

	b = svc.Breakdown(1, "adventurous", nil, nil, nil)
	assert.Equal(t, 840, b.Food)
}

func TestBreakdownTransportAndActivities(t *testing.T) {
	svc := NewBudgetService()

	b := svc.Breakdown(2, "adventurous", nil, nil, nil)
	assert.Equal(t, 1400, b.Transportation) // 500*1.4 per day
	assert.Equal(t, 1200, b.Activities)     // 300*2 entries per day

	b = svc.Breakdown(2, "family", nil, nil, nil)
	assert.Equal(t, 1200, b.Transportation) // 500*1.2 per day
	assert.Equal(t, 900, b.Activities)      // 300*1.5 per day
}

func TestBreakdownUsesHotelAndFeeEstimates(t *testing.T) {
	svc := NewBudgetService()

	hotels := []response_models.HotelCard{
		{BudgetRangeINR: "₹2000"},
		{BudgetRangeINR: "₹4000"},
	}
	attractions := []response_models.Attraction{
		{EntryFee: "₹100"},
		{EntryFee: "₹300"},
		{EntryFee: "Free"},
	}

	b := svc.Breakdown(2, "relaxing", nil, attractions, hotels)
	assert.Equal(t, 6000, b.Accommodation) // avg 3000 nightly
	assert.Equal(t, 400, b.Activities)     // avg fee 200, 1 per day
}

func TestBreakdownPrefersNightlyEstimateOverGroupedRange(t *testing.T) {
	svc := NewBudgetService()

	// grouped display ranges alone misparse to single digits; the estimate
	// must take precedence so real hotel cards never collapse the category
	hotels := []response_models.HotelCard{
		{PriceInINREst: 2000, BudgetRangeINR: "₹2,000–₹5,000"},
		{PriceInINREst: 8000, BudgetRangeINR: "₹8,000–₹15,000"},
	}

	b := svc.Breakdown(2, "relaxing", nil, nil, hotels)
	assert.Equal(t, 10000, b.Accommodation) // avg 5000 nightly

	// cards with neither an estimate nor a parseable range keep the default
	b = svc.Breakdown(2, "relaxing", nil, nil, []response_models.HotelCard{{Name: "Unnamed Stay"}})
	assert.Equal(t, 5000, b.Accommodation)
}

func TestBreakdownShoppingInterest(t *testing.T) {
	svc := NewBudgetService()

	b := svc.Breakdown(1, "relaxing", []string{"Shopping"}, nil, nil)
	assert.Equal(t, 480, b.Shopping)

	b = svc.Breakdown(1, "relaxing", nil, nil, nil)
	assert.Equal(t, 300, b.Shopping)
}
