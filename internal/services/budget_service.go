package services

import (
	"strings"

	"tripmood/internal/catalog"
	"tripmood/internal/models/response_models"
	"tripmood/pkg/utils"
)

type BudgetServiceInterface interface {
	Breakdown(days int, mood string, interests []string,
		attractions []response_models.Attraction, hotels []response_models.HotelCard) response_models.BudgetBreakdown
}

type BudgetService struct{}

func NewBudgetService() BudgetServiceInterface {
	return &BudgetService{}
}

func (b *BudgetService) Breakdown(days int, mood string, interests []string,
	attractions []response_models.Attraction, hotels []response_models.HotelCard) response_models.BudgetBreakdown {

	if days < 1 {
		days = 1
	}
	mv := catalog.NormalizeMood(mood)

	lowered := make([]string, 0, len(interests))
	for _, i := range interests {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(i)))
	}

	// Accommodation from hotel nightly estimates. The explicit estimate wins
	// over the display range, whose grouped digits misparse as tiny values.
	hotelDaily := 2500
	var hotelVals []int
	for _, h := range hotels {
		v := h.PriceInINREst
		if v == 0 {
			v = utils.ParseINR(h.BudgetRangeINR)
		}
		if v > 0 {
			hotelVals = append(hotelVals, v)
		}
	}
	if len(hotelVals) > 0 {
		sum := 0
		for _, v := range hotelVals {
			sum += v
		}
		hotelDaily = sum / len(hotelVals)
	}
	accommodation := hotelDaily * days

	// Activities from attraction entry fees, 1-2 paid entries a day by mood
	avgFee := 300
	var fees []int
	for _, a := range attractions {
		if v := utils.ParseINR(a.EntryFee); v > 0 {
			fees = append(fees, v)
		}
	}
	if len(fees) > 0 {
		sum := 0
		for _, v := range fees {
			sum += v
		}
		avgFee = sum / len(fees)
	}
	perDay := 1.0
	switch mv {
	case "adventurous", "foodie":
		perDay = 2
	case "family":
		perDay = 1.5
	}
	activities := int(float64(avgFee) * perDay * float64(days))

	// Food per day, one multiplier only
	foodDaily := 700
	switch {
	case mv == "foodie" || contains(lowered, "food"):
		foodDaily = int(float64(foodDaily) * 1.5)
	case mv == "romantic":
		foodDaily = int(float64(foodDaily) * 1.3)
	case mv == "adventurous":
		foodDaily = int(float64(foodDaily) * 1.2)
	case mv == "relaxing":
		foodDaily = int(float64(foodDaily) * 0.9)
	}
	food := foodDaily * days

	// Transport per day, multipliers stack
	transportDaily := 500
	if mv == "adventurous" {
		transportDaily = int(float64(transportDaily) * 1.4)
	}
	if mv == "family" {
		transportDaily = int(float64(transportDaily) * 1.2)
	}
	transportation := transportDaily * days

	shoppingDaily := 300
	if contains(lowered, "shopping") {
		shoppingDaily = int(float64(shoppingDaily) * 1.6)
	}
	shopping := shoppingDaily * days

	return response_models.BudgetBreakdown{
		Accommodation:  accommodation,
		Food:           food,
		Transportation: transportation,
		Activities:     activities,
		Shopping:       shopping,
		Total:          accommodation + food + transportation + activities + shopping,
	}
}

func contains(items []string, want string) bool {
	for _, i := range items {
		if i == want {
			return true
		}
	}
	return false
}
