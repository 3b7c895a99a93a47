package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustVisitCuratedDestination(t *testing.T) {
	svc := NewAttractionService()

	got := svc.MustVisit("  PURI ", "relaxing")
	assert.Len(t, got, 4)
	assert.Equal(t, "Jagannath Temple", got[0].Name)

	// curated data wins regardless of mood
	sameAgain := svc.MustVisit("Puri", "adventurous")
	assert.Equal(t, got[0].Name, sameAgain[0].Name)
}

func TestMustVisitMoodFallback(t *testing.T) {
	svc := NewAttractionService()

	got := svc.MustVisit("Smalltown", "foodie")
	assert.Len(t, got, 4)
	for _, a := range got {
		assert.NotEmpty(t, a.Name)
		assert.Contains(t, a.GoogleMapsLink, "Smalltown")
		assert.Equal(t, "foodie", a.Category)
	}
}

func TestMustVisitUnknownMoodFallsBackToRelaxing(t *testing.T) {
	svc := NewAttractionService()

	got := svc.MustVisit("Smalltown", "mystery")
	assert.Len(t, got, 4)
	assert.Equal(t, "Spa and wellness centers", got[0].Name)
}

func TestHotelRecommendations(t *testing.T) {
	svc := NewAttractionService()

	got := svc.HotelRecommendations("romantic", 30)
	assert.Len(t, got, 8)
	assert.Equal(t, "Luxury boutique hotels", got[0])
	assert.Contains(t, got, "Mid-range hotels")

	// under 25 gets the budget bracket
	got = svc.HotelRecommendations("romantic", 22)
	assert.Contains(t, got, "Budget-friendly hostels")

	// 40 and over gets premium
	got = svc.HotelRecommendations("romantic", 45)
	assert.Contains(t, got, "Luxury accommodations")

	// unknown age defaults to mid-range
	got = svc.HotelRecommendations("romantic", 0)
	assert.Contains(t, got, "Mid-range hotels")
}

func TestHotelRecommendationsCustomMood(t *testing.T) {
	svc := NewAttractionService()

	got := svc.HotelRecommendations("spiritual", 30)
	assert.Len(t, got, 8)
	assert.Equal(t, "Spiritual themed accommodations", got[0])
}
