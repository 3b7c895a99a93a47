package catalog

import "strings"

// MoodHotels lists accommodation archetypes per canonical mood.
var MoodHotels = map[string][]string{
	"romantic": {
		"Luxury boutique hotels",
		"Romantic resorts",
		"Couples-only accommodations",
		"Intimate guesthouses",
		"Romantic bed and breakfasts",
	},
	"adventurous": {
		"Adventure lodges",
		"Eco-resorts",
		"Mountain camps",
		"Adventure hostels",
		"Wilderness accommodations",
	},
	"relaxing": {
		"Wellness resorts",
		"Spa hotels",
		"Peaceful retreats",
		"Serene accommodations",
		"Meditation centers",
	},
	"foodie": {
		"Food-themed hotels",
		"Culinary retreats",
		"Restaurant partnerships",
		"Food-focused accommodations",
		"Gastronomic experiences",
	},
	"family": {
		"Family resorts",
		"Kid-friendly hotels",
		"Family suites",
		"Entertainment hotels",
		"Family-focused accommodations",
	},
	"office trip": {
		"Business hotels",
		"Conference centers",
		"Corporate accommodations",
		"Professional facilities",
		"Business-focused lodging",
	},
}

// CustomMoodHotels builds templated archetypes for moods outside the
// known table.
func CustomMoodHotels(mood string) []string {
	t := titleWords(mood)
	return []string{
		t + " themed accommodations",
		t + " focused hotels",
		t + " experience lodging",
		t + " culture accommodations",
		t + " heritage stays",
	}
}

// BudgetHotels lists accommodation styles per budget preference bracket.
var BudgetHotels = map[string][]string{
	"budget": {
		"Budget-friendly hostels",
		"Affordable guesthouses",
		"Economic accommodations",
		"Value-for-money hotels",
		"Budget resorts",
	},
	"mid-range": {
		"Mid-range hotels",
		"Comfortable accommodations",
		"Standard resorts",
		"Quality guesthouses",
		"Balanced value hotels",
	},
	"premium": {
		"Luxury accommodations",
		"Premium resorts",
		"High-end hotels",
		"Exclusive stays",
		"Deluxe accommodations",
	},
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
