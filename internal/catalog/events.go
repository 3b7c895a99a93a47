package catalog

// MoodEvents lists local event suggestions per canonical mood.
var MoodEvents = map[string][]string{
	"romantic": {
		"Couples workshops and retreats",
		"Romantic music performances",
		"Couples cooking classes",
		"Romantic photography tours",
		"Couples wellness sessions",
	},
	"adventurous": {
		"Adventure sports competitions",
		"Outdoor adventure festivals",
		"Adventure photography workshops",
		"Adventure training camps",
		"Adventure gear exhibitions",
	},
	"relaxing": {
		"Wellness and meditation retreats",
		"Yoga and mindfulness workshops",
		"Spa and wellness festivals",
		"Peace and tranquility events",
		"Relaxation therapy sessions",
	},
	"foodie": {
		"Food festivals and culinary events",
		"Wine tasting and pairing events",
		"Cooking competitions and workshops",
		"Food photography tours",
		"Culinary heritage celebrations",
	},
	"family": {
		"Family entertainment festivals",
		"Children's cultural events",
		"Family-friendly workshops",
		"Educational family events",
		"Family bonding activities",
	},
	"office trip": {
		"Business networking events",
		"Corporate team building activities",
		"Professional development workshops",
		"Business conferences and seminars",
		"Corporate entertainment events",
	},
}

// CustomMoodEvents builds templated events for moods outside the known table.
func CustomMoodEvents(mood string) []string {
	t := titleWords(mood)
	return []string{
		t + " themed events and workshops",
		t + " cultural celebrations",
		t + " focused activities",
		t + " community gatherings",
		t + " experience events",
	}
}

// SeasonalEvents are appended to every mood list before truncation.
var SeasonalEvents = []string{
	"Local cultural festivals",
	"Seasonal celebrations",
	"Destination-specific events",
	"Local community gatherings",
	"Traditional celebrations",
}
