// Package catalog holds the static lookup tables behind the planner: mood
// activity pools, curated attractions, hotel archetypes, packing item sets,
// event lists and the location picker data. Everything here is read-only
// after process start.
package catalog

import "fmt"

// SlotActivities is the per-slot candidate pool for one mood. Known moods
// carry five candidates per slot.
type SlotActivities struct {
	Morning       []string
	Afternoon     []string
	Evening       []string
	Dinner        []string
	Accommodation []string
}

var MoodActivities = map[string]SlotActivities{
	"romantic": {
		Morning: []string{
			"Couples sunrise yoga session at the beach",
			"Romantic breakfast in bed with local delicacies",
			"Private garden meditation for two",
			"Couples spa treatment with aromatic oils",
			"Sunrise photography session at scenic viewpoints",
		},
		Afternoon: []string{
			"Private wine tasting experience",
			"Couples cooking class with local chefs",
			"Romantic picnic in botanical gardens",
			"Private boat ride on serene waters",
			"Couples art workshop with local artists",
		},
		Evening: []string{
			"Sunset dinner cruise with live music",
			"Private candlelit dinner under the stars",
			"Romantic stargazing session",
			"Couples dance class with local instructors",
			"Evening walk through illuminated gardens",
		},
		Dinner: []string{
			"Intimate rooftop restaurant with city views",
			"Private dining room with personalized menu",
			"Beachfront restaurant with ocean sounds",
			"Mountain view restaurant with sunset backdrop",
			"Garden restaurant with fairy lights",
		},
		Accommodation: []string{
			"Luxury couple's suite with private balcony",
			"Romantic boutique hotel with rose petals",
			"Private villa with infinity pool",
			"Treehouse accommodation for adventurous couples",
			"Historic palace converted to romantic retreat",
		},
	},
	"adventurous": {
		Morning: []string{
			"Early morning rock climbing session",
			"Sunrise mountain biking adventure",
			"Wildlife safari in natural reserves",
			"Waterfall rappelling experience",
			"Paragliding over scenic landscapes",
		},
		Afternoon: []string{
			"White water rafting on challenging rapids",
			"Zip lining through dense forests",
			"Cave exploration with headlamps",
			"Mountain trekking with local guides",
			"Rock climbing on natural formations",
		},
		Evening: []string{
			"Campfire storytelling with local legends",
			"Night hiking with stargazing",
			"Adventure photography workshop",
			"Outdoor survival skills training",
			"Mountain camping under the stars",
		},
		Dinner: []string{
			"Adventure camp dining with local cuisine",
			"Mountain lodge restaurant with panoramic views",
			"Riverside barbecue with fresh catch",
			"Forest dining with natural ambiance",
			"Cliffside restaurant with adventure theme",
		},
		Accommodation: []string{
			"Adventure lodge with rustic charm",
			"Mountain camp with basic amenities",
			"Eco-resort with sustainable practices",
			"Adventure hostel with shared experiences",
			"Treehouse accommodation in wilderness",
		},
	},
	"relaxing": {
		Morning: []string{
			"Gentle yoga session with ocean breeze",
			"Meditation retreat in peaceful gardens",
			"Spa treatment with natural ingredients",
			"Peaceful bird watching in nature",
			"Mindful walking in serene landscapes",
		},
		Afternoon: []string{
			"Leisurely lunch at organic farm restaurant",
			"Tea ceremony in traditional gardens",
			"Gentle nature walk with local guides",
			"Art therapy session with local artists",
			"Sound healing session with instruments",
		},
		Evening: []string{
			"Sunset viewing from peaceful viewpoints",
			"Relaxing boat ride on calm waters",
			"Evening stroll through quiet streets",
			"Meditation session under the stars",
			"Gentle music performance in gardens",
		},
		Dinner: []string{
			"Fine dining with farm-to-table cuisine",
			"Rooftop restaurant with city lights",
			"Garden restaurant with natural sounds",
			"Seaside restaurant with ocean views",
			"Mountain restaurant with valley views",
		},
		Accommodation: []string{
			"Luxury spa resort with wellness programs",
			"Boutique wellness hotel with meditation rooms",
			"Peaceful retreat center in nature",
			"Serene mountain lodge with spa facilities",
			"Beachfront resort with yoga classes",
		},
	},
	"foodie": {
		Morning: []string{
			"Local food market tour with tastings",
			"Cooking class with regional specialties",
			"Food photography walk through markets",
			"Breakfast food tour of local favorites",
			"Coffee plantation visit with tasting",
		},
		Afternoon: []string{
			"Wine tasting session with local varieties",
			"Street food exploration with foodie guide",
			"Chef's table experience at top restaurants",
			"Food festival participation and tasting",
			"Local brewery tour with beer pairing",
		},
		Evening: []string{
			"Fine dining experience with wine pairing",
			"Food and culture tour with local experts",
			"Culinary workshop with master chefs",
			"Gourmet dinner with seasonal ingredients",
			"Food truck gathering with diverse options",
		},
		Dinner: []string{
			"Michelin-starred restaurant experience",
			"Local chef's restaurant with signature dishes",
			"Food truck gathering with international cuisine",
			"Traditional restaurant with family recipes",
			"Fusion restaurant with innovative combinations",
		},
		Accommodation: []string{
			"Food-themed hotel with culinary programs",
			"Culinary retreat with cooking facilities",
			"Boutique food hotel with restaurant partnerships",
			"Gastronomic resort with wine cellars",
			"Farm stay with organic meal preparation",
		},
	},
	"family": {
		Morning: []string{
			"Theme park adventure with family rides",
			"Zoo and aquarium tour with educational programs",
			"Family museum visit with interactive exhibits",
			"Interactive science center with hands-on activities",
			"Family-friendly wildlife sanctuary visit",
		},
		Afternoon: []string{
			"Family cooking class with kid-friendly recipes",
			"Outdoor picnic with games and activities",
			"Educational tour with fun learning elements",
			"Family-friendly show with entertainment",
			"Adventure park with age-appropriate activities",
		},
		Evening: []string{
			"Family dinner with entertainment options",
			"Evening entertainment suitable for all ages",
			"Family games and bonding activities",
			"Movie night with family-friendly films",
			"Cultural performance with family appeal",
		},
		Dinner: []string{
			"Family restaurant with diverse menu options",
			"Kid-friendly dining with play areas",
			"Buffet restaurant with variety for all tastes",
			"Casual family eatery with relaxed atmosphere",
			"Interactive restaurant with entertainment",
		},
		Accommodation: []string{
			"Family resort with kids club and activities",
			"Kid-friendly hotel with family suites",
			"Family suite with separate sleeping areas",
			"Resort with kids club and supervised activities",
			"Family-friendly accommodation with amenities",
		},
	},
	"office trip": {
		Morning: []string{
			"Team building workshop in scenic location",
			"Conference hall setup and preparation",
			"Business networking breakfast meeting",
			"Corporate team challenge activities",
			"Professional development session outdoors",
		},
		Afternoon: []string{
			"Business lunch with local partners",
			"Team collaboration session in meeting rooms",
			"Corporate team building exercises",
			"Business presentation practice sessions",
			"Strategic planning workshop in relaxed setting",
		},
		Evening: []string{
			"Team dinner with local cuisine",
			"Business networking cocktail event",
			"Team bonding activities and games",
			"Corporate social responsibility activities",
			"Team celebration and recognition event",
		},
		Dinner: []string{
			"Business dinner with formal atmosphere",
			"Team dining with local specialties",
			"Corporate event with entertainment",
			"Business networking dinner",
			"Team celebration meal with activities",
		},
		Accommodation: []string{
			"Business hotel with conference facilities",
			"Corporate accommodation with meeting rooms",
			"Business center with work amenities",
			"Professional accommodation with business services",
			"Corporate retreat center with facilities",
		},
	},
}

// CustomMoodActivities synthesizes a candidate pool for moods not present in
// MoodActivities by substituting the mood name into generic phrase patterns.
func CustomMoodActivities(mood string) SlotActivities {
	return SlotActivities{
		Morning: []string{
			fmt.Sprintf("Explore %s interests in local settings", mood),
			fmt.Sprintf("Visit %s themed locations", mood),
			fmt.Sprintf("Participate in %s focused activities", mood),
			fmt.Sprintf("Discover %s related attractions", mood),
			fmt.Sprintf("Experience %s culture and traditions", mood),
		},
		Afternoon: []string{
			fmt.Sprintf("Immerse in %s experiences", mood),
			fmt.Sprintf("Learn about %s from local experts", mood),
			fmt.Sprintf("Practice %s related skills", mood),
			fmt.Sprintf("Connect with %s community", mood),
			fmt.Sprintf("Explore %s heritage and history", mood),
		},
		Evening: []string{
			fmt.Sprintf("Evening %s activities and events", mood),
			fmt.Sprintf("Sunset %s experience", mood),
			fmt.Sprintf("Night time %s exploration", mood),
			fmt.Sprintf("Evening %s entertainment", mood),
			fmt.Sprintf("Twilight %s activities", mood),
		},
		Dinner: []string{
			fmt.Sprintf("Dine at %s themed restaurants", mood),
			fmt.Sprintf("Experience %s cuisine", mood),
			fmt.Sprintf("Enjoy %s atmosphere dining", mood),
			fmt.Sprintf("Taste %s inspired dishes", mood),
			fmt.Sprintf("Relish %s cultural meals", mood),
		},
		Accommodation: []string{
			fmt.Sprintf("Stay at %s themed accommodation", mood),
			fmt.Sprintf("Experience %s inspired lodging", mood),
			fmt.Sprintf("Enjoy %s focused amenities", mood),
			fmt.Sprintf("Relax in %s environment", mood),
			fmt.Sprintf("Immerse in %s atmosphere", mood),
		},
	}
}

// VariationTemplates decorate an already-used activity once the base pool is
// exhausted so that no two days read identically. %d is the day number.
var VariationTemplates = []string{
	"Day %d: %s",
	"Special %d day: %s",
	"Unique day %d experience: %s",
	"Day %d exclusive: %s",
	"Personalized day %d: %s",
}
