package catalog

import "strings"

// Attraction is one curated must-visit entry.
type Attraction struct {
	Name        string
	Description string
	EntryFee    string
	BestTime    string
	Rating      string
	MapsLink    string
	Image       string
	Category    string
}

// NormalizeMood folds common synonyms onto the canonical mood keys used by
// the lookup tables.
func NormalizeMood(mood string) string {
	m := strings.ToLower(strings.TrimSpace(mood))
	switch m {
	case "relax":
		return "relaxing"
	case "adventure":
		return "adventurous"
	case "family-friendly":
		return "family"
	case "office":
		return "office trip"
	}
	return m
}

// CuratedAttractions maps lower-cased destination names to their must-visit
// list. Lookups must be case-insensitive on the caller side.
var CuratedAttractions = map[string][]Attraction{
	"guntur": {
		{
			Name:        "Amaravati Buddhist Site",
			Description: "Ancient Buddhist site with historical significance",
			EntryFee:    "₹50 for Indians, ₹500 for foreigners",
			BestTime:    "Morning",
			Rating:      "4.3",
			MapsLink:    "https://maps.google.com/?q=Amaravati+Buddhist+Site+Guntur",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "historical",
		},
		{
			Name:        "Undavalli Caves",
			Description: "Ancient rock-cut caves with beautiful architecture",
			EntryFee:    "₹25 for Indians, ₹300 for foreigners",
			BestTime:    "Morning or Evening",
			Rating:      "4.5",
			MapsLink:    "https://maps.google.com/?q=Undavalli+Caves+Guntur",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "historical",
		},
		{
			Name:        "Kondaveedu Fort",
			Description: "Historic hilltop fort with panoramic views",
			EntryFee:    "₹30 for Indians, ₹400 for foreigners",
			BestTime:    "Evening",
			Rating:      "4.2",
			MapsLink:    "https://maps.google.com/?q=Kondaveedu+Fort+Guntur",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "historical",
		},
		{
			Name:        "Guntur City Center",
			Description: "Modern shopping and entertainment hub",
			EntryFee:    "Free",
			BestTime:    "Evening",
			Rating:      "4.0",
			MapsLink:    "https://maps.google.com/?q=Guntur+City+Center",
			Image:       "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=400&h=300&fit=crop",
			Category:    "modern",
		},
	},
	"puri": {
		{
			Name:        "Jagannath Temple",
			Description: "Sacred Hindu temple dedicated to Lord Jagannath",
			EntryFee:    "Free (Hindus only)",
			BestTime:    "Early Morning",
			Rating:      "4.7",
			MapsLink:    "https://maps.google.com/?q=Jagannath+Temple+Puri",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "religious",
		},
		{
			Name:        "Puri Beach",
			Description: "Famous beach known for its golden sand and waves",
			EntryFee:    "Free",
			BestTime:    "Morning or Evening",
			Rating:      "4.5",
			MapsLink:    "https://maps.google.com/?q=Puri+Beach",
			Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=400&h=300&fit=crop",
			Category:    "nature",
		},
		{
			Name:        "Konark Sun Temple",
			Description: "UNESCO World Heritage Site, architectural marvel",
			EntryFee:    "₹40 for Indians, ₹600 for foreigners",
			BestTime:    "Morning",
			Rating:      "4.6",
			MapsLink:    "https://maps.google.com/?q=Konark+Sun+Temple",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "historical",
		},
		{
			Name:        "Chilika Lake",
			Description: "Asia's largest brackish water lagoon",
			EntryFee:    "₹50",
			BestTime:    "Morning for bird watching",
			Rating:      "4.4",
			MapsLink:    "https://maps.google.com/?q=Chilika+Lake",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category:    "nature",
		},
	},
	"mumbai": {
		{
			Name:        "Gateway of India",
			Description: "Historic monument and popular tourist attraction",
			EntryFee:    "Free",
			BestTime:    "Evening",
			Rating:      "4.3",
			MapsLink:    "https://maps.google.com/?q=Gateway+of+India+Mumbai",
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
			Category:    "historical",
		},
		{
			Name:        "Marine Drive",
			Description: "Famous curved boulevard along the coast",
			EntryFee:    "Free",
			BestTime:    "Evening",
			Rating:      "4.6",
			MapsLink:    "https://maps.google.com/?q=Marine+Drive+Mumbai",
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
			Category:    "modern",
		},
		{
			Name:        "Elephanta Caves",
			Description: "Ancient cave temples on Elephanta Island",
			EntryFee:    "₹40 for Indians, ₹600 for foreigners",
			BestTime:    "Morning",
			Rating:      "4.4",
			MapsLink:    "https://maps.google.com/?q=Elephanta+Caves",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "historical",
		},
	},
	"delhi": {
		{
			Name:        "Taj Mahal",
			Description: "Iconic white marble mausoleum",
			EntryFee:    "₹50 for Indians, ₹1100 for foreigners",
			BestTime:    "Sunrise",
			Rating:      "4.8",
			MapsLink:    "https://maps.google.com/?q=Taj+Mahal+Agra",
			Image:       "https://images.unsplash.com/photo-1564507592333-c60657eea523?w=400&h=300&fit=crop",
			Category:    "historical",
		},
		{
			Name:        "Red Fort",
			Description: "Historic fort complex in Old Delhi",
			EntryFee:    "₹35 for Indians, ₹500 for foreigners",
			BestTime:    "Morning",
			Rating:      "4.2",
			MapsLink:    "https://maps.google.com/?q=Red+Fort+Delhi",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "historical",
		},
		{
			Name:        "Qutub Minar",
			Description: "Tallest brick minaret in the world",
			EntryFee:    "₹30 for Indians, ₹500 for foreigners",
			BestTime:    "Morning",
			Rating:      "4.3",
			MapsLink:    "https://maps.google.com/?q=Qutub+Minar+Delhi",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "historical",
		},
	},
	"goa": {
		{
			Name:        "Calangute Beach",
			Description: "Queen of Beaches, popular tourist destination",
			EntryFee:    "Free",
			BestTime:    "Morning or Evening",
			Rating:      "4.4",
			MapsLink:    "https://maps.google.com/?q=Calangute+Beach+Goa",
			Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=400&h=300&fit=crop",
			Category:    "nature",
		},
		{
			Name:        "Basilica of Bom Jesus",
			Description: "UNESCO World Heritage Site, famous church",
			EntryFee:    "Free",
			BestTime:    "Morning",
			Rating:      "4.5",
			MapsLink:    "https://maps.google.com/?q=Basilica+of+Bom+Jesus+Goa",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "religious",
		},
		{
			Name:        "Fort Aguada",
			Description: "17th-century Portuguese fort",
			EntryFee:    "₹25 for Indians, ₹300 for foreigners",
			BestTime:    "Evening",
			Rating:      "4.3",
			MapsLink:    "https://maps.google.com/?q=Fort+Aguada+Goa",
			Image:       "https://images.unsplash.com/photo-1542810634-71277d95dcbb?w=400&h=300&fit=crop",
			Category:    "historical",
		},
	},
}

// MoodGenericAttractions backs destinations with no curated entry.
var MoodGenericAttractions = map[string][]string{
	"romantic": {
		"Sunset viewpoints for couples",
		"Romantic garden walks",
		"Couples spa and wellness centers",
		"Romantic boat rides",
		"Intimate dining spots",
	},
	"adventurous": {
		"Adventure sports centers",
		"Hiking and trekking trails",
		"Water sports facilities",
		"Rock climbing spots",
		"Adventure parks",
	},
	"relaxing": {
		"Spa and wellness centers",
		"Peaceful meditation gardens",
		"Serene nature trails",
		"Relaxing beach spots",
		"Tranquil mountain viewpoints",
	},
	"foodie": {
		"Local food markets",
		"Famous restaurants",
		"Street food hubs",
		"Food festivals",
		"Cooking class centers",
	},
	"family": {
		"Amusement parks",
		"Zoos and aquariums",
		"Interactive museums",
		"Family entertainment centers",
		"Kid-friendly parks",
	},
}

// MoodKinds maps moods to OpenTripMap category filters.
var MoodKinds = map[string]string{
	"relaxing":    "gardens,parks,natural",
	"adventurous": "sport,natural,cliffs,caves",
	"foodie":      "foods,restaurants,marketplaces",
	"romantic":    "gardens,bridges,architecture",
	"family":      "amusements,zoos,aquariums,theme_parks",
	"office trip": "museums,art_galleries,foods,shops",
}

// InterestKinds maps simple interest tokens to OpenTripMap kinds. When the
// caller supplies interests they override the mood-derived filter entirely.
var InterestKinds = map[string]string{
	"history":   "historic",
	"nature":    "natural",
	"art":       "museums,art_galleries",
	"food":      "foods",
	"shopping":  "shops",
	"adventure": "sport",
	"family":    "amusements",
}
