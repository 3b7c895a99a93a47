package response_models

// POI is one place entry from the places lookup.
type POI struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Kinds     string  `json:"kinds"`
	Summary   string  `json:"summary"`
	PhotoURL  string  `json:"photo_url"`
	SourceURL string  `json:"source_url"`
}

// Hotel is one accommodation entry from the hotels lookup.
type Hotel struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	DistanceKM     float64 `json:"distance_km"`
	PriceInINREst  int     `json:"price_in_inr_est"`
	BudgetRangeINR string  `json:"budget_range_inr"`
	SourceURL      string  `json:"source_url"`
	PhotoURL       string  `json:"photo_url"`
}

// WeatherDay is one day of aggregated forecast.
type WeatherDay struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Forecast string `json:"forecast"`
	High     int    `json:"high"`
	Low      int    `json:"low"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
