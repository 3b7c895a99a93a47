package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"tripmood/internal/catalog"
	"tripmood/internal/models/response_models"
)

// resolveOTMCoords resolves a city with the OpenTripMap geoname endpoint.
func (c *client) resolveOTMCoords(ctx context.Context, city string) (*response_models.Coordinates, error) {
	if c.openTripMapKey == "" {
		return nil, ErrNoAPIKey
	}

	u := fmt.Sprintf("%s/geoname?name=%s&apikey=%s", openTripMapBaseURL, url.QueryEscape(city), c.openTripMapKey)
	var data struct {
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
		Name string  `json:"name"`
	}
	if err := c.getJSON(ctx, u, &data); err != nil {
		return nil, err
	}
	if data.Lat == 0 && data.Lon == 0 {
		return nil, ErrNotFound
	}

	return &response_models.Coordinates{Lat: data.Lat, Lon: data.Lon}, nil
}

type radiusItem struct {
	XID   string  `json:"xid"`
	Name  string  `json:"name"`
	Kinds string  `json:"kinds"`
	Dist  float64 `json:"dist"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Point struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"point"`
}

func (i radiusItem) coords() (float64, float64) {
	lat, lon := i.Point.Lat, i.Point.Lon
	if lat == 0 && lon == 0 {
		lat, lon = i.Lat, i.Lon
	}
	return lat, lon
}

type placeDetail struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	OTM  string `json:"otm"`
	Info struct {
		Descr string `json:"descr"`
	} `json:"info"`
	WikipediaExtracts struct {
		Text string `json:"text"`
	} `json:"wikipedia_extracts"`
	Preview struct {
		Source string `json:"source"`
	} `json:"preview"`
}

// KindsFor picks the OpenTripMap category filter. Interest tokens override
// the mood-derived filter when any of them map to a known kind.
func KindsFor(mood string, interests []string) string {
	kinds := "interesting_places"
	if k, ok := catalog.MoodKinds[catalog.NormalizeMood(mood)]; ok {
		kinds = k
	}
	var selected []string
	for _, token := range interests {
		token = strings.ToLower(strings.TrimSpace(token))
		if k, ok := catalog.InterestKinds[token]; ok {
			selected = append(selected, k)
		}
	}
	if len(selected) > 0 {
		kinds = strings.Join(selected, ",")
	}
	return kinds
}

func (c *client) FetchPOIs(ctx context.Context, city string, interests []string, days int, mood string) ([]response_models.POI, error) {
	coords, err := c.resolveOTMCoords(ctx, city)
	if err != nil {
		return nil, err
	}

	kinds := KindsFor(mood, interests)
	u := fmt.Sprintf("%s/radius?radius=15000&lon=%f&lat=%f&kinds=%s&rate=2&format=json&limit=30&apikey=%s",
		openTripMapBaseURL, coords.Lon, coords.Lat, url.QueryEscape(kinds), c.openTripMapKey)
	var items []radiusItem
	if err := c.getJSON(ctx, u, &items); err != nil {
		return nil, err
	}

	if len(items) > 5 {
		items = items[:5]
	}
	results := make([]response_models.POI, 0, len(items))
	for _, item := range items {
		var detail *placeDetail
		if item.XID != "" {
			var d placeDetail
			du := fmt.Sprintf("%s/xid/%s?apikey=%s", openTripMapBaseURL, url.PathEscape(item.XID), c.openTripMapKey)
			if err := c.getJSON(ctx, du, &d); err == nil {
				detail = &d
			}
		}

		name := item.Name
		summary, photo, source := "", "", ""
		if detail != nil {
			if detail.Name != "" {
				name = detail.Name
			}
			summary = detail.WikipediaExtracts.Text
			if summary == "" {
				summary = detail.Info.Descr
			}
			photo = detail.Preview.Source
			source = detail.URL
			if source == "" {
				source = detail.OTM
			}
		}
		if name == "" {
			name = "Unknown"
		}
		if photo == "" {
			photo = c.fetchWikipediaThumbnail(ctx, name)
		}
		if summary == "" {
			summary = "No description found"
		}

		lat, lon := item.coords()
		results = append(results, response_models.POI{
			ID:        item.XID,
			Name:      name,
			Lat:       lat,
			Lon:       lon,
			Kinds:     item.Kinds,
			Summary:   summary,
			PhotoURL:  photo,
			SourceURL: source,
		})
	}
	return results, nil
}

// fetchWikipediaThumbnail is best effort; a miss returns "".
func (c *client) fetchWikipediaThumbnail(ctx context.Context, title string) string {
	var data struct {
		Thumbnail struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
	}
	u := wikipediaSummaryURL + url.PathEscape(title)
	if err := c.getJSON(ctx, u, &data); err != nil {
		return ""
	}
	return data.Thumbnail.Source
}

// HotelTier assigns a rough price tier from the rank position in the
// upstream results.
func HotelTier(rank int) (price int, tier, budgetRange string) {
	switch {
	case rank < 5:
		return 2000, "Economy", "₹2,000–₹5,000"
	case rank < 10:
		return 8000, "Mid-Range", "₹5,000–₹12,000"
	default:
		return 18000, "Luxury", "₹12,000–₹30,000"
	}
}

// FilterHotelsByBudget keeps hotels whose estimated price falls inside the
// inclusive bounds. Nil bounds are open-ended.
func FilterHotelsByBudget(hotels []response_models.Hotel, budgetMin, budgetMax *int) []response_models.Hotel {
	if budgetMin == nil && budgetMax == nil {
		return hotels
	}
	lo, hi := 0, int(1e9)
	if budgetMin != nil {
		lo = *budgetMin
	}
	if budgetMax != nil {
		hi = *budgetMax
	}
	out := hotels[:0:0]
	for _, h := range hotels {
		if h.PriceInINREst >= lo && h.PriceInINREst <= hi {
			out = append(out, h)
		}
	}
	return out
}

// SampleHotels picks three spread across the tiers when enough remain.
func SampleHotels(hotels []response_models.Hotel) []response_models.Hotel {
	if len(hotels) < 3 {
		return hotels
	}
	mid := 5
	if len(hotels)-1 < mid {
		mid = len(hotels) - 1
	}
	return []response_models.Hotel{hotels[0], hotels[mid], hotels[len(hotels)-1]}
}

func (c *client) FetchHotels(ctx context.Context, city string, budgetMin, budgetMax *int) ([]response_models.Hotel, error) {
	coords, err := c.resolveOTMCoords(ctx, city)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/radius?radius=15000&lon=%f&lat=%f&kinds=accomodations&rate=1&format=json&limit=40&apikey=%s",
		openTripMapBaseURL, coords.Lon, coords.Lat, c.openTripMapKey)
	var items []radiusItem
	if err := c.getJSON(ctx, u, &items); err != nil {
		return nil, err
	}

	if len(items) > 15 {
		items = items[:15]
	}
	hotels := make([]response_models.Hotel, 0, len(items))
	for i, item := range items {
		name := item.Name
		if name == "" {
			name = "Hotel"
		}
		price, tier, rng := HotelTier(i)

		id := item.XID
		if id == "" {
			id = fmt.Sprintf("hotel_%d", i)
		}
		lat, lon := item.coords()
		h := response_models.Hotel{
			ID:             id,
			Name:           fmt.Sprintf("%s (%s)", name, tier),
			Lat:            lat,
			Lon:            lon,
			PriceInINREst:  price,
			BudgetRangeINR: rng,
			PhotoURL:       c.fetchWikipediaThumbnail(ctx, name),
		}
		if item.Dist > 0 {
			h.DistanceKM = float64(int(item.Dist/10)) / 100
		}
		hotels = append(hotels, h)
	}

	hotels = FilterHotelsByBudget(hotels, budgetMin, budgetMax)
	return SampleHotels(hotels), nil
}

// MapLink builds a Google Maps link for the destination, preferring exact
// coordinates when they resolve.
func (c *client) MapLink(ctx context.Context, destination string) string {
	if coords, err := c.ResolveCoordinates(ctx, destination); err == nil {
		return fmt.Sprintf("https://www.google.com/maps?q=%f,%f", coords.Lat, coords.Lon)
	}
	return "https://www.google.com/maps/search/" + strings.ReplaceAll(destination, " ", "+")
}
