package response_models

type VenueResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PrimaryType  string   `json:"primary_type"`
	Types        []string `json:"types,omitempty"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	PriceLevel   int      `json:"price_level"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	Status       string   `json:"status"`
}
