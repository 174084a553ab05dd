package request_models

type VenueImport struct {
	Name           string   `json:"name" binding:"required"`
	PrimaryType    string   `json:"primary_type" binding:"required"`
	SecondaryTypes []string `json:"secondary_types"`
	Rating         float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
	ReviewCount    int      `json:"review_count" binding:"omitempty,gte=0"`
	// Free-text tier as delivered by the catalog feed (e.g. "económico",
	// "muy caro"); normalized to price_level at ingestion when the explicit
	// level is absent.
	PriceText    string   `json:"price_text"`
	PriceLevel   *int     `json:"price_level" binding:"omitempty,gte=0,lte=4"`
	OpeningHours string   `json:"opening_hours"`
	Amenities    []string `json:"amenities"`
	Status       string   `json:"status"`
}

type ImportVenuesRequest struct {
	Venues []VenueImport `json:"venues" binding:"required,min=1,dive"`
}
