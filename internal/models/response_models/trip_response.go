package response_models

type ActivityResponse struct {
	ID              string   `json:"id"`
	Category        string   `json:"category"`
	VenueID         string   `json:"venue_id"`
	VenueName       string   `json:"venue_name,omitempty"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DurationMinutes int      `json:"duration_minutes"`
	EstimatedCost   *float64 `json:"estimated_cost"`
	OrderIndex      int      `json:"order_index"`
	Description     string   `json:"description,omitempty"`
}

type LodgingResponse struct {
	VenueID    string  `json:"venue_id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	PriceLevel int     `json:"price_level"`
}

type DayPlanResponse struct {
	Day           int                `json:"day"`
	Date          string             `json:"date"`
	Lodging       *LodgingResponse   `json:"lodging,omitempty"`
	Activities    []ActivityResponse `json:"activities"`
	ActivityCount int                `json:"activity_count"`
}

type TripPlanResponse struct {
	ID                 string            `json:"id"`
	StartDate          string            `json:"start_date"`
	EndDate            string            `json:"end_date"`
	NumDays            int               `json:"num_days"`
	NumNights          int               `json:"num_nights"`
	TotalBudget        *float64          `json:"total_budget,omitempty"`
	PriceLevel         *int              `json:"price_level,omitempty"`
	Preferences        string            `json:"preferences,omitempty"`
	TotalEstimatedCost float64           `json:"total_estimated_cost"`
	ActivityCount      int               `json:"activity_count"`
	Days               []DayPlanResponse `json:"days"`
}
