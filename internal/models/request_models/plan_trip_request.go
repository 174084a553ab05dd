package request_models

type PlanTripRequest struct {
	// Dates are inclusive, formatted "2006-01-02".
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	TotalBudget *float64 `json:"total_budget" binding:"omitempty,gt=0"`
	PriceLevel  *int     `json:"price_level" binding:"omitempty,gte=0,lte=4"`
	Preferences string   `json:"preferences"`
}
