package request_models

// Wire shapes exchanged with the suggestion service. These are the whole
// contract; transport and prompting live in the clients.

type VenueSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Types        []string `json:"types"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	PriceLevel   int      `json:"price_level"`
	OpeningHours string   `json:"opening_hours,omitempty"`
}

type VenuePick struct {
	ID        string `json:"id"`
	Rationale string `json:"rationale"`
}

type CategoryTypeSuggestion struct {
	Lodging  []string `json:"lodging"`
	Food     []string `json:"food"`
	Sights   []string `json:"sights"`
	Shopping []string `json:"shopping"`
}

type PendingActivitySummary struct {
	ID       string       `json:"id"`
	Category string       `json:"category"`
	Venue    VenueSummary `json:"venue"`
}

type FixedActivitySummary struct {
	Category  string `json:"category"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DaySlotSuggestion struct {
	ID          string `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}
