package utils

import "strings"

// Price levels are the 0-4 ordinal brackets carried on every venue.
const (
	PriceLevelBudget     = 1
	PriceLevelModerate   = 2
	PriceLevelExpensive  = 3
	PriceLevelLuxury     = 4
	DefaultPriceLevel    = PriceLevelModerate
	PriceLevelUnassigned = -1
)

// PriceLevelFromText normalizes the catalog feed's free-text tier into the
// enumerated level. Runs once at ingestion; the scheduling core never matches
// on text. "muy caro" must be checked before "caro".
func PriceLevelFromText(text string) int {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case t == "":
		return DefaultPriceLevel
	case strings.Contains(t, "muy caro"):
		return PriceLevelLuxury
	case strings.Contains(t, "caro"):
		return PriceLevelExpensive
	case strings.Contains(t, "económico"), strings.Contains(t, "economico"), strings.Contains(t, "barato"):
		return PriceLevelBudget
	case strings.Contains(t, "moderado"):
		return PriceLevelModerate
	default:
		return DefaultPriceLevel
	}
}
