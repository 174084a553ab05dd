package services

import (
	"itinerario/internal/models/db_models"
)

// Selection categories used when filtering candidates and estimating cost.
// Meals share the restaurant category; nightlife is a bar slot.
const (
	SelectionRestaurant  = "restaurant"
	SelectionSightseeing = "sightseeing"
	SelectionCafe        = "cafe"
	SelectionBar         = "bar"
	SelectionShopping    = "shopping"
)

// Base activity costs in currency-agnostic units, scaled by the venue's
// price level.
var baseCosts = map[string]float64{
	SelectionSightseeing: 50,
	SelectionRestaurant:  80,
	SelectionCafe:        30,
	SelectionBar:         60,
	SelectionShopping:    100,
	"entertainment":      70,
}

// budgetShareCap limits any single activity to 30% of the remaining daily
// budget share.
const budgetShareCap = 0.30

func baseCostFor(category string) float64 {
	if cost, ok := baseCosts[category]; ok {
		return cost
	}
	return baseCosts["entertainment"]
}

func priceMultiplier(level int) float64 {
	switch {
	case level == 0 || level == 1:
		return 1
	case level == 2:
		return 2
	case level == 3:
		return 3
	case level >= 4:
		return 4
	default: // unassigned
		return 2
	}
}

// EstimateActivityCost derives the estimated cost of one activity from its
// selection category and the venue's enumerated price level, clipped against
// the remaining daily budget when one is known.
func EstimateActivityCost(category string, venue *db_models.Venue, dailyBudgetRemaining *float64) float64 {
	level := -1
	if venue != nil {
		level = venue.PriceLevel
	}
	cost := baseCostFor(category) * priceMultiplier(level)
	if dailyBudgetRemaining != nil {
		if limit := budgetShareCap * *dailyBudgetRemaining; cost > limit {
			cost = limit
		}
	}
	if cost < 0 {
		cost = 0
	}
	return cost
}

// HotelBreakfastCost is the flat estimate used when breakfast is served at
// the lodging; it bypasses the per-venue multiplier.
func HotelBreakfastCost() float64 {
	return baseCosts[SelectionCafe]
}
