package db_models

import (
	"github.com/google/uuid"
)

// Activity category tags as they appear on the persisted schedule.
const (
	CategoryCheckIn     = "lodging-checkin"
	CategoryBreakfast   = "breakfast"
	CategorySightseeing = "sightseeing"
	CategoryLunch       = "lunch"
	CategoryShopping    = "shopping"
	CategoryDinner      = "dinner"
	CategoryNightlife   = "nightlife"
)

type TripActivity struct {
	BaseModel
	TripDayID       uuid.UUID `gorm:"index"`
	Category        string
	VenueID         uuid.UUID
	Venue           *Venue `gorm:"foreignKey:VenueID"`
	StartTime       string `gorm:"size:5"` // "HH:MM"
	EndTime         string `gorm:"size:5"`
	DurationMinutes int
	EstimatedCost   *float64
	OrderIndex      int
	Description     string
}
