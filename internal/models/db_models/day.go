package db_models

import (
	"time"

	"github.com/google/uuid"
)

type TripDay struct {
	BaseModel
	TripID         uuid.UUID `gorm:"index"`
	DayNumber      int
	Date           time.Time
	LodgingVenueID *uuid.UUID
	Lodging        *Venue `gorm:"foreignKey:LodgingVenueID"`

	Activities []TripActivity `gorm:"foreignKey:TripDayID"`
}
