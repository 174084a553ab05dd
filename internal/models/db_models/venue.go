package db_models

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"itinerario/pkg/utils"
)

const VenueStatusOperational = "operational"

// Venue is a catalog record supplied by the ingestion boundary. The planning
// core only reads venues; it never creates or mutates them.
type Venue struct {
	BaseModel
	Name           string
	PrimaryType    string         `gorm:"index"`
	SecondaryTypes pq.StringArray `gorm:"type:text[]"`
	Rating         float64
	ReviewCount    int
	PriceText      string
	PriceLevel     int `gorm:"default:-1"`
	OpeningHours   string
	Amenities      pq.StringArray `gorm:"type:text[]"`
	Status         string         `gorm:"default:operational"`
}

// BeforeCreate normalizes the free-text price tier into the enumerated
// 0-4 level once, at ingestion time. The scheduling core only ever sees
// the enumerated level.
func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if err := v.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if v.PriceLevel < 0 {
		v.PriceLevel = utils.PriceLevelFromText(v.PriceText)
	}
	if v.Status == "" {
		v.Status = VenueStatusOperational
	}
	return nil
}

func (v *Venue) IsOperational() bool {
	return v.Status == VenueStatusOperational
}

// HasOnSiteRestaurant reports whether the amenity hints mention an on-site
// restaurant (e.g. "on-site restaurant", "hotel restaurant").
func (v *Venue) HasOnSiteRestaurant() bool {
	for _, amenity := range v.Amenities {
		if strings.Contains(strings.ToLower(amenity), "restaurant") {
			return true
		}
	}
	return false
}

// MatchesAnyType reports whether the venue's primary or secondary type
// intersects the given type tags.
func (v *Venue) MatchesAnyType(types []string) bool {
	for _, t := range types {
		if v.PrimaryType == t {
			return true
		}
		for _, secondary := range v.SecondaryTypes {
			if secondary == t {
				return true
			}
		}
	}
	return false
}
