package db_models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"itinerario/internal/models/response_models"
	"itinerario/pkg/utils"
)

type Trip struct {
	BaseModel
	StartDate   time.Time
	EndDate     time.Time
	NumDays     int
	NumNights   int
	TotalBudget *float64
	PriceLevel  *int
	Preferences string

	// Category->allowed-venue-type mapping resolved once per trip.
	CategoryTypes datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Days []TripDay `gorm:"foreignKey:TripID"`
}

// CategoryTypeMap maps the four planning categories to the venue type tags
// allowed for them.
type CategoryTypeMap struct {
	Lodging  []string `json:"lodging"`
	Food     []string `json:"food"`
	Sights   []string `json:"sights"`
	Shopping []string `json:"shopping"`
}

// DefaultCategoryTypes is the fixed mapping used whenever the suggestion
// service is unavailable or returns something unusable.
func DefaultCategoryTypes() CategoryTypeMap {
	return CategoryTypeMap{
		Lodging:  []string{"hotel", "resort"},
		Food:     []string{"restaurant", "cafe", "bar"},
		Sights:   []string{"tourist_attraction", "museum", "park"},
		Shopping: []string{"shopping_mall", "store"},
	}
}

func (t *Trip) SetCategoryTypes(m CategoryTypeMap) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	t.CategoryTypes = datatypes.JSON(raw)
	return nil
}

// ResolvedCategoryTypes returns the mapping stored on the trip, falling back
// to the defaults when the column is empty or unreadable.
func (t *Trip) ResolvedCategoryTypes() CategoryTypeMap {
	if len(t.CategoryTypes) == 0 {
		return DefaultCategoryTypes()
	}
	var m CategoryTypeMap
	if err := json.Unmarshal(t.CategoryTypes, &m); err != nil {
		return DefaultCategoryTypes()
	}
	return m
}

// BuildTripPlanResponse flattens a generated trip into its API shape,
// aggregating the trip-level statistics on the way.
func BuildTripPlanResponse(trip *Trip) *response_models.TripPlanResponse {
	out := &response_models.TripPlanResponse{
		ID:          trip.ID.String(),
		StartDate:   utils.FormatDateOnly(trip.StartDate),
		EndDate:     utils.FormatDateOnly(trip.EndDate),
		NumDays:     trip.NumDays,
		NumNights:   trip.NumNights,
		TotalBudget: trip.TotalBudget,
		PriceLevel:  trip.PriceLevel,
		Preferences: trip.Preferences,
	}

	for _, day := range trip.Days {
		dayOut := response_models.DayPlanResponse{
			Day:  day.DayNumber,
			Date: utils.FormatDateOnly(day.Date),
		}
		if day.Lodging != nil {
			dayOut.Lodging = &response_models.LodgingResponse{
				VenueID:    day.Lodging.ID.String(),
				Name:       day.Lodging.Name,
				Rating:     day.Lodging.Rating,
				PriceLevel: day.Lodging.PriceLevel,
			}
		}
		for _, activity := range day.Activities {
			activityOut := response_models.ActivityResponse{
				ID:              activity.ID.String(),
				Category:        activity.Category,
				VenueID:         activity.VenueID.String(),
				StartTime:       activity.StartTime,
				EndTime:         activity.EndTime,
				DurationMinutes: activity.DurationMinutes,
				EstimatedCost:   activity.EstimatedCost,
				OrderIndex:      activity.OrderIndex,
				Description:     activity.Description,
			}
			if activity.Venue != nil {
				activityOut.VenueName = activity.Venue.Name
			}
			if activity.EstimatedCost != nil {
				out.TotalEstimatedCost += *activity.EstimatedCost
			}
			dayOut.Activities = append(dayOut.Activities, activityOut)
		}
		dayOut.ActivityCount = len(dayOut.Activities)
		out.ActivityCount += dayOut.ActivityCount
		out.Days = append(out.Days, dayOut)
	}

	return out
}
