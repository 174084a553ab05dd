package db_models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvedCategoryTypesFallsBackToDefaults(t *testing.T) {
	trip := &Trip{}
	assert.Equal(t, DefaultCategoryTypes(), trip.ResolvedCategoryTypes())

	trip.CategoryTypes = []byte("not json")
	assert.Equal(t, DefaultCategoryTypes(), trip.ResolvedCategoryTypes())
}

func TestSetCategoryTypesRoundTrip(t *testing.T) {
	trip := &Trip{}
	types := CategoryTypeMap{
		Lodging: []string{"resort"},
		Food:    []string{"cafe", "bar"},
	}

	require.NoError(t, trip.SetCategoryTypes(types))
	assert.Equal(t, types, trip.ResolvedCategoryTypes())
}

func TestBuildTripPlanResponseAggregatesStats(t *testing.T) {
	hotel := Venue{Name: "Grand Hotel", Rating: 4.8, PriceLevel: 3}
	hotel.ID = uuid.New()

	cost1 := 30.0
	cost2 := 120.0

	trip := &Trip{
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		NumDays:   2,
		NumNights: 1,
		Days: []TripDay{
			{
				DayNumber: 1,
				Date:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				Lodging:   &hotel,
				Activities: []TripActivity{
					{Category: CategoryCheckIn, VenueID: hotel.ID, Venue: &hotel, StartTime: "07:00", EndTime: "08:00", EstimatedCost: &cost1, OrderIndex: 1},
					{Category: CategoryDinner, VenueID: uuid.New(), StartTime: "19:00", EndTime: "20:00", EstimatedCost: &cost2, OrderIndex: 2},
				},
			},
			{
				DayNumber: 2,
				Date:      time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	trip.ID = uuid.New()

	out := BuildTripPlanResponse(trip)

	assert.Equal(t, trip.ID.String(), out.ID)
	assert.Equal(t, "2026-06-01", out.StartDate)
	assert.Equal(t, "2026-06-02", out.EndDate)
	assert.Equal(t, 2, out.NumDays)
	assert.Equal(t, 1, out.NumNights)
	assert.Equal(t, 2, out.ActivityCount)
	assert.Equal(t, 150.0, out.TotalEstimatedCost)

	require.Len(t, out.Days, 2)
	assert.Equal(t, 2, out.Days[0].ActivityCount)
	require.NotNil(t, out.Days[0].Lodging)
	assert.Equal(t, "Grand Hotel", out.Days[0].Lodging.Name)
	assert.Equal(t, "Grand Hotel", out.Days[0].Activities[0].VenueName)
	assert.Equal(t, 0, out.Days[1].ActivityCount)
	assert.Nil(t, out.Days[1].Lodging)
}

func TestVenueHasOnSiteRestaurant(t *testing.T) {
	venue := Venue{Amenities: []string{"pool", "Hotel Restaurant"}}
	assert.True(t, venue.HasOnSiteRestaurant())

	venue = Venue{Amenities: []string{"pool", "gym"}}
	assert.False(t, venue.HasOnSiteRestaurant())

	venue = Venue{}
	assert.False(t, venue.HasOnSiteRestaurant())
}

func TestVenueMatchesAnyType(t *testing.T) {
	venue := Venue{PrimaryType: "hotel", SecondaryTypes: []string{"resort", "spa"}}

	assert.True(t, venue.MatchesAnyType([]string{"hotel"}))
	assert.True(t, venue.MatchesAnyType([]string{"spa"}))
	assert.False(t, venue.MatchesAnyType([]string{"museum"}))
	assert.False(t, venue.MatchesAnyType(nil))
}
