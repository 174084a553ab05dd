package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"itinerario/internal/models/db_models"
	"itinerario/internal/models/request_models"
	"itinerario/internal/repositories"
	"itinerario/pkg/utils"
)

// Fixed day-1 slots created directly on the lodging venue; they bypass
// selection and slot reconciliation.
const (
	checkInStart        = "07:00"
	checkInEnd          = "08:00"
	hotelBreakfastStart = "08:00"
	hotelBreakfastEnd   = "09:00"
)

type DaySchedulerInterface interface {
	// BuildDay composes and persists one itinerary day. Missing lodging or
	// unfillable categories reduce the day, they never fail it.
	BuildDay(ctx context.Context, registry *UsedVenueRegistry, trip *db_models.Trip, dayNumber int, date time.Time, isLastDay bool, dailyBudget *float64) (*db_models.TripDay, error)
}

type DayScheduler struct {
	lodgingSelector  LodgingSelectorInterface
	activitySelector ActivitySelectorInterface
	suggestions      utils.SuggestionClientInterface
	tripRepo         repositories.TripRepository
}

func NewDayScheduler(
	lodgingSelector LodgingSelectorInterface,
	activitySelector ActivitySelectorInterface,
	suggestions utils.SuggestionClientInterface,
	tripRepo repositories.TripRepository,
) DaySchedulerInterface {
	return &DayScheduler{
		lodgingSelector:  lodgingSelector,
		activitySelector: activitySelector,
		suggestions:      suggestions,
		tripRepo:         tripRepo,
	}
}

func (s *DayScheduler) BuildDay(ctx context.Context, registry *UsedVenueRegistry, trip *db_models.Trip, dayNumber int, date time.Time, isLastDay bool, dailyBudget *float64) (*db_models.TripDay, error) {
	types := trip.ResolvedCategoryTypes()

	day := &db_models.TripDay{
		TripID:    trip.ID,
		DayNumber: dayNumber,
		Date:      date,
	}

	var lodging *db_models.Venue
	if !isLastDay {
		var err error
		lodging, err = s.lodgingSelector.SelectLodging(ctx, registry, types.Lodging, trip.PriceLevel, trip.Preferences, trip.TotalBudget)
		if err != nil {
			log.Printf("day %d: lodging selection failed: %v", dayNumber, err)
		}
		if lodging != nil {
			day.LodgingVenueID = &lodging.ID
			day.Lodging = lodging
		}
	}

	// Remaining budget is tracked per day; each accepted activity eats
	// into it before the next estimate.
	var remaining *float64
	if dailyBudget != nil {
		v := *dailyBudget
		remaining = &v
	}

	orderIndex := 1
	var fixedIntervals []ScheduledInterval
	var fixedSummaries []request_models.FixedActivitySummary

	hotelBreakfast := false
	if dayNumber == 1 && lodging != nil {
		zero := 0.0
		day.Activities = append(day.Activities, db_models.TripActivity{
			Category:        db_models.CategoryCheckIn,
			VenueID:         lodging.ID,
			Venue:           lodging,
			StartTime:       checkInStart,
			EndTime:         checkInEnd,
			DurationMinutes: 60,
			EstimatedCost:   &zero,
			OrderIndex:      orderIndex,
			Description:     fmt.Sprintf("Check in at %s", lodging.Name),
		})
		orderIndex++
		fixedIntervals = append(fixedIntervals, mustInterval(checkInStart, checkInEnd))
		fixedSummaries = append(fixedSummaries, request_models.FixedActivitySummary{
			Category: db_models.CategoryCheckIn, StartTime: checkInStart, EndTime: checkInEnd,
		})

		if lodging.HasOnSiteRestaurant() {
			hotelBreakfast = true
			cost := HotelBreakfastCost()
			day.Activities = append(day.Activities, db_models.TripActivity{
				Category:        db_models.CategoryBreakfast,
				VenueID:         lodging.ID,
				Venue:           lodging,
				StartTime:       hotelBreakfastStart,
				EndTime:         hotelBreakfastEnd,
				DurationMinutes: 60,
				EstimatedCost:   &cost,
				OrderIndex:      orderIndex,
				Description:     fmt.Sprintf("Breakfast at %s", lodging.Name),
			})
			orderIndex++
			spend(remaining, cost)
			fixedIntervals = append(fixedIntervals, mustInterval(hotelBreakfastStart, hotelBreakfastEnd))
			fixedSummaries = append(fixedSummaries, request_models.FixedActivitySummary{
				Category: db_models.CategoryBreakfast, StartTime: hotelBreakfastStart, EndTime: hotelBreakfastEnd,
			})
		}
	}

	pending := s.collectPendingActivities(ctx, registry, types, trip, hotelBreakfast, remaining)

	if len(pending) > 0 {
		proposal := s.requestDistribution(ctx, pending, fixedSummaries, trip, dayNumber)
		placed := ReconcileDaySlots(proposal, fixedIntervals, pending)

		sort.Slice(placed, func(i, j int) bool {
			return placed[i].StartMinutes < placed[j].StartMinutes
		})

		for _, pl := range placed {
			cost := EstimateActivityCost(pl.SelectionCategory, &pl.Venue, remaining)
			spend(remaining, cost)
			venue := pl.Venue
			day.Activities = append(day.Activities, db_models.TripActivity{
				Category:        pl.Category,
				VenueID:         venue.ID,
				Venue:           &venue,
				StartTime:       utils.FormatClockMinutes(pl.StartMinutes),
				EndTime:         utils.FormatClockMinutes(pl.EndMinutes),
				DurationMinutes: pl.DurationMinutes,
				EstimatedCost:   &cost,
				OrderIndex:      orderIndex,
				Description:     pl.Description,
			})
			orderIndex++
		}
	}

	if err := s.tripRepo.SaveDay(ctx, day); err != nil {
		return day, utils.ErrDatabaseError
	}
	return day, nil
}

// collectPendingActivities walks the day's category sequence, selecting
// venue candidates for each applicable category. Categories with no
// candidates are skipped silently.
func (s *DayScheduler) collectPendingActivities(ctx context.Context, registry *UsedVenueRegistry, types db_models.CategoryTypeMap, trip *db_models.Trip, hotelBreakfast bool, remaining *float64) []PendingActivity {
	var pending []PendingActivity

	add := func(key, category, selectionCategory string, allowedTypes []string) {
		venues, err := s.activitySelector.SelectActivities(ctx, registry, selectionCategory, allowedTypes, trip.PriceLevel, trip.Preferences, remaining)
		if err != nil {
			log.Printf("selecting %s candidates failed: %v", key, err)
			return
		}
		if len(venues) == 0 {
			return
		}
		// Extra candidates stay registered for trip-wide variety but only
		// the best one is scheduled.
		pending = append(pending, PendingActivity{
			Key:               key,
			Category:          category,
			SelectionCategory: selectionCategory,
			Venue:             venues[0],
			Description:       describeActivity(category, venues[0].Name),
		})
	}

	if !hotelBreakfast {
		add("breakfast", db_models.CategoryBreakfast, SelectionRestaurant, types.Food)
	}
	if len(types.Sights) > 0 {
		add("sightseeing-morning", db_models.CategorySightseeing, SelectionSightseeing, types.Sights)
		if countDistinct(types.Sights) > 1 {
			add("sightseeing-morning-2", db_models.CategorySightseeing, SelectionSightseeing, types.Sights)
		}
	}
	if len(types.Food) > 0 {
		add("lunch", db_models.CategoryLunch, SelectionRestaurant, types.Food)
	}
	if len(types.Sights) > 0 {
		add("sightseeing-afternoon", db_models.CategorySightseeing, SelectionSightseeing, types.Sights)
	}
	if len(types.Shopping) > 0 {
		add("shopping", db_models.CategoryShopping, SelectionShopping, types.Shopping)
	}
	add("dinner", db_models.CategoryDinner, SelectionRestaurant, types.Food)
	if len(types.Food) > 0 {
		add("nightlife", db_models.CategoryNightlife, SelectionBar, types.Food)
	}

	return pending
}

// requestDistribution performs the single batched distribution call for the
// day. Any failure yields a nil proposal, which the reconciler treats as a
// request for the canonical template.
func (s *DayScheduler) requestDistribution(ctx context.Context, pending []PendingActivity, fixed []request_models.FixedActivitySummary, trip *db_models.Trip, dayNumber int) []request_models.DaySlotSuggestion {
	summaries := make([]request_models.PendingActivitySummary, 0, len(pending))
	for _, p := range pending {
		summaries = append(summaries, request_models.PendingActivitySummary{
			ID:       p.Key,
			Category: p.Category,
			Venue:    venueSummaries([]db_models.Venue{p.Venue})[0],
		})
	}

	proposal, err := s.suggestions.DistributeDay(ctx, summaries, fixed, trip.Preferences, trip.TotalBudget)
	if err != nil {
		log.Printf("day %d: time distribution unavailable, using canonical slots: %v", dayNumber, err)
		return nil
	}
	return proposal
}

func describeActivity(category, venueName string) string {
	switch category {
	case db_models.CategoryBreakfast:
		return fmt.Sprintf("Breakfast at %s", venueName)
	case db_models.CategoryLunch:
		return fmt.Sprintf("Lunch at %s", venueName)
	case db_models.CategoryDinner:
		return fmt.Sprintf("Dinner at %s", venueName)
	case db_models.CategorySightseeing:
		return fmt.Sprintf("Visit %s", venueName)
	case db_models.CategoryShopping:
		return fmt.Sprintf("Shopping at %s", venueName)
	case db_models.CategoryNightlife:
		return fmt.Sprintf("Evening out at %s", venueName)
	default:
		return venueName
	}
}

func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func spend(remaining *float64, cost float64) {
	if remaining == nil {
		return
	}
	*remaining -= cost
	if *remaining < 0 {
		*remaining = 0
	}
}

func mustInterval(start, end string) ScheduledInterval {
	s, _ := utils.ParseClockMinutes(start)
	e, _ := utils.ParseClockMinutes(end)
	return ScheduledInterval{StartMinutes: s, EndMinutes: e}
}
