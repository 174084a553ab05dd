package services

import (
	"context"
	"log"

	"itinerario/internal/models/db_models"
	"itinerario/internal/models/request_models"
	"itinerario/internal/models/response_models"
	"itinerario/internal/repositories"
	"itinerario/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req *request_models.PlanTripRequest) (*response_models.TripPlanResponse, error)
	GetTripById(ctx context.Context, tripID string) (*response_models.TripPlanResponse, error)
}

type PlannerService struct {
	suggestions  utils.SuggestionClientInterface
	tripRepo     repositories.TripRepository
	dayScheduler DaySchedulerInterface
}

func NewPlannerService(
	suggestions utils.SuggestionClientInterface,
	tripRepo repositories.TripRepository,
	dayScheduler DaySchedulerInterface,
) PlannerServiceInterface {
	return &PlannerService{
		suggestions:  suggestions,
		tripRepo:     tripRepo,
		dayScheduler: dayScheduler,
	}
}

// PlanTrip generates a full multi-day itinerary. Individual day failures are
// logged and tolerated; the trip succeeds with whatever days could be built.
func (s *PlannerService) PlanTrip(ctx context.Context, req *request_models.PlanTripRequest) (*response_models.TripPlanResponse, error) {
	start, err := utils.ParseDateOnly(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDateOnly(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if !start.Before(end) {
		return nil, utils.ErrInvalidDateRange
	}

	numDays := utils.DaysInclusive(start, end)

	trip := &db_models.Trip{
		StartDate:   start,
		EndDate:     end,
		NumDays:     numDays,
		NumNights:   numDays - 1,
		TotalBudget: req.TotalBudget,
		PriceLevel:  req.PriceLevel,
		Preferences: req.Preferences,
	}

	if err := trip.SetCategoryTypes(s.resolveCategoryTypes(ctx, req)); err != nil {
		return nil, utils.ErrInvalidInput
	}

	if _, err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		log.Printf("creating trip failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	var dailyBudget *float64
	if trip.TotalBudget != nil {
		share := *trip.TotalBudget / float64(numDays)
		dailyBudget = &share
	}

	// One registry per planning run keeps venue reuse trip-scoped.
	registry := NewUsedVenueRegistry()

	for dayNumber := 1; dayNumber <= numDays; dayNumber++ {
		date := start.AddDate(0, 0, dayNumber-1)
		isLastDay := dayNumber == numDays

		day, err := s.dayScheduler.BuildDay(ctx, registry, trip, dayNumber, date, isLastDay, dailyBudget)
		if err != nil {
			log.Printf("trip %s: day %d failed, continuing: %v", trip.ID, dayNumber, err)
			continue
		}
		trip.Days = append(trip.Days, *day)
	}

	return db_models.BuildTripPlanResponse(trip), nil
}

func (s *PlannerService) GetTripById(ctx context.Context, tripID string) (*response_models.TripPlanResponse, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		log.Printf("loading trip %s failed: %v", tripID, err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return db_models.BuildTripPlanResponse(trip), nil
}

// resolveCategoryTypes performs the single per-trip type resolution call.
// The whole mapping falls back to the defaults on any failure; there is no
// per-category merge.
func (s *PlannerService) resolveCategoryTypes(ctx context.Context, req *request_models.PlanTripRequest) db_models.CategoryTypeMap {
	suggestion, err := s.suggestions.ResolveCategoryTypes(ctx, req.Preferences, req.TotalBudget, req.PriceLevel)
	if err != nil {
		log.Printf("category type resolution unavailable, using defaults: %v", err)
		return db_models.DefaultCategoryTypes()
	}

	return db_models.CategoryTypeMap{
		Lodging:  suggestion.Lodging,
		Food:     suggestion.Food,
		Sights:   suggestion.Sights,
		Shopping: suggestion.Shopping,
	}
}
