package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"itinerario/internal/models/db_models"
	"itinerario/internal/models/request_models"
	"itinerario/internal/repositories"
	"itinerario/pkg/utils"
)

var errMockUnavailable = errors.New("mock: unavailable")

type mockVenueRepository struct {
	importFn func(ctx context.Context, venues []*db_models.Venue) (int, error)
	listFn   func(ctx context.Context, page, pageSize int) ([]db_models.Venue, error)
	queryFn  func(ctx context.Context, types []string, maxPriceLevel *int, excludeIDs []uuid.UUID, limit int) ([]db_models.Venue, error)
}

var _ repositories.VenueRepository = (*mockVenueRepository)(nil)

func (m *mockVenueRepository) ImportVenues(ctx context.Context, venues []*db_models.Venue) (int, error) {
	if m.importFn == nil {
		return len(venues), nil
	}
	return m.importFn(ctx, venues)
}

func (m *mockVenueRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, page, pageSize)
}

func (m *mockVenueRepository) QueryCandidates(ctx context.Context, types []string, maxPriceLevel *int, excludeIDs []uuid.UUID, limit int) ([]db_models.Venue, error) {
	if m.queryFn == nil {
		return nil, nil
	}
	return m.queryFn(ctx, types, maxPriceLevel, excludeIDs, limit)
}

type mockTripRepository struct {
	createFn  func(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error)
	saveDayFn func(ctx context.Context, day *db_models.TripDay) error
	getFn     func(ctx context.Context, tripID string) (*db_models.Trip, error)
}

var _ repositories.TripRepository = (*mockTripRepository)(nil)

func (m *mockTripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	if m.createFn == nil {
		trip.ID = uuid.New()
		return trip.ID, nil
	}
	return m.createFn(ctx, trip)
}

func (m *mockTripRepository) SaveDay(ctx context.Context, day *db_models.TripDay) error {
	if m.saveDayFn == nil {
		return nil
	}
	return m.saveDayFn(ctx, day)
}

func (m *mockTripRepository) GetTripByID(ctx context.Context, tripID string) (*db_models.Trip, error) {
	if m.getFn == nil {
		return nil, nil
	}
	return m.getFn(ctx, tripID)
}

var _ utils.SuggestionClientInterface = (*mockSuggestionClient)(nil)

type mockSuggestionClient struct {
	resolveFn    func(ctx context.Context, preferences string, budget *float64, priceLevel *int) (*request_models.CategoryTypeSuggestion, error)
	rankFn       func(ctx context.Context, candidates []request_models.VenueSummary, category, preferences string, budget *float64, maxCount int) ([]request_models.VenuePick, error)
	distributeFn func(ctx context.Context, pending []request_models.PendingActivitySummary, fixed []request_models.FixedActivitySummary, preferences string, budget *float64) ([]request_models.DaySlotSuggestion, error)
}

func (m *mockSuggestionClient) ResolveCategoryTypes(ctx context.Context, preferences string, budget *float64, priceLevel *int) (*request_models.CategoryTypeSuggestion, error) {
	if m.resolveFn == nil {
		return nil, errMockUnavailable
	}
	return m.resolveFn(ctx, preferences, budget, priceLevel)
}

func (m *mockSuggestionClient) RankVenues(ctx context.Context, candidates []request_models.VenueSummary, category, preferences string, budget *float64, maxCount int) ([]request_models.VenuePick, error) {
	if m.rankFn == nil {
		return nil, errMockUnavailable
	}
	return m.rankFn(ctx, candidates, category, preferences, budget, maxCount)
}

func (m *mockSuggestionClient) DistributeDay(ctx context.Context, pending []request_models.PendingActivitySummary, fixed []request_models.FixedActivitySummary, preferences string, budget *float64) ([]request_models.DaySlotSuggestion, error) {
	if m.distributeFn == nil {
		return nil, errMockUnavailable
	}
	return m.distributeFn(ctx, pending, fixed, preferences, budget)
}

type mockLodgingSelector struct {
	selectFn func(ctx context.Context, registry *UsedVenueRegistry, allowedTypes []string, priceLevel *int, preferences string, budget *float64) (*db_models.Venue, error)
}

var _ LodgingSelectorInterface = (*mockLodgingSelector)(nil)

func (m *mockLodgingSelector) SelectLodging(ctx context.Context, registry *UsedVenueRegistry, allowedTypes []string, priceLevel *int, preferences string, budget *float64) (*db_models.Venue, error) {
	if m.selectFn == nil {
		return nil, nil
	}
	return m.selectFn(ctx, registry, allowedTypes, priceLevel, preferences, budget)
}

type mockActivitySelector struct {
	selectFn func(ctx context.Context, registry *UsedVenueRegistry, category string, allowedTypes []string, priceLevel *int, preferences string, dailyBudget *float64) ([]db_models.Venue, error)
}

var _ ActivitySelectorInterface = (*mockActivitySelector)(nil)

func (m *mockActivitySelector) SelectActivities(ctx context.Context, registry *UsedVenueRegistry, category string, allowedTypes []string, priceLevel *int, preferences string, dailyBudget *float64) ([]db_models.Venue, error) {
	if m.selectFn == nil {
		return nil, nil
	}
	return m.selectFn(ctx, registry, category, allowedTypes, priceLevel, preferences, dailyBudget)
}

type mockDayScheduler struct {
	buildFn func(ctx context.Context, registry *UsedVenueRegistry, trip *db_models.Trip, dayNumber int, date time.Time, isLastDay bool, dailyBudget *float64) (*db_models.TripDay, error)
}

var _ DaySchedulerInterface = (*mockDayScheduler)(nil)

func (m *mockDayScheduler) BuildDay(ctx context.Context, registry *UsedVenueRegistry, trip *db_models.Trip, dayNumber int, date time.Time, isLastDay bool, dailyBudget *float64) (*db_models.TripDay, error) {
	if m.buildFn == nil {
		return &db_models.TripDay{DayNumber: dayNumber, Date: date}, nil
	}
	return m.buildFn(ctx, registry, trip, dayNumber, date, isLastDay, dailyBudget)
}

func makeVenue(name, primaryType string, rating float64, reviewCount, priceLevel int, amenities ...string) db_models.Venue {
	v := db_models.Venue{
		Name:        name,
		PrimaryType: primaryType,
		Rating:      rating,
		ReviewCount: reviewCount,
		PriceLevel:  priceLevel,
		Status:      db_models.VenueStatusOperational,
		Amenities:   amenities,
	}
	v.ID = uuid.New()
	return v
}
