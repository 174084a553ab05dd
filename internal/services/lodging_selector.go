package services

import (
	"context"
	"log"

	"itinerario/internal/models/db_models"
	"itinerario/internal/repositories"
	"itinerario/pkg/utils"
)

// lodgingCandidatePool caps how many top-rated hotels are offered to the
// suggestion service.
const lodgingCandidatePool = 10

// genericLodgingTypes is the filter applied when type resolution produced no
// lodging types.
var genericLodgingTypes = []string{"hotel", "lodging"}

type LodgingSelectorInterface interface {
	// SelectLodging picks one hotel-type venue for a night, or nil when no
	// acceptable candidate exists. Absence is not an error.
	SelectLodging(ctx context.Context, registry *UsedVenueRegistry, allowedTypes []string, priceLevel *int, preferences string, budget *float64) (*db_models.Venue, error)
}

type LodgingSelector struct {
	venueRepo   repositories.VenueRepository
	suggestions utils.SuggestionClientInterface
}

func NewLodgingSelector(venueRepo repositories.VenueRepository, suggestions utils.SuggestionClientInterface) LodgingSelectorInterface {
	return &LodgingSelector{
		venueRepo:   venueRepo,
		suggestions: suggestions,
	}
}

func (s *LodgingSelector) SelectLodging(ctx context.Context, registry *UsedVenueRegistry, allowedTypes []string, priceLevel *int, preferences string, budget *float64) (*db_models.Venue, error) {
	types := allowedTypes
	if len(types) == 0 {
		types = genericLodgingTypes
	}

	candidates, err := s.venueRepo.QueryCandidates(ctx, types, priceLevel, registry.UsedIDs(), lodgingCandidatePool)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	picks, err := s.suggestions.RankVenues(ctx, venueSummaries(candidates), "lodging", preferences, budget, 1)
	if err != nil {
		log.Printf("lodging ranking unavailable, skipping lodging: %v", err)
		return nil, nil
	}

	chosen := matchPicksToCandidates(picks, candidates, 1)
	if len(chosen) == 0 {
		log.Printf("lodging pick outside candidate set, skipping lodging")
		return nil, nil
	}

	venue := chosen[0]
	registry.MarkUsed(venue.ID)
	return &venue, nil
}
