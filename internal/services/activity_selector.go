package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"itinerario/internal/models/db_models"
	"itinerario/internal/models/request_models"
	"itinerario/internal/repositories"
	"itinerario/pkg/utils"
)

// activityCandidatePool caps how many top-rated venues are offered to the
// suggestion service per category.
const activityCandidatePool = 15

// genericActivityTypes is the filter applied when type resolution produced
// no types for a category.
var genericActivityTypes = []string{"point_of_interest"}

type ActivitySelectorInterface interface {
	// SelectActivities returns up to two venue candidates for one activity
	// category. An empty result means the category is skipped for the day.
	SelectActivities(ctx context.Context, registry *UsedVenueRegistry, category string, allowedTypes []string, priceLevel *int, preferences string, dailyBudget *float64) ([]db_models.Venue, error)
}

type ActivitySelector struct {
	venueRepo   repositories.VenueRepository
	suggestions utils.SuggestionClientInterface
}

func NewActivitySelector(venueRepo repositories.VenueRepository, suggestions utils.SuggestionClientInterface) ActivitySelectorInterface {
	return &ActivitySelector{
		venueRepo:   venueRepo,
		suggestions: suggestions,
	}
}

func (s *ActivitySelector) SelectActivities(ctx context.Context, registry *UsedVenueRegistry, category string, allowedTypes []string, priceLevel *int, preferences string, dailyBudget *float64) ([]db_models.Venue, error) {
	types := allowedTypes
	if len(types) == 0 {
		types = genericActivityTypes
	}

	// Only restaurants and sights demand variety across the trip; cafes,
	// bars and shops may repeat.
	var excludeIDs []uuid.UUID
	if excludesReusedVenues(category) {
		excludeIDs = registry.UsedIDs()
	}

	candidates, err := s.venueRepo.QueryCandidates(ctx, types, priceLevel, excludeIDs, activityCandidatePool)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	maxCandidates := maxCandidatesFor(category)

	chosen := s.rankWithFallback(ctx, candidates, category, preferences, dailyBudget, maxCandidates)
	for _, venue := range chosen {
		registry.MarkUsed(venue.ID)
	}
	return chosen, nil
}

// rankWithFallback asks the suggestion service to order the candidates and
// falls back to the pure rating sort when it fails or picks outside the set.
func (s *ActivitySelector) rankWithFallback(ctx context.Context, candidates []db_models.Venue, category, preferences string, budget *float64, maxCandidates int) []db_models.Venue {
	picks, err := s.suggestions.RankVenues(ctx, venueSummaries(candidates), category, preferences, budget, maxCandidates)
	if err == nil {
		if chosen := matchPicksToCandidates(picks, candidates, maxCandidates); len(chosen) > 0 {
			return chosen
		}
		log.Printf("%s picks outside candidate set, using rating fallback", category)
	} else {
		log.Printf("%s ranking unavailable, using rating fallback: %v", category, err)
	}

	// Candidates arrive already ordered by rating desc, review count desc.
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

func excludesReusedVenues(category string) bool {
	return category == SelectionRestaurant || category == SelectionSightseeing
}

func maxCandidatesFor(category string) int {
	if category == SelectionRestaurant {
		return 2
	}
	return 1
}

func venueSummaries(venues []db_models.Venue) []request_models.VenueSummary {
	out := make([]request_models.VenueSummary, 0, len(venues))
	for _, v := range venues {
		types := append([]string{v.PrimaryType}, v.SecondaryTypes...)
		out = append(out, request_models.VenueSummary{
			ID:           v.ID.String(),
			Name:         v.Name,
			Types:        types,
			Rating:       v.Rating,
			ReviewCount:  v.ReviewCount,
			PriceLevel:   v.PriceLevel,
			OpeningHours: v.OpeningHours,
		})
	}
	return out
}

// matchPicksToCandidates resolves pick ids against the candidate set,
// dropping ids the service invented.
func matchPicksToCandidates(picks []request_models.VenuePick, candidates []db_models.Venue, maxCount int) []db_models.Venue {
	byID := make(map[string]db_models.Venue, len(candidates))
	for _, c := range candidates {
		byID[c.ID.String()] = c
	}

	var chosen []db_models.Venue
	for _, pick := range picks {
		venue, ok := byID[pick.ID]
		if !ok {
			continue
		}
		chosen = append(chosen, venue)
		if len(chosen) >= maxCount {
			break
		}
	}
	return chosen
}
