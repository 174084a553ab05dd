package services

import (
	"context"
	"log"

	"github.com/lib/pq"

	"itinerario/internal/models/db_models"
	"itinerario/internal/models/request_models"
	"itinerario/internal/models/response_models"
	"itinerario/internal/repositories"
	"itinerario/pkg/utils"
)

type VenueServiceInterface interface {
	ImportVenues(ctx context.Context, req *request_models.ImportVenuesRequest) (int, error)
	ListVenues(ctx context.Context, page, pageSize int) ([]response_models.VenueResponse, error)
}

type VenueService struct {
	venueRepo repositories.VenueRepository
}

func NewVenueService(venueRepo repositories.VenueRepository) VenueServiceInterface {
	return &VenueService{venueRepo: venueRepo}
}

func (s *VenueService) ImportVenues(ctx context.Context, req *request_models.ImportVenuesRequest) (int, error) {
	venues := make([]*db_models.Venue, 0, len(req.Venues))
	for _, in := range req.Venues {
		venue := &db_models.Venue{
			Name:           in.Name,
			PrimaryType:    in.PrimaryType,
			SecondaryTypes: pq.StringArray(in.SecondaryTypes),
			Rating:         in.Rating,
			ReviewCount:    in.ReviewCount,
			PriceText:      in.PriceText,
			OpeningHours:   in.OpeningHours,
			Amenities:      pq.StringArray(in.Amenities),
			Status:         in.Status,
		}
		// An explicit level wins over the free-text tier; otherwise the
		// BeforeCreate hook derives it from PriceText.
		venue.PriceLevel = utils.PriceLevelUnassigned
		if in.PriceLevel != nil {
			venue.PriceLevel = *in.PriceLevel
		}
		if venue.Status == "" {
			venue.Status = db_models.VenueStatusOperational
		}
		venues = append(venues, venue)
	}

	count, err := s.venueRepo.ImportVenues(ctx, venues)
	if err != nil {
		log.Printf("importing %d venues failed: %v", len(venues), err)
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (s *VenueService) ListVenues(ctx context.Context, page, pageSize int) ([]response_models.VenueResponse, error) {
	venues, err := s.venueRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("listing venues failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.VenueResponse, 0, len(venues))
	for _, v := range venues {
		out = append(out, response_models.VenueResponse{
			ID:           v.ID.String(),
			Name:         v.Name,
			PrimaryType:  v.PrimaryType,
			Types:        v.SecondaryTypes,
			Rating:       v.Rating,
			ReviewCount:  v.ReviewCount,
			PriceLevel:   v.PriceLevel,
			OpeningHours: v.OpeningHours,
			Status:       v.Status,
		})
	}
	return out, nil
}
