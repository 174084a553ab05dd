package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"itinerario/internal/models/db_models"
)

// VenueRepository is the read side of the venue catalog plus the ingestion
// entry point. Candidate queries are the only way the planning core reaches
// the catalog.
type VenueRepository interface {
	ImportVenues(ctx context.Context, venues []*db_models.Venue) (int, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error)

	// QueryCandidates returns operational venues whose primary or secondary
	// type intersects types (all types when empty), with price level at most
	// maxPriceLevel (when given), excluding excludeIDs, ordered by rating
	// desc then review count desc, capped at limit.
	QueryCandidates(ctx context.Context, types []string, maxPriceLevel *int, excludeIDs []uuid.UUID, limit int) ([]db_models.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) ImportVenues(ctx context.Context, venues []*db_models.Venue) (int, error) {
	if len(venues) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, venue := range venues {
			if err := tx.Create(venue).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(venues), nil
}

func (r *venueRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("rating DESC, review_count DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) QueryCandidates(ctx context.Context, types []string, maxPriceLevel *int, excludeIDs []uuid.UUID, limit int) ([]db_models.Venue, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", db_models.VenueStatusOperational)

	if len(types) > 0 {
		q = q.Where("primary_type IN ? OR secondary_types && ?", types, pq.StringArray(types))
	}
	if maxPriceLevel != nil {
		q = q.Where("price_level <= ?", *maxPriceLevel)
	}
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	var venues []db_models.Venue
	err := q.Order("rating DESC, review_count DESC").
		Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
