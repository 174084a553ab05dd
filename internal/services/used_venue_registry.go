package services

import "github.com/google/uuid"

// UsedVenueRegistry tracks every venue already committed within one planning
// run so it cannot be picked twice. A fresh registry is created per run and
// threaded explicitly through scheduler and selectors; it must never be
// shared across concurrently generated trips.
type UsedVenueRegistry struct {
	ids map[uuid.UUID]struct{}
}

func NewUsedVenueRegistry() *UsedVenueRegistry {
	return &UsedVenueRegistry{ids: make(map[uuid.UUID]struct{})}
}

func (r *UsedVenueRegistry) MarkUsed(id uuid.UUID) {
	r.ids[id] = struct{}{}
}

func (r *UsedVenueRegistry) IsUsed(id uuid.UUID) bool {
	_, ok := r.ids[id]
	return ok
}

// UsedIDs returns the registered ids, for catalog-query exclusion lists.
func (r *UsedVenueRegistry) UsedIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	return out
}

func (r *UsedVenueRegistry) Len() int {
	return len(r.ids)
}
