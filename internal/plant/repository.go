package plant

import "slices"

// Repository owns the ordered collection of plants. Insertion order is kept
// and replacing a plant never moves it. Repository is not safe for
// concurrent use; it is owned by the single state controller.
type Repository struct {
	plants []Plant
}

// NewRepository returns a repository seeded with plants, in order. Later
// entries with a duplicate ID replace earlier ones in place.
func NewRepository(seed ...Plant) *Repository {
	r := &Repository{plants: make([]Plant, 0, len(seed))}
	for _, p := range seed {
		r.Upsert(p)
	}
	return r
}

// Upsert replaces the plant with the same ID in place, or appends p when the
// ID is new. It reports whether a new plant was inserted.
func (r *Repository) Upsert(p Plant) (inserted bool) {
	if i := r.indexOf(p.ID); i >= 0 {
		r.plants[i] = p
		return false
	}
	r.plants = append(r.plants, p)
	return true
}

// List returns a copy of all plants in order, as of the time of the call.
func (r *Repository) List() []Plant {
	return slices.Clone(r.plants)
}

// Remove deletes the plant with the given ID. Removing an unknown ID is a
// no-op; the return reports whether anything was removed.
func (r *Repository) Remove(id string) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.plants = slices.Delete(r.plants, i, i+1)
	return true
}

// FindByID returns the plant with the given ID.
func (r *Repository) FindByID(id string) (Plant, bool) {
	if i := r.indexOf(id); i >= 0 {
		return r.plants[i], true
	}
	return Plant{}, false
}

// Len returns the number of plants.
func (r *Repository) Len() int {
	return len(r.plants)
}

func (r *Repository) indexOf(id string) int {
	return slices.IndexFunc(r.plants, func(p Plant) bool { return p.ID == id })
}
