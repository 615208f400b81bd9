package jobs

import (
	"joblens/internal/models"
	"joblens/internal/storage"
)

// Favorites tracks the set of favorited job ids in insertion order.
// Every mutation is persisted before it returns.
type Favorites struct {
	adapter *storage.Adapter
	ids     []int
}

// NewFavorites hydrates the tracker from the store.
func NewFavorites(adapter *storage.Adapter) (*Favorites, error) {
	ids, err := adapter.LoadFavorites()
	if err != nil {
		return nil, err
	}
	return &Favorites{adapter: adapter, ids: ids}, nil
}

// Toggle flips the favorite state of id and returns the new membership
// state. Toggling twice restores the prior state exactly.
func (f *Favorites) Toggle(id int) (bool, error) {
	for i, fid := range f.ids {
		if fid == id {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			return false, f.adapter.SaveFavorites(f.ids)
		}
	}
	f.ids = append(f.ids, id)
	return true, f.adapter.SaveFavorites(f.ids)
}

// IsFavorite reports whether id is favorited.
func (f *Favorites) IsFavorite(id int) bool {
	for _, fid := range f.ids {
		if fid == id {
			return true
		}
	}
	return false
}

// Count returns the number of favorited ids.
func (f *Favorites) Count() int {
	return len(f.ids)
}

// IDs returns the favorite ids in insertion order.
func (f *Favorites) IDs() []int {
	out := make([]int, len(f.ids))
	copy(out, f.ids)
	return out
}

// Drop removes id if present. Called when the job is deleted from the
// collection; a no-op otherwise.
func (f *Favorites) Drop(id int) error {
	for i, fid := range f.ids {
		if fid == id {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			return f.adapter.SaveFavorites(f.ids)
		}
	}
	return nil
}

// Resolve maps the favorite ids to jobs in insertion order. Ids whose
// job no longer exists are silently skipped.
func (f *Favorites) Resolve(find func(id int) (models.Job, bool)) []models.Job {
	out := make([]models.Job, 0, len(f.ids))
	for _, id := range f.ids {
		if job, ok := find(id); ok {
			out = append(out, job)
		}
	}
	return out
}
