package storage

import (
	"encoding/json"
	"fmt"

	"joblens/internal/models"
)

// Adapter provides typed load/save on top of a Store. Every save
// serializes the whole record; every load of an absent key returns an
// empty default so a fresh data dir behaves like a first run.
type Adapter struct {
	store Store
}

// NewAdapter wraps a Store.
func NewAdapter(store Store) *Adapter {
	return &Adapter{store: store}
}

// LoadJobs returns the persisted job collection, or found=false when no
// collection has been saved yet.
func (a *Adapter) LoadJobs() ([]models.Job, bool, error) {
	data, found, err := a.store.Get(KeyJobs)
	if err != nil || !found {
		return nil, false, err
	}

	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, false, fmt.Errorf("storage: decode jobs: %w", err)
	}
	return jobs, true, nil
}

// SaveJobs persists the whole job collection.
func (a *Adapter) SaveJobs(jobs []models.Job) error {
	return a.save(KeyJobs, jobs)
}

// LoadProfile returns the persisted profile, or an empty default profile
// on first run.
func (a *Adapter) LoadProfile() (models.Profile, error) {
	data, found, err := a.store.Get(KeyProfile)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		return models.Profile{}, nil
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return models.Profile{}, fmt.Errorf("storage: decode profile: %w", err)
	}
	return p, nil
}

// SaveProfile persists the profile wholesale.
func (a *Adapter) SaveProfile(p models.Profile) error {
	return a.save(KeyProfile, p)
}

// LoadFavorites returns the persisted favorite job ids in insertion
// order, or an empty list on first run.
func (a *Adapter) LoadFavorites() ([]int, error) {
	data, found, err := a.store.Get(KeyFavorites)
	if err != nil || !found {
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("storage: decode favorites: %w", err)
	}
	return ids, nil
}

// SaveFavorites persists the favorite-id list.
func (a *Adapter) SaveFavorites(ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	return a.save(KeyFavorites, ids)
}

func (a *Adapter) save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}
	return a.store.Set(key, data)
}
