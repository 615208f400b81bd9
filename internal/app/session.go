// Package app wires the repository, favorites tracker, profile manager
// and filter engine into one session and serializes every mutation as
// validate, mutate, persist, recompute, notify. The view layer calls
// the intent methods and receives the fresh derived state through the
// subscribe hook; it never reaches into the components directly.
package app

import (
	"context"

	"joblens/internal/bootstrap"
	"joblens/internal/jobs"
	"joblens/internal/models"
	"joblens/internal/storage"
	"joblens/internal/validation"
)

// Session holds all session state for one run of the application.
type Session struct {
	repo      *jobs.Repository
	favorites *jobs.Favorites
	profile   *jobs.ProfileManager
	engine    *jobs.Engine

	current   jobs.Result
	listeners []func(jobs.Result)
}

// NewSession hydrates profile and favorites from the store and prepares
// the repository. Call Start to load the job collection.
func NewSession(store storage.Store, source bootstrap.Source) (*Session, error) {
	adapter := storage.NewAdapter(store)

	favorites, err := jobs.NewFavorites(adapter)
	if err != nil {
		return nil, err
	}
	profile, err := jobs.NewProfileManager(adapter)
	if err != nil {
		return nil, err
	}

	repo := jobs.NewRepository(adapter, source)
	repo.OnDelete(func(id int) {
		// Referential integrity: a favorite id must always resolve.
		_ = favorites.Drop(id)
	})

	return &Session{
		repo:      repo,
		favorites: favorites,
		profile:   profile,
		engine:    jobs.NewEngine(),
	}, nil
}

// Start loads the job collection and computes the initial result. A
// jobs.ErrDataUnavailable is returned to the caller for the error view,
// but the session stays usable against an empty collection.
func (s *Session) Start(ctx context.Context) error {
	_, err := s.repo.LoadAll(ctx)
	s.refresh()
	return err
}

// Subscribe registers a listener invoked with the derived state after
// every recompute.
func (s *Session) Subscribe(fn func(jobs.Result)) {
	s.listeners = append(s.listeners, fn)
}

// Current returns the most recently computed derived state.
func (s *Session) Current() jobs.Result {
	return s.current
}

// refresh recomputes the visible list from fully-updated state and
// notifies every listener.
func (s *Session) refresh() {
	s.current = s.engine.Apply(s.repo.All(), s.profile.Skills())
	for _, fn := range s.listeners {
		fn(s.current)
	}
}

// --- filtering intents ---

// SetSearch updates the free-text query.
func (s *Session) SetSearch(text string) {
	s.engine.SetSearch(text)
	s.refresh()
}

// SearchText returns the current free-text query.
func (s *Session) SearchText() string {
	return s.engine.SearchText()
}

// AddTag applies a manual filter tag.
func (s *Session) AddTag(tag string) {
	s.engine.AddTag(tag)
	s.refresh()
}

// RemoveTag removes a manual filter tag.
func (s *Session) RemoveTag(tag string) {
	s.engine.RemoveTag(tag)
	s.refresh()
}

// ManualTags returns the active manual tags.
func (s *Session) ManualTags() []string {
	return s.engine.ManualTags()
}

// ClearFilters clears the search text and manual tags, leaving profile
// skills in place.
func (s *Session) ClearFilters() {
	s.engine.ClearAll()
	s.refresh()
}

// --- favorites intents ---

// ToggleFavorite flips the favorite state of a job and returns the new
// membership state.
func (s *Session) ToggleFavorite(id int) (bool, error) {
	if _, ok := s.repo.FindByID(id); !ok {
		return false, jobs.ErrNotFound
	}
	state, err := s.favorites.Toggle(id)
	if err != nil {
		return state, err
	}
	s.refresh()
	return state, nil
}

// IsFavorite reports whether a job is favorited.
func (s *Session) IsFavorite(id int) bool {
	return s.favorites.IsFavorite(id)
}

// FavoriteCount returns the number of favorited jobs.
func (s *Session) FavoriteCount() int {
	return s.favorites.Count()
}

// FavoriteJobs returns the favorited jobs in favorite insertion order,
// silently skipping ids whose job no longer exists.
func (s *Session) FavoriteJobs() []models.Job {
	return s.favorites.Resolve(s.repo.FindByID)
}

// --- profile intents ---

// Profile returns the current profile.
func (s *Session) Profile() models.Profile {
	return s.profile.Profile()
}

// SaveProfile validates and saves the profile form fields. Skills are
// untouched.
func (s *Session) SaveProfile(name, position, email string) error {
	if err := validation.ValidateProfile(name, position, email); err != nil {
		return err
	}
	return s.profile.Save(name, position, email)
}

// AddSkill adds a profile skill; skills feed back into filtering, so a
// successful add triggers a recompute.
func (s *Session) AddSkill(skill string) (bool, error) {
	added, err := s.profile.AddSkill(skill)
	if err != nil || !added {
		return added, err
	}
	s.refresh()
	return true, nil
}

// RemoveSkill removes a profile skill and recomputes.
func (s *Session) RemoveSkill(skill string) error {
	if err := s.profile.RemoveSkill(skill); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// --- management intents ---

// Jobs returns the whole collection for the management list.
func (s *Session) Jobs() []models.Job {
	return s.repo.All()
}

// FindJob returns a job by id.
func (s *Session) FindJob(id int) (models.Job, bool) {
	return s.repo.FindByID(id)
}

// CreateJob validates the draft, appends the job and recomputes.
func (s *Session) CreateJob(draft models.JobDraft) (models.Job, error) {
	if err := validation.ValidateJob(draft); err != nil {
		return models.Job{}, err
	}
	job, err := s.repo.Create(draft)
	if err != nil {
		return models.Job{}, err
	}
	s.refresh()
	return job, nil
}

// UpdateJob validates the draft, replaces the job's mutable fields and
// recomputes.
func (s *Session) UpdateJob(id int, draft models.JobDraft) (models.Job, error) {
	if err := validation.ValidateJob(draft); err != nil {
		return models.Job{}, err
	}
	job, err := s.repo.Update(id, draft)
	if err != nil {
		return models.Job{}, err
	}
	s.refresh()
	return job, nil
}

// DeleteJob removes a job, drops it from favorites and recomputes.
func (s *Session) DeleteJob(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.refresh()
	return nil
}
