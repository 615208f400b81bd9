package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"joblens/internal/bootstrap"
	"joblens/internal/models"
	"joblens/internal/storage"
)

// Repository owns the authoritative job collection for the session.
// Every mutation is written through to the store before it returns.
type Repository struct {
	adapter *storage.Adapter
	source  bootstrap.Source
	jobs    []models.Job

	// onDelete lets the session drop the id from the favorites tracker
	// so a favorite id always resolves to an existing job.
	onDelete func(id int)
}

// NewRepository creates an empty repository. Call LoadAll before use.
func NewRepository(adapter *storage.Adapter, source bootstrap.Source) *Repository {
	return &Repository{adapter: adapter, source: source}
}

// OnDelete registers the hook invoked after a job is removed.
func (r *Repository) OnDelete(fn func(id int)) {
	r.onDelete = fn
}

// LoadAll hydrates the collection: the persisted collection wins, then
// the bootstrap source (cached to the store on success). When neither
// yields data the repository stays empty and ErrDataUnavailable is
// returned; the rest of the application remains usable.
func (r *Repository) LoadAll(ctx context.Context) ([]models.Job, error) {
	stored, found, err := r.adapter.LoadJobs()
	if err != nil {
		slog.Warn("stored job collection unreadable, refetching", slog.Any("error", err))
	}
	if found && err == nil {
		r.jobs = stored
		return r.All(), nil
	}

	if r.source == nil {
		return nil, ErrDataUnavailable
	}

	fetched, err := r.source.Fetch(ctx)
	if err != nil {
		r.jobs = nil
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	r.jobs = fetched
	if err := r.adapter.SaveJobs(r.jobs); err != nil {
		return nil, fmt.Errorf("cache bootstrap jobs: %w", err)
	}
	return r.All(), nil
}

// All returns the collection in its stable original order.
func (r *Repository) All() []models.Job {
	out := make([]models.Job, len(r.jobs))
	copy(out, r.jobs)
	return out
}

// Count returns the collection size.
func (r *Repository) Count() int {
	return len(r.jobs)
}

// FindByID returns the job with the given id.
func (r *Repository) FindByID(id int) (models.Job, bool) {
	for _, j := range r.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return models.Job{}, false
}

// Create appends a new job built from the draft. The id is strictly
// greater than every existing id, or 1 for an empty collection. The
// caller validates the draft first.
func (r *Repository) Create(draft models.JobDraft) (models.Job, error) {
	maxID := 0
	for _, j := range r.jobs {
		if j.ID > maxID {
			maxID = j.ID
		}
	}

	job := draftToJob(maxID+1, draft)
	if job.PostedAt == "" {
		job.PostedAt = "Just now"
		job.IsNew = true
	}

	r.jobs = append(r.jobs, job)
	if err := r.adapter.SaveJobs(r.jobs); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// Update replaces every mutable field of the job with the draft,
// preserving the id and its position in the collection.
func (r *Repository) Update(id int, draft models.JobDraft) (models.Job, error) {
	for i, j := range r.jobs {
		if j.ID != id {
			continue
		}
		r.jobs[i] = draftToJob(id, draft)
		if err := r.adapter.SaveJobs(r.jobs); err != nil {
			return models.Job{}, err
		}
		return r.jobs[i], nil
	}
	return models.Job{}, fmt.Errorf("update job %d: %w", id, ErrNotFound)
}

// Delete removes the job and signals the favorites tracker to drop the
// id, keeping favorite ids resolvable.
func (r *Repository) Delete(id int) error {
	for i, j := range r.jobs {
		if j.ID != id {
			continue
		}
		r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
		if err := r.adapter.SaveJobs(r.jobs); err != nil {
			return err
		}
		if r.onDelete != nil {
			r.onDelete(id)
		}
		return nil
	}
	return fmt.Errorf("delete job %d: %w", id, ErrNotFound)
}

func draftToJob(id int, d models.JobDraft) models.Job {
	skills := make([]string, len(d.Skills))
	copy(skills, d.Skills)
	return models.Job{
		ID:          id,
		Company:     d.Company,
		Logo:        d.Logo,
		IsNew:       d.IsNew,
		IsFeatured:  d.IsFeatured,
		Position:    d.Position,
		Role:        d.Role,
		Level:       d.Level,
		PostedAt:    d.PostedAt,
		Contract:    d.Contract,
		Location:    d.Location,
		Skills:      skills,
		Description: d.Description,
	}
}
