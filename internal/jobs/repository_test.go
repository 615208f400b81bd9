package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblens/internal/models"
	"joblens/internal/storage"
)

type stubSource struct {
	jobs []models.Job
	err  error
}

func (s *stubSource) Fetch(ctx context.Context) ([]models.Job, error) {
	return s.jobs, s.err
}

func newTestRepo(t *testing.T, seed []models.Job) (*Repository, *storage.Adapter) {
	t.Helper()
	adapter := storage.NewAdapter(storage.NewMemStore())
	repo := NewRepository(adapter, &stubSource{jobs: seed})
	_, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	return repo, adapter
}

func TestLoadAllPrefersStore(t *testing.T) {
	adapter := storage.NewAdapter(storage.NewMemStore())
	stored := []models.Job{{ID: 7, Company: "Stored"}}
	require.NoError(t, adapter.SaveJobs(stored))

	repo := NewRepository(adapter, &stubSource{jobs: []models.Job{{ID: 1, Company: "Fetched"}}})
	got, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestLoadAllFallsBackToSourceAndCaches(t *testing.T) {
	adapter := storage.NewAdapter(storage.NewMemStore())
	fetched := []models.Job{{ID: 1, Company: "Fetched"}}

	repo := NewRepository(adapter, &stubSource{jobs: fetched})
	got, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fetched, got)

	// The fetch result is written through, so the next load skips the
	// source entirely.
	cached, found, err := adapter.LoadJobs()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, fetched, cached)
}

func TestLoadAllDataUnavailable(t *testing.T) {
	adapter := storage.NewAdapter(storage.NewMemStore())
	repo := NewRepository(adapter, &stubSource{err: errors.New("connection refused")})

	_, err := repo.LoadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.Zero(t, repo.Count())
}

func TestCreateAssignsNextID(t *testing.T) {
	repo, _ := newTestRepo(t, []models.Job{{ID: 3, Company: "Acme"}, {ID: 9, Company: "Globex"}})

	job, err := repo.Create(models.JobDraft{Company: "Initech", Position: "Dev", Role: "Backend", Level: "Junior", Contract: "Full Time", Location: "Remote"})
	require.NoError(t, err)
	assert.Equal(t, 10, job.ID)

	// Ids never collide even with gaps in the sequence.
	deleted := repo.Delete(9)
	require.NoError(t, deleted)
	job, err = repo.Create(models.JobDraft{Company: "Hooli", Position: "Dev", Role: "Backend", Level: "Junior", Contract: "Full Time", Location: "Remote"})
	require.NoError(t, err)
	assert.Equal(t, 11, job.ID)
}

func TestCreateOnEmptyCollection(t *testing.T) {
	repo, adapter := newTestRepo(t, nil)

	job, err := repo.Create(models.JobDraft{Company: "Acme", Position: "Dev", Role: "Backend", Level: "Junior", Contract: "Full Time", Location: "Remote"})
	require.NoError(t, err)
	assert.Equal(t, 1, job.ID)
	assert.Equal(t, "Just now", job.PostedAt)
	assert.True(t, job.IsNew)

	// The mutation was written through.
	stored, found, err := adapter.LoadJobs()
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, stored, 1)
	assert.Equal(t, job, stored[0])
}

func TestUpdateReplacesInPlace(t *testing.T) {
	repo, _ := newTestRepo(t, []models.Job{
		{ID: 1, Company: "Acme"},
		{ID: 2, Company: "Globex", IsFeatured: true},
		{ID: 3, Company: "Initech"},
	})

	updated, err := repo.Update(2, models.JobDraft{Company: "Globex Corp", Position: "Dev", Role: "Backend", Level: "Senior", Contract: "Full Time", Location: "Remote"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "Globex Corp", updated.Company)
	// Flags not set on the draft are cleared, not preserved.
	assert.False(t, updated.IsFeatured)

	all := repo.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestUpdateNotFound(t *testing.T) {
	repo, _ := newTestRepo(t, []models.Job{{ID: 1}})
	_, err := repo.Update(99, models.JobDraft{Company: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSignalsHook(t *testing.T) {
	repo, adapter := newTestRepo(t, []models.Job{{ID: 1}, {ID: 2}})

	var dropped []int
	repo.OnDelete(func(id int) { dropped = append(dropped, id) })

	require.NoError(t, repo.Delete(1))
	assert.Equal(t, []int{1}, dropped)
	assert.Equal(t, 1, repo.Count())

	_, found := repo.FindByID(1)
	assert.False(t, found)

	stored, _, err := adapter.LoadJobs()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 2, stored[0].ID)
}

func TestDeleteNotFound(t *testing.T) {
	repo, _ := newTestRepo(t, []models.Job{{ID: 1}})

	var called bool
	repo.OnDelete(func(int) { called = true })

	err := repo.Delete(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
}

func TestAllReturnsCopy(t *testing.T) {
	repo, _ := newTestRepo(t, []models.Job{{ID: 1, Company: "Acme"}})

	all := repo.All()
	all[0].Company = "Mutated"

	fresh, found := repo.FindByID(1)
	require.True(t, found)
	assert.Equal(t, "Acme", fresh.Company)
}
