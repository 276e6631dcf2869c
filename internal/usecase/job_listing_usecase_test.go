package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-portal/internal/domain/job"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs       []job.Job
	byID       map[uuid.UUID]job.Job
	categories []string
	err        error

	created   []job.Job
	updated   []job.Job
	deleted   []uuid.UUID
	lastWhere repository.JobFilter
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, j)
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[j.ID]; !ok {
		return repository.ErrJobNotFound
	}
	m.updated = append(m.updated, j)
	return nil
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return repository.ErrJobNotFound
	}
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockJobRepo) List(_ context.Context, f repository.JobFilter) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastWhere = f
	return m.jobs, nil
}

func (m *mockJobRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, 0)
	for _, j := range m.jobs {
		if j.PostedBy == ownerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) DistinctCategories(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

type mockCache struct {
	store   map[string][]byte
	deleted []string
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if s, isStrings := out.(*[]string); isStrings {
		*s = []string{string(b)}
		return true, nil
	}
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.store[key] = []byte("set")
	return nil
}

func (m *mockCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.store, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

func TestJobListing_ListJobs_NegativeMinSalary(t *testing.T) {
	min := int64(-1)
	uc := NewJobListingUsecase(&mockJobRepo{}, nil, nil)

	_, err := uc.ListJobs(context.Background(), ListJobsParams{MinSalary: &min})

	var verr *job.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Min salary cannot be negative." {
		t.Fatalf("unexpected message: %q", verr.Message)
	}
}

func TestJobListing_ListJobs_NegativeMaxSalary(t *testing.T) {
	max := int64(-100)
	uc := NewJobListingUsecase(&mockJobRepo{}, nil, nil)

	_, err := uc.ListJobs(context.Background(), ListJobsParams{MaxSalary: &max})

	var verr *job.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Max salary cannot be negative." {
		t.Fatalf("unexpected message: %q", verr.Message)
	}
}

func TestJobListing_ListJobs_PassesFilterThrough(t *testing.T) {
	repo := &mockJobRepo{jobs: []job.Job{{Title: "Backend Engineer"}}}
	uc := NewJobListingUsecase(repo, nil, nil)

	min := int64(2000)
	jobs, err := uc.ListJobs(context.Background(), ListJobsParams{
		Search:    "engineer",
		City:      "Jakarta",
		Category:  "Web Development",
		MinSalary: &min,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if repo.lastWhere.Search != "engineer" || repo.lastWhere.City != "Jakarta" {
		t.Fatalf("filter not passed through: %+v", repo.lastWhere)
	}
	if repo.lastWhere.MinSalary == nil || *repo.lastWhere.MinSalary != 2000 {
		t.Fatalf("min salary not passed through")
	}
}

func TestJobListing_ListJobs_StoreFailure(t *testing.T) {
	uc := NewJobListingUsecase(&mockJobRepo{err: errors.New("connection refused")}, nil, nil)

	_, err := uc.ListJobs(context.Background(), ListJobsParams{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobListing_GetJob_MalformedID(t *testing.T) {
	uc := NewJobListingUsecase(&mockJobRepo{}, nil, nil)

	_, err := uc.GetJob(context.Background(), "not-a-uuid")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobListing_GetJob_Unknown(t *testing.T) {
	uc := NewJobListingUsecase(&mockJobRepo{byID: map[uuid.UUID]job.Job{}}, nil, nil)

	_, err := uc.GetJob(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobListing_GetJob_Found(t *testing.T) {
	id := uuid.New()
	uc := NewJobListingUsecase(&mockJobRepo{byID: map[uuid.UUID]job.Job{
		id: {ID: id, Title: "Cook"},
	}}, nil, nil)

	j, err := uc.GetJob(context.Background(), id.String())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if j.ID != id {
		t.Fatalf("unexpected job id")
	}
}

func TestJobListing_ListCategories_CacheMissThenSet(t *testing.T) {
	cache := newMockCache()
	uc := NewJobListingUsecase(&mockJobRepo{categories: []string{"Cook", "Driver"}}, cache, nil)

	categories, err := uc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if _, ok := cache.store[categoriesCacheKey]; !ok {
		t.Fatalf("expected categories to be cached")
	}
}

func TestJobListing_ListMyJobs_IncludesExpired(t *testing.T) {
	owner := uuid.New()
	uc := NewJobListingUsecase(&mockJobRepo{jobs: []job.Job{
		{Title: "Active", PostedBy: owner},
		{Title: "Old", PostedBy: owner, Expired: true},
		{Title: "Other", PostedBy: uuid.New()},
	}}, nil, nil)

	jobs, err := uc.ListMyJobs(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
}
