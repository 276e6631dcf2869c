package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"job-portal/internal/domain/job"

	"github.com/google/uuid"
)

type mockNotifier struct {
	posted []job.Job
}

func (m *mockNotifier) JobPosted(j job.Job) {
	m.posted = append(m.posted, j)
}

func int64ptr(v int64) *int64 { return &v }

func validCreateInput() CreateJobInput {
	return CreateJobInput{
		Title:       "Delivery Driver",
		Description: strings.Repeat("Deliver packages across the city. ", 3),
		Category:    "Driver",
		Country:     "India",
		City:        "Pune",
		Location:    "Baner Road",
		FixedSalary: int64ptr(50000),
	}
}

func TestJobMutation_Create_Success(t *testing.T) {
	repo := &mockJobRepo{}
	notifier := &mockNotifier{}
	cache := newMockCache()
	cache.store[categoriesCacheKey] = []byte("stale")

	uc := NewJobMutationUsecase(repo, cache, notifier, nil)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	owner := uuid.New()
	created, err := uc.Create(context.Background(), validCreateInput(), owner)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Fatalf("expected assigned id")
	}
	if created.PostedBy != owner {
		t.Fatalf("expected postedBy to be the owner")
	}
	if !created.PostedOn.Equal(fixed) {
		t.Fatalf("expected postedOn %v, got %v", fixed, created.PostedOn)
	}
	if created.Expired {
		t.Fatalf("new job must not be expired")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted job, got %d", len(repo.created))
	}
	if len(notifier.posted) != 1 {
		t.Fatalf("expected job_posted notification")
	}
	if _, ok := cache.store[categoriesCacheKey]; ok {
		t.Fatalf("expected category cache invalidation")
	}
}

func TestJobMutation_Create_BothSalaries(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobMutationUsecase(repo, nil, nil, nil)

	in := validCreateInput()
	in.SalaryFrom = int64ptr(1000)
	in.SalaryTo = int64ptr(2000)

	_, err := uc.Create(context.Background(), in, uuid.New())

	var verr *job.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Cannot enter both fixed and ranged salary." {
		t.Fatalf("unexpected message: %q", verr.Message)
	}
	if len(repo.created) != 0 {
		t.Fatalf("invalid job must not be persisted")
	}
}

func TestJobMutation_Create_NoSalary(t *testing.T) {
	uc := NewJobMutationUsecase(&mockJobRepo{}, nil, nil, nil)

	in := validCreateInput()
	in.FixedSalary = nil

	_, err := uc.Create(context.Background(), in, uuid.New())

	var verr *job.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Please either provide fixed salary or ranged salary." {
		t.Fatalf("unexpected message: %q", verr.Message)
	}
}

func TestJobMutation_Create_MissingFields(t *testing.T) {
	uc := NewJobMutationUsecase(&mockJobRepo{}, nil, nil, nil)

	in := validCreateInput()
	in.City = ""

	_, err := uc.Create(context.Background(), in, uuid.New())

	var verr *job.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Please provide full job details" {
		t.Fatalf("unexpected message: %q", verr.Message)
	}
}

func ownedJob(owner uuid.UUID) job.Job {
	return job.Job{
		ID:          uuid.New(),
		Title:       "Delivery Driver",
		Description: strings.Repeat("Deliver packages across the city. ", 3),
		Category:    "Driver",
		Country:     "India",
		City:        "Pune",
		Location:    "Baner Road",
		FixedSalary: int64ptr(50000),
		PostedBy:    owner,
	}
}

func TestJobMutation_Update_UnknownID(t *testing.T) {
	uc := NewJobMutationUsecase(&mockJobRepo{byID: map[uuid.UUID]job.Job{}}, nil, nil, nil)

	err := uc.Update(context.Background(), uuid.NewString(), UpdateJobInput{}, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobMutation_Update_MalformedID(t *testing.T) {
	uc := NewJobMutationUsecase(&mockJobRepo{}, nil, nil, nil)

	err := uc.Update(context.Background(), "garbage", UpdateJobInput{}, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobMutation_Update_NotOwner(t *testing.T) {
	owner := uuid.New()
	existing := ownedJob(owner)
	uc := NewJobMutationUsecase(&mockJobRepo{byID: map[uuid.UUID]job.Job{existing.ID: existing}}, nil, nil, nil)

	err := uc.Update(context.Background(), existing.ID.String(), UpdateJobInput{}, uuid.New())
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}
}

func TestJobMutation_Update_PartialMerge(t *testing.T) {
	owner := uuid.New()
	existing := ownedJob(owner)
	repo := &mockJobRepo{byID: map[uuid.UUID]job.Job{existing.ID: existing}}
	uc := NewJobMutationUsecase(repo, nil, nil, nil)

	title := "Night Shift Driver"
	expired := true
	err := uc.Update(context.Background(), existing.ID.String(), UpdateJobInput{
		Title:   &title,
		Expired: &expired,
	}, owner)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(repo.updated) != 1 {
		t.Fatalf("expected 1 update, got %d", len(repo.updated))
	}
	got := repo.updated[0]
	if got.Title != title {
		t.Fatalf("title not applied")
	}
	if !got.Expired {
		t.Fatalf("expired flag not applied")
	}
	if got.City != existing.City || got.Category != existing.Category {
		t.Fatalf("untouched fields must be preserved")
	}
}

func TestJobMutation_Update_InvalidProvidedField(t *testing.T) {
	owner := uuid.New()
	existing := ownedJob(owner)
	repo := &mockJobRepo{byID: map[uuid.UUID]job.Job{existing.ID: existing}}
	uc := NewJobMutationUsecase(repo, nil, nil, nil)

	bad := "xx"
	err := uc.Update(context.Background(), existing.ID.String(), UpdateJobInput{Title: &bad}, owner)

	var verr *job.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("invalid update must not be persisted")
	}
}

func TestJobMutation_Update_SalaryBelowMinimum(t *testing.T) {
	owner := uuid.New()
	existing := ownedJob(owner)
	uc := NewJobMutationUsecase(&mockJobRepo{byID: map[uuid.UUID]job.Job{existing.ID: existing}}, nil, nil, nil)

	err := uc.Update(context.Background(), existing.ID.String(), UpdateJobInput{FixedSalary: int64ptr(500)}, owner)

	var verr *job.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestJobMutation_Delete_Success(t *testing.T) {
	owner := uuid.New()
	existing := ownedJob(owner)
	repo := &mockJobRepo{byID: map[uuid.UUID]job.Job{existing.ID: existing}}
	uc := NewJobMutationUsecase(repo, nil, nil, nil)

	if err := uc.Delete(context.Background(), existing.ID.String(), owner); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected 1 delete, got %d", len(repo.deleted))
	}

	// Re-deleting must fail with not-found, not succeed silently.
	err := uc.Delete(context.Background(), existing.ID.String(), owner)
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound on re-delete, got %v", err)
	}
}

func TestJobMutation_Delete_NotOwner(t *testing.T) {
	owner := uuid.New()
	existing := ownedJob(owner)
	repo := &mockJobRepo{byID: map[uuid.UUID]job.Job{existing.ID: existing}}
	uc := NewJobMutationUsecase(repo, nil, nil, nil)

	err := uc.Delete(context.Background(), existing.ID.String(), uuid.New())
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("job must not be deleted")
	}
}
