package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"job-portal/internal/domain/job"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

type CreateJobInput struct {
	Title       string
	Description string
	Category    string
	Country     string
	City        string
	Location    string
	FixedSalary *int64
	SalaryFrom  *int64
	SalaryTo    *int64
}

// UpdateJobInput carries a partial replacement; nil fields are untouched.
type UpdateJobInput struct {
	Title       *string
	Description *string
	Category    *string
	Country     *string
	City        *string
	Location    *string
	FixedSalary *int64
	SalaryFrom  *int64
	SalaryTo    *int64
	Expired     *bool
}

// JobNotifier is told about newly posted jobs. Delivery is best effort.
type JobNotifier interface {
	JobPosted(j job.Job)
}

type JobMutationUsecase interface {
	Create(ctx context.Context, in CreateJobInput, ownerID uuid.UUID) (job.Job, error)
	Update(ctx context.Context, rawID string, in UpdateJobInput, callerID uuid.UUID) error
	Delete(ctx context.Context, rawID string, callerID uuid.UUID) error
}

type JobMutation struct {
	jobs     repository.JobRepository
	cache    Cache
	notifier JobNotifier
	logger   *log.Logger

	now func() time.Time
}

func NewJobMutationUsecase(jobs repository.JobRepository, cache Cache, notifier JobNotifier, logger *log.Logger) *JobMutation {
	return &JobMutation{jobs: jobs, cache: cache, notifier: notifier, logger: logger, now: time.Now}
}

func (u *JobMutation) Create(ctx context.Context, in CreateJobInput, ownerID uuid.UUID) (job.Job, error) {
	j := job.Job{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Country:     in.Country,
		City:        in.City,
		Location:    in.Location,
		FixedSalary: in.FixedSalary,
		SalaryFrom:  in.SalaryFrom,
		SalaryTo:    in.SalaryTo,
		Expired:     false,
		PostedOn:    u.now().UTC(),
		PostedBy:    ownerID,
	}

	if err := j.Validate(); err != nil {
		return job.Job{}, err
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] create failed: %v", err)
		}
		return job.Job{}, ErrInternal
	}

	u.invalidateCategories(ctx)
	if u.notifier != nil {
		u.notifier.JobPosted(j)
	}
	return j, nil
}

func (u *JobMutation) Update(ctx context.Context, rawID string, in UpdateJobInput, callerID uuid.UUID) error {
	existing, err := u.fetchOwned(ctx, rawID, callerID)
	if err != nil {
		return err
	}

	merged := applyUpdate(existing, in)
	if err := validateUpdatedFields(in, merged); err != nil {
		return err
	}

	if err := u.jobs.Update(ctx, merged); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] update %s failed: %v", merged.ID, err)
		}
		return ErrInternal
	}

	u.invalidateCategories(ctx)
	return nil
}

func (u *JobMutation) Delete(ctx context.Context, rawID string, callerID uuid.UUID) error {
	existing, err := u.fetchOwned(ctx, rawID, callerID)
	if err != nil {
		return err
	}

	if err := u.jobs.Delete(ctx, existing.ID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] delete %s failed: %v", existing.ID, err)
		}
		return ErrInternal
	}

	u.invalidateCategories(ctx)
	return nil
}

func (u *JobMutation) fetchOwned(ctx context.Context, rawID string, callerID uuid.UUID) (job.Job, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return job.Job{}, ErrJobNotFound
	}

	existing, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] get %s failed: %v", id, err)
		}
		return job.Job{}, ErrInternal
	}

	if existing.PostedBy != callerID {
		return job.Job{}, ErrNotJobOwner
	}
	return existing, nil
}

func (u *JobMutation) invalidateCategories(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, categoriesCacheKey); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] category cache invalidation failed: %v", err)
	}
}

func applyUpdate(j job.Job, in UpdateJobInput) job.Job {
	if in.Title != nil {
		j.Title = *in.Title
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.Category != nil {
		j.Category = *in.Category
	}
	if in.Country != nil {
		j.Country = *in.Country
	}
	if in.City != nil {
		j.City = *in.City
	}
	if in.Location != nil {
		j.Location = *in.Location
	}
	if in.FixedSalary != nil {
		j.FixedSalary = in.FixedSalary
	}
	if in.SalaryFrom != nil {
		j.SalaryFrom = in.SalaryFrom
	}
	if in.SalaryTo != nil {
		j.SalaryTo = in.SalaryTo
	}
	if in.Expired != nil {
		j.Expired = *in.Expired
	}
	return j
}

// validateUpdatedFields runs the store-level validators over the fields
// the caller actually sent. The fixed/range exclusivity is a creation
// invariant and is not re-derived across a partial merge.
func validateUpdatedFields(in UpdateJobInput, merged job.Job) error {
	if in.Title != nil {
		if err := job.CheckTitle(merged.Title); err != nil {
			return err
		}
	}
	if in.Description != nil {
		if err := job.CheckDescription(merged.Description); err != nil {
			return err
		}
	}
	if in.Category != nil {
		if err := job.CheckCategory(merged.Category); err != nil {
			return err
		}
	}
	if in.Location != nil {
		if err := job.CheckLocation(merged.Location); err != nil {
			return err
		}
	}
	for _, v := range []*int64{in.FixedSalary, in.SalaryFrom, in.SalaryTo} {
		if v == nil {
			continue
		}
		if err := job.CheckSalaryValue(*v); err != nil {
			return err
		}
	}
	return nil
}
