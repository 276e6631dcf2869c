package usecase

import (
	"context"
	"errors"
	"log"

	"job-portal/internal/domain/job"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

type ListJobsParams struct {
	Search    string
	City      string
	Category  string
	MinSalary *int64
	MaxSalary *int64
}

type JobListingUsecase interface {
	ListJobs(ctx context.Context, params ListJobsParams) ([]job.Job, error)
	GetJob(ctx context.Context, rawID string) (job.Job, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListMyJobs(ctx context.Context, ownerID uuid.UUID) ([]job.Job, error)
}

type JobListing struct {
	jobs   repository.JobRepository
	cache  Cache
	logger *log.Logger
}

func NewJobListingUsecase(jobs repository.JobRepository, cache Cache, logger *log.Logger) *JobListing {
	return &JobListing{jobs: jobs, cache: cache, logger: logger}
}

// ListJobs returns every non-expired job matching the filter, newest
// first. Negative salary bounds fail before the store is touched.
func (u *JobListing) ListJobs(ctx context.Context, params ListJobsParams) ([]job.Job, error) {
	f := repository.JobFilter{
		Search:    params.Search,
		City:      params.City,
		Category:  params.Category,
		MinSalary: params.MinSalary,
		MaxSalary: params.MaxSalary,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	jobs, err := u.jobs.List(ctx, f)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] list failed: %v", err)
		}
		return nil, ErrInternal
	}
	return jobs, nil
}

// GetJob treats a malformed identifier the same as an unknown one.
func (u *JobListing) GetJob(ctx context.Context, rawID string) (job.Job, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return job.Job{}, ErrJobNotFound
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] get %s failed: %v", id, err)
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

// ListCategories reports the distinct category values currently stored,
// expired jobs included. The result is cached; mutations invalidate it.
func (u *JobListing) ListCategories(ctx context.Context) ([]string, error) {
	if u.cache != nil {
		var cached []string
		if hit, err := u.cache.GetJSON(ctx, categoriesCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	categories, err := u.jobs.DistinctCategories(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] list categories failed: %v", err)
		}
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, categoriesCacheKey, categories, categoriesCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Jobs] category cache write failed: %v", err)
		}
	}
	return categories, nil
}

// ListMyJobs returns all of the owner's jobs, expired ones included.
func (u *JobListing) ListMyJobs(ctx context.Context, ownerID uuid.UUID) ([]job.Job, error) {
	jobs, err := u.jobs.ListByOwner(ctx, ownerID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] list by owner %s failed: %v", ownerID, err)
		}
		return nil, ErrInternal
	}
	return jobs, nil
}
