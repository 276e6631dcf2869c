package handler

import (
	"errors"
	"strconv"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	listing  usecase.JobListingUsecase
	mutation usecase.JobMutationUsecase
}

func NewJobHandler(listing usecase.JobListingUsecase, mutation usecase.JobMutationUsecase) *JobHandler {
	return &JobHandler{listing: listing, mutation: mutation}
}

// HandleGetAll serves the public filtered listing.
func (h *JobHandler) HandleGetAll(c fiber.Ctx) error {
	minSalary, err := parseSalaryQuery(c, "minSalary")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	maxSalary, err := parseSalaryQuery(c, "maxSalary")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	jobs, err := h.listing.ListJobs(c.Context(), usecase.ListJobsParams{
		Search:    c.Query("search"),
		City:      c.Query("city"),
		Category:  c.Query("category"),
		MinSalary: minSalary,
		MaxSalary: maxSalary,
	})
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"jobs": dto.FromJobs(jobs)})
}

func (h *JobHandler) HandleGetCategories(c fiber.Ctx) error {
	categories, err := h.listing.ListCategories(c.Context())
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"categories": categories})
}

func (h *JobHandler) HandlePost(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req dto.PostJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	created, err := h.mutation.Create(c.Context(), usecase.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
	}, usr.ID)
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Job Posted Successfully!",
		"job":     dto.FromJob(created),
	})
}

func (h *JobHandler) HandleGetMyJobs(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	jobs, err := h.listing.ListMyJobs(c.Context(), usr.ID)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"myJobs": dto.FromJobs(jobs)})
}

func (h *JobHandler) HandleUpdate(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req dto.UpdateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	err := h.mutation.Update(c.Context(), c.Params("id"), usecase.UpdateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		Expired:     req.Expired,
	}, usr.ID)
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"message": "Job Updated!"})
}

func (h *JobHandler) HandleDelete(c fiber.Ctx) error {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	if err := h.mutation.Delete(c.Context(), c.Params("id"), usr.ID); err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"message": "Job deleted successfully"})
}

func (h *JobHandler) HandleGetSingle(c fiber.Ctx) error {
	j, err := h.listing.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"job": dto.FromJob(j)})
}

func parseSalaryQuery(c fiber.Ctx, key string) (*int64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mapJobError(err error) error {
	if err == nil {
		return nil
	}

	var verr *job.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, verr.Message, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found.", err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
	}
}
