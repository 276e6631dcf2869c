package dto

import (
	"time"

	"job-portal/internal/domain/job"

	"github.com/google/uuid"
)

type PostJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Location    string `json:"location"`
	FixedSalary *int64 `json:"fixedSalary"`
	SalaryFrom  *int64 `json:"salaryFrom"`
	SalaryTo    *int64 `json:"salaryTo"`
}

type UpdateJobRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	Location    *string `json:"location"`
	FixedSalary *int64  `json:"fixedSalary"`
	SalaryFrom  *int64  `json:"salaryFrom"`
	SalaryTo    *int64  `json:"salaryTo"`
	Expired     *bool   `json:"expired"`
}

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Location    string    `json:"location"`
	FixedSalary *int64    `json:"fixedSalary,omitempty"`
	SalaryFrom  *int64    `json:"salaryFrom,omitempty"`
	SalaryTo    *int64    `json:"salaryTo,omitempty"`
	Expired     bool      `json:"expired"`
	PostedOn    string    `json:"postedOn"`
	PostedBy    uuid.UUID `json:"postedBy"`
}

func FromJob(j job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Category:    j.Category,
		Country:     j.Country,
		City:        j.City,
		Location:    j.Location,
		FixedSalary: j.FixedSalary,
		SalaryFrom:  j.SalaryFrom,
		SalaryTo:    j.SalaryTo,
		Expired:     j.Expired,
		PostedOn:    j.PostedOn.UTC().Format(time.RFC3339),
		PostedBy:    j.PostedBy,
	}
}

func FromJobs(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
