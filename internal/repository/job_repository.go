package repository

import (
	"context"
	"database/sql"
	"errors"

	"job-portal/internal/database"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	Update(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f JobFilter) ([]job.Job, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]job.Job, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, description, category, country, city, location,
	fixed_salary, salary_from, salary_to, expired, posted_on, posted_by`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		j.ID, j.Title, j.Description, j.Category, j.Country, j.City, j.Location,
		j.FixedSalary, j.SalaryFrom, j.SalaryTo, j.Expired, j.PostedOn, j.PostedBy,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET
			title = $2, description = $3, category = $4, country = $5,
			city = $6, location = $7, fixed_salary = $8, salary_from = $9,
			salary_to = $10, expired = $11
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Category, j.Country, j.City, j.Location,
		j.FixedSalary, j.SalaryFrom, j.SalaryTo, j.Expired,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) List(ctx context.Context, f JobFilter) ([]job.Job, error) {
	where, args := buildJobWhere(f)

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs `+where+` ORDER BY posted_on DESC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE posted_by = $1 ORDER BY posted_on DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM jobs ORDER BY category ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Category, &j.Country, &j.City, &j.Location,
		&j.FixedSalary, &j.SalaryFrom, &j.SalaryTo, &j.Expired, &j.PostedOn, &j.PostedBy,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Category, &j.Country, &j.City, &j.Location,
			&j.FixedSalary, &j.SalaryFrom, &j.SalaryTo, &j.Expired, &j.PostedOn, &j.PostedBy,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
