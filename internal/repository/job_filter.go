package repository

import (
	"fmt"
	"strings"

	"job-portal/internal/domain/job"
)

// JobFilter is the set of optional listing inputs. Nil salary bounds are
// unconstrained; the sentinel category "all" means no category filter.
type JobFilter struct {
	Search    string
	City      string
	Category  string
	MinSalary *int64
	MaxSalary *int64
}

const CategoryAll = "all"

// Validate rejects bounds that can never be part of a legal filter. No
// partial filter is ever applied on failure.
func (f JobFilter) Validate() error {
	if f.MinSalary != nil && *f.MinSalary < 0 {
		return job.NewValidationError("Min salary cannot be negative.")
	}
	if f.MaxSalary != nil && *f.MaxSalary < 0 {
		return job.NewValidationError("Max salary cannot be negative.")
	}
	return nil
}

// buildJobWhere translates the filter into a WHERE clause and its
// positional args. Expired jobs are always excluded. A job stores its
// salary either as fixed_salary or as the salary_from/salary_to pair, so
// the salary predicate is an OR over the two shapes; NULL columns fail
// the comparison and drop the job out of the branch that does not apply.
func buildJobWhere(f JobFilter) (string, []any) {
	conds := []string{"expired = FALSE"}
	args := make([]any, 0, 4)

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		conds = append(conds, fmt.Sprintf("title ILIKE '%%' || %s || '%%'", next(f.Search)))
	}
	if f.City != "" {
		conds = append(conds, fmt.Sprintf("city = %s", next(f.City)))
	}
	if f.Category != "" && f.Category != CategoryAll {
		conds = append(conds, fmt.Sprintf("category = %s", next(f.Category)))
	}

	if f.MinSalary != nil || f.MaxSalary != nil {
		var fixed, ranged []string
		if f.MinSalary != nil {
			p := next(*f.MinSalary)
			fixed = append(fixed, fmt.Sprintf("fixed_salary >= %s", p))
			ranged = append(ranged, fmt.Sprintf("salary_from >= %s", p))
		}
		if f.MaxSalary != nil {
			p := next(*f.MaxSalary)
			fixed = append(fixed, fmt.Sprintf("fixed_salary <= %s", p))
			ranged = append(ranged, fmt.Sprintf("salary_to <= %s", p))
		}
		conds = append(conds, fmt.Sprintf("((%s) OR (%s))",
			strings.Join(fixed, " AND "),
			strings.Join(ranged, " AND "),
		))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}
