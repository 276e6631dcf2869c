package job

import "fmt"

const (
	TitleMinLen       = 3
	TitleMaxLen       = 30
	DescriptionMinLen = 30
	DescriptionMaxLen = 500
	LocationMinLen    = 3

	SalaryMin = 1000
	SalaryMax = 100000000
)

// ValidationError carries a message safe to return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func CheckTitle(title string) error {
	if len(title) < TitleMinLen {
		return NewValidationError(fmt.Sprintf("Title must contain at least %d characters!", TitleMinLen))
	}
	if len(title) > TitleMaxLen {
		return NewValidationError(fmt.Sprintf("Title cannot exceed %d characters!", TitleMaxLen))
	}
	return nil
}

func CheckDescription(description string) error {
	if len(description) < DescriptionMinLen {
		return NewValidationError(fmt.Sprintf("Description must contain at least %d characters!", DescriptionMinLen))
	}
	if len(description) > DescriptionMaxLen {
		return NewValidationError(fmt.Sprintf("Description cannot exceed %d characters!", DescriptionMaxLen))
	}
	return nil
}

func CheckLocation(location string) error {
	if len(location) < LocationMinLen {
		return NewValidationError(fmt.Sprintf("Location must contain at least %d characters!", LocationMinLen))
	}
	return nil
}

func CheckCategory(category string) error {
	if !ValidCategory(category) {
		return NewValidationError(fmt.Sprintf("%s is not a valid category.", category))
	}
	return nil
}

func CheckSalaryValue(v int64) error {
	if v < SalaryMin {
		return NewValidationError(fmt.Sprintf("Salary must be at least %d.", SalaryMin))
	}
	if v > SalaryMax {
		return NewValidationError(fmt.Sprintf("Salary cannot exceed %d.", SalaryMax))
	}
	return nil
}

// CheckSalaryShape enforces fixed XOR range.
func CheckSalaryShape(fixed, from, to *int64) error {
	hasFixed := fixed != nil
	hasRange := from != nil && to != nil

	if (fixed != nil && *fixed < 0) || (from != nil && *from < 0) || (to != nil && *to < 0) {
		return NewValidationError("Salary values cannot be negative.")
	}
	if !hasFixed && !hasRange {
		return NewValidationError("Please either provide fixed salary or ranged salary.")
	}
	if hasFixed && (from != nil || to != nil) {
		return NewValidationError("Cannot enter both fixed and ranged salary.")
	}
	return nil
}

// Validate runs the full set of creation-time checks.
func (j Job) Validate() error {
	if j.Title == "" || j.Description == "" || j.Category == "" || j.Country == "" || j.City == "" || j.Location == "" {
		return NewValidationError("Please provide full job details")
	}
	if err := CheckSalaryShape(j.FixedSalary, j.SalaryFrom, j.SalaryTo); err != nil {
		return err
	}
	for _, v := range []*int64{j.FixedSalary, j.SalaryFrom, j.SalaryTo} {
		if v == nil {
			continue
		}
		if err := CheckSalaryValue(*v); err != nil {
			return err
		}
	}
	if err := CheckTitle(j.Title); err != nil {
		return err
	}
	if err := CheckDescription(j.Description); err != nil {
		return err
	}
	if err := CheckCategory(j.Category); err != nil {
		return err
	}
	if err := CheckLocation(j.Location); err != nil {
		return err
	}
	return nil
}
