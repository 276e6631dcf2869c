package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posted listing. Salary is either FixedSalary or the
// SalaryFrom/SalaryTo pair, never both and never neither.
type Job struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	Country     string
	City        string
	Location    string

	FixedSalary *int64
	SalaryFrom  *int64
	SalaryTo    *int64

	Expired  bool
	PostedOn time.Time
	PostedBy uuid.UUID
}

// Categories is the canonical category list. The API's category listing
// reports distinct stored values; this list gates what may be stored.
var Categories = []string{
	"Painter",
	"Cleaner",
	"Sweeper",
	"Cook",
	"Househelper",
	"Driver",
	"Waiter",
	"Watchman",
	"Dishwasher",
	"Electrician",
	"Maid",
	"Porter",
	"Web Development",
	"App Development",
	"UI/UX Design",
	"Graphics Design",
	"Digital Marketing",
	"Business Development",
	"MERN Stack Development",
	"MEAN Stack Development",
	"Data Science",
	"Machine Learning",
	"DevOps",
	"Cloud",
	"QA/Testing",
	"Finance",
	"Healthcare",
	"Sales",
	"Education",
	"Other",
}

var categorySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		m[c] = struct{}{}
	}
	return m
}()

func ValidCategory(c string) bool {
	_, ok := categorySet[c]
	return ok
}
