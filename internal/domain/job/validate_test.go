package job

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64ptr(v int64) *int64 { return &v }

func validJob() Job {
	return Job{
		Title:       "Delivery Driver",
		Description: strings.Repeat("Deliver packages across the city. ", 3),
		Category:    "Driver",
		Country:     "India",
		City:        "Pune",
		Location:    "Baner Road",
		FixedSalary: int64ptr(50000),
	}
}

func TestJobValidate_OK(t *testing.T) {
	assert.NoError(t, validJob().Validate())

	ranged := validJob()
	ranged.FixedSalary = nil
	ranged.SalaryFrom = int64ptr(2000)
	ranged.SalaryTo = int64ptr(5000)
	assert.NoError(t, ranged.Validate())
}

func TestJobValidate_MissingRequiredField(t *testing.T) {
	j := validJob()
	j.Country = ""

	var verr *ValidationError
	require.ErrorAs(t, j.Validate(), &verr)
	assert.Equal(t, "Please provide full job details", verr.Message)
}

func TestJobValidate_BothSalaryShapes(t *testing.T) {
	j := validJob()
	j.SalaryFrom = int64ptr(1000)
	j.SalaryTo = int64ptr(2000)

	var verr *ValidationError
	require.ErrorAs(t, j.Validate(), &verr)
	assert.Equal(t, "Cannot enter both fixed and ranged salary.", verr.Message)
}

func TestJobValidate_NoSalary(t *testing.T) {
	j := validJob()
	j.FixedSalary = nil

	var verr *ValidationError
	require.ErrorAs(t, j.Validate(), &verr)
	assert.Equal(t, "Please either provide fixed salary or ranged salary.", verr.Message)
}

func TestJobValidate_HalfRange(t *testing.T) {
	j := validJob()
	j.FixedSalary = nil
	j.SalaryFrom = int64ptr(2000)

	var verr *ValidationError
	require.ErrorAs(t, j.Validate(), &verr)
	assert.Equal(t, "Please either provide fixed salary or ranged salary.", verr.Message)
}

func TestJobValidate_NegativeSalary(t *testing.T) {
	j := validJob()
	j.FixedSalary = int64ptr(-100)

	var verr *ValidationError
	require.ErrorAs(t, j.Validate(), &verr)
	assert.Equal(t, "Salary values cannot be negative.", verr.Message)
}

func TestJobValidate_SalaryBounds(t *testing.T) {
	j := validJob()
	j.FixedSalary = int64ptr(999)
	assert.Error(t, j.Validate())

	j.FixedSalary = int64ptr(SalaryMax + 1)
	assert.Error(t, j.Validate())

	j.FixedSalary = int64ptr(SalaryMin)
	assert.NoError(t, j.Validate())

	j.FixedSalary = int64ptr(SalaryMax)
	assert.NoError(t, j.Validate())
}

func TestJobValidate_TitleLength(t *testing.T) {
	j := validJob()
	j.Title = "ab"
	assert.Error(t, j.Validate())

	j.Title = strings.Repeat("x", TitleMaxLen+1)
	assert.Error(t, j.Validate())
}

func TestJobValidate_DescriptionLength(t *testing.T) {
	j := validJob()
	j.Description = "too short"
	assert.Error(t, j.Validate())

	j.Description = strings.Repeat("x", DescriptionMaxLen+1)
	assert.Error(t, j.Validate())
}

func TestJobValidate_UnknownCategory(t *testing.T) {
	j := validJob()
	j.Category = "Astronaut"

	var verr *ValidationError
	require.ErrorAs(t, j.Validate(), &verr)
	assert.Equal(t, "Astronaut is not a valid category.", verr.Message)
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("all"))
	assert.False(t, ValidCategory(""))
}
