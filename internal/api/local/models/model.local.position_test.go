package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRow() LocalPosition {
	return LocalPosition{
		BureauFips:            "51001",
		PayrollPositionNumber: "P-100",
		JobTitle:              "Eligibility Worker",
		Salary:                "42000",
	}
}

func TestIsValid(t *testing.T) {
	row := validRow()
	assert.True(t, row.IsValid())

	row = validRow()
	row.PayrollPositionNumber = ""
	assert.False(t, row.IsValid())

	row = validRow()
	row.JobTitle = "   "
	assert.False(t, row.IsValid(), "job title chỉ có khoảng trắng coi như rỗng")

	row = validRow()
	row.Salary = ""
	assert.False(t, row.IsValid())
}

func TestSplitValid_PreservesOrder(t *testing.T) {
	first := validRow()
	first.EmployeeFirstName = "Anna"

	bad := validRow()
	bad.Salary = ""

	second := validRow()
	second.EmployeeFirstName = "Beth"

	valid, invalid := SplitValid([]LocalPosition{first, bad, second})

	assert.Len(t, valid, 2)
	assert.Len(t, invalid, 1)
	assert.Equal(t, "Anna", valid[0].EmployeeFirstName)
	assert.Equal(t, "Beth", valid[1].EmployeeFirstName)
}

func TestSplitValid_Empty(t *testing.T) {
	valid, invalid := SplitValid(nil)
	assert.Empty(t, valid)
	assert.Empty(t, invalid)
}
