package localsvc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"lets_reconcile/internal/common"
)

// buildWorkbook dựng file xlsx in-memory từ các dòng để test parser
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buffer, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buffer.Bytes()
}

func TestParseSpreadsheet_BasicRows(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"Payroll Position Number", "Job Title", "First Name", "Last Name", "Salary"},
		{"P-100", "Eligibility Worker", "Jane", "Doe", "42000"},
		{"P-101", "Clerk", "", "", "30000"},
	})

	positions, err := ParseSpreadsheet(content, "51001")
	require.NoError(t, err)
	require.Len(t, positions, 2)

	assert.Equal(t, "P-100", positions[0].PayrollPositionNumber)
	assert.Equal(t, "Jane", positions[0].EmployeeFirstName)
	assert.Equal(t, "42000", positions[0].Salary)
	assert.Equal(t, "51001", positions[0].BureauFips)
	assert.Equal(t, "51001", positions[1].BureauFips)
}

func TestParseSpreadsheet_HeaderVariants(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"Position Number", "JOB TITLE", "Employee First Name", "MI", "RSC"},
		{"P-1", "Clerk", "Anna", "B", "R1"},
	})

	positions, err := ParseSpreadsheet(content, "51001")
	require.NoError(t, err)
	require.Len(t, positions, 1)

	assert.Equal(t, "P-1", positions[0].PayrollPositionNumber)
	assert.Equal(t, "Clerk", positions[0].JobTitle)
	assert.Equal(t, "Anna", positions[0].EmployeeFirstName)
	assert.Equal(t, "B", positions[0].EmployeeMiddleInitial)
	assert.Equal(t, "R1", positions[0].ReimbursementStatusCode)
}

func TestParseSpreadsheet_SkipsEmptyRows(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"Payroll Position Number", "Job Title", "Salary"},
		{"P-1", "Clerk", "30000"},
		{"", "", ""},
		{"P-2", "Analyst", "50000"},
	})

	positions, err := ParseSpreadsheet(content, "51001")
	require.NoError(t, err)
	assert.Len(t, positions, 2)
}

func TestParseSpreadsheet_NotASpreadsheet(t *testing.T) {
	_, err := ParseSpreadsheet([]byte("không phải file excel"), "51001")
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeValidationFormat.Code, customErr.Code.Code)
}

func TestParseSpreadsheet_HeaderOnly(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"Payroll Position Number", "Job Title", "Salary"},
	})

	_, err := ParseSpreadsheet(content, "51001")
	require.Error(t, err)
}

func TestParseSpreadsheet_NoRecognizedHeaders(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"Foo", "Bar"},
		{"1", "2"},
	})

	_, err := ParseSpreadsheet(content, "51001")
	require.Error(t, err)
}
