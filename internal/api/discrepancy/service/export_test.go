package discrepancysvc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	letsmodels "lets_reconcile/internal/api/lets/models"
	localmodels "lets_reconcile/internal/api/local/models"
)

func TestSheetName_Truncation(t *testing.T) {
	assert.Equal(t, "Short", sheetName("Short"))

	long := "NumberOfEmployeesInLocalNotFoundInLets"
	truncated := sheetName(long)
	assert.Len(t, truncated, 31)
	assert.Equal(t, long[:31], truncated)
}

func TestExportWorkbook_SummaryAndDetailSheets(t *testing.T) {
	master := []letsmodels.LetsPosition{
		{BureauFips: "51001", FirstName: "Jane", PersonNumber: "E-1"},
		{BureauFips: "51001", FirstName: ""},
	}
	valid := []localmodels.LocalPosition{
		{BureauFips: "51001", PayrollPositionNumber: "P-1", JobTitle: "Clerk", Salary: "30000", EmployeeFirstName: "Mia"},
	}

	report := ComputeReport(valid, master, testNow)
	index := BuildIndex(valid, master, testNow)

	content, err := ExportWorkbook(report, index)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	// header + một dòng cho mỗi category
	require.Len(t, rows, len(Catalogue)+1)
	assert.Equal(t, []string{"Category", "Count"}, rows[0][:2])
	assert.Equal(t, CatLetsPositions, rows[1][0])

	// Category có bản ghi đóng góp phải có sheet chi tiết
	assert.NotEqual(t, -1, mustSheetIndex(f, sheetName(CatLetsPositions)))
	// Category placeholder không có sheet
	assert.Equal(t, -1, mustSheetIndex(f, sheetName(CatNumberOfLocalPositionsInLETS)))
}

func mustSheetIndex(f *excelize.File, name string) int {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return -1
	}
	return idx
}
