package discrepancysvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	letsmodels "lets_reconcile/internal/api/lets/models"
	localmodels "lets_reconcile/internal/api/local/models"
)

var testNow = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

// letsRecord dựng bản ghi LETS tối thiểu cho test
func letsRecord(firstName string) letsmodels.LetsPosition {
	return letsmodels.LetsPosition{
		BureauFips: "51001",
		FirstName:  firstName,
	}
}

// localRow dựng dòng payroll hợp lệ cho test
func localRow(firstName string) localmodels.LocalPosition {
	return localmodels.LocalPosition{
		BureauFips:            "51001",
		PayrollPositionNumber: "P-100",
		JobTitle:              "Eligibility Worker",
		Salary:                "42000",
		EmployeeFirstName:     firstName,
	}
}

func TestComputeReport_EmptyInputs(t *testing.T) {
	report := ComputeReport(nil, nil, testNow)

	for _, row := range report.Rows {
		assert.Equal(t, 0, row.Count, "category %s phải bằng 0 khi không có dữ liệu", row.Name)
	}
	assert.Len(t, report.Rows, len(Catalogue))
}

func TestComputeReport_VacantFilledPartition(t *testing.T) {
	master := []letsmodels.LetsPosition{
		letsRecord("Jane"),
		letsRecord(""),
		letsRecord("Bob"),
		letsRecord(""),
		letsRecord(""),
	}

	report := ComputeReport(nil, master, testNow)

	assert.Equal(t, 5, report.LetsPositions)
	assert.Equal(t, 2, report.VacantLetsPositions)
	assert.Equal(t, 3, report.FilledLetsPositions)
	assert.Equal(t, report.LetsPositions, report.VacantLetsPositions+report.FilledLetsPositions,
		"vacant + filled phải phủ kín toàn bộ bản ghi LETS")
}

func TestComputeReport_Idempotent(t *testing.T) {
	master := []letsmodels.LetsPosition{letsRecord("Jane"), letsRecord("")}
	valid := []localmodels.LocalPosition{localRow("Jane")}

	first := ComputeReport(valid, master, testNow)
	second := ComputeReport(valid, master, testNow)

	assert.Equal(t, first.Rows, second.Rows)
}

func TestComputeReport_MatchedScenario(t *testing.T) {
	// Master có Jane và một vị trí không tên, local chỉ có Jane
	master := []letsmodels.LetsPosition{letsRecord("Jane"), letsRecord("")}
	valid := []localmodels.LocalPosition{localRow("Jane")}

	report := ComputeReport(valid, master, testNow)

	assert.Equal(t, 2, report.LetsPositions)
	assert.Equal(t, 1, report.VacantLetsPositions)
	assert.Equal(t, 1, report.FilledLetsPositions)
	assert.Equal(t, 0, report.EmployeeLetsNotFoundLocal, "Jane có trong local nên không được đếm")
	assert.Equal(t, 0, report.VacantPositionsLets, "Jane có trong master nên không được đếm")
	assert.Equal(t, 1, report.NumberofLocalPositions)
	assert.Equal(t, 1, report.NumberOfVacantLocalPositions)
	assert.Equal(t, 1, report.NumberOfFilledLocalPositions)
}

func TestComputeReport_LocalOnlyEmployee(t *testing.T) {
	valid := []localmodels.LocalPosition{localRow("Bob")}

	report := ComputeReport(valid, nil, testNow)

	assert.Equal(t, 1, report.NumberOfEmployeesInLocalNotFoundInLets)
	assert.Equal(t, 1, report.VacantPositionsLets)
	assert.Equal(t, 0, report.LetsPositions)
}

func TestComputeReport_PlaceholdersAlwaysZero(t *testing.T) {
	master := []letsmodels.LetsPosition{letsRecord("Jane"), letsRecord("Bob")}
	valid := []localmodels.LocalPosition{localRow("Jane"), localRow("Bob")}

	report := ComputeReport(valid, master, testNow)

	assert.Equal(t, 0, report.NumberOfEmployeeWithSignificantSalary)
	assert.Equal(t, 0, report.NumberOfLocalPositionsInLETS)
}

func TestComputeReport_DateRules(t *testing.T) {
	pastDue := letsRecord("Anna")
	pastDue.LastRatingDate = "2024-01-15"

	recent := letsRecord("Beth")
	recent.LastRatingDate = "2026-06-01"

	unparseable := letsRecord("Carl")
	unparseable.LastRatingDate = "not-a-date"

	expired := letsRecord("Dana")
	expired.ExpectedJobEndDate = "2025-12-31"
	expired.LastRatingDate = "2026-06-01"

	future := letsRecord("Evan")
	future.ExpectedJobEndDate = "2027-01-01"
	future.LastRatingDate = "2026-06-01"

	master := []letsmodels.LetsPosition{pastDue, recent, unparseable, expired, future}
	report := ComputeReport(nil, master, testNow)

	// pastDue quá hạn hơn 1 năm, unparseable coi như vắng mặt nên cũng đếm
	assert.Equal(t, 2, report.NumberOfEmployeeWithPastDueAnnual)
	// chỉ expired có ngày kết thúc trong quá khứ; ngày vắng mặt không đếm
	assert.Equal(t, 1, report.NumberOfEmployeeInExpiredPositions)
}

func TestComputeReport_SalaryThresholdRules(t *testing.T) {
	partTimeHigh := letsRecord("Anna")
	partTimeHigh.TimeStatusCode = "P"
	partTimeHigh.EmployeeSalary = "45,000"

	partTimeLow := letsRecord("Beth")
	partTimeLow.TimeStatusCode = "P"
	partTimeLow.EmployeeSalary = "800"

	fullTimeHourly := letsRecord("Carl")
	fullTimeHourly.TimeStatusCode = "F"
	fullTimeHourly.EmployeeSalary = "25.50"

	fullTimeSalaried := letsRecord("Dana")
	fullTimeSalaried.TimeStatusCode = "F"
	fullTimeSalaried.EmployeeSalary = "52000"

	nonNumeric := letsRecord("Evan")
	nonNumeric.TimeStatusCode = "F"
	nonNumeric.EmployeeSalary = "N/A"

	master := []letsmodels.LetsPosition{partTimeHigh, partTimeLow, fullTimeHourly, fullTimeSalaried, nonNumeric}
	report := ComputeReport(nil, master, testNow)

	assert.Equal(t, 1, report.PartTimeEmployeesWithSalary)
	// lương không phải số không bao giờ thỏa mãn rule ngưỡng
	assert.Equal(t, 1, report.FullTimeEmployeesWithHourlyRate)
}

func TestBuildIndex_CountsMatchReport(t *testing.T) {
	master := []letsmodels.LetsPosition{
		letsRecord("Jane"),
		letsRecord(""),
		letsRecord("Bob"),
	}
	valid := []localmodels.LocalPosition{localRow("Jane"), localRow("Mia")}

	report := ComputeReport(valid, master, testNow)
	index := BuildIndex(valid, master, testNow)

	require.Len(t, index, len(Catalogue))
	for i, entry := range index {
		expected := report.Rows[i].Count
		got := len(entry.LetsRecords) + len(entry.LocalRecords)
		assert.Equal(t, expected, got,
			"số bản ghi drill-down của %s phải khớp counter", entry.Name)
	}
}

func TestBuildIndex_PlaceholderEmpty(t *testing.T) {
	master := []letsmodels.LetsPosition{letsRecord("Jane")}
	index := BuildIndex(nil, master, testNow)

	for _, entry := range index {
		if entry.Name == CatNumberOfEmployeeWithSignificantSalary || entry.Name == CatNumberOfLocalPositionsInLETS {
			assert.Empty(t, entry.LetsRecords)
			assert.Empty(t, entry.LocalRecords)
		}
	}
}

func TestCategoryDrilldown_UnknownCategory(t *testing.T) {
	_, ok := CategoryDrilldown("NotARealCategory", nil, nil, testNow)
	assert.False(t, ok)
}

func TestCategoryDrilldown_SharedPredicate(t *testing.T) {
	master := []letsmodels.LetsPosition{letsRecord("Jane"), letsRecord("Bob"), letsRecord("")}
	valid := []localmodels.LocalPosition{localRow("Jane")}

	entry, ok := CategoryDrilldown(CatEmployeeLetsNotFoundLocal, valid, master, testNow)
	require.True(t, ok)
	require.Len(t, entry.LetsRecords, 1)
	assert.Equal(t, "Bob", entry.LetsRecords[0].FirstName)
}
