package discrepancysvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lets_reconcile/internal/api/discrepancy/models"
)

func TestToRows_CatalogueOrder(t *testing.T) {
	report := models.DiscrepancyReport{
		LetsPositions:       7,
		VacantLetsPositions: 3,
	}

	rows := ToRows(report)
	require.Len(t, rows, len(Catalogue))

	for i, rule := range Catalogue {
		assert.Equal(t, rule.Name, rows[i].Name)
	}
	assert.Equal(t, 7, rows[0].Count)
	assert.Equal(t, 3, rows[1].Count)
}

func TestFromRows_RoundTrip(t *testing.T) {
	original := models.DiscrepancyReport{
		LetsPositions:                     10,
		VacantLetsPositions:               4,
		FilledLetsPositions:               6,
		NumberofLocalPositions:            8,
		NumberOfEmployeeWithPastDueAnnual: 2,
		EmployeeswithBlankEmployeeStatus:  1,
	}
	original.Rows = ToRows(original)

	restored := FromRows(original.Rows)

	for _, rule := range Catalogue {
		assert.Equal(t, counterValue(&original, rule.Name), counterValue(&restored, rule.Name),
			"counter %s phải giữ nguyên sau round-trip", rule.Name)
	}
}

func TestFromRows_MissingCategoryDefaultsToZero(t *testing.T) {
	rows := []models.ReportRow{
		{Name: CatLetsPositions, Count: 5},
	}

	report := FromRows(rows)

	assert.Equal(t, 5, report.LetsPositions)
	assert.Equal(t, 0, report.VacantLetsPositions)
	assert.Equal(t, 0, report.NumberofLocalPositions)
}

func TestFromRows_UnknownCategoryIgnored(t *testing.T) {
	rows := []models.ReportRow{
		{Name: "SomethingUnknown", Count: 99},
		{Name: CatFilledLetsPositions, Count: 3},
	}

	report := FromRows(rows)

	assert.Equal(t, 3, report.FilledLetsPositions)
	for _, row := range report.Rows {
		assert.NotEqual(t, "SomethingUnknown", row.Name)
	}
}
