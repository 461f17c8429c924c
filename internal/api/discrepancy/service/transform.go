package discrepancysvc

import (
	"lets_reconcile/internal/api/discrepancy/models"
)

// counterValue đọc counter theo tên category từ model wide
func counterValue(report *models.DiscrepancyReport, name string) int {
	switch name {
	case CatLetsPositions:
		return report.LetsPositions
	case CatVacantLetsPositions:
		return report.VacantLetsPositions
	case CatFilledLetsPositions:
		return report.FilledLetsPositions
	case CatEmployeeLetsNotFoundLocal:
		return report.EmployeeLetsNotFoundLocal
	case CatVacantPositionsLets:
		return report.VacantPositionsLets
	case CatNumberofLocalPositions:
		return report.NumberofLocalPositions
	case CatNumberOfVacantLocalPositions:
		return report.NumberOfVacantLocalPositions
	case CatNumberOfFilledLocalPositions:
		return report.NumberOfFilledLocalPositions
	case CatNumberOfEmployeesInLocalNotFoundInLets:
		return report.NumberOfEmployeesInLocalNotFoundInLets
	case CatNumberOfEmployeeWithSignificantSalary:
		return report.NumberOfEmployeeWithSignificantSalary
	case CatNumberOfLocalPositionsInLETS:
		return report.NumberOfLocalPositionsInLETS
	case CatLetsLocalPositionBlank:
		return report.LetsLocalPositionBlank
	case CatNumberOfEmployeeWithPastDueProbation:
		return report.NumberOfEmployeeWithPastDueProbation
	case CatNumberOfEmployeeWithPastDueAnnual:
		return report.NumberOfEmployeeWithPastDueAnnual
	case CatNumberOfEmployeeInExpiredPositions:
		return report.NumberOfEmployeeInExpiredPositions
	case CatNumberOfPositionsWithInvalidRSC:
		return report.NumberOfPositionsWithInvalidRSC
	case CatEmployeeslistedbutNoEESalary:
		return report.EmployeeslistedbutNoEESalary
	case CatEmployeeslistedButNoEETimeStatus:
		return report.EmployeeslistedButNoEETimeStatus
	case CatPartTimeEmployeesWithSalary:
		return report.PartTimeEmployeesWithSalary
	case CatFullTimeEmployeesWithHourlyRate:
		return report.FullTimeEmployeesWithHourlyRate
	case CatEmployeesWithDeviationCodePoint5:
		return report.EmployeesWithDeviationCodePoint5
	case CatEmployeesWithBlankAssignTime:
		return report.EmployeesWithBlankAssignTime
	case CatEmployeeswithBlankEmployeeStatus:
		return report.EmployeeswithBlankEmployeeStatus
	}
	return 0
}

// setCounter ghi counter theo tên category vào model wide
func setCounter(report *models.DiscrepancyReport, name string, value int) {
	switch name {
	case CatLetsPositions:
		report.LetsPositions = value
	case CatVacantLetsPositions:
		report.VacantLetsPositions = value
	case CatFilledLetsPositions:
		report.FilledLetsPositions = value
	case CatEmployeeLetsNotFoundLocal:
		report.EmployeeLetsNotFoundLocal = value
	case CatVacantPositionsLets:
		report.VacantPositionsLets = value
	case CatNumberofLocalPositions:
		report.NumberofLocalPositions = value
	case CatNumberOfVacantLocalPositions:
		report.NumberOfVacantLocalPositions = value
	case CatNumberOfFilledLocalPositions:
		report.NumberOfFilledLocalPositions = value
	case CatNumberOfEmployeesInLocalNotFoundInLets:
		report.NumberOfEmployeesInLocalNotFoundInLets = value
	case CatNumberOfEmployeeWithSignificantSalary:
		report.NumberOfEmployeeWithSignificantSalary = value
	case CatNumberOfLocalPositionsInLETS:
		report.NumberOfLocalPositionsInLETS = value
	case CatLetsLocalPositionBlank:
		report.LetsLocalPositionBlank = value
	case CatNumberOfEmployeeWithPastDueProbation:
		report.NumberOfEmployeeWithPastDueProbation = value
	case CatNumberOfEmployeeWithPastDueAnnual:
		report.NumberOfEmployeeWithPastDueAnnual = value
	case CatNumberOfEmployeeInExpiredPositions:
		report.NumberOfEmployeeInExpiredPositions = value
	case CatNumberOfPositionsWithInvalidRSC:
		report.NumberOfPositionsWithInvalidRSC = value
	case CatEmployeeslistedbutNoEESalary:
		report.EmployeeslistedbutNoEESalary = value
	case CatEmployeeslistedButNoEETimeStatus:
		report.EmployeeslistedButNoEETimeStatus = value
	case CatPartTimeEmployeesWithSalary:
		report.PartTimeEmployeesWithSalary = value
	case CatFullTimeEmployeesWithHourlyRate:
		report.FullTimeEmployeesWithHourlyRate = value
	case CatEmployeesWithDeviationCodePoint5:
		report.EmployeesWithDeviationCodePoint5 = value
	case CatEmployeesWithBlankAssignTime:
		report.EmployeesWithBlankAssignTime = value
	case CatEmployeeswithBlankEmployeeStatus:
		report.EmployeeswithBlankEmployeeStatus = value
	}
}

// ToRows chuyển báo cáo wide sang dạng tall (name, count) theo đúng
// thứ tự catalogue
func ToRows(report models.DiscrepancyReport) []models.ReportRow {
	rows := make([]models.ReportRow, 0, len(Catalogue))
	for _, rule := range Catalogue {
		rows = append(rows, models.ReportRow{
			Name:  rule.Name,
			Count: counterValue(&report, rule.Name),
		})
	}
	return rows
}

// FromRows dựng lại báo cáo wide từ dạng tall. Category vắng mặt nhận
// giá trị 0, tên lạ bị bỏ qua.
func FromRows(rows []models.ReportRow) models.DiscrepancyReport {
	var report models.DiscrepancyReport
	for _, row := range rows {
		setCounter(&report, row.Name, row.Count)
	}
	report.Rows = ToRows(report)
	return report
}
