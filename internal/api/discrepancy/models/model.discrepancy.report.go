// Package models - báo cáo đối soát (discrepancy report) theo kỳ.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportRow một cặp (tên category, số đếm) ở dạng tall để lưu và export ổn định
type ReportRow struct {
	Name  string `json:"name" bson:"name"`
	Count int    `json:"count" bson:"count"`
}

// DiscrepancyReport báo cáo đối soát của một bureau theo kỳ (tháng, năm).
// Mỗi counter ứng với một category trong catalogue; hai category placeholder
// luôn bằng 0. Stale = true nghĩa là dữ liệu nguồn đã đổi sau lần tính gần nhất.
// Rows là dạng tall theo thứ tự catalogue, nhúng sẵn để export ổn định.
type DiscrepancyReport struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BureauFips  string             `json:"bureauFips" bson:"bureauFips" index:"compound:report_period_unique" validate:"required,fips"`
	Month       int                `json:"month" bson:"month" index:"compound:report_period_unique" validate:"report_month"`
	Year        int                `json:"year" bson:"year" index:"compound:report_period_unique"`
	Stale       bool               `json:"stale" bson:"stale"`
	GeneratedAt int64              `json:"generatedAt" bson:"generatedAt"`

	LetsPositions                          int `json:"letsPositions" bson:"letsPositions"`
	VacantLetsPositions                    int `json:"vacantLetsPositions" bson:"vacantLetsPositions"`
	FilledLetsPositions                    int `json:"filledLetsPositions" bson:"filledLetsPositions"`
	EmployeeLetsNotFoundLocal              int `json:"employeeLetsNotFoundLocal" bson:"employeeLetsNotFoundLocal"`
	VacantPositionsLets                    int `json:"vacantPositionsLets" bson:"vacantPositionsLets"`
	NumberofLocalPositions                 int `json:"numberofLocalPositions" bson:"numberofLocalPositions"`
	NumberOfVacantLocalPositions           int `json:"numberOfVacantLocalPositions" bson:"numberOfVacantLocalPositions"`
	NumberOfFilledLocalPositions           int `json:"numberOfFilledLocalPositions" bson:"numberOfFilledLocalPositions"`
	NumberOfEmployeesInLocalNotFoundInLets int `json:"numberOfEmployeesInLocalNotFoundInLets" bson:"numberOfEmployeesInLocalNotFoundInLets"`
	NumberOfEmployeeWithSignificantSalary  int `json:"numberOfEmployeeWithSignificantSalary" bson:"numberOfEmployeeWithSignificantSalary"`
	NumberOfLocalPositionsInLETS           int `json:"numberOfLocalPositionsInLETS" bson:"numberOfLocalPositionsInLETS"`
	LetsLocalPositionBlank                 int `json:"letsLocalPositionBlank" bson:"letsLocalPositionBlank"`
	NumberOfEmployeeWithPastDueProbation   int `json:"numberOfEmployeeWithPastDueProbation" bson:"numberOfEmployeeWithPastDueProbation"`
	NumberOfEmployeeWithPastDueAnnual      int `json:"numberOfEmployeeWithPastDueAnnual" bson:"numberOfEmployeeWithPastDueAnnual"`
	NumberOfEmployeeInExpiredPositions     int `json:"numberOfEmployeeInExpiredPositions" bson:"numberOfEmployeeInExpiredPositions"`
	NumberOfPositionsWithInvalidRSC        int `json:"numberOfPositionsWithInvalidRSC" bson:"numberOfPositionsWithInvalidRSC"`
	EmployeeslistedbutNoEESalary           int `json:"employeeslistedbutNoEESalary" bson:"employeeslistedbutNoEESalary"`
	EmployeeslistedButNoEETimeStatus       int `json:"employeeslistedButNoEETimeStatus" bson:"employeeslistedButNoEETimeStatus"`
	PartTimeEmployeesWithSalary            int `json:"partTimeEmployeesWithSalary" bson:"partTimeEmployeesWithSalary"`
	FullTimeEmployeesWithHourlyRate        int `json:"fullTimeEmployeesWithHourlyRate" bson:"fullTimeEmployeesWithHourlyRate"`
	EmployeesWithDeviationCodePoint5       int `json:"employeesWithDeviationCodePoint5" bson:"employeesWithDeviationCodePoint5"`
	EmployeesWithBlankAssignTime           int `json:"employeesWithBlankAssignTime" bson:"employeesWithBlankAssignTime"`
	EmployeeswithBlankEmployeeStatus       int `json:"employeeswithBlankEmployeeStatus" bson:"employeeswithBlankEmployeeStatus"`

	Rows []ReportRow `json:"rows" bson:"rows"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
