// Package models - bản ghi vị trí trong registry LETS (master data).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LetsPosition là một bản ghi vị trí/nhân viên trong registry LETS.
// Các trường ngày và lương giữ nguyên dạng chuỗi như dữ liệu nguồn;
// các rule đối soát tự xử lý chuỗi rỗng hoặc không parse được.
// Quy ước dữ liệu nguồn: FirstName không rỗng nghĩa là vị trí "vacant",
// FirstName rỗng nghĩa là "filled" (ngữ nghĩa đảo, giữ nguyên theo hệ thống gốc).
type LetsPosition struct {
	ID                       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BureauFips               string             `json:"bureauFips" bson:"bureauFips" index:"single:1" validate:"omitempty,fips"`
	Region                   string             `json:"region" bson:"region,omitempty"`
	PersonNumber             string             `json:"personNumber" bson:"personNumber,omitempty"`
	FirstName                string             `json:"firstName" bson:"firstName,omitempty"`
	LastName                 string             `json:"lastName" bson:"lastName,omitempty"`
	MiddleInitial            string             `json:"middleInitial" bson:"middleInitial,omitempty"`
	EmployeeStatus           string             `json:"employeeStatus" bson:"employeeStatus,omitempty"`
	PositionBeginDate        string             `json:"positionBeginDate" bson:"positionBeginDate,omitempty"`
	EmployeeSalary           string             `json:"employeeSalary" bson:"employeeSalary,omitempty"`
	AssignedTimePercentage   string             `json:"assignedTimePercentage" bson:"assignedTimePercentage,omitempty"`
	StatePositionNumber      string             `json:"statePositionNumber" bson:"statePositionNumber,omitempty"`
	LocalPositionNumber      string             `json:"localPositionNumber" bson:"localPositionNumber,omitempty"`
	TimeStatusCode           string             `json:"timeStatusCode" bson:"timeStatusCode,omitempty"`
	DeviationCode            string             `json:"deviationCode" bson:"deviationCode,omitempty"`
	PositionDuration         string             `json:"positionDuration" bson:"positionDuration,omitempty"`
	PositionStatus           string             `json:"positionStatus" bson:"positionStatus,omitempty"`
	ClStartDate              string             `json:"clStartDate" bson:"clStartDate,omitempty"`
	EffectiveFromDate        string             `json:"effectiveFromDate" bson:"effectiveFromDate,omitempty"`
	ExpectedEndDate          string             `json:"expectedEndDate" bson:"expectedEndDate,omitempty"`
	EndDate                  string             `json:"endDate" bson:"endDate,omitempty"`
	ReimbursementStatusCode  string             `json:"reimbursementStatusCode" bson:"reimbursementStatusCode,omitempty"`
	LastRatingDate           string             `json:"lastRatingDate" bson:"lastRatingDate,omitempty"`
	ExpectedJobEndDate       string             `json:"expectedJobEndDate" bson:"expectedJobEndDate,omitempty"`
	ProbationExpectedEndDate string             `json:"probationExpectedEndDate" bson:"probationExpectedEndDate,omitempty"`
	CreatedAt                int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt                int64              `json:"updatedAt" bson:"updatedAt"`
}
