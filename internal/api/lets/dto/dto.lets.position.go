// Package dto - các DTO cho domain lets.
package dto

// LetsPositionCreateInput dữ liệu đầu vào khi tạo bản ghi LETS
type LetsPositionCreateInput struct {
	BureauFips               string `json:"bureauFips" validate:"required,fips"`
	Region                   string `json:"region" validate:"omitempty,no_xss"`
	PersonNumber             string `json:"personNumber" validate:"omitempty,no_xss"`
	FirstName                string `json:"firstName" validate:"omitempty,no_xss"`
	LastName                 string `json:"lastName" validate:"omitempty,no_xss"`
	MiddleInitial            string `json:"middleInitial" validate:"omitempty,no_xss"`
	EmployeeStatus           string `json:"employeeStatus"`
	PositionBeginDate        string `json:"positionBeginDate"`
	EmployeeSalary           string `json:"employeeSalary"`
	AssignedTimePercentage   string `json:"assignedTimePercentage"`
	StatePositionNumber      string `json:"statePositionNumber"`
	LocalPositionNumber      string `json:"localPositionNumber"`
	TimeStatusCode           string `json:"timeStatusCode"`
	DeviationCode            string `json:"deviationCode"`
	PositionDuration         string `json:"positionDuration"`
	PositionStatus           string `json:"positionStatus"`
	ClStartDate              string `json:"clStartDate"`
	EffectiveFromDate        string `json:"effectiveFromDate"`
	ExpectedEndDate          string `json:"expectedEndDate"`
	EndDate                  string `json:"endDate"`
	ReimbursementStatusCode  string `json:"reimbursementStatusCode"`
	LastRatingDate           string `json:"lastRatingDate"`
	ExpectedJobEndDate       string `json:"expectedJobEndDate"`
	ProbationExpectedEndDate string `json:"probationExpectedEndDate"`
}

// LetsPositionUpdateInput dữ liệu đầu vào khi cập nhật bản ghi LETS
type LetsPositionUpdateInput struct {
	Region                   string `json:"region,omitempty" validate:"omitempty,no_xss"`
	FirstName                string `json:"firstName,omitempty" validate:"omitempty,no_xss"`
	LastName                 string `json:"lastName,omitempty" validate:"omitempty,no_xss"`
	MiddleInitial            string `json:"middleInitial,omitempty" validate:"omitempty,no_xss"`
	EmployeeStatus           string `json:"employeeStatus,omitempty"`
	PositionBeginDate        string `json:"positionBeginDate,omitempty"`
	EmployeeSalary           string `json:"employeeSalary,omitempty"`
	AssignedTimePercentage   string `json:"assignedTimePercentage,omitempty"`
	StatePositionNumber      string `json:"statePositionNumber,omitempty"`
	LocalPositionNumber      string `json:"localPositionNumber,omitempty"`
	TimeStatusCode           string `json:"timeStatusCode,omitempty"`
	DeviationCode            string `json:"deviationCode,omitempty"`
	PositionDuration         string `json:"positionDuration,omitempty"`
	PositionStatus           string `json:"positionStatus,omitempty"`
	ClStartDate              string `json:"clStartDate,omitempty"`
	EffectiveFromDate        string `json:"effectiveFromDate,omitempty"`
	ExpectedEndDate          string `json:"expectedEndDate,omitempty"`
	EndDate                  string `json:"endDate,omitempty"`
	ReimbursementStatusCode  string `json:"reimbursementStatusCode,omitempty"`
	LastRatingDate           string `json:"lastRatingDate,omitempty"`
	ExpectedJobEndDate       string `json:"expectedJobEndDate,omitempty"`
	ProbationExpectedEndDate string `json:"probationExpectedEndDate,omitempty"`
}
