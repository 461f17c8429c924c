// Package dto - các DTO cho domain local.
package dto

// LocalPositionCreateInput dữ liệu đầu vào khi tạo thủ công một dòng payroll
type LocalPositionCreateInput struct {
	BureauFips              string `json:"bureauFips" validate:"required,fips"`
	PayrollPositionNumber   string `json:"payrollPositionNumber" validate:"omitempty,no_xss"`
	JobTitle                string `json:"jobTitle" validate:"omitempty,no_xss"`
	StateJobTitle           string `json:"stateJobTitle" validate:"omitempty,no_xss"`
	EmployeeLastName        string `json:"employeeLastName" validate:"omitempty,no_xss"`
	EmployeeFirstName       string `json:"employeeFirstName" validate:"omitempty,no_xss"`
	EmployeeMiddleInitial   string `json:"employeeMiddleInitial" validate:"omitempty,no_xss"`
	Salary                  string `json:"salary"`
	FTE                     string `json:"fte"`
	ReimbursementPercentage string `json:"reimbursementPercentage"`
	ReimbursementStatusCode string `json:"reimbursementStatusCode"`
}

// LocalPositionUpdateInput dữ liệu đầu vào khi cập nhật một dòng payroll
type LocalPositionUpdateInput struct {
	PayrollPositionNumber   string `json:"payrollPositionNumber,omitempty" validate:"omitempty,no_xss"`
	JobTitle                string `json:"jobTitle,omitempty" validate:"omitempty,no_xss"`
	StateJobTitle           string `json:"stateJobTitle,omitempty" validate:"omitempty,no_xss"`
	EmployeeLastName        string `json:"employeeLastName,omitempty" validate:"omitempty,no_xss"`
	EmployeeFirstName       string `json:"employeeFirstName,omitempty" validate:"omitempty,no_xss"`
	EmployeeMiddleInitial   string `json:"employeeMiddleInitial,omitempty" validate:"omitempty,no_xss"`
	Salary                  string `json:"salary,omitempty"`
	FTE                     string `json:"fte,omitempty"`
	ReimbursementPercentage string `json:"reimbursementPercentage,omitempty"`
	ReimbursementStatusCode string `json:"reimbursementStatusCode,omitempty"`
}

// LocalUploadParamsInput tham số kỳ báo cáo đi kèm file upload
type LocalUploadParamsInput struct {
	BureauFips string `json:"bureauFips" validate:"required,fips"`
	Month      int    `json:"month" validate:"report_month"`
	Year       int    `json:"year" validate:"required,min=2000,max=2100"`
}

// LocalUploadResult kết quả của một lần upload spreadsheet
type LocalUploadResult struct {
	UploadID    string `json:"uploadId"`
	BureauFips  string `json:"bureauFips"`
	FileName    string `json:"fileName"`
	TotalRows   int    `json:"totalRows"`
	ValidRows   int    `json:"validRows"`
	InvalidRows int    `json:"invalidRows"`
}
