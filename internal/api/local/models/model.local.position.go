// Package models - bản ghi payroll do agency nộp lên (local data).
package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalPosition là một dòng trong spreadsheet payroll của agency.
// Lương và FTE giữ nguyên dạng chuỗi như spreadsheet nguồn.
type LocalPosition struct {
	ID                      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UploadID                primitive.ObjectID `json:"uploadId" bson:"uploadId,omitempty" index:"single:1"`
	BureauFips              string             `json:"bureauFips" bson:"bureauFips" index:"single:1" validate:"omitempty,fips"`
	PayrollPositionNumber   string             `json:"payrollPositionNumber" bson:"payrollPositionNumber,omitempty"`
	JobTitle                string             `json:"jobTitle" bson:"jobTitle,omitempty"`
	StateJobTitle           string             `json:"stateJobTitle" bson:"stateJobTitle,omitempty"`
	EmployeeLastName        string             `json:"employeeLastName" bson:"employeeLastName,omitempty"`
	EmployeeFirstName       string             `json:"employeeFirstName" bson:"employeeFirstName,omitempty"`
	EmployeeMiddleInitial   string             `json:"employeeMiddleInitial" bson:"employeeMiddleInitial,omitempty"`
	Salary                  string             `json:"salary" bson:"salary,omitempty"`
	FTE                     string             `json:"fte" bson:"fte,omitempty"`
	ReimbursementPercentage string             `json:"reimbursementPercentage" bson:"reimbursementPercentage,omitempty"`
	ReimbursementStatusCode string             `json:"reimbursementStatusCode" bson:"reimbursementStatusCode,omitempty"`
	CreatedAt               int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt               int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsValid kiểm tra dòng có đủ ba trường bắt buộc hay không.
// Một dòng hợp lệ phải có payrollPositionNumber, jobTitle và salary đều không rỗng.
func (p *LocalPosition) IsValid() bool {
	return strings.TrimSpace(p.PayrollPositionNumber) != "" &&
		strings.TrimSpace(p.JobTitle) != "" &&
		strings.TrimSpace(p.Salary) != ""
}

// SplitValid chia danh sách dòng thành hợp lệ và không hợp lệ, giữ nguyên thứ tự.
// Hàm total: dòng sai định dạng chỉ bị phân loại invalid, không bao giờ lỗi.
func SplitValid(rows []LocalPosition) (valid []LocalPosition, invalid []LocalPosition) {
	valid = make([]LocalPosition, 0, len(rows))
	invalid = make([]LocalPosition, 0)
	for _, row := range rows {
		if row.IsValid() {
			valid = append(valid, row)
		} else {
			invalid = append(invalid, row)
		}
	}
	return valid, invalid
}
