package discrepancysvc

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"lets_reconcile/internal/api/discrepancy/models"
)

// maxSheetNameLen giới hạn độ dài tên worksheet của định dạng xlsx
const maxSheetNameLen = 31

// sheetName cắt tên category về độ dài tối đa cho phép
func sheetName(name string) string {
	if len(name) > maxSheetNameLen {
		return name[:maxSheetNameLen]
	}
	return name
}

var letsSheetHeaders = []string{
	"Person Number", "First Name", "Last Name", "Middle Initial",
	"Employee Status", "Employee Salary", "Time Status Code",
	"State Position Number", "Local Position Number", "Deviation Code",
	"Assigned Time Percentage", "Reimbursement Status Code",
	"Last Rating Date", "Expected Job End Date", "Probation Expected End Date",
}

var localSheetHeaders = []string{
	"Payroll Position Number", "Job Title", "State Job Title",
	"Employee First Name", "Employee Last Name", "Middle Initial",
	"Salary", "FTE", "Reimbursement Percentage", "Reimbursement Status Code",
}

// writeRow ghi một dòng giá trị bắt đầu từ cột A của dòng rowIdx (1-based)
func writeRow(f *excelize.File, sheet string, rowIdx int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toInterfaces(values []string) []interface{} {
	result := make([]interface{}, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}

// ExportWorkbook render báo cáo và index drill-down thành workbook xlsx.
// Sheet đầu là bảng tổng hợp (category, count) theo thứ tự catalogue,
// mỗi category có bản ghi đóng góp nhận thêm một sheet chi tiết.
func ExportWorkbook(report models.DiscrepancyReport, index []CategoryRecords) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	f.SetSheetName(f.GetSheetName(0), summary)

	if err := writeRow(f, summary, 1, []interface{}{"Category", "Count"}); err != nil {
		return nil, fmt.Errorf("ghi header tổng hợp thất bại: %w", err)
	}
	for i, row := range ToRows(report) {
		if err := writeRow(f, summary, i+2, []interface{}{row.Name, row.Count}); err != nil {
			return nil, fmt.Errorf("ghi dòng tổng hợp thất bại: %w", err)
		}
	}

	for _, entry := range index {
		if len(entry.LetsRecords) == 0 && len(entry.LocalRecords) == 0 {
			continue
		}
		name := sheetName(entry.Name)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("tạo sheet %s thất bại: %w", name, err)
		}

		if len(entry.LetsRecords) > 0 {
			if err := writeRow(f, name, 1, toInterfaces(letsSheetHeaders)); err != nil {
				return nil, err
			}
			for i, record := range entry.LetsRecords {
				values := []string{
					record.PersonNumber, record.FirstName, record.LastName, record.MiddleInitial,
					record.EmployeeStatus, record.EmployeeSalary, record.TimeStatusCode,
					record.StatePositionNumber, record.LocalPositionNumber, record.DeviationCode,
					record.AssignedTimePercentage, record.ReimbursementStatusCode,
					record.LastRatingDate, record.ExpectedJobEndDate, record.ProbationExpectedEndDate,
				}
				if err := writeRow(f, name, i+2, toInterfaces(values)); err != nil {
					return nil, err
				}
			}
		} else {
			if err := writeRow(f, name, 1, toInterfaces(localSheetHeaders)); err != nil {
				return nil, err
			}
			for i, row := range entry.LocalRecords {
				values := []string{
					row.PayrollPositionNumber, row.JobTitle, row.StateJobTitle,
					row.EmployeeFirstName, row.EmployeeLastName, row.EmployeeMiddleInitial,
					row.Salary, row.FTE, row.ReimbursementPercentage, row.ReimbursementStatusCode,
				}
				if err := writeRow(f, name, i+2, toInterfaces(values)); err != nil {
					return nil, err
				}
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook thất bại: %w", err)
	}
	return buffer.Bytes(), nil
}
