package localsvc

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"lets_reconcile/internal/api/local/models"
	"lets_reconcile/internal/common"
)

// headerFieldMap ánh xạ tên cột đã chuẩn hóa sang setter trên LocalPosition.
// Chấp nhận một số biến thể tên cột thường gặp trong file payroll của agency.
var headerFieldMap = map[string]func(*models.LocalPosition, string){
	"payroll position number": func(p *models.LocalPosition, v string) { p.PayrollPositionNumber = v },
	"position number":         func(p *models.LocalPosition, v string) { p.PayrollPositionNumber = v },
	"job title":               func(p *models.LocalPosition, v string) { p.JobTitle = v },
	"state job title":         func(p *models.LocalPosition, v string) { p.StateJobTitle = v },
	"last name":               func(p *models.LocalPosition, v string) { p.EmployeeLastName = v },
	"employee last name":      func(p *models.LocalPosition, v string) { p.EmployeeLastName = v },
	"first name":              func(p *models.LocalPosition, v string) { p.EmployeeFirstName = v },
	"employee first name":     func(p *models.LocalPosition, v string) { p.EmployeeFirstName = v },
	"middle initial":          func(p *models.LocalPosition, v string) { p.EmployeeMiddleInitial = v },
	"mi":                      func(p *models.LocalPosition, v string) { p.EmployeeMiddleInitial = v },
	"salary":                  func(p *models.LocalPosition, v string) { p.Salary = v },
	"fte":                     func(p *models.LocalPosition, v string) { p.FTE = v },
	"reimbursement percentage":    func(p *models.LocalPosition, v string) { p.ReimbursementPercentage = v },
	"reimbursement %":             func(p *models.LocalPosition, v string) { p.ReimbursementPercentage = v },
	"reimbursement status code":   func(p *models.LocalPosition, v string) { p.ReimbursementStatusCode = v },
	"rsc":                         func(p *models.LocalPosition, v string) { p.ReimbursementStatusCode = v },
}

// normalizeHeader chuẩn hóa tên cột để so khớp
func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

// cellValue lấy giá trị cell theo index, trả về chuỗi rỗng nếu ngoài phạm vi
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseSpreadsheet đọc sheet đầu tiên của file xlsx thành danh sách LocalPosition.
// Dòng đầu tiên là header, ánh xạ theo headerFieldMap; cột không nhận ra bị bỏ qua.
// File không đọc được hoặc không có dòng dữ liệu trả về lỗi VAL_002,
// upload bị hủy và không dòng nào được xử lý.
func ParseSpreadsheet(fileBytes []byte, fips string) ([]models.LocalPosition, error) {
	file, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "File không phải định dạng bảng tính hợp lệ", common.StatusBadRequest, err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, common.NewError(common.ErrCodeValidationFormat, "File không có worksheet nào", common.StatusBadRequest, nil)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Không đọc được nội dung worksheet", common.StatusBadRequest, err)
	}
	if len(rows) < 2 {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Worksheet không có dòng dữ liệu nào", common.StatusBadRequest, nil)
	}

	// Ánh xạ index cột theo header
	setters := make(map[int]func(*models.LocalPosition, string))
	for idx, header := range rows[0] {
		if setter, ok := headerFieldMap[normalizeHeader(header)]; ok {
			setters[idx] = setter
		}
	}
	if len(setters) == 0 {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Không nhận ra cột nào trong header của worksheet", common.StatusBadRequest, nil)
	}

	positions := make([]models.LocalPosition, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// Bỏ qua dòng trống hoàn toàn
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		position := models.LocalPosition{BureauFips: fips}
		for idx, setter := range setters {
			setter(&position, cellValue(row, idx))
		}
		positions = append(positions, position)
	}

	return positions, nil
}
