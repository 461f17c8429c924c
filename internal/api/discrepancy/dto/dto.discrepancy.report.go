// Package discrepancydto chứa các cấu trúc input cho domain discrepancy.
package discrepancydto

// DiscrepancyPeriodInput khóa kỳ báo cáo: bureau + tháng + năm
type DiscrepancyPeriodInput struct {
	BureauFips string `json:"bureauFips" validate:"required,fips"`
	Month      int    `json:"month" validate:"report_month"`
	Year       int    `json:"year" validate:"min=2000,max=2100"`
}

// DiscrepancyReportCreateInput input tạo báo cáo thủ công qua CRUD.
// Bình thường báo cáo sinh ra từ compute, input này phục vụ import/sửa tay.
type DiscrepancyReportCreateInput struct {
	BureauFips string `json:"bureauFips" validate:"required,fips"`
	Month      int    `json:"month" validate:"report_month"`
	Year       int    `json:"year" validate:"min=2000,max=2100"`
}

// DiscrepancyReportUpdateInput input cập nhật báo cáo qua CRUD
type DiscrepancyReportUpdateInput struct {
	Stale *bool `json:"stale,omitempty"`
}
