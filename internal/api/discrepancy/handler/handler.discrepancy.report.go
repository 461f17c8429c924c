// Package discrepancyhdl xử lý các request HTTP cho báo cáo đối soát.
package discrepancyhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "lets_reconcile/internal/api/base/handler"
	discrepancydto "lets_reconcile/internal/api/discrepancy/dto"
	"lets_reconcile/internal/api/discrepancy/models"
	discrepancysvc "lets_reconcile/internal/api/discrepancy/service"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
)

// DiscrepancyReportHandler xử lý các yêu cầu báo cáo đối soát
type DiscrepancyReportHandler struct {
	*basehdl.BaseHandler[models.DiscrepancyReport, discrepancydto.DiscrepancyReportCreateInput, discrepancydto.DiscrepancyReportUpdateInput]
	ReportService *discrepancysvc.DiscrepancyReportService
}

// NewDiscrepancyReportHandler khởi tạo DiscrepancyReportHandler mới
func NewDiscrepancyReportHandler() (*DiscrepancyReportHandler, error) {
	service, err := discrepancysvc.NewDiscrepancyReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create discrepancy report service: %v", err)
	}
	hdl := &DiscrepancyReportHandler{ReportService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.DiscrepancyReport, discrepancydto.DiscrepancyReportCreateInput, discrepancydto.DiscrepancyReportUpdateInput](service)
	return hdl, nil
}

// checkBureauScope chặn người dùng thuộc một bureau truy cập dữ liệu bureau khác.
// Người dùng cấp state (bureau_fips rỗng) truy cập được tất cả.
func checkBureauScope(c fiber.Ctx, fips string) error {
	userFips, _ := c.Locals("bureau_fips").(string)
	if userFips != "" && userFips != fips {
		return common.NewError(common.ErrCodeAuth, common.MsgForbidden, common.StatusForbidden,
			map[string]interface{}{"bureauFips": fips})
	}
	return nil
}

// parsePeriodParams đọc khóa kỳ (fips, month, year) từ URI
func parsePeriodParams(c fiber.Ctx) (string, int, int, error) {
	fips := c.Params("fips")
	if err := global.Validate.Var(fips, "required,fips"); err != nil {
		return "", 0, 0, common.NewError(common.ErrCodeValidationInput, "Mã FIPS không hợp lệ", common.StatusBadRequest, err)
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return "", 0, 0, common.NewError(common.ErrCodeValidationInput, "Tháng báo cáo không hợp lệ", common.StatusBadRequest, nil)
	}
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 2000 || year > 2100 {
		return "", 0, 0, common.NewError(common.ErrCodeValidationInput, "Năm báo cáo không hợp lệ", common.StatusBadRequest, nil)
	}
	return fips, month, year, nil
}

// HandleCompute tính lại báo cáo của một kỳ và trả về kết quả vừa lưu
func (h *DiscrepancyReportHandler) HandleCompute(c fiber.Ctx) error {
	input := new(discrepancydto.DiscrepancyPeriodInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := checkBureauScope(c, input.BureauFips); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.ReportService.ComputeForPeriod(c.Context(), input.BureauFips, input.Month, input.Year)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleFindByPeriod lấy báo cáo đã lưu của một kỳ
func (h *DiscrepancyReportHandler) HandleFindByPeriod(c fiber.Ctx) error {
	fips, month, year, err := parsePeriodParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := checkBureauScope(c, fips); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.ReportService.FindByPeriod(c.Context(), fips, month, year)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleDrilldown liệt kê các bản ghi đóng góp vào một category của một bureau
func (h *DiscrepancyReportHandler) HandleDrilldown(c fiber.Ctx) error {
	fips := c.Params("fips")
	if err := global.Validate.Var(fips, "required,fips"); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Mã FIPS không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	category := c.Params("category")
	if category == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tên category", common.StatusBadRequest, nil))
		return nil
	}
	if err := checkBureauScope(c, fips); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.ReportService.Drilldown(c.Context(), fips, category)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleExport trả về workbook xlsx của báo cáo một kỳ
func (h *DiscrepancyReportHandler) HandleExport(c fiber.Ctx) error {
	fips, month, year, err := parsePeriodParams(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := checkBureauScope(c, fips); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	content, err := h.ReportService.ExportForPeriod(c.Context(), fips, month, year)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	fileName := fmt.Sprintf("discrepancy_report_%s_%02d_%d.xlsx", fips, month, year)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Send(content)
}
