// Package certificationhdl xử lý các request HTTP cho luồng chứng nhận.
package certificationhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "lets_reconcile/internal/api/base/handler"
	certificationdto "lets_reconcile/internal/api/certification/dto"
	"lets_reconcile/internal/api/certification/models"
	certificationsvc "lets_reconcile/internal/api/certification/service"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
)

// CertificationHandler xử lý các yêu cầu chứng nhận
type CertificationHandler struct {
	*basehdl.BaseHandler[models.Certification, certificationdto.CertificationCreateInput, certificationdto.CertificationUpdateInput]
	CertificationService *certificationsvc.CertificationService
}

// NewCertificationHandler khởi tạo CertificationHandler mới
func NewCertificationHandler() (*CertificationHandler, error) {
	service, err := certificationsvc.NewCertificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create certification service: %v", err)
	}
	hdl := &CertificationHandler{CertificationService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Certification, certificationdto.CertificationCreateInput, certificationdto.CertificationUpdateInput](service)
	return hdl, nil
}

// checkBureauScope chặn người dùng thuộc một bureau thao tác trên bureau khác
func checkBureauScope(c fiber.Ctx, fips string) error {
	userFips, _ := c.Locals("bureau_fips").(string)
	if userFips != "" && userFips != fips {
		return common.NewError(common.ErrCodeAuth, common.MsgForbidden, common.StatusForbidden,
			map[string]interface{}{"bureauFips": fips})
	}
	return nil
}

// HandleLoad lấy chứng nhận của một kỳ, trả về bản nháp mặc định nếu chưa có
func (h *CertificationHandler) HandleLoad(c fiber.Ctx) error {
	fips := c.Params("fips")
	if err := global.Validate.Var(fips, "required,fips"); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Mã FIPS không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Tháng báo cáo không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 2000 || year > 2100 {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Năm báo cáo không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	if err := checkBureauScope(c, fips); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.CertificationService.Load(c.Context(), fips, month, year, c.Query("localityName"))
	h.HandleResponse(c, data, err)
	return nil
}

// HandleSubmit bước ký của người lập báo cáo
func (h *CertificationHandler) HandleSubmit(c fiber.Ctx) error {
	input := new(certificationdto.CertificationSubmitInput)
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

	data, err := h.CertificationService.SubmitPreparer(c.Context(), input)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleDecide bước duyệt của giám đốc
func (h *CertificationHandler) HandleDecide(c fiber.Ctx) error {
	input := new(certificationdto.CertificationDecideInput)
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

	data, err := h.CertificationService.DirectorDecide(c.Context(), input)
	h.HandleResponse(c, data, err)
	return nil
}
