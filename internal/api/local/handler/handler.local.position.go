// Package localhdl xử lý các request HTTP thuộc domain local.
package localhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "lets_reconcile/internal/api/base/handler"
	localdto "lets_reconcile/internal/api/local/dto"
	"lets_reconcile/internal/api/local/models"
	localsvc "lets_reconcile/internal/api/local/service"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
)

// LocalPositionHandler xử lý các yêu cầu liên quan đến dòng payroll
type LocalPositionHandler struct {
	*basehdl.BaseHandler[models.LocalPosition, localdto.LocalPositionCreateInput, localdto.LocalPositionUpdateInput]
	LocalPositionService *localsvc.LocalPositionService
}

// NewLocalPositionHandler khởi tạo LocalPositionHandler mới
func NewLocalPositionHandler() (*LocalPositionHandler, error) {
	service, err := localsvc.NewLocalPositionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create local position service: %v", err)
	}
	hdl := &LocalPositionHandler{LocalPositionService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.LocalPosition, localdto.LocalPositionCreateInput, localdto.LocalPositionUpdateInput](service)
	return hdl, nil
}

// HandleFindByFips lấy toàn bộ dòng payroll hiện tại của một bureau
func (h *LocalPositionHandler) HandleFindByFips(c fiber.Ctx) error {
	fips := c.Params("fips")
	if err := global.Validate.Var(fips, "required,fips"); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Mã FIPS không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	data, err := h.LocalPositionService.FindByFips(c.Context(), fips)
	h.HandleResponse(c, data, err)
	return nil
}
