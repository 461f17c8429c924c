// Package letshdl xử lý các request HTTP thuộc domain lets.
package letshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "lets_reconcile/internal/api/base/handler"
	letsdto "lets_reconcile/internal/api/lets/dto"
	"lets_reconcile/internal/api/lets/models"
	letssvc "lets_reconcile/internal/api/lets/service"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
)

// LetsPositionHandler xử lý các yêu cầu liên quan đến bản ghi LETS
type LetsPositionHandler struct {
	*basehdl.BaseHandler[models.LetsPosition, letsdto.LetsPositionCreateInput, letsdto.LetsPositionUpdateInput]
	LetsPositionService *letssvc.LetsPositionService
}

// NewLetsPositionHandler khởi tạo LetsPositionHandler mới
func NewLetsPositionHandler() (*LetsPositionHandler, error) {
	service, err := letssvc.NewLetsPositionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create lets position service: %v", err)
	}
	hdl := &LetsPositionHandler{LetsPositionService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.LetsPosition, letsdto.LetsPositionCreateInput, letsdto.LetsPositionUpdateInput](service)
	return hdl, nil
}

// HandleFindByFips lấy toàn bộ bản ghi LETS của một bureau theo FIPS trên URI
func (h *LetsPositionHandler) HandleFindByFips(c fiber.Ctx) error {
	fips := c.Params("fips")
	if err := global.Validate.Var(fips, "required,fips"); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Mã FIPS không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	data, err := h.LetsPositionService.FindByFips(c.Context(), fips)
	h.HandleResponse(c, data, err)
	return nil
}
