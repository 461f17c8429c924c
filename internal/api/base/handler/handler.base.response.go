package basehdl

import (
	"errors"

	"lets_reconcile/internal/common"
	"lets_reconcile/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse ghi response JSON với charset utf-8
func JSONResponse(c fiber.Ctx, statusCode int, payload interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(payload)
}

// SafeHandler bọc một handler với recover để tránh panic làm sập server.
// Panic được log và trả về lỗi hệ thống chuẩn cho client.
func SafeHandler(fn func(c fiber.Ctx) error) fiber.Handler {
	return func(c fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithField("panic", r).Error("Panic trong handler")
				_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
					"code":    common.ErrCodeInternalServer.Code,
					"message": common.MsgInternalError,
					"status":  "error",
				})
			}
		}()
		return fn(c)
	}
}

// HandleResponse xử lý response chuẩn cho tất cả các handler.
// Lỗi *common.Error được trả về với code và status code riêng,
// các lỗi khác được bọc thành lỗi hệ thống.
//
// Format response thành công:
//
//	{"code": 200, "message": "Thao tác thành công", "data": ..., "status": "success"}
//
// Format response lỗi:
//
//	{"code": "VAL_001", "message": "...", "details": ..., "status": "error"}
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			payload := fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"status":  "error",
			}
			if customErr.Details != nil {
				payload["details"] = customErr.Details
			}
			_ = JSONResponse(c, customErr.StatusCode, payload)
			return
		}

		logger.GetErrorLogger().WithError(err).Error("Lỗi không xác định trong handler")
		_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": common.MsgInternalError,
			"status":  "error",
		})
		return
	}

	_ = JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
