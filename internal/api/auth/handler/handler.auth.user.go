// Package authhdl xử lý các request HTTP thuộc domain auth.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "lets_reconcile/internal/api/auth/dto"
	"lets_reconcile/internal/api/auth/models"
	authsvc "lets_reconcile/internal/api/auth/service"
	basehdl "lets_reconcile/internal/api/base/handler"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/utility"
)

// UserHandler xử lý các yêu cầu liên quan đến người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	UserService *authsvc.UserService
}

// NewUserHandler khởi tạo UserHandler mới
func NewUserHandler() (*UserHandler, error) {
	service, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	hdl := &UserHandler{UserService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](service)
	return hdl, nil
}

// HandleRegister tạo người dùng mới với mật khẩu đã băm
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	input := new(authdto.UserCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	data, err := h.UserService.Create(c.Context(), input)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleLogin đăng nhập bằng email và mật khẩu
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	input := new(authdto.UserLoginInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	data, err := h.UserService.Login(c.Context(), input)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleLogout đăng xuất thiết bị hiện tại
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		h.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	input := new(authdto.UserLogoutInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err := h.UserService.Logout(c.Context(), utility.String2ObjectID(userIDStr), input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleProfile trả về thông tin người dùng hiện tại
func (h *UserHandler) HandleProfile(c fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		h.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleChangePassword đổi mật khẩu của người dùng hiện tại
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		h.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	input := new(authdto.UserChangePasswordInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err := h.UserService.ChangePassword(c.Context(), utility.String2ObjectID(userIDStr), input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleSetRole gán role cho một người dùng
func (h *UserHandler) HandleSetRole(c fiber.Ctx) error {
	var input struct {
		UserID string `json:"userId" validate:"required,len=24"`
		RoleID string `json:"roleId" validate:"required,len=24"`
	}
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.UserService.SetRole(c.Context(), utility.String2ObjectID(input.UserID), utility.String2ObjectID(input.RoleID))
	h.HandleResponse(c, data, err)
	return nil
}
