package authhdl

import (
	"fmt"

	authdto "lets_reconcile/internal/api/auth/dto"
	"lets_reconcile/internal/api/auth/models"
	authsvc "lets_reconcile/internal/api/auth/service"
	basehdl "lets_reconcile/internal/api/base/handler"
)

// RoleHandler xử lý các yêu cầu liên quan đến vai trò
type RoleHandler struct {
	*basehdl.BaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput]
	RoleService *authsvc.RoleService
}

// NewRoleHandler khởi tạo RoleHandler mới
func NewRoleHandler() (*RoleHandler, error) {
	service, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	hdl := &RoleHandler{RoleService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput](service)
	return hdl, nil
}
