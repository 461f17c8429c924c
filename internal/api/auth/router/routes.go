// Package router đăng ký các route thuộc domain auth: User, Role.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "lets_reconcile/internal/api/auth/handler"
	"lets_reconcile/internal/api/middleware"
	apirouter "lets_reconcile/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("create user handler: %w", err)
	}

	// Các route không cần xác thực
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", nil, userHandler.HandleLogin)

	// Các route chỉ cần đăng nhập
	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/change-password", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangePassword)

	// Quản lý người dùng (cần quyền User.*)
	userInsertMiddleware := middleware.AuthMiddleware("User.Insert")
	userUpdateMiddleware := middleware.AuthMiddleware("User.Update")
	apirouter.RegisterRouteWithMiddleware(v1, "/auth/user", "POST", "/register", []fiber.Handler{userInsertMiddleware}, userHandler.HandleRegister)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth/user", "PUT", "/set-role", []fiber.Handler{userUpdateMiddleware}, userHandler.HandleSetRole)
	r.RegisterCRUDRoutes(v1, "/auth/user", userHandler, apirouter.ReadOnlyConfig, "User")

	roleHandler, err := authhdl.NewRoleHandler()
	if err != nil {
		return fmt.Errorf("create role handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/auth/role", roleHandler, apirouter.ReadWriteConfig, "Role")

	return nil
}
