// Package router đăng ký các route thuộc domain lets (master data).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	letshdl "lets_reconcile/internal/api/lets/handler"
	"lets_reconcile/internal/api/middleware"
	apirouter "lets_reconcile/internal/api/router"
)

// Register đăng ký tất cả route lets lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	letsPositionHandler, err := letshdl.NewLetsPositionHandler()
	if err != nil {
		return fmt.Errorf("create lets position handler: %w", err)
	}

	letsReadMiddleware := middleware.AuthMiddleware("LetsPosition.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/lets/position", "GET", "/find-by-fips/:fips", []fiber.Handler{letsReadMiddleware}, letsPositionHandler.HandleFindByFips)
	r.RegisterCRUDRoutes(v1, "/lets/position", letsPositionHandler, apirouter.ReadWriteConfig, "LetsPosition")

	return nil
}
