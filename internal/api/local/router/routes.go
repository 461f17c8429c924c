// Package router đăng ký các route thuộc domain local (payroll agency nộp).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	localhdl "lets_reconcile/internal/api/local/handler"
	"lets_reconcile/internal/api/middleware"
	apirouter "lets_reconcile/internal/api/router"
)

// Register đăng ký tất cả route local lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	localPositionHandler, err := localhdl.NewLocalPositionHandler()
	if err != nil {
		return fmt.Errorf("create local position handler: %w", err)
	}

	localReadMiddleware := middleware.AuthMiddleware("LocalPosition.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/local/position", "GET", "/find-by-fips/:fips", []fiber.Handler{localReadMiddleware}, localPositionHandler.HandleFindByFips)
	r.RegisterCRUDRoutes(v1, "/local/position", localPositionHandler, apirouter.ReadWriteConfig, "LocalPosition")

	localUploadHandler, err := localhdl.NewLocalUploadHandler()
	if err != nil {
		return fmt.Errorf("create local upload handler: %w", err)
	}

	uploadInsertMiddleware := middleware.AuthMiddleware("LocalUpload.Insert")
	apirouter.RegisterRouteWithMiddleware(v1, "/local/upload", "POST", "/spreadsheet", []fiber.Handler{uploadInsertMiddleware}, localUploadHandler.HandleUpload)
	r.RegisterCRUDRoutes(v1, "/local/upload", localUploadHandler, apirouter.ReadOnlyConfig, "LocalUpload")

	return nil
}
