// Package router đăng ký các route thuộc domain certification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	certificationhdl "lets_reconcile/internal/api/certification/handler"
	"lets_reconcile/internal/api/middleware"
	apirouter "lets_reconcile/internal/api/router"
)

// Register đăng ký tất cả route certification lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	certificationHandler, err := certificationhdl.NewCertificationHandler()
	if err != nil {
		return fmt.Errorf("create certification handler: %w", err)
	}

	readMiddleware := middleware.AuthMiddleware("Certification.Read")
	submitMiddleware := middleware.AuthMiddleware("Certification.Submit")
	decideMiddleware := middleware.AuthMiddleware("Certification.Decide")

	apirouter.RegisterRouteWithMiddleware(v1, "/certification", "GET", "/load/:fips/:month/:year", []fiber.Handler{readMiddleware}, certificationHandler.HandleLoad)
	apirouter.RegisterRouteWithMiddleware(v1, "/certification", "POST", "/submit", []fiber.Handler{submitMiddleware}, certificationHandler.HandleSubmit)
	apirouter.RegisterRouteWithMiddleware(v1, "/certification", "POST", "/decide", []fiber.Handler{decideMiddleware}, certificationHandler.HandleDecide)
	r.RegisterCRUDRoutes(v1, "/certification", certificationHandler, apirouter.ReadOnlyConfig, "Certification")

	return nil
}
