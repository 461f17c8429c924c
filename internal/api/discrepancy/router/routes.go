// Package router đăng ký các route thuộc domain discrepancy (báo cáo đối soát).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	discrepancyhdl "lets_reconcile/internal/api/discrepancy/handler"
	"lets_reconcile/internal/api/middleware"
	apirouter "lets_reconcile/internal/api/router"
)

// Register đăng ký tất cả route discrepancy lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := discrepancyhdl.NewDiscrepancyReportHandler()
	if err != nil {
		return fmt.Errorf("create discrepancy report handler: %w", err)
	}

	readMiddleware := middleware.AuthMiddleware("DiscrepancyReport.Read")
	computeMiddleware := middleware.AuthMiddleware("DiscrepancyReport.Compute")

	apirouter.RegisterRouteWithMiddleware(v1, "/discrepancy/report", "POST", "/compute", []fiber.Handler{computeMiddleware}, reportHandler.HandleCompute)
	apirouter.RegisterRouteWithMiddleware(v1, "/discrepancy/report", "GET", "/find-by-period/:fips/:month/:year", []fiber.Handler{readMiddleware}, reportHandler.HandleFindByPeriod)
	apirouter.RegisterRouteWithMiddleware(v1, "/discrepancy/report", "GET", "/drilldown/:fips/:category", []fiber.Handler{readMiddleware}, reportHandler.HandleDrilldown)
	apirouter.RegisterRouteWithMiddleware(v1, "/discrepancy/report", "GET", "/export/:fips/:month/:year", []fiber.Handler{readMiddleware}, reportHandler.HandleExport)
	r.RegisterCRUDRoutes(v1, "/discrepancy/report", reportHandler, apirouter.ReadOnlyConfig, "DiscrepancyReport")

	return nil
}
