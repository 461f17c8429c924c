package main

import (
	"context"

	authsvc "lets_reconcile/internal/api/auth/service"
	"lets_reconcile/internal/global"
	"lets_reconcile/internal/logger"
)

// InitDefaultData seed các vai trò hệ thống và user admin mặc định.
// User admin chỉ được tạo khi InitMode bật và có cấu hình mật khẩu.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := authsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	ctx := context.Background()

	// 1. Đảm bảo các vai trò hệ thống (Administrator, Preparer, Director, HR)
	log.Info("🔄 [INIT] Step 1: Ensuring system roles...")
	roles, err := initService.EnsureSystemRoles(ctx)
	if err != nil {
		log.Fatalf("Failed to ensure system roles: %v", err)
	}
	log.Info("✅ [INIT] Step 1: System roles ensured")

	// 2. Tạo user admin mặc định khi chạy ở chế độ khởi tạo
	cfg := global.MongoDB_ServerConfig
	if cfg.InitMode && cfg.Admin_Password != "" {
		log.Info("🔄 [INIT] Step 2: Ensuring default admin user...")
		adminRole := roles["Administrator"]
		if err := initService.EnsureAdminUser(ctx, cfg.Admin_Email, cfg.Admin_Password, adminRole); err != nil {
			log.Warnf("Failed to ensure admin user: %v", err)
		} else {
			log.Info("✅ [INIT] Step 2: Admin user ensured")
		}
	} else {
		log.Info("[INIT] InitMode off or no admin password configured, skipping admin user seed")
	}

	log.Info("✅ [INIT] InitDefaultData completed")
}
