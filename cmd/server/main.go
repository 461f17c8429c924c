package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	discrepancysvc "lets_reconcile/internal/api/discrepancy/service"
	"lets_reconcile/internal/global"
	"lets_reconcile/internal/logger"
	"lets_reconcile/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	log := logger.GetAppLogger()

	// Đăng ký subscriber đánh dấu báo cáo cần tính lại khi dữ liệu nguồn đổi
	if err := discrepancysvc.RegisterStalenessHandler(); err != nil {
		log.Fatalf("Failed to register staleness handler: %v", err)
	}

	// Khởi tạo và chạy worker tính lại báo cáo (background)
	cfg := global.MongoDB_ServerConfig
	if cfg.RecomputeWorker_Enabled {
		recomputeWorker, err := worker.NewUploadRecomputeWorker(
			time.Duration(cfg.RecomputeWorker_Interval)*time.Second,
			cfg.RecomputeWorker_Batch,
		)
		if err != nil {
			log.WithError(err).Error("Failed to create recompute worker, continuing without it")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📊 [RECOMPUTE] Worker goroutine panic")
					}
				}()
				recomputeWorker.Start(ctx)
			}()

			log.Info("📊 [RECOMPUTE] Upload Recompute Worker started successfully")
		}
	} else {
		log.Info("📊 [RECOMPUTE] Upload Recompute Worker disabled by config")
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
