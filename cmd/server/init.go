package main

import (
	"context"

	"github.com/sirupsen/logrus"

	authmodels "lets_reconcile/internal/api/auth/models"
	certificationmodels "lets_reconcile/internal/api/certification/models"
	discrepancymodels "lets_reconcile/internal/api/discrepancy/models"
	letsmodels "lets_reconcile/internal/api/lets/models"
	localmodels "lets_reconcile/internal/api/local/models"
	"lets_reconcile/config"
	"lets_reconcile/internal/database"
	"lets_reconcile/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo validator với các custom validator của hệ thống
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection từ tags trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Roles), authmodels.Role{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.LetsPositions), letsmodels.LetsPosition{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.LocalPositions), localmodels.LocalPosition{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.LocalUploads), localmodels.LocalUpload{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.DiscrepancyReports), discrepancymodels.DiscrepancyReport{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Certifications), certificationmodels.Certification{})

	// Các index compound không thể biểu diễn qua tag
	if err := database.CreateReconcileAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Warnf("Failed to create additional indexes: %v", err)
	}
	logrus.Info("Created indexes")
}
