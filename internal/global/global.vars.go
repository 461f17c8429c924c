package global

import (
	"lets_reconcile/config"
	"lets_reconcile/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users              string // Tên collection cho người dùng
	Roles              string // Tên collection cho vai trò
	LetsPositions      string // Tên collection cho vị trí từ hệ thống LETS (master)
	LocalPositions     string // Tên collection cho vị trí payroll của địa phương
	LocalUploads       string // Tên collection cho các đợt upload bảng lương
	DiscrepancyReports string // Tên collection cho báo cáo đối soát
	Certifications     string // Tên collection cho chứng nhận hàng tháng
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:              "users",
	Roles:              "roles",
	LetsPositions:      "lets_positions",
	LocalPositions:     "local_positions",
	LocalUploads:       "local_uploads",
	DiscrepancyReports: "discrepancy_reports",
	Certifications:     "certifications",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
