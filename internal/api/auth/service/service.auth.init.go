package authsvc

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authdto "lets_reconcile/internal/api/auth/dto"
	"lets_reconcile/internal/api/auth/models"
	"lets_reconcile/internal/common"
)

// InitService khởi tạo dữ liệu mặc định: các vai trò hệ thống và user admin
type InitService struct {
	UserService *UserService
	RoleService *RoleService
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, err
	}
	roleService, err := NewRoleService()
	if err != nil {
		return nil, err
	}
	return &InitService{UserService: userService, RoleService: roleService}, nil
}

// systemRoles các vai trò mặc định của hệ thống. Administrator có quyền
// wildcard, các vai trò còn lại theo đúng luồng nghiệp vụ đối soát.
var systemRoles = []models.Role{
	{
		Name:        "Administrator",
		Describe:    "Quản trị toàn hệ thống",
		Permissions: []string{"*"},
		IsSystem:    true,
	},
	{
		Name:     "Preparer",
		Describe: "Admin của bureau: upload payroll, xem báo cáo, ký chứng nhận",
		Permissions: []string{
			"LetsPosition.Read",
			"LocalPosition.Read", "LocalPosition.Insert", "LocalPosition.Update", "LocalPosition.Delete",
			"LocalUpload.Read", "LocalUpload.Insert",
			"DiscrepancyReport.Read", "DiscrepancyReport.Compute",
			"Certification.Read", "Certification.Submit",
		},
		IsSystem: true,
	},
	{
		Name:     "Director",
		Describe: "Giám đốc bureau: xem báo cáo và duyệt chứng nhận",
		Permissions: []string{
			"LetsPosition.Read",
			"LocalPosition.Read",
			"LocalUpload.Read",
			"DiscrepancyReport.Read",
			"Certification.Read", "Certification.Decide",
		},
		IsSystem: true,
	},
	{
		Name:     "HR",
		Describe: "Cán bộ nhân sự cấp state: xem dữ liệu và báo cáo mọi bureau",
		Permissions: []string{
			"LetsPosition.Read", "LetsPosition.Insert", "LetsPosition.Update", "LetsPosition.Delete",
			"LocalPosition.Read",
			"LocalUpload.Read",
			"DiscrepancyReport.Read", "DiscrepancyReport.Compute",
			"Certification.Read",
		},
		IsSystem: true,
	},
}

// EnsureSystemRoles tạo hoặc cập nhật các vai trò hệ thống, trả về map
// theo tên vai trò
func (s *InitService) EnsureSystemRoles(ctx context.Context) (map[string]models.Role, error) {
	result := make(map[string]models.Role, len(systemRoles))
	for _, role := range systemRoles {
		saved, err := s.RoleService.EnsureRole(ctx, role)
		if err != nil {
			return nil, err
		}
		result[saved.Name] = saved
		logrus.WithFields(logrus.Fields{
			"role":        saved.Name,
			"permissions": len(saved.Permissions),
		}).Info("EnsureSystemRoles: Vai trò hệ thống sẵn sàng")
	}
	return result, nil
}

// EnsureAdminUser tạo user admin mặc định nếu chưa có và gán vai trò
// Administrator. Email đã tồn tại thì chỉ đảm bảo vai trò.
func (s *InitService) EnsureAdminUser(ctx context.Context, email, password string, adminRole models.Role) error {
	existing, err := s.UserService.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	if err == nil {
		if existing.RoleID.IsZero() {
			if _, err := s.UserService.SetRole(ctx, existing.ID, adminRole.ID); err != nil {
				return err
			}
		}
		logrus.WithField("email", email).Info("EnsureAdminUser: User admin đã tồn tại")
		return nil
	}

	user, err := s.UserService.Create(ctx, &authdto.UserCreateInput{
		Name:     "System Administrator",
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	if _, err := s.UserService.SetRole(ctx, user.ID, adminRole.ID); err != nil {
		return err
	}

	logrus.WithField("email", email).Info("EnsureAdminUser: Đã tạo user admin mặc định")
	return nil
}
