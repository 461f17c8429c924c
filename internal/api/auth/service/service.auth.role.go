package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"lets_reconcile/internal/api/auth/models"
	basesvc "lets_reconcile/internal/api/base/service"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
)

// RoleService service quản lý vai trò
type RoleService struct {
	*basesvc.BaseServiceMongoImpl[models.Role]
}

// NewRoleService tạo mới RoleService
func NewRoleService() (*RoleService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}
	return &RoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Role](coll),
	}, nil
}

// FindByName tìm role theo tên
func (s *RoleService) FindByName(ctx context.Context, name string) (models.Role, error) {
	return s.FindOne(ctx, bson.M{"name": name}, nil)
}

// EnsureRole tạo role nếu chưa tồn tại, trả về role hiện có nếu đã có.
// Dùng khi seed dữ liệu khởi tạo.
func (s *RoleService) EnsureRole(ctx context.Context, role models.Role) (models.Role, error) {
	data := map[string]interface{}{
		"name":        role.Name,
		"describe":    role.Describe,
		"permissions": role.Permissions,
		"isSystem":    role.IsSystem,
	}
	return s.Upsert(ctx, bson.M{"name": role.Name}, data)
}
