// Package letssvc chứa service cho domain lets (master data).
package letssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "lets_reconcile/internal/api/base/service"
	"lets_reconcile/internal/api/lets/models"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
)

// LetsPositionService service quản lý bản ghi vị trí LETS
type LetsPositionService struct {
	*basesvc.BaseServiceMongoImpl[models.LetsPosition]
}

// NewLetsPositionService tạo mới LetsPositionService
func NewLetsPositionService() (*LetsPositionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.LetsPositions)
	if !exist {
		return nil, fmt.Errorf("failed to get lets_positions collection: %v", common.ErrNotFound)
	}
	return &LetsPositionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.LetsPosition](coll),
	}, nil
}

// FindByFips lấy toàn bộ bản ghi LETS của một bureau.
// Bureau chưa có bản ghi nào trả về slice rỗng, không phải lỗi.
func (s *LetsPositionService) FindByFips(ctx context.Context, fips string) ([]models.LetsPosition, error) {
	return s.Find(ctx, bson.M{"bureauFips": fips}, nil)
}
