// Package localsvc chứa các service cho domain local (dữ liệu payroll agency nộp).
package localsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "lets_reconcile/internal/api/base/service"
	"lets_reconcile/internal/api/local/models"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
)

// LocalPositionService service quản lý các dòng payroll
type LocalPositionService struct {
	*basesvc.BaseServiceMongoImpl[models.LocalPosition]
}

// NewLocalPositionService tạo mới LocalPositionService
func NewLocalPositionService() (*LocalPositionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.LocalPositions)
	if !exist {
		return nil, fmt.Errorf("failed to get local_positions collection: %v", common.ErrNotFound)
	}
	return &LocalPositionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.LocalPosition](coll),
	}, nil
}

// FindByFips lấy toàn bộ dòng payroll hiện tại của một bureau.
// Bureau chưa nộp dữ liệu trả về slice rỗng, không phải lỗi.
func (s *LocalPositionService) FindByFips(ctx context.Context, fips string) ([]models.LocalPosition, error) {
	return s.Find(ctx, bson.M{"bureauFips": fips}, nil)
}

// ReplaceForFips thay toàn bộ dòng payroll của một bureau bằng batch mới.
// Xóa trước rồi insert; upload mới nhất là nguồn sự thật duy nhất cho bureau đó.
func (s *LocalPositionService) ReplaceForFips(ctx context.Context, fips string, rows []models.LocalPosition) error {
	deleted, err := s.DeleteMany(ctx, bson.M{"bureauFips": fips})
	if err != nil {
		return err
	}

	if len(rows) > 0 {
		if _, err := s.InsertMany(ctx, rows); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"bureau_fips": fips,
		"deleted":     deleted,
		"inserted":    len(rows),
	}).Info("ReplaceForFips: Thay dữ liệu payroll của bureau")
	return nil
}
