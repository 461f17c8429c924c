package localsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "lets_reconcile/internal/api/base/service"
	"lets_reconcile/internal/api/local/models"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
)

// LocalUploadService service quản lý các batch upload spreadsheet
type LocalUploadService struct {
	*basesvc.BaseServiceMongoImpl[models.LocalUpload]
}

// NewLocalUploadService tạo mới LocalUploadService
func NewLocalUploadService() (*LocalUploadService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.LocalUploads)
	if !exist {
		return nil, fmt.Errorf("failed to get local_uploads collection: %v", common.ErrNotFound)
	}
	return &LocalUploadService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.LocalUpload](coll),
	}, nil
}

// FindUnprocessed lấy các batch upload chưa được worker xử lý, cũ nhất trước
func (s *LocalUploadService) FindUnprocessed(ctx context.Context, limit int64) ([]models.LocalUpload, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(limit)
	return s.Find(ctx, bson.M{"processed": false}, opts)
}

// MarkProcessed đánh dấu một batch upload đã được xử lý
func (s *LocalUploadService) MarkProcessed(ctx context.Context, id primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"processed": true},
	}
	_, err := s.UpdateById(ctx, id, updateData)
	return err
}
