package discrepancysvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "lets_reconcile/internal/api/base/service"
	"lets_reconcile/internal/api/discrepancy/models"
	letssvc "lets_reconcile/internal/api/lets/service"
	localmodels "lets_reconcile/internal/api/local/models"
	localsvc "lets_reconcile/internal/api/local/service"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
	"lets_reconcile/internal/utility"
)

// DiscrepancyReportService service quản lý báo cáo đối soát theo kỳ
type DiscrepancyReportService struct {
	*basesvc.BaseServiceMongoImpl[models.DiscrepancyReport]
	LetsPositionService  *letssvc.LetsPositionService
	LocalPositionService *localsvc.LocalPositionService
}

// NewDiscrepancyReportService tạo mới DiscrepancyReportService
func NewDiscrepancyReportService() (*DiscrepancyReportService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DiscrepancyReports)
	if !exist {
		return nil, fmt.Errorf("failed to get discrepancy_reports collection: %v", common.ErrNotFound)
	}

	letsSvc, err := letssvc.NewLetsPositionService()
	if err != nil {
		return nil, err
	}
	localSvc, err := localsvc.NewLocalPositionService()
	if err != nil {
		return nil, err
	}

	return &DiscrepancyReportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DiscrepancyReport](coll),
		LetsPositionService:  letsSvc,
		LocalPositionService: localSvc,
	}, nil
}

// periodFilter filter theo khóa kỳ báo cáo (fips, month, year)
func periodFilter(fips string, month, year int) bson.M {
	return bson.M{"bureauFips": fips, "month": month, "year": year}
}

// ComputeForPeriod tính lại báo cáo của một bureau cho một kỳ và lưu đè
// theo khóa kỳ. Tính lại trên cùng dữ liệu cho cùng kết quả.
func (s *DiscrepancyReportService) ComputeForPeriod(ctx context.Context, fips string, month, year int) (models.DiscrepancyReport, error) {
	var zero models.DiscrepancyReport

	master, err := s.LetsPositionService.FindByFips(ctx, fips)
	if err != nil {
		return zero, err
	}
	rows, err := s.LocalPositionService.FindByFips(ctx, fips)
	if err != nil {
		return zero, err
	}
	valid, invalid := localmodels.SplitValid(rows)

	report := ComputeReport(valid, master, time.Now())
	report.BureauFips = fips
	report.Month = month
	report.Year = year
	report.Stale = false

	saved, err := s.upsertForPeriod(ctx, report)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"bureau_fips":  fips,
		"month":        month,
		"year":         year,
		"lets_records": len(master),
		"local_valid":  len(valid),
		"local_bad":    len(invalid),
	}).Info("ComputeForPeriod: Đã tính lại báo cáo đối soát")
	return saved, nil
}

// upsertForPeriod lưu báo cáo theo khóa kỳ, giữ nguyên _id của document cũ
func (s *DiscrepancyReportService) upsertForPeriod(ctx context.Context, report models.DiscrepancyReport) (models.DiscrepancyReport, error) {
	data, err := utility.ToMap(report)
	if err != nil {
		return models.DiscrepancyReport{}, common.ErrInvalidFormat
	}
	delete(data, "id")
	delete(data, "_id")
	return s.Upsert(ctx, periodFilter(report.BureauFips, report.Month, report.Year), data)
}

// FindByPeriod lấy báo cáo đã lưu của một kỳ, common.ErrNotFound nếu chưa tính
func (s *DiscrepancyReportService) FindByPeriod(ctx context.Context, fips string, month, year int) (models.DiscrepancyReport, error) {
	return s.FindOne(ctx, periodFilter(fips, month, year), nil)
}

// MarkStaleForFips đánh dấu mọi báo cáo của một bureau là cũ khi dữ liệu
// nguồn thay đổi. Worker định kỳ sẽ tính lại.
func (s *DiscrepancyReportService) MarkStaleForFips(ctx context.Context, fips string) error {
	count, err := s.UpdateMany(ctx,
		bson.M{"bureauFips": fips, "stale": false},
		&basesvc.UpdateData{Set: map[string]interface{}{"stale": true}},
		nil)
	if err != nil {
		return err
	}
	if count > 0 {
		logrus.WithFields(logrus.Fields{
			"bureau_fips": fips,
			"marked":      count,
		}).Info("MarkStaleForFips: Báo cáo cần tính lại")
	}
	return nil
}

// FindStale liệt kê các báo cáo đang cũ, giới hạn theo batch
func (s *DiscrepancyReportService) FindStale(ctx context.Context, limit int64) ([]models.DiscrepancyReport, error) {
	opts := options.Find().SetSort(bson.M{"updatedAt": 1}).SetLimit(limit)
	return s.Find(ctx, bson.M{"stale": true}, opts)
}

// Drilldown liệt kê các bản ghi đóng góp vào một category của một bureau,
// tính trực tiếp từ dữ liệu nguồn hiện tại bằng cùng predicate với counter
func (s *DiscrepancyReportService) Drilldown(ctx context.Context, fips, category string) (CategoryRecords, error) {
	master, err := s.LetsPositionService.FindByFips(ctx, fips)
	if err != nil {
		return CategoryRecords{}, err
	}
	rows, err := s.LocalPositionService.FindByFips(ctx, fips)
	if err != nil {
		return CategoryRecords{}, err
	}
	valid, _ := localmodels.SplitValid(rows)

	entry, ok := CategoryDrilldown(category, valid, master, time.Now())
	if !ok {
		return CategoryRecords{}, common.NewError(common.ErrCodeValidationInput,
			"Category không tồn tại trong catalogue", common.StatusBadRequest,
			map[string]interface{}{"category": category})
	}
	return entry, nil
}

// ExportForPeriod render báo cáo của một kỳ thành workbook xlsx,
// kèm sheet chi tiết cho từng category có bản ghi đóng góp
func (s *DiscrepancyReportService) ExportForPeriod(ctx context.Context, fips string, month, year int) ([]byte, error) {
	report, err := s.FindByPeriod(ctx, fips, month, year)
	if err != nil {
		return nil, err
	}

	master, err := s.LetsPositionService.FindByFips(ctx, fips)
	if err != nil {
		return nil, err
	}
	rows, err := s.LocalPositionService.FindByFips(ctx, fips)
	if err != nil {
		return nil, err
	}
	valid, _ := localmodels.SplitValid(rows)

	index := BuildIndex(valid, master, time.Now())
	return ExportWorkbook(report, index)
}
