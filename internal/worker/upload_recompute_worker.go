package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	discrepancysvc "lets_reconcile/internal/api/discrepancy/service"
	localsvc "lets_reconcile/internal/api/local/service"
	"lets_reconcile/internal/logger"
)

// UploadRecomputeWorker worker tính lại báo cáo đối soát: đọc các đợt upload
// chưa xử lý (processed = false) và các báo cáo bị đánh dấu stale, gọi engine
// tính lại rồi đánh dấu đã xử lý.
// Chạy định kỳ, mỗi lần xử lý tối đa batchSize bản ghi.
type UploadRecomputeWorker struct {
	uploadService *localsvc.LocalUploadService
	reportService *discrepancysvc.DiscrepancyReportService
	interval      time.Duration // Khoảng thời gian giữa các lần chạy
	batchSize     int           // Số bản ghi tối đa mỗi lần
}

// NewUploadRecomputeWorker tạo mới UploadRecomputeWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (tối thiểu 10 giây)
//   - batchSize: Số bản ghi tối đa mỗi lần (mặc định: 20)
func NewUploadRecomputeWorker(interval time.Duration, batchSize int) (*UploadRecomputeWorker, error) {
	uploadService, err := localsvc.NewLocalUploadService()
	if err != nil {
		return nil, err
	}
	reportService, err := discrepancysvc.NewDiscrepancyReportService()
	if err != nil {
		return nil, err
	}
	if interval < 10*time.Second {
		interval = time.Minute
	}
	if batchSize <= 0 {
		batchSize = 20
	}
	return &UploadRecomputeWorker{
		uploadService: uploadService,
		reportService: reportService,
		interval:      interval,
		batchSize:     batchSize,
	}, nil
}

// Start chạy worker trong vòng lặp: mỗi interval xử lý batch upload chưa
// xử lý rồi đến các báo cáo stale.
func (w *UploadRecomputeWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
	}).Info("📊 [RECOMPUTE] Starting Upload Recompute Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📊 [RECOMPUTE] Upload Recompute Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📊 [RECOMPUTE] Panic khi tính lại báo cáo, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()
				w.processUploads(ctx, log)
				w.processStaleReports(ctx, log)
			}()
		}
	}
}

// processUploads tính báo cáo cho các đợt upload chưa xử lý
func (w *UploadRecomputeWorker) processUploads(ctx context.Context, log *logrus.Logger) {
	list, err := w.uploadService.FindUnprocessed(ctx, int64(w.batchSize))
	if err != nil {
		log.WithError(err).Error("📊 [RECOMPUTE] Lỗi lấy danh sách upload chưa xử lý")
		return
	}
	if len(list) == 0 {
		return
	}

	processed := 0
	for _, upload := range list {
		if _, err := w.reportService.ComputeForPeriod(ctx, upload.BureauFips, upload.Month, upload.Year); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"bureauFips": upload.BureauFips,
				"month":      upload.Month,
				"year":       upload.Year,
			}).Warn("📊 [RECOMPUTE] Compute thất bại, bỏ qua và sẽ thử lại lần sau")
			continue
		}
		if err := w.uploadService.MarkProcessed(ctx, upload.ID); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"uploadId": upload.ID.Hex(),
			}).Warn("📊 [RECOMPUTE] MarkProcessed thất bại")
			continue
		}
		processed++
	}

	if processed > 0 {
		log.WithFields(map[string]interface{}{
			"processed": processed,
			"total":     len(list),
		}).Info("📊 [RECOMPUTE] Đã xử lý các đợt upload")
	}
}

// processStaleReports tính lại các báo cáo bị đánh dấu stale
func (w *UploadRecomputeWorker) processStaleReports(ctx context.Context, log *logrus.Logger) {
	list, err := w.reportService.FindStale(ctx, int64(w.batchSize))
	if err != nil {
		log.WithError(err).Error("📊 [RECOMPUTE] Lỗi lấy danh sách báo cáo stale")
		return
	}
	if len(list) == 0 {
		return
	}

	recomputed := 0
	for _, report := range list {
		if _, err := w.reportService.ComputeForPeriod(ctx, report.BureauFips, report.Month, report.Year); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"bureauFips": report.BureauFips,
				"month":      report.Month,
				"year":       report.Year,
			}).Warn("📊 [RECOMPUTE] Tính lại báo cáo stale thất bại, sẽ thử lại lần sau")
			continue
		}
		recomputed++
	}

	if recomputed > 0 {
		log.WithFields(map[string]interface{}{
			"recomputed": recomputed,
			"total":      len(list),
		}).Info("📊 [RECOMPUTE] Đã tính lại các báo cáo stale")
	}
}
