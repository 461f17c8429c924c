package discrepancysvc

import (
	"context"

	"github.com/sirupsen/logrus"

	"lets_reconcile/internal/api/events"
	"lets_reconcile/internal/global"
)

// affectedBureaus gom các bureau bị ảnh hưởng bởi một sự kiện thay đổi dữ liệu,
// mỗi bureau xuất hiện đúng một lần dù batch chứa bao nhiêu dòng.
func affectedBureaus(e events.DataChangeEvent) map[string]bool {
	affected := make(map[string]bool)
	if fips := events.GetStringField(e.Document, "BureauFips"); fips != "" {
		affected[fips] = true
	}
	for _, doc := range e.Documents {
		if fips := events.GetStringField(doc, "BureauFips"); fips != "" {
			affected[fips] = true
		}
	}
	return affected
}

// RegisterStalenessHandler đăng ký subscriber đánh dấu báo cáo cần tính lại
// mỗi khi dữ liệu nguồn (lets_positions, local_positions) của một bureau
// thay đổi qua CRUD. Gọi một lần lúc khởi động, sau khi registry sẵn sàng.
func RegisterStalenessHandler() error {
	reportSvc, err := NewDiscrepancyReportService()
	if err != nil {
		return err
	}

	sourceCollections := map[string]bool{
		global.MongoDB_ColNames.LetsPositions:  true,
		global.MongoDB_ColNames.LocalPositions: true,
	}

	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if !sourceCollections[e.CollectionName] {
			return
		}
		for fips := range affectedBureaus(e) {
			if err := reportSvc.MarkStaleForFips(context.Background(), fips); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"collection":  e.CollectionName,
					"bureau_fips": fips,
				}).Warn("Không đánh dấu được báo cáo cần tính lại")
			}
		}
	})
	return nil
}
