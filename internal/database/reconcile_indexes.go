// Package database - Index bổ sung cho đối soát (compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"lets_reconcile/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateReconcileAdditionalIndexes tạo các index bổ sung cho nghiệp vụ đối soát.
// Gọi sau CreateIndexes cho từng collection.
func CreateReconcileAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// local_positions: (uploadId, bureauFips): lọc record theo đợt upload và bureau
	localPositions := db.Collection(global.MongoDB_ColNames.LocalPositions)
	if _, err := localPositions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "uploadId", Value: 1},
			{Key: "bureauFips", Value: 1},
		},
		Options: options.Index().SetName("local_position_upload_fips"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// lets_positions: (bureauFips, localPositionNumber): join theo số hiệu vị trí
	letsPositions := db.Collection(global.MongoDB_ColNames.LetsPositions)
	if _, err := letsPositions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "bureauFips", Value: 1},
			{Key: "localPositionNumber", Value: 1},
		},
		Options: options.Index().SetName("lets_position_fips_number"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// certifications: (bureauFips, month, year) unique: một chứng nhận cho mỗi bureau mỗi kỳ
	certifications := db.Collection(global.MongoDB_ColNames.Certifications)
	if _, err := certifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "bureauFips", Value: 1},
			{Key: "month", Value: 1},
			{Key: "year", Value: 1},
		},
		Options: options.Index().SetName("certification_fips_period_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// discrepancy_reports: (bureauFips, stale): worker quét báo cáo cần tính lại
	reports := db.Collection(global.MongoDB_ColNames.DiscrepancyReports)
	if _, err := reports.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "bureauFips", Value: 1},
			{Key: "stale", Value: 1},
		},
		Options: options.Index().SetName("discrepancy_report_fips_stale"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
