package discrepancysvc

import (
	"time"

	"lets_reconcile/internal/api/discrepancy/models"
	letsmodels "lets_reconcile/internal/api/lets/models"
	localmodels "lets_reconcile/internal/api/local/models"
)

// CategoryRecords các bản ghi đóng góp vào một category, dùng cho drill-down
// và các sheet chi tiết khi export
type CategoryRecords struct {
	Name         string
	LetsRecords  []letsmodels.LetsPosition
	LocalRecords []localmodels.LocalPosition
}

// ComputeReport tính báo cáo đối soát từ hai tập bản ghi đã materialized.
// Hàm thuần, không chạm DB. Đầu vào rỗng cho ra báo cáo toàn số 0.
// Gọi nhiều lần trên cùng đầu vào cho cùng kết quả.
func ComputeReport(valid []localmodels.LocalPosition, master []letsmodels.LetsPosition, now time.Time) models.DiscrepancyReport {
	env := NewRuleEnv(valid, master, now)
	report := models.DiscrepancyReport{GeneratedAt: now.Unix()}

	for _, rule := range Catalogue {
		count := 0
		switch rule.Source {
		case SourceLets:
			for _, record := range master {
				if rule.MatchLets(record, env) {
					count++
				}
			}
		case SourceLocal:
			for _, row := range valid {
				if rule.MatchLocal(row, env) {
					count++
				}
			}
		}
		setCounter(&report, rule.Name, count)
	}

	report.Rows = ToRows(report)
	return report
}

// BuildIndex liệt kê các bản ghi đóng góp theo từng category, dùng chung
// predicate với ComputeReport nên số bản ghi mỗi category luôn khớp counter
// tương ứng. Category placeholder trả về entry rỗng.
func BuildIndex(valid []localmodels.LocalPosition, master []letsmodels.LetsPosition, now time.Time) []CategoryRecords {
	env := NewRuleEnv(valid, master, now)
	index := make([]CategoryRecords, 0, len(Catalogue))

	for _, rule := range Catalogue {
		entry := CategoryRecords{Name: rule.Name}
		switch rule.Source {
		case SourceLets:
			for _, record := range master {
				if rule.MatchLets(record, env) {
					entry.LetsRecords = append(entry.LetsRecords, record)
				}
			}
		case SourceLocal:
			for _, row := range valid {
				if rule.MatchLocal(row, env) {
					entry.LocalRecords = append(entry.LocalRecords, row)
				}
			}
		}
		index = append(index, entry)
	}
	return index
}

// CategoryDrilldown liệt kê bản ghi đóng góp cho đúng một category
func CategoryDrilldown(name string, valid []localmodels.LocalPosition, master []letsmodels.LetsPosition, now time.Time) (CategoryRecords, bool) {
	rule, ok := RuleByName(name)
	if !ok {
		return CategoryRecords{}, false
	}
	env := NewRuleEnv(valid, master, now)
	entry := CategoryRecords{Name: rule.Name}
	switch rule.Source {
	case SourceLets:
		for _, record := range master {
			if rule.MatchLets(record, env) {
				entry.LetsRecords = append(entry.LetsRecords, record)
			}
		}
	case SourceLocal:
		for _, row := range valid {
			if rule.MatchLocal(row, env) {
				entry.LocalRecords = append(entry.LocalRecords, row)
			}
		}
	}
	return entry, true
}
