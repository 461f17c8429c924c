// Package discrepancysvc chứa catalogue rule đối soát, engine tính báo cáo,
// transform wide/tall và export spreadsheet.
package discrepancysvc

import (
	"strconv"
	"strings"
	"time"

	letsmodels "lets_reconcile/internal/api/lets/models"
	localmodels "lets_reconcile/internal/api/local/models"
)

// Source cho biết một rule đếm trên tập bản ghi nào
type Source string

const (
	// SourceLets rule đếm trên các bản ghi LETS (master)
	SourceLets Source = "lets"
	// SourceLocal rule đếm trên các dòng payroll hợp lệ
	SourceLocal Source = "local"
	// SourceNone rule placeholder, luôn bằng 0 và không có bản ghi đóng góp
	SourceNone Source = "none"
)

// RuleEnv môi trường chia sẻ giữa các rule trong một lần tính:
// tập first-name của mỗi phía để so khớp, và mốc thời gian "now".
type RuleEnv struct {
	LetsFirstNames  map[string]bool
	LocalFirstNames map[string]bool
	Now             time.Time
}

// NewRuleEnv dựng môi trường rule từ hai tập bản ghi đã materialized
func NewRuleEnv(valid []localmodels.LocalPosition, master []letsmodels.LetsPosition, now time.Time) RuleEnv {
	env := RuleEnv{
		LetsFirstNames:  make(map[string]bool, len(master)),
		LocalFirstNames: make(map[string]bool, len(valid)),
		Now:             now,
	}
	for _, record := range master {
		if record.FirstName != "" {
			env.LetsFirstNames[record.FirstName] = true
		}
	}
	for _, row := range valid {
		if row.EmployeeFirstName != "" {
			env.LocalFirstNames[row.EmployeeFirstName] = true
		}
	}
	return env
}

// Rule một category đối soát: tên + predicate trên đúng một tập nguồn.
// Predicate được định nghĩa một lần và dùng chung cho cả đếm lẫn drill-down
// để hai phía không bao giờ lệch nhau.
type Rule struct {
	Name       string
	Source     Source
	MatchLets  func(record letsmodels.LetsPosition, env RuleEnv) bool
	MatchLocal func(row localmodels.LocalPosition, env RuleEnv) bool
}

// parseSalary ép chuỗi lương về số một cách an toàn.
// Chuỗi không phải số không bao giờ thỏa mãn rule so sánh ngưỡng.
func parseSalary(salary string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(salary), ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// dateLayouts các định dạng ngày chấp nhận từ dữ liệu nguồn
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02T15:04:05",
}

// parseDate parse chuỗi ngày, trả về ok=false khi rỗng hoặc không parse được.
// Ngày không parse được coi như vắng mặt (absent).
func parseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// blankOrZero kiểm tra giá trị rỗng hoặc "0" sau khi trim
func blankOrZero(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || trimmed == "0"
}

// Tên các category trong catalogue. Giữ nguyên chính tả của hệ thống gốc,
// kể cả viết hoa không nhất quán, vì tên là khóa lưu trữ và export.
const (
	CatLetsPositions                          = "LetsPositions"
	CatVacantLetsPositions                    = "VacantLetsPositions"
	CatFilledLetsPositions                    = "FilledLetsPositions"
	CatEmployeeLetsNotFoundLocal              = "EmployeeLetsNotFoundLocal"
	CatVacantPositionsLets                    = "VacantPositionsLets"
	CatNumberofLocalPositions                 = "NumberofLocalPositions"
	CatNumberOfVacantLocalPositions           = "NumberOfVacantLocalPositions"
	CatNumberOfFilledLocalPositions           = "NumberOfFilledLocalPositions"
	CatNumberOfEmployeesInLocalNotFoundInLets = "NumberOfEmployeesInLocalNotFoundInLets"
	CatNumberOfEmployeeWithSignificantSalary  = "NumberOfEmployeeWithSignificantSalary"
	CatNumberOfLocalPositionsInLETS           = "NumberOfLocalPositionsInLETS"
	CatLetsLocalPositionBlank                 = "LetsLocalPositionBlank"
	CatNumberOfEmployeeWithPastDueProbation   = "NumberOfEmployeeWithPastDueProbation"
	CatNumberOfEmployeeWithPastDueAnnual      = "NumberOfEmployeeWithPastDueAnnual"
	CatNumberOfEmployeeInExpiredPositions     = "NumberOfEmployeeInExpiredPositions"
	CatNumberOfPositionsWithInvalidRSC        = "NumberOfPositionsWithInvalidRSC"
	CatEmployeeslistedbutNoEESalary           = "EmployeeslistedbutNoEESalary"
	CatEmployeeslistedButNoEETimeStatus       = "EmployeeslistedButNoEETimeStatus"
	CatPartTimeEmployeesWithSalary            = "PartTimeEmployeesWithSalary"
	CatFullTimeEmployeesWithHourlyRate        = "FullTimeEmployeesWithHourlyRate"
	CatEmployeesWithDeviationCodePoint5       = "EmployeesWithDeviationCodePoint5"
	CatEmployeesWithBlankAssignTime           = "EmployeesWithBlankAssignTime"
	CatEmployeeswithBlankEmployeeStatus       = "EmployeeswithBlankEmployeeStatus"
)

// Catalogue danh sách rule theo thứ tự cố định. Thứ tự này là thứ tự
// lưu trữ và export, không phụ thuộc thứ tự đánh giá.
//
// LƯU Ý về ngữ nghĩa vacancy: quy ước dữ liệu nguồn coi bản ghi CÓ first-name
// là "vacant" và KHÔNG có first-name là "filled". Ngữ nghĩa đảo so với nhãn
// nhưng được giữ nguyên đúng theo hệ thống gốc. Tương tự,
// NumberOfFilledLocalPositions đếm trên master chứ không phải local.
var Catalogue = []Rule{
	{
		Name:   CatLetsPositions,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return true
		},
	},
	{
		Name:   CatVacantLetsPositions,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return record.FirstName != ""
		},
	},
	{
		Name:   CatFilledLetsPositions,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return record.FirstName == ""
		},
	},
	{
		Name:   CatEmployeeLetsNotFoundLocal,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return record.FirstName != "" && !env.LocalFirstNames[record.FirstName]
		},
	},
	{
		Name:   CatVacantPositionsLets,
		Source: SourceLocal,
		MatchLocal: func(row localmodels.LocalPosition, env RuleEnv) bool {
			return row.EmployeeFirstName != "" && !env.LetsFirstNames[row.EmployeeFirstName]
		},
	},
	{
		Name:   CatNumberofLocalPositions,
		Source: SourceLocal,
		MatchLocal: func(row localmodels.LocalPosition, env RuleEnv) bool {
			return true
		},
	},
	{
		Name:   CatNumberOfVacantLocalPositions,
		Source: SourceLocal,
		MatchLocal: func(row localmodels.LocalPosition, env RuleEnv) bool {
			return row.EmployeeFirstName != ""
		},
	},
	{
		// Đếm trên master, không phải local (bất đối xứng của hệ thống gốc)
		Name:   CatNumberOfFilledLocalPositions,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return record.FirstName != ""
		},
	},
	{
		Name:   CatNumberOfEmployeesInLocalNotFoundInLets,
		Source: SourceLocal,
		MatchLocal: func(row localmodels.LocalPosition, env RuleEnv) bool {
			return row.EmployeeFirstName != "" && !env.LetsFirstNames[row.EmployeeFirstName]
		},
	},
	{
		Name:   CatNumberOfEmployeeWithSignificantSalary,
		Source: SourceNone,
	},
	{
		Name:   CatNumberOfLocalPositionsInLETS,
		Source: SourceNone,
	},
	{
		Name:   CatLetsLocalPositionBlank,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return strings.TrimSpace(record.StatePositionNumber) == ""
		},
	},
	{
		Name:   CatNumberOfEmployeeWithPastDueProbation,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return strings.TrimSpace(record.ProbationExpectedEndDate) == ""
		},
	},
	{
		Name:   CatNumberOfEmployeeWithPastDueAnnual,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			rated, ok := parseDate(record.LastRatingDate)
			if !ok {
				return true
			}
			return rated.Before(env.Now.AddDate(-1, 0, 0))
		},
	},
	{
		Name:   CatNumberOfEmployeeInExpiredPositions,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			end, ok := parseDate(record.ExpectedJobEndDate)
			return ok && end.Before(env.Now)
		},
	},
	{
		Name:   CatNumberOfPositionsWithInvalidRSC,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return strings.TrimSpace(record.ReimbursementStatusCode) == ""
		},
	},
	{
		Name:   CatEmployeeslistedbutNoEESalary,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return blankOrZero(record.EmployeeSalary)
		},
	},
	{
		Name:   CatEmployeeslistedButNoEETimeStatus,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return strings.TrimSpace(record.EmployeeStatus) == ""
		},
	},
	{
		Name:   CatPartTimeEmployeesWithSalary,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			salary, ok := parseSalary(record.EmployeeSalary)
			return record.TimeStatusCode == "P" && ok && salary > 1000
		},
	},
	{
		Name:   CatFullTimeEmployeesWithHourlyRate,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			salary, ok := parseSalary(record.EmployeeSalary)
			return record.TimeStatusCode == "F" && ok && salary < 1000
		},
	},
	{
		Name:   CatEmployeesWithDeviationCodePoint5,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			code := strings.TrimSpace(record.DeviationCode)
			return code != "0" && code != "1"
		},
	},
	{
		Name:   CatEmployeesWithBlankAssignTime,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return blankOrZero(record.AssignedTimePercentage)
		},
	},
	{
		Name:   CatEmployeeswithBlankEmployeeStatus,
		Source: SourceLets,
		MatchLets: func(record letsmodels.LetsPosition, env RuleEnv) bool {
			return strings.TrimSpace(record.EmployeeStatus) == ""
		},
	},
}

// RuleByName tra cứu rule theo tên category, trả về ok=false nếu không có
func RuleByName(name string) (Rule, bool) {
	for _, rule := range Catalogue {
		if rule.Name == name {
			return rule, true
		}
	}
	return Rule{}, false
}
