package discrepancysvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	letsmodels "lets_reconcile/internal/api/lets/models"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value float64
		ok    bool
	}{
		{"số nguyên", "42000", 42000, true},
		{"có dấu phẩy ngăn cách", "42,000.50", 42000.50, true},
		{"có ký hiệu tiền tệ", "$1,200", 1200, true},
		{"rỗng", "", 0, false},
		{"chỉ khoảng trắng", "   ", 0, false},
		{"không phải số", "N/A", 0, false},
		{"chữ lẫn số", "12abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := parseSalary(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.value, value)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"ISO", "2026-01-15", true},
		{"US có số 0", "01/15/2026", true},
		{"US không số 0", "1/5/2026", true},
		{"rỗng", "", false},
		{"khoảng trắng", "  ", false},
		{"không parse được", "yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDeviationCodeRule(t *testing.T) {
	rule, ok := RuleByName(CatEmployeesWithDeviationCodePoint5)
	assert.True(t, ok)

	env := RuleEnv{Now: testNow}
	tests := []struct {
		code  string
		match bool
	}{
		{"0", false},
		{"1", false},
		{"0.5", true},
		{"2", true},
		{"", true},
	}
	for _, tt := range tests {
		record := letsmodels.LetsPosition{DeviationCode: tt.code}
		assert.Equal(t, tt.match, rule.MatchLets(record, env), "deviation code %q", tt.code)
	}
}

func TestBlankSalaryRule(t *testing.T) {
	rule, ok := RuleByName(CatEmployeeslistedbutNoEESalary)
	assert.True(t, ok)

	env := RuleEnv{Now: testNow}
	assert.True(t, rule.MatchLets(letsmodels.LetsPosition{EmployeeSalary: ""}, env))
	assert.True(t, rule.MatchLets(letsmodels.LetsPosition{EmployeeSalary: "0"}, env))
	assert.False(t, rule.MatchLets(letsmodels.LetsPosition{EmployeeSalary: "42000"}, env))
}

func TestCatalogueNamesUnique(t *testing.T) {
	seen := make(map[string]bool, len(Catalogue))
	for _, rule := range Catalogue {
		assert.False(t, seen[rule.Name], "tên category %s bị trùng", rule.Name)
		seen[rule.Name] = true

		switch rule.Source {
		case SourceLets:
			assert.NotNil(t, rule.MatchLets, "%s thiếu predicate lets", rule.Name)
		case SourceLocal:
			assert.NotNil(t, rule.MatchLocal, "%s thiếu predicate local", rule.Name)
		case SourceNone:
			assert.Nil(t, rule.MatchLets)
			assert.Nil(t, rule.MatchLocal)
		}
	}
	assert.Len(t, Catalogue, 23)
}
