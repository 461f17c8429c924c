package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lets_reconcile/internal/global"
)

type periodInputFixture struct {
	BureauFips string `json:"bureauFips" validate:"required,fips"`
	Month      int    `json:"month" validate:"report_month"`
	Year       int    `json:"year" validate:"min=2000,max=2100"`
}

type periodModelFixture struct {
	BureauFips string `json:"bureauFips" bson:"bureauFips"`
	Month      int    `json:"month" bson:"month"`
	Year       int    `json:"year" bson:"year"`
}

func newPeriodFixtureHandler() *BaseHandler[periodModelFixture, periodInputFixture, periodInputFixture] {
	return &BaseHandler[periodModelFixture, periodInputFixture, periodInputFixture]{
		filterOptions: defaultFilterOptions(),
	}
}

func TestValidateInput(t *testing.T) {
	global.InitValidator()
	h := newPeriodFixtureHandler()

	err := h.ValidateInput(&periodInputFixture{BureauFips: "51013", Month: 7, Year: 2026})
	assert.NoError(t, err, "Input hợp lệ không được trả lỗi")

	err = h.ValidateInput(&periodInputFixture{BureauFips: "abcde", Month: 7, Year: 2026})
	assert.Error(t, err, "FIPS sai định dạng phải bị chặn")

	err = h.ValidateInput(&periodInputFixture{BureauFips: "51013", Month: 13, Year: 2026})
	assert.Error(t, err, "Tháng ngoài khoảng 1-12 phải bị chặn")
}

func TestTransformCreateInputToModel(t *testing.T) {
	h := newPeriodFixtureHandler()

	input := &periodInputFixture{BureauFips: "51013", Month: 7, Year: 2026}
	model, err := h.TransformCreateInputToModel(input)
	require.NoError(t, err, "Chuyển DTO sang model phải thành công")
	require.NotNil(t, model, "Model không được nil")
	assert.Equal(t, "51013", model.BureauFips, "BureauFips phải được map qua json tag")
	assert.Equal(t, 7, model.Month, "Month phải được map qua json tag")
	assert.Equal(t, 2026, model.Year, "Year phải được map qua json tag")
}
