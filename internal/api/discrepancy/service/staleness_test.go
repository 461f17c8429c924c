package discrepancysvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lets_reconcile/internal/api/events"
	localmodels "lets_reconcile/internal/api/local/models"
)

func TestAffectedBureaus_BatchDedupe(t *testing.T) {
	// Một upload 3 dòng cùng bureau chỉ được đánh dấu báo cáo một lần
	e := events.DataChangeEvent{
		CollectionName: "local_positions",
		Operation:      events.OpInsert,
		Documents: []interface{}{
			localmodels.LocalPosition{BureauFips: "51013"},
			localmodels.LocalPosition{BureauFips: "51013"},
			localmodels.LocalPosition{BureauFips: "51013"},
		},
	}

	affected := affectedBureaus(e)
	assert.Len(t, affected, 1, "Batch cùng bureau chỉ được gom thành một")
	assert.True(t, affected["51013"], "Bureau trong batch phải có mặt")
}

func TestAffectedBureaus_MixedBatch(t *testing.T) {
	e := events.DataChangeEvent{
		CollectionName: "local_positions",
		Operation:      events.OpInsert,
		Documents: []interface{}{
			localmodels.LocalPosition{BureauFips: "51013"},
			localmodels.LocalPosition{BureauFips: "51760"},
		},
	}

	affected := affectedBureaus(e)
	assert.Len(t, affected, 2, "Mỗi bureau khác nhau trong batch phải được gom riêng")
}

func TestAffectedBureaus_SingleDocument(t *testing.T) {
	e := events.DataChangeEvent{
		CollectionName: "lets_positions",
		Operation:      events.OpUpdate,
		Document:       localmodels.LocalPosition{BureauFips: "51013"},
	}

	affected := affectedBureaus(e)
	assert.Len(t, affected, 1, "Sự kiện đơn lẻ vẫn phải gom đúng bureau")
}

func TestAffectedBureaus_NoBureau(t *testing.T) {
	e := events.DataChangeEvent{
		CollectionName: "local_positions",
		Operation:      events.OpDelete,
	}

	affected := affectedBureaus(e)
	assert.Empty(t, affected, "Sự kiện không có bản ghi thì không bureau nào bị ảnh hưởng")
}
