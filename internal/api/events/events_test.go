package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitDataChanged_BatchDocuments(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	var got DataChangeEvent
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName != "batch_test_col" {
			return
		}
		got = e
		wg.Done()
	})

	type row struct{ BureauFips string }
	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "batch_test_col",
		Operation:      OpInsert,
		Documents:      []interface{}{row{"51013"}, row{"51013"}, row{"51760"}},
	})

	wg.Wait()
	require.Len(t, got.Documents, 3, "Batch phải được giao nguyên vẹn trong một sự kiện")
	assert.Nil(t, got.Document, "Sự kiện batch không đặt Document đơn lẻ")
	assert.Equal(t, OpInsert, got.Operation, "Operation phải là insert")
}

func TestEmitDataChanged_PanicDoesNotBlockOtherHandlers(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName != "panic_test_col" {
			return
		}
		panic("handler hỏng")
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName != "panic_test_col" {
			return
		}
		wg.Done()
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "panic_test_col",
		Operation:      OpUpdate,
		Document:       struct{ BureauFips string }{"51013"},
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Handler thứ hai không được gọi khi handler khác panic")
	}
}
