package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmiyata/shopfront/internal/pkg/clock"
	"github.com/tmiyata/shopfront/internal/store"
)

func newTestLedger(t *testing.T) (Ledger, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))
	return NewLocalLedger(store.NewMemoryStore(), clk), clk
}

func TestLocalLedger_Record(t *testing.T) {
	ctx := context.Background()
	ledger, clk := newTestLedger(t)

	p, err := ledger.Record(ctx, RecordInput{
		ProductID:   "3",
		ProductName: "オーガニックコーヒー豆",
		Quantity:    2,
		Price:       2400,
		UserEmail:   "hana@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 4800.0, p.Total, "total is quantity times unit price")
	assert.Equal(t, clk.Now(), p.PurchaseDate)
	assert.Equal(t, "hana@example.com", p.UserEmail)
}

func TestLocalLedger_ListEmptyWithoutSeeding(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	purchases, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, purchases)
}

func TestLocalLedger_ListByUser(t *testing.T) {
	ctx := context.Background()
	ledger, clk := newTestLedger(t)

	_, err := ledger.Record(ctx, RecordInput{ProductID: "1", ProductName: "A", Quantity: 1, Price: 100, UserEmail: "hana@example.com"})
	require.NoError(t, err)
	clk.Advance(time.Minute)
	_, err = ledger.Record(ctx, RecordInput{ProductID: "2", ProductName: "B", Quantity: 1, Price: 200, UserEmail: "taro@example.com"})
	require.NoError(t, err)
	clk.Advance(time.Minute)
	_, err = ledger.Record(ctx, RecordInput{ProductID: "3", ProductName: "C", Quantity: 1, Price: 300, UserEmail: "hana@example.com"})
	require.NoError(t, err)

	mine, err := ledger.ListByUser(ctx, "hana@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "A", mine[0].ProductName, "insertion order preserved")
	assert.Equal(t, "C", mine[1].ProductName)

	none, err := ledger.ListByUser(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// The ledger trusts the caller's stock check; called directly it records any
// quantity. That boundary belongs to the checkout service.
func TestLocalLedger_RecordsWithoutStockCheck(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	p, err := ledger.Record(ctx, RecordInput{
		ProductID:   "1",
		ProductName: "ワイヤレスヘッドフォン",
		Quantity:    1000000,
		Price:       15800,
		UserEmail:   "hana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 1000000, p.Quantity)
}
