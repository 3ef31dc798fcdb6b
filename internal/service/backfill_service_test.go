package service

import (
	"testing"

	"go-shop-ledger/internal/calendar"
	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackfillSynthesizesZeroReportForIdleShop(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)
	backfill := NewBackfillService(store, reports, 5)

	today := day(t, "2025-03-10")

	// Last real report six days ago: outside the 5-day idle window but still
	// inside the 7-day ledger lookback.
	_, err := reports.Submit(ReportInput{
		ShopID:          shop.ID,
		Day:             today.AddDays(-6),
		TotalMoneySpent: 50,
		Buy:             map[uuid.UUID]int{product.ID: 5},
	})
	require.NoError(t, err)

	backfill.Run(today)

	sales, err := store.DailySales().FindByShopAndDate(shop.ID, today.Key())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, int64(0), sales[0].TotalSale)
	assert.Equal(t, int64(0), sales[0].TotalBuy)

	// The ledger entry is carried forward unchanged: zero deltas.
	entry, err := store.Ledger().FindOneByShopAndDate(shop.ID, today.Key())
	require.NoError(t, err)
	assert.Equal(t, int64(-50), entry.TotalMoney)
	assert.Equal(t, 5, entry.TotalPic)
	assert.Equal(t, int64(50), entry.TotalInvestment)

	// The counter is untouched by zero quantities.
	got, err := store.Products().FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.TotalPic)
}

func TestBackfillSkipsActiveShop(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)
	backfill := NewBackfillService(store, reports, 5)

	today := day(t, "2025-03-10")

	_, err := reports.Submit(ReportInput{
		ShopID: shop.ID,
		Day:    today.AddDays(-1),
		Buy:    map[uuid.UUID]int{product.ID: 2},
	})
	require.NoError(t, err)

	backfill.Run(today)

	sales, err := store.DailySales().FindByShopAndDate(shop.ID, today.Key())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestBackfillContinuesPastFailingShop(t *testing.T) {
	store := memory.New()

	// A shop without products cannot produce a zero report.
	empty := &model.Shop{Name: "Empty Corner", Address: "Side Lane", Owner: "Binod"}
	require.NoError(t, store.Shops().Create(empty))

	shop, _ := seedShopWithProduct(t, store)

	reports := NewReportService(store, nil, 7)
	backfill := NewBackfillService(store, reports, 5)
	today := day(t, "2025-03-10")

	backfill.Run(today)

	// Idle shop with products still got its zero report.
	sales, err := store.DailySales().FindByShopAndDate(shop.ID, today.Key())
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	// The empty shop was skipped, not fatal.
	sales, err = store.DailySales().FindByShopAndDate(empty.ID, today.Key())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestBackfillKeepsLedgerContinuous(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)
	backfill := NewBackfillService(store, reports, 5)

	start := day(t, "2025-04-01")
	_, err := reports.Submit(ReportInput{
		ShopID:               shop.ID,
		Day:                  start,
		TotalMoneyCollection: 200,
		Buy:                  map[uuid.UUID]int{product.ID: 8},
	})
	require.NoError(t, err)

	// Run the backfill every day for three weeks with no real activity; the
	// carry-in never falls out of the lookback window.
	var last calendar.Day
	for i := 6; i <= 27; i += 6 {
		last = start.AddDays(i)
		backfill.Run(last)
	}

	entry, err := store.Ledger().FindOneByShopAndDate(shop.ID, last.Key())
	require.NoError(t, err)
	assert.Equal(t, int64(200), entry.TotalMoney)
	assert.Equal(t, 8, entry.TotalPic)
}

func TestBackfillZeroReportShape(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)
	backfill := NewBackfillService(store, reports, 5)
	today := day(t, "2025-03-10")

	backfill.Run(today)

	stocks, err := store.Stocks().FindByShopAndDate(shop.ID, today.Key())
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	assert.Equal(t, product.ID, stocks[0].ProductID)
	assert.Equal(t, 0, stocks[0].QuantityBuy)
	assert.Equal(t, 0, stocks[0].QuantitySale)
	assert.NotNil(t, stocks[0].DailySaleID)
}
