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

func day(t *testing.T, s string) calendar.Day {
	t.Helper()
	d, err := calendar.ParseExternal(s)
	require.NoError(t, err)
	return d
}

func seedShopWithProduct(t *testing.T, store *memory.Store) (*model.Shop, *model.Product) {
	t.Helper()

	product := &model.Product{Name: "Soap", SalePrice: 15, BuyPrice: 10}
	require.NoError(t, store.Products().Create(product))

	shop := &model.Shop{
		Name:     "Shop A",
		Address:  "Main Road",
		Owner:    "Asha",
		Products: []model.Product{*product},
	}
	require.NoError(t, store.Shops().Create(shop))

	return shop, product
}

func TestSubmitFirstReport(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)

	result, err := reports.Submit(ReportInput{
		ShopID:               shop.ID,
		Day:                  day(t, "2025-01-01"),
		TotalMoneyCollection: 0,
		TotalMoneySpent:      50,
		Buy:                  map[uuid.UUID]int{product.ID: 5},
		Sale:                 map[uuid.UUID]int{product.ID: 0},
	})
	require.NoError(t, err)

	got, err := store.Products().FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.TotalPic)

	updatedShop, err := store.Shops().FindByID(shop.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), updatedShop.TotalInvestment)
	assert.Equal(t, "01-01-2025", updatedShop.ReportDate)

	assert.Equal(t, int64(-50), result.Ledger.TotalMoney)
	assert.Equal(t, 5, result.Ledger.TotalPic)
	assert.Equal(t, int64(50), result.Ledger.TotalInvestment)
}

func TestSubmitCarriesBalancesForward(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)

	_, err := reports.Submit(ReportInput{
		ShopID:          shop.ID,
		Day:             day(t, "2025-01-01"),
		TotalMoneySpent: 50,
		Buy:             map[uuid.UUID]int{product.ID: 5},
	})
	require.NoError(t, err)

	result, err := reports.Submit(ReportInput{
		ShopID:               shop.ID,
		Day:                  day(t, "2025-01-02"),
		TotalMoneyCollection: 60,
		Sale:                 map[uuid.UUID]int{product.ID: 3},
	})
	require.NoError(t, err)

	got, err := store.Products().FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalPic)

	assert.Equal(t, int64(10), result.Ledger.TotalMoney) // -50 + 60
	assert.Equal(t, 2, result.Ledger.TotalPic)           // 5 + (0 - 3)
}

func TestResubmitReplacesDayRecords(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)

	_, err := reports.Submit(ReportInput{
		ShopID:          shop.ID,
		Day:             day(t, "2025-01-01"),
		TotalMoneySpent: 50,
		Buy:             map[uuid.UUID]int{product.ID: 5},
	})
	require.NoError(t, err)

	_, err = reports.Submit(ReportInput{
		ShopID:               shop.ID,
		Day:                  day(t, "2025-01-02"),
		TotalMoneyCollection: 60,
		Sale:                 map[uuid.UUID]int{product.ID: 3},
	})
	require.NoError(t, err)

	// Edit day one: buy 2 instead of 5.
	result, err := reports.Submit(ReportInput{
		ShopID:          shop.ID,
		Day:             day(t, "2025-01-01"),
		TotalMoneySpent: 20,
		Buy:             map[uuid.UUID]int{product.ID: 2},
	})
	require.NoError(t, err)

	stocks, err := store.Stocks().FindByShopAndDate(shop.ID, "01-01-2025")
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	assert.Equal(t, 2, stocks[0].QuantityBuy)

	sales, err := store.DailySales().FindByShopAndDate(shop.ID, "01-01-2025")
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	// Counter reflects the reversal of the original +5 and the new +2.
	got, err := store.Products().FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalPic)

	assert.Equal(t, int64(-20), result.Ledger.TotalMoney)
	assert.Equal(t, 2, result.Ledger.TotalPic)
}

func TestProductCounterNeverGoesNegative(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)

	_, err := reports.Submit(ReportInput{
		ShopID:               shop.ID,
		Day:                  day(t, "2025-01-01"),
		TotalMoneyCollection: 100,
		Sale:                 map[uuid.UUID]int{product.ID: 40},
	})
	require.NoError(t, err)

	got, err := store.Products().FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalPic)
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)
	d := day(t, "2025-01-01")

	_, err := reports.Submit(ReportInput{ShopID: uuid.New(), Day: d, Buy: map[uuid.UUID]int{product.ID: 1}})
	assert.ErrorIs(t, err, ErrShopNotFound)

	_, err = reports.Submit(ReportInput{ShopID: shop.ID, Day: d})
	assert.ErrorIs(t, err, ErrNoStockEntries)

	_, err = reports.Submit(ReportInput{ShopID: shop.ID, Day: d, Buy: map[uuid.UUID]int{uuid.New(): 1}})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = reports.Submit(ReportInput{ShopID: shop.ID, Day: d, Buy: map[uuid.UUID]int{product.ID: -1}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = reports.Submit(ReportInput{ShopID: shop.ID, Day: d, TotalMoneySpent: -5, Buy: map[uuid.UUID]int{product.ID: 1}})
	assert.ErrorIs(t, err, ErrInvalidTotals)

	_, err = reports.Submit(ReportInput{ShopID: shop.ID, Buy: map[uuid.UUID]int{product.ID: 1}})
	assert.ErrorIs(t, err, ErrMissingDate)

	// Nothing was written along the way.
	stocks, err := store.Stocks().FindByShop(shop.ID)
	require.NoError(t, err)
	assert.Empty(t, stocks)
}

func TestCarryInResetsBeyondLookbackWindow(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)

	_, err := reports.Submit(ReportInput{
		ShopID:          shop.ID,
		Day:             day(t, "2025-01-01"),
		TotalMoneySpent: 50,
		Buy:             map[uuid.UUID]int{product.ID: 5},
	})
	require.NoError(t, err)

	// Eight days later the prior entry is outside the window: carry-in is zero.
	result, err := reports.Submit(ReportInput{
		ShopID:               shop.ID,
		Day:                  day(t, "2025-01-09"),
		TotalMoneyCollection: 30,
		Sale:                 map[uuid.UUID]int{product.ID: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(30), result.Ledger.TotalMoney) // 0 + 30, not -50 + 30
	assert.Equal(t, -1, result.Ledger.TotalPic)          // 0 + (0 - 1)
}

func TestCarryInFoundAtWindowEdge(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)

	_, err := reports.Submit(ReportInput{
		ShopID:          shop.ID,
		Day:             day(t, "2025-01-01"),
		TotalMoneySpent: 50,
		Buy:             map[uuid.UUID]int{product.ID: 5},
	})
	require.NoError(t, err)

	// Seven days later the entry is still inside the window.
	result, err := reports.Submit(ReportInput{
		ShopID:               shop.ID,
		Day:                  day(t, "2025-01-08"),
		TotalMoneyCollection: 30,
		Sale:                 map[uuid.UUID]int{product.ID: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(-20), result.Ledger.TotalMoney) // -50 + 30
	assert.Equal(t, 4, result.Ledger.TotalPic)            // 5 + (0-1)
	assert.Equal(t, int64(40), result.Ledger.TotalInvestment)
}

// The incrementally maintained product counter must match a recomputation
// from the full stock history as long as no clamping occurred.
func TestCounterMatchesStockFold(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	reports := NewReportService(store, nil, 7)

	inputs := []struct {
		date string
		buy  int
		sale int
	}{
		{"2025-02-01", 10, 0},
		{"2025-02-02", 3, 5},
		{"2025-02-03", 0, 4},
		{"2025-02-04", 7, 2},
	}
	for _, in := range inputs {
		_, err := reports.Submit(ReportInput{
			ShopID: shop.ID,
			Day:    day(t, in.date),
			Buy:    map[uuid.UUID]int{product.ID: in.buy},
			Sale:   map[uuid.UUID]int{product.ID: in.sale},
		})
		require.NoError(t, err)
	}

	stocks, err := store.Stocks().FindByShop(shop.ID)
	require.NoError(t, err)
	fold := 0
	for i := range stocks {
		fold += stocks[i].NetUnits()
	}

	got, err := store.Products().FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, fold, got.TotalPic)
}
