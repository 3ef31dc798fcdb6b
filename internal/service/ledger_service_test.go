package service

import (
	"testing"

	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollforwardWithoutAnyRecords(t *testing.T) {
	store := memory.New()
	shop, _ := seedShopWithProduct(t, store)
	ledger := NewLedgerService(store, 7)

	entry, err := ledger.Rollforward(shop.ID, day(t, "2025-01-01"))
	require.NoError(t, err)

	assert.Equal(t, int64(0), entry.TotalMoney)
	assert.Equal(t, 0, entry.TotalPic)
}

func TestRollforwardUpsertsWithoutDuplicates(t *testing.T) {
	store := memory.New()
	shop, _ := seedShopWithProduct(t, store)
	ledger := NewLedgerService(store, 7)
	d := day(t, "2025-01-01")

	_, err := ledger.Rollforward(shop.ID, d)
	require.NoError(t, err)
	_, err = ledger.Rollforward(shop.ID, d)
	require.NoError(t, err)

	entries, err := ledger.History(shop.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRollforwardRecomputesAfterNewRecords(t *testing.T) {
	store := memory.New()
	shop, product := seedShopWithProduct(t, store)
	ledger := NewLedgerService(store, 7)
	d := day(t, "2025-01-01")

	_, err := ledger.Rollforward(shop.ID, d)
	require.NoError(t, err)

	require.NoError(t, store.DailySales().Create(&model.DailySale{
		ShopID:    shop.ID,
		Date:      d.Key(),
		TotalSale: 120,
		TotalBuy:  70,
	}))
	require.NoError(t, store.Stocks().Create(&model.Stock{
		ProductID:   product.ID,
		ShopID:      shop.ID,
		QuantityBuy: 4,
		Date:        d.Key(),
	}))

	entry, err := ledger.Rollforward(shop.ID, d)
	require.NoError(t, err)
	assert.Equal(t, int64(50), entry.TotalMoney)
	assert.Equal(t, 4, entry.TotalPic)
}

func TestLedgerForUnknownShop(t *testing.T) {
	store := memory.New()
	ledger := NewLedgerService(store, 7)

	_, err := ledger.Rollforward(uuid.New(), day(t, "2025-01-01"))
	assert.ErrorIs(t, err, ErrShopNotFound)

	_, err = ledger.History(uuid.New())
	assert.ErrorIs(t, err, ErrShopNotFound)
}
