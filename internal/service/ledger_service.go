package service

import (
	"go-shop-ledger/internal/calendar"
	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository"

	"github.com/google/uuid"
)

type LedgerService interface {
	Rollforward(shopID uuid.UUID, day calendar.Day) (*model.LedgerEntry, error)
	History(shopID uuid.UUID) ([]model.LedgerEntry, error)
}

type ledgerService struct {
	store        repository.Store
	lookbackDays int
}

func NewLedgerService(store repository.Store, lookbackDays int) LedgerService {
	return &ledgerService{store: store, lookbackDays: lookbackDays}
}

func (s *ledgerService) Rollforward(shopID uuid.UUID, day calendar.Day) (*model.LedgerEntry, error) {
	shop, err := s.store.Shops().FindByID(shopID)
	if err != nil {
		return nil, ErrShopNotFound
	}
	return rollforward(s.store, shop, day, s.lookbackDays)
}

func (s *ledgerService) History(shopID uuid.UUID) ([]model.LedgerEntry, error) {
	if _, err := s.store.Shops().FindByID(shopID); err != nil {
		return nil, ErrShopNotFound
	}
	return s.store.Ledger().FindByShop(shopID)
}

// rollforward computes the shop's cumulative balances as of the given day and
// upserts the ledger entry for (shop, day).
//
// Day deltas come from the day's DailySale (money) and Stock (units) records.
// The carry-in is the most recent prior ledger entry within lookbackDays;
// past that window the carry-in resets to zero. The backfill keeps every shop
// inside the window, so the reset only fires for shops that were never
// reported at all.
func rollforward(st repository.Store, shop *model.Shop, day calendar.Day, lookbackDays int) (*model.LedgerEntry, error) {
	key := day.Key()

	sales, err := st.DailySales().FindByShopAndDate(shop.ID, key)
	if err != nil {
		return nil, err
	}
	var moneyDelta int64
	for i := range sales {
		moneyDelta += sales[i].NetMoney()
	}

	stocks, err := st.Stocks().FindByShopAndDate(shop.ID, key)
	if err != nil {
		return nil, err
	}
	picDelta := 0
	for i := range stocks {
		picDelta += stocks[i].NetUnits()
	}

	var carryMoney int64
	carryPic := 0
	for i := 1; i <= lookbackDays; i++ {
		prior, err := st.Ledger().FindOneByShopAndDate(shop.ID, day.AddDays(-i).Key())
		if err != nil {
			continue
		}
		carryMoney = prior.TotalMoney
		carryPic = prior.TotalPic
		break
	}

	entry := &model.LedgerEntry{
		ShopID:          shop.ID,
		Date:            key,
		TotalMoney:      carryMoney + moneyDelta,
		TotalPic:        carryPic + picDelta,
		TotalInvestment: shop.TotalInvestment,
	}
	if err := st.Ledger().Upsert(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
