package service

import (
	"go-shop-ledger/internal/calendar"
	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository"

	"github.com/google/uuid"
)

// ShopDailySales is one row of the daily sales view: a shop's money totals
// for the day plus its unit movement summed over the day's stock records.
type ShopDailySales struct {
	ShopID          uuid.UUID `json:"shop_id"`
	ShopName        string    `json:"shop_name"`
	TotalSalesMoney int64     `json:"total_sales_money"`
	TotalSpendMoney int64     `json:"total_spend_money"`
	TotalSalesPic   int       `json:"total_sales_pic"`
	TotalBuyPic     int       `json:"total_buy_pic"`
}

type OverviewService interface {
	DailySales(day calendar.Day) ([]ShopDailySales, error)
	StockDetails(shopID, productID *uuid.UUID) ([]model.Stock, error)
}

type overviewService struct {
	store repository.Store
}

func NewOverviewService(store repository.Store) OverviewService {
	return &overviewService{store: store}
}

// DailySales builds the per-shop aggregate for one day. Shops without a report
// for the day show zeros rather than being dropped.
func (s *overviewService) DailySales(day calendar.Day) ([]ShopDailySales, error) {
	shops, err := s.store.Shops().FindAll()
	if err != nil {
		return nil, err
	}

	key := day.Key()
	rows := make([]ShopDailySales, 0, len(shops))
	for i := range shops {
		shop := &shops[i]
		row := ShopDailySales{ShopID: shop.ID, ShopName: shop.Name}

		sales, err := s.store.DailySales().FindByShopAndDate(shop.ID, key)
		if err != nil {
			return nil, err
		}
		for j := range sales {
			row.TotalSalesMoney += sales[j].TotalSale
			row.TotalSpendMoney += sales[j].TotalBuy
		}

		stocks, err := s.store.Stocks().FindByShopAndDate(shop.ID, key)
		if err != nil {
			return nil, err
		}
		for j := range stocks {
			row.TotalSalesPic += stocks[j].QuantitySale
			row.TotalBuyPic += stocks[j].QuantityBuy
		}

		rows = append(rows, row)
	}
	return rows, nil
}

func (s *overviewService) StockDetails(shopID, productID *uuid.UUID) ([]model.Stock, error) {
	return s.store.Stocks().FindFiltered(repository.StockFilter{
		ShopID:    shopID,
		ProductID: productID,
	})
}
