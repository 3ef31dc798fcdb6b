package service

import (
	"encoding/json"

	"go-shop-ledger/internal/calendar"
	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository"
	"go-shop-ledger/internal/ws"

	"github.com/google/uuid"
)

// ReportInput is one shop's buy/sell report for one day: money totals for the
// day plus per-product quantity maps. A product appearing in either map gets
// exactly one Stock record for the day.
type ReportInput struct {
	ShopID               uuid.UUID
	Day                  calendar.Day
	TotalMoneyCollection int64
	TotalMoneySpent      int64
	Buy                  map[uuid.UUID]int
	Sale                 map[uuid.UUID]int
}

type ReportResult struct {
	DailySale *model.DailySale   `json:"daily_sale"`
	Ledger    *model.LedgerEntry `json:"ledger"`
}

type ReportService interface {
	Submit(input ReportInput) (*ReportResult, error)
}

type reportService struct {
	store        repository.Store
	wsHub        *ws.Hub
	lookbackDays int
}

func NewReportService(store repository.Store, hub *ws.Hub, lookbackDays int) ReportService {
	return &reportService{
		store:        store,
		wsHub:        hub,
		lookbackDays: lookbackDays,
	}
}

// Submit records the report in a single transaction: reverse the effect of any
// earlier submission for the same (shop, day), apply the new quantities, roll
// the shop investment forward, write the DailySale, and update the ledger.
// Any failure rolls the whole submission back.
func (s *reportService) Submit(in ReportInput) (*ReportResult, error) {
	if in.Day.IsZero() {
		return nil, ErrMissingDate
	}
	if in.TotalMoneyCollection < 0 || in.TotalMoneySpent < 0 {
		return nil, ErrInvalidTotals
	}
	for _, qty := range in.Buy {
		if qty < 0 {
			return nil, ErrInvalidQuantity
		}
	}
	for _, qty := range in.Sale {
		if qty < 0 {
			return nil, ErrInvalidQuantity
		}
	}

	var result ReportResult
	err := s.store.Transaction(func(st repository.Store) error {
		shop, err := st.Shops().FindByID(in.ShopID)
		if err != nil {
			return ErrShopNotFound
		}

		ids := unionProductIDs(in.Buy, in.Sale)
		if len(ids) == 0 {
			return ErrNoStockEntries
		}
		products, err := st.Products().FindByIDs(ids)
		if err != nil {
			return err
		}
		if len(products) != len(ids) {
			return ErrProductNotFound
		}

		key := in.Day.Key()

		// Step 1: undo the prior submission for this day. Each existing stock
		// record contributed (buy - sale) units to its product counter.
		existing, err := st.Stocks().FindByShopAndDate(shop.ID, key)
		if err != nil {
			return err
		}
		reversed := make(map[uuid.UUID]int)
		for i := range existing {
			reversed[existing[i].ProductID] += existing[i].NetUnits()
		}
		for productID, net := range reversed {
			product, err := st.Products().FindByID(productID)
			if err != nil {
				// Product removed since the original submission; nothing to reverse.
				continue
			}
			if err := st.Products().UpdateTotalPic(productID, clampPic(product.TotalPic-net)); err != nil {
				return err
			}
		}
		if err := st.Stocks().DeleteByShopAndDate(shop.ID, key); err != nil {
			return err
		}
		if err := st.DailySales().DeleteByShopAndDate(shop.ID, key); err != nil {
			return err
		}

		// Step 2: apply the new quantities.
		sale := &model.DailySale{
			ShopID:    shop.ID,
			Date:      key,
			TotalSale: in.TotalMoneyCollection,
			TotalBuy:  in.TotalMoneySpent,
		}
		if err := st.DailySales().Create(sale); err != nil {
			return err
		}

		var todayInvestment int64
		for i := range products {
			product := &products[i]
			buyQty := in.Buy[product.ID]
			saleQty := in.Sale[product.ID]

			// Re-read: the reversal above may have touched this counter.
			current, err := st.Products().FindByID(product.ID)
			if err != nil {
				return ErrProductNotFound
			}
			newPic := clampPic(current.TotalPic + buyQty - saleQty)
			if err := st.Products().UpdateTotalPic(product.ID, newPic); err != nil {
				return err
			}

			stock := &model.Stock{
				ProductID:    product.ID,
				ShopID:       shop.ID,
				QuantityBuy:  buyQty,
				QuantitySale: saleQty,
				Date:         key,
				DailySaleID:  &sale.ID,
			}
			if err := st.Stocks().Create(stock); err != nil {
				return err
			}

			todayInvestment += int64(buyQty-saleQty) * product.BuyPrice
		}

		// Step 3: investment rollforward. Carry-in reads the same prior
		// ledger entry the balance rollforward uses.
		var carryInvestment int64
		for i := 1; i <= s.lookbackDays; i++ {
			prior, err := st.Ledger().FindOneByShopAndDate(shop.ID, in.Day.AddDays(-i).Key())
			if err != nil {
				continue
			}
			carryInvestment = prior.TotalInvestment
			break
		}
		shop.TotalInvestment = carryInvestment + todayInvestment
		shop.ReportDate = key
		if err := st.Shops().UpdateInvestment(shop.ID, shop.TotalInvestment, key); err != nil {
			return err
		}

		// Step 4: ledger update, inside the same transaction so the caller
		// observes the submission and its rollforward together.
		entry, err := rollforward(st, shop, in.Day, s.lookbackDays)
		if err != nil {
			return err
		}

		result = ReportResult{DailySale: sale, Ledger: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastReport(&in, &result)
	return &result, nil
}

func (s *reportService) broadcastReport(in *ReportInput, result *ReportResult) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":    "report_submitted",
			"shop_id": in.ShopID,
			"date":    in.Day.External(),
			"daily_sale": map[string]interface{}{
				"total_sale": result.DailySale.TotalSale,
				"total_buy":  result.DailySale.TotalBuy,
			},
			"ledger": map[string]interface{}{
				"total_money":      result.Ledger.TotalMoney,
				"total_pic":        result.Ledger.TotalPic,
				"total_investment": result.Ledger.TotalInvestment,
			},
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}

// clampPic keeps product unit counters at or above zero.
func clampPic(pic int) int {
	if pic < 0 {
		return 0
	}
	return pic
}

func unionProductIDs(buy, sale map[uuid.UUID]int) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(buy)+len(sale))
	ids := make([]uuid.UUID, 0, len(buy)+len(sale))
	for id := range buy {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for id := range sale {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
