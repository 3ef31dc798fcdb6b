package service

import (
	"log"

	"go-shop-ledger/internal/calendar"
	"go-shop-ledger/internal/repository"

	"github.com/google/uuid"
)

// BackfillService keeps every shop's ledger continuous: shops with no stock
// activity in the idle window get a synthesized zero-quantity report for the
// current day, so the rollforward lookback always finds a prior entry.
type BackfillService interface {
	Run(today calendar.Day)
}

type backfillService struct {
	store    repository.Store
	reports  ReportService
	idleDays int
}

func NewBackfillService(store repository.Store, reports ReportService, idleDays int) BackfillService {
	return &backfillService{
		store:    store,
		reports:  reports,
		idleDays: idleDays,
	}
}

// Run checks each shop independently; a failure for one shop is logged and the
// loop continues with the next.
func (s *backfillService) Run(today calendar.Day) {
	shops, err := s.store.Shops().FindAll()
	if err != nil {
		log.Printf("backfill: listing shops failed: %v", err)
		return
	}

	for i := range shops {
		shop := &shops[i]

		active, err := s.hasRecentActivity(shop.ID, today)
		if err != nil {
			log.Printf("backfill: activity check for shop %s failed: %v", shop.Name, err)
			continue
		}
		if active {
			continue
		}

		zero := make(map[uuid.UUID]int, len(shop.Products))
		for _, p := range shop.Products {
			zero[p.ID] = 0
		}

		if _, err := s.reports.Submit(ReportInput{
			ShopID: shop.ID,
			Day:    today,
			Buy:    zero,
			Sale:   zero,
		}); err != nil {
			log.Printf("backfill: zero report for shop %s failed: %v", shop.Name, err)
			continue
		}
		log.Printf("backfill: synthesized zero report for shop %s on %s", shop.Name, today)
	}
}

func (s *backfillService) hasRecentActivity(shopID uuid.UUID, today calendar.Day) (bool, error) {
	for i := 1; i <= s.idleDays; i++ {
		found, err := s.store.Stocks().ExistsForShopOnDate(shopID, today.AddDays(-i).Key())
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}
