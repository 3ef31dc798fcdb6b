package repository

import (
	"gorm.io/gorm"
)

// Store bundles the per-entity repositories behind one handle and gives the
// services a single transaction boundary: everything done with the Store
// passed to the Transaction callback commits or rolls back as a unit.
type Store interface {
	Products() ProductRepository
	Shops() ShopRepository
	Stocks() StockRepository
	DailySales() DailySaleRepository
	Ledger() LedgerRepository
	Users() UserRepository
	Transaction(fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Products() ProductRepository     { return NewProductRepo(s.db) }
func (s *gormStore) Shops() ShopRepository           { return NewShopRepo(s.db) }
func (s *gormStore) Stocks() StockRepository         { return NewStockRepo(s.db) }
func (s *gormStore) DailySales() DailySaleRepository { return NewDailySaleRepo(s.db) }
func (s *gormStore) Ledger() LedgerRepository        { return NewLedgerRepo(s.db) }
func (s *gormStore) Users() UserRepository           { return NewUserRepo(s.db) }

func (s *gormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
