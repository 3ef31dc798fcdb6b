package repository

import (
	"go-shop-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LedgerRepository interface {
	FindOneByShopAndDate(shopID uuid.UUID, dateKey string) (*model.LedgerEntry, error)
	Upsert(entry *model.LedgerEntry) error
	FindByShop(shopID uuid.UUID) ([]model.LedgerEntry, error)
}

type ledgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepo(db *gorm.DB) LedgerRepository {
	return &ledgerRepo{db}
}

func (r *ledgerRepo) FindOneByShopAndDate(shopID uuid.UUID, dateKey string) (*model.LedgerEntry, error) {
	var entry model.LedgerEntry
	err := r.db.First(&entry, "shop_id = ? AND date = ?", shopID, dateKey).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Upsert overwrites the balances for (shop, date) if an entry already exists,
// so the ledger never holds duplicates for a key.
func (r *ledgerRepo) Upsert(entry *model.LedgerEntry) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shop_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_money", "total_pic", "total_investment", "updated_at",
		}),
	}).Create(entry).Error
}

func (r *ledgerRepo) FindByShop(shopID uuid.UUID) ([]model.LedgerEntry, error) {
	var entries []model.LedgerEntry
	err := r.db.Order("created_at DESC").Find(&entries, "shop_id = ?", shopID).Error
	return entries, err
}
