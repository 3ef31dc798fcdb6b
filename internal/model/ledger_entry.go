package model

import "github.com/google/uuid"

// LedgerEntry is the rollforward output for one shop and one day: the
// cumulative money balance, unit balance, and investment as of that date.
// Entries are upserted, never duplicated, per (shop, date). TotalInvestment
// snapshots the shop's investment on that day so that every carry-in lookup
// (money, units and investment alike) reads the same record.
type LedgerEntry struct {
	BaseModel
	ShopID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ledger_shop_date" json:"shop_id"`
	Date            string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_ledger_shop_date" json:"date"`
	TotalMoney      int64     `gorm:"not null;default:0" json:"total_money"`
	TotalPic        int       `gorm:"not null;default:0" json:"total_pic"`
	TotalInvestment int64     `gorm:"not null;default:0" json:"total_investment"`
}
