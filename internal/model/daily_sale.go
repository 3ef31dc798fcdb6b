package model

import "github.com/google/uuid"

// DailySale aggregates one shop's money movement for one day: TotalSale is
// money collected, TotalBuy money spent. At most one record exists per
// (shop, date); the day's Stock records reference it.
type DailySale struct {
	BaseModel
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id" validate:"uuid_required"`
	Shop      *Shop     `json:"shop,omitempty" validate:"-"`
	Date      string    `gorm:"type:varchar(10);not null;index" json:"date"`
	TotalSale int64     `gorm:"not null;default:0" json:"total_sale" validate:"min=0"`
	TotalBuy  int64     `gorm:"not null;default:0" json:"total_buy" validate:"min=0"`
	Stocks    []Stock   `gorm:"foreignKey:DailySaleID" json:"stocks,omitempty" validate:"-"`
}

// NetMoney is the day's money delta carried into the ledger.
func (d *DailySale) NetMoney() int64 {
	return d.TotalSale - d.TotalBuy
}
