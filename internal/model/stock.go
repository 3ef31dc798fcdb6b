package model

import "github.com/google/uuid"

// Stock records one day's buy/sell quantities for one product at one shop.
// At most one active record exists per (shop, product, date); resubmitting a
// day's report replaces the whole (shop, date) set.
type Stock struct {
	BaseModel
	ProductID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product      *Product   `json:"product,omitempty" validate:"-"`
	ShopID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"shop_id" validate:"uuid_required"`
	Shop         *Shop      `json:"shop,omitempty" validate:"-"`
	QuantityBuy  int        `gorm:"not null;default:0" json:"quantity_buy" validate:"min=0"`
	QuantitySale int        `gorm:"not null;default:0" json:"quantity_sale" validate:"min=0"`
	Date         string     `gorm:"type:varchar(10);not null;index" json:"date"`
	DailySaleID  *uuid.UUID `gorm:"type:uuid;index" json:"daily_sale_id,omitempty"`
}

// NetUnits is the record's contribution to the product unit counter.
func (s *Stock) NetUnits() int {
	return s.QuantityBuy - s.QuantitySale
}
