package model

// Product is a sellable item shared across all shops. TotalPic is the running
// count of physical units on hand, maintained incrementally by report
// submissions and never allowed below zero.
type Product struct {
	BaseModel
	Name      string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SalePrice int64  `gorm:"not null" json:"sale_price" validate:"required,gt=0"`
	BuyPrice  int64  `gorm:"not null" json:"buy_price" validate:"required,gt=0"`
	TotalPic  int    `gorm:"default:0" json:"total_pic"`
}
