package model

// Shop is a retail outlet that files daily sales reports. TotalInvestment is
// the running money tied up in the shop, recomputed on every report
// submission; ReportDate is the storage key (DD-MM-YYYY) of the last report.
type Shop struct {
	BaseModel
	Name            string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address         string    `gorm:"type:varchar(255);not null" json:"address" validate:"required"`
	Owner           string    `gorm:"type:varchar(255);not null" json:"owner" validate:"required"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone"`
	Products        []Product `gorm:"many2many:shop_products;" json:"products,omitempty"`
	TotalInvestment int64     `gorm:"default:0" json:"total_investment"`
	ReportDate      string    `gorm:"type:varchar(10)" json:"report_date"`
}
