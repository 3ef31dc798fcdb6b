package repository

import (
	"go-shop-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailySaleRepository interface {
	Create(sale *model.DailySale) error
	FindByShopAndDate(shopID uuid.UUID, dateKey string) ([]model.DailySale, error)
	FindOneByShopAndDate(shopID uuid.UUID, dateKey string) (*model.DailySale, error)
	DeleteByShopAndDate(shopID uuid.UUID, dateKey string) error
}

type dailySaleRepo struct {
	db *gorm.DB
}

func NewDailySaleRepo(db *gorm.DB) DailySaleRepository {
	return &dailySaleRepo{db}
}

func (r *dailySaleRepo) Create(sale *model.DailySale) error {
	return r.db.Create(sale).Error
}

func (r *dailySaleRepo) FindByShopAndDate(shopID uuid.UUID, dateKey string) ([]model.DailySale, error) {
	var sales []model.DailySale
	err := r.db.Find(&sales, "shop_id = ? AND date = ?", shopID, dateKey).Error
	return sales, err
}

func (r *dailySaleRepo) FindOneByShopAndDate(shopID uuid.UUID, dateKey string) (*model.DailySale, error) {
	var sale model.DailySale
	err := r.db.Preload("Stocks").First(&sale, "shop_id = ? AND date = ?", shopID, dateKey).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *dailySaleRepo) DeleteByShopAndDate(shopID uuid.UUID, dateKey string) error {
	return r.db.Unscoped().
		Where("shop_id = ? AND date = ?", shopID, dateKey).
		Delete(&model.DailySale{}).Error
}
