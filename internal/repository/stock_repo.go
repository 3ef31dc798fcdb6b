package repository

import (
	"go-shop-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockFilter narrows stock detail queries; nil fields match everything.
type StockFilter struct {
	ShopID    *uuid.UUID
	ProductID *uuid.UUID
}

type StockRepository interface {
	Create(stock *model.Stock) error
	FindByShopAndDate(shopID uuid.UUID, dateKey string) ([]model.Stock, error)
	ExistsForShopOnDate(shopID uuid.UUID, dateKey string) (bool, error)
	DeleteByShopAndDate(shopID uuid.UUID, dateKey string) error
	FindFiltered(filter StockFilter) ([]model.Stock, error)
	FindByShop(shopID uuid.UUID) ([]model.Stock, error)
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) Create(stock *model.Stock) error {
	return r.db.Create(stock).Error
}

func (r *stockRepo) FindByShopAndDate(shopID uuid.UUID, dateKey string) ([]model.Stock, error) {
	var stocks []model.Stock
	err := r.db.Find(&stocks, "shop_id = ? AND date = ?", shopID, dateKey).Error
	return stocks, err
}

func (r *stockRepo) ExistsForShopOnDate(shopID uuid.UUID, dateKey string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Stock{}).
		Where("shop_id = ? AND date = ?", shopID, dateKey).
		Count(&count).Error
	return count > 0, err
}

func (r *stockRepo) DeleteByShopAndDate(shopID uuid.UUID, dateKey string) error {
	return r.db.Unscoped().
		Where("shop_id = ? AND date = ?", shopID, dateKey).
		Delete(&model.Stock{}).Error
}

// FindFiltered resolves the product and shop references for the stock detail
// views, optionally narrowed by shop and/or product.
func (r *stockRepo) FindFiltered(filter StockFilter) ([]model.Stock, error) {
	q := r.db.Preload("Product").Preload("Shop")
	if filter.ShopID != nil {
		q = q.Where("shop_id = ?", *filter.ShopID)
	}
	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}

	var stocks []model.Stock
	err := q.Order("created_at DESC").Find(&stocks).Error
	return stocks, err
}

func (r *stockRepo) FindByShop(shopID uuid.UUID) ([]model.Stock, error) {
	var stocks []model.Stock
	err := r.db.Find(&stocks, "shop_id = ?", shopID).Error
	return stocks, err
}
