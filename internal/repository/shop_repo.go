package repository

import (
	"go-shop-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopRepository interface {
	Create(shop *model.Shop) error
	FindAll() ([]model.Shop, error)
	FindByID(id uuid.UUID) (*model.Shop, error)
	Update(shop *model.Shop) error
	ReplaceProducts(shop *model.Shop, products []model.Product) error
	UpdateInvestment(id uuid.UUID, totalInvestment int64, dateKey string) error
	Delete(id uuid.UUID) error
}

type shopRepo struct {
	db *gorm.DB
}

func NewShopRepo(db *gorm.DB) ShopRepository {
	return &shopRepo{db}
}

func (r *shopRepo) Create(shop *model.Shop) error {
	return r.db.Create(shop).Error
}

func (r *shopRepo) FindAll() ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.Preload("Products").Order("name ASC").Find(&shops).Error
	return shops, err
}

func (r *shopRepo) FindByID(id uuid.UUID) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.Preload("Products").First(&shop, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// Update writes scalar shop fields only; associations go through
// ReplaceProducts so a plain save never rewrites the product set.
func (r *shopRepo) Update(shop *model.Shop) error {
	return r.db.Omit("Products").Save(shop).Error
}

func (r *shopRepo) ReplaceProducts(shop *model.Shop, products []model.Product) error {
	return r.db.Model(shop).Association("Products").Replace(products)
}

func (r *shopRepo) UpdateInvestment(id uuid.UUID, totalInvestment int64, dateKey string) error {
	return r.db.Model(&model.Shop{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_investment": totalInvestment,
			"report_date":      dateKey,
		}).Error
}

func (r *shopRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Shop{}, "id = ?", id).Error
}
