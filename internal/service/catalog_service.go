package service

import (
	"fmt"

	"go-shop-ledger/internal/calendar"
	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository"
	"go-shop-ledger/pkg/validator"

	"github.com/google/uuid"
)

// ShopInput carries the editable shop fields plus the products the shop stocks.
type ShopInput struct {
	Name       string      `json:"name" validate:"required"`
	Address    string      `json:"address" validate:"required"`
	Owner      string      `json:"owner" validate:"required"`
	Phone      string      `json:"phone"`
	ProductIDs []uuid.UUID `json:"product_ids"`
}

type CatalogService interface {
	CreateProduct(product *model.Product) error
	ListProducts() ([]model.Product, error)
	CreateShop(input ShopInput) (*model.Shop, error)
	ListShops() ([]model.Shop, error)
	GetShop(id uuid.UUID) (*model.Shop, error)
	UpdateShop(id uuid.UUID, input ShopInput) (*model.Shop, error)
	DeleteShop(id uuid.UUID) error
	ShopProducts(id uuid.UUID) ([]model.Product, error)
}

type catalogService struct {
	store repository.Store
}

func NewCatalogService(store repository.Store) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) CreateProduct(product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	// New products start with no units on hand.
	product.TotalPic = 0
	return s.store.Products().Create(product)
}

func (s *catalogService) ListProducts() ([]model.Product, error) {
	return s.store.Products().FindAll()
}

func (s *catalogService) CreateShop(input ShopInput) (*model.Shop, error) {
	if errs := validator.ValidateStruct(&input); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	products, err := s.resolveProducts(input.ProductIDs)
	if err != nil {
		return nil, err
	}

	shop := &model.Shop{
		Name:            input.Name,
		Address:         input.Address,
		Owner:           input.Owner,
		Phone:           input.Phone,
		Products:        products,
		TotalInvestment: 0,
		ReportDate:      calendar.Today().Key(),
	}
	if err := s.store.Shops().Create(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *catalogService) ListShops() ([]model.Shop, error) {
	return s.store.Shops().FindAll()
}

func (s *catalogService) GetShop(id uuid.UUID) (*model.Shop, error) {
	shop, err := s.store.Shops().FindByID(id)
	if err != nil {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

func (s *catalogService) UpdateShop(id uuid.UUID, input ShopInput) (*model.Shop, error) {
	if errs := validator.ValidateStruct(&input); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	products, err := s.resolveProducts(input.ProductIDs)
	if err != nil {
		return nil, err
	}

	var updated *model.Shop
	err = s.store.Transaction(func(st repository.Store) error {
		shop, err := st.Shops().FindByID(id)
		if err != nil {
			return ErrShopNotFound
		}

		shop.Name = input.Name
		shop.Address = input.Address
		shop.Owner = input.Owner
		shop.Phone = input.Phone
		if err := st.Shops().Update(shop); err != nil {
			return err
		}
		if err := st.Shops().ReplaceProducts(shop, products); err != nil {
			return err
		}

		shop.Products = products
		updated = shop
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *catalogService) DeleteShop(id uuid.UUID) error {
	if _, err := s.store.Shops().FindByID(id); err != nil {
		return ErrShopNotFound
	}
	return s.store.Shops().Delete(id)
}

func (s *catalogService) ShopProducts(id uuid.UUID) ([]model.Product, error) {
	shop, err := s.store.Shops().FindByID(id)
	if err != nil {
		return nil, ErrShopNotFound
	}
	return shop.Products, nil
}

func (s *catalogService) resolveProducts(ids []uuid.UUID) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	products, err := s.store.Products().FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(ids) {
		return nil, ErrProductNotFound
	}
	return products, nil
}
