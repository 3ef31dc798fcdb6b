package service

import (
	"testing"

	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductStartsEmpty(t *testing.T) {
	store := memory.New()
	catalog := NewCatalogService(store)

	product := &model.Product{Name: "Tea", SalePrice: 20, BuyPrice: 12, TotalPic: 99}
	require.NoError(t, catalog.CreateProduct(product))

	got, err := store.Products().FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalPic)
}

func TestCreateProductValidation(t *testing.T) {
	store := memory.New()
	catalog := NewCatalogService(store)

	err := catalog.CreateProduct(&model.Product{Name: "", SalePrice: 20, BuyPrice: 12})
	assert.Error(t, err)

	err = catalog.CreateProduct(&model.Product{Name: "Tea", SalePrice: 0, BuyPrice: 12})
	assert.Error(t, err)
}

func TestCreateShopLinksProducts(t *testing.T) {
	store := memory.New()
	catalog := NewCatalogService(store)

	product := &model.Product{Name: "Tea", SalePrice: 20, BuyPrice: 12}
	require.NoError(t, catalog.CreateProduct(product))

	shop, err := catalog.CreateShop(ShopInput{
		Name:       "Corner Shop",
		Address:    "Station Road",
		Owner:      "Meera",
		Phone:      "9000000000",
		ProductIDs: []uuid.UUID{product.ID},
	})
	require.NoError(t, err)

	products, err := catalog.ShopProducts(shop.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tea", products[0].Name)
}

func TestCreateShopRejectsUnknownProduct(t *testing.T) {
	store := memory.New()
	catalog := NewCatalogService(store)

	_, err := catalog.CreateShop(ShopInput{
		Name:       "Corner Shop",
		Address:    "Station Road",
		Owner:      "Meera",
		ProductIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateShopReplacesProductSet(t *testing.T) {
	store := memory.New()
	catalog := NewCatalogService(store)

	tea := &model.Product{Name: "Tea", SalePrice: 20, BuyPrice: 12}
	soap := &model.Product{Name: "Soap", SalePrice: 15, BuyPrice: 10}
	require.NoError(t, catalog.CreateProduct(tea))
	require.NoError(t, catalog.CreateProduct(soap))

	shop, err := catalog.CreateShop(ShopInput{
		Name:       "Corner Shop",
		Address:    "Station Road",
		Owner:      "Meera",
		ProductIDs: []uuid.UUID{tea.ID},
	})
	require.NoError(t, err)

	updated, err := catalog.UpdateShop(shop.ID, ShopInput{
		Name:       "Corner Shop",
		Address:    "New Market",
		Owner:      "Meera",
		ProductIDs: []uuid.UUID{soap.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Market", updated.Address)

	products, err := catalog.ShopProducts(shop.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Soap", products[0].Name)
}

func TestDeleteShop(t *testing.T) {
	store := memory.New()
	catalog := NewCatalogService(store)

	shop, err := catalog.CreateShop(ShopInput{Name: "Corner Shop", Address: "Station Road", Owner: "Meera"})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteShop(shop.ID))
	_, err = catalog.GetShop(shop.ID)
	assert.ErrorIs(t, err, ErrShopNotFound)

	assert.ErrorIs(t, catalog.DeleteShop(uuid.New()), ErrShopNotFound)
}
