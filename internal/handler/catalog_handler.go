package handler

import (
	"errors"

	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service service.CatalogService
	ledger  service.LedgerService
}

func NewCatalogHandler(s service.CatalogService, l service.LedgerService) *CatalogHandler {
	return &CatalogHandler{service: s, ledger: l}
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *CatalogHandler) CreateShop(c *fiber.Ctx) error {
	var input service.ShopInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	shop, err := h.service.CreateShop(input)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Shop created", "data": shop})
}

func (h *CatalogHandler) GetShops(c *fiber.Ctx) error {
	shops, err := h.service.ListShops()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(shops)
}

func (h *CatalogHandler) GetShop(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	shop, err := h.service.GetShop(id)
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(shop)
}

func (h *CatalogHandler) UpdateShop(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	var input service.ShopInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	shop, err := h.service.UpdateShop(id, input)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Shop updated", "data": shop})
}

func (h *CatalogHandler) DeleteShop(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	if err := h.service.DeleteShop(id); err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Shop deleted"})
}

func (h *CatalogHandler) GetShopProducts(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	products, err := h.service.ShopProducts(id)
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}

// GetShopLedger handles GET /api/v1/shops/:id/ledger
func (h *CatalogHandler) GetShopLedger(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	entries, err := h.ledger.History(id)
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}

func catalogStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrShopNotFound):
		return 404
	case errors.Is(err, service.ErrProductNotFound):
		return 400
	default:
		return 500
	}
}
