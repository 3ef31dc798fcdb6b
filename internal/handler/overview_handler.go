package handler

import (
	"go-shop-ledger/internal/calendar"
	"go-shop-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OverviewHandler struct {
	service service.OverviewService
}

func NewOverviewHandler(s service.OverviewService) *OverviewHandler {
	return &OverviewHandler{service: s}
}

// GetDailySales handles GET /api/v1/overview/daily-sales?date=YYYY-MM-DD.
// Without a date it reports yesterday, the most recent complete day.
func (h *OverviewHandler) GetDailySales(c *fiber.Ctx) error {
	day := calendar.Today().AddDays(-1)
	if raw := c.Query("date"); raw != "" {
		parsed, err := calendar.ParseExternal(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		day = parsed
	}

	rows, err := h.service.DailySales(day)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"date": day.External(), "sales": rows})
}

// GetStockDetails handles GET /api/v1/stocks?shop_id=&product_id=
func (h *OverviewHandler) GetStockDetails(c *fiber.Ctx) error {
	var shopID, productID *uuid.UUID

	if raw := c.Query("shop_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
		}
		shopID = &id
	}
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
		}
		productID = &id
	}

	stocks, err := h.service.StockDetails(shopID, productID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stocks)
}
