package handler

import (
	"errors"

	"go-shop-ledger/internal/calendar"
	"go-shop-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// SubmitReportRequest is the wire form of a daily report. Dates arrive as
// YYYY-MM-DD; the quantity maps are keyed by product UUID.
type SubmitReportRequest struct {
	ShopID               string         `json:"shop_id"`
	Date                 string         `json:"date"`
	TotalMoneyCollection int64          `json:"total_money_collection"`
	TotalMoneySpent      int64          `json:"total_money_spent"`
	Buy                  map[string]int `json:"buy"`
	Sale                 map[string]int `json:"sale"`
}

// SubmitReport handles POST /api/v1/reports
func (h *ReportHandler) SubmitReport(c *fiber.Ctx) error {
	var req SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shop ID"})
	}

	day, err := calendar.ParseExternal(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	buy, err := parseQuantities(req.Buy)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	sale, err := parseQuantities(req.Sale)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Submit(service.ReportInput{
		ShopID:               shopID,
		Day:                  day,
		TotalMoneyCollection: req.TotalMoneyCollection,
		TotalMoneySpent:      req.TotalMoneySpent,
		Buy:                  buy,
		Sale:                 sale,
	})
	if err != nil {
		return c.Status(reportStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sales report recorded", "data": result})
}

func parseQuantities(in map[string]int) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(in))
	for raw, qty := range in {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid product ID in quantity map")
		}
		out[id] = qty
	}
	return out, nil
}

func reportStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrShopNotFound):
		return 404
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrNoStockEntries),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidTotals),
		errors.Is(err, service.ErrMissingDate):
		return 400
	default:
		return 500
	}
}
