package service

import "errors"

var (
	ErrShopNotFound    = errors.New("shop not found")
	ErrProductNotFound = errors.New("product not found")
	ErrNoStockEntries  = errors.New("report contains no products")
	ErrInvalidQuantity = errors.New("quantities must not be negative")
	ErrInvalidTotals   = errors.New("money totals must not be negative")
	ErrMissingDate     = errors.New("report date is required")
)
