package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockInput is a signed stock delta plus its audit trail.
type AdjustStockInput struct {
	ProductID      string
	QuantityChange int64 // negative deducts
	MovementType   string
	ReferenceType  string
	ReferenceID    string
	Notes          string
	UserID         string

	// Set on purchase-line creation: tracks the latest supplier price.
	LastPurchase *LastPurchaseUpdate
}

type LastPurchaseUpdate struct {
	Price decimal.Decimal
	Date  time.Time
}

type MovementFilters struct {
	ProductID    string `form:"product_id"`
	MovementType string `form:"movement_type"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
}
