package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/velmora/pos-backoffice/internal/model"
)

type CreateOrderInput struct {
	Kind        model.OrderKind `json:"-"`
	PartyID     string          `json:"party_id" binding:"required"`
	Observation string          `json:"observation"`
	Date        time.Time       `json:"date"`
}

type AddLineInput struct {
	OrderID   string          `json:"-"`
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	Discount  decimal.Decimal `json:"discount"`
	Tax       decimal.Decimal `json:"tax"`
}

type VoidLineInput struct {
	OrderID       string `json:"-"`
	LineID        string `json:"-"`
	AdminUsername string `json:"admin_username" binding:"required"`
	AdminPassword string `json:"admin_password" binding:"required"`
}

type OrderFilters struct {
	Kind       model.OrderKind `form:"-"`
	Number     string          `form:"number"`
	PartyID    string          `form:"party_id"`
	ActiveOnly bool            `form:"active_only"`
	Page       int             `form:"page"`
	PageSize   int             `form:"page_size"`
}

// UpdatedTotals is the refreshed header aggregate returned after every line
// mutation so clients can repaint without a reload. Values are 2-dp strings.
type UpdatedTotals struct {
	Subtotal    string `json:"subtotal"`
	Discount    string `json:"discount"`
	Tax         string `json:"tax"`
	TotalAmount string `json:"total_amount"`
}

func TotalsFromOrder(o *model.Order) *UpdatedTotals {
	return &UpdatedTotals{
		Subtotal:    o.Subtotal.StringFixed(2),
		Discount:    o.Discount.StringFixed(2),
		Tax:         o.Tax.StringFixed(2),
		TotalAmount: o.TotalAmount.StringFixed(2),
	}
}
