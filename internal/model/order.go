package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderKind string

const (
	OrderKindSale     OrderKind = "sale"
	OrderKindPurchase OrderKind = "purchase"
)

// SequenceName returns the counter each kind draws its document numbers from.
func (k OrderKind) SequenceName() string {
	if k == OrderKindPurchase {
		return "purchase_order"
	}
	return "sale_invoice"
}

// DocumentPrefix is the tag prepended to the zero-padded sequence number.
func (k OrderKind) DocumentPrefix() string {
	if k == OrderKindPurchase {
		return "PO"
	}
	return "INV"
}

// FormatDocumentNumber renders e.g. INV-00042. Stored numbers are uppercase.
func FormatDocumentNumber(kind OrderKind, n int64) string {
	return strings.ToUpper(fmt.Sprintf("%s-%05d", kind.DocumentPrefix(), n))
}

// Order is a commercial transaction header: a sales invoice or a purchase order.
// Totals are derived from the active line set and never edited independently.
type Order struct {
	BaseModel
	Kind        OrderKind       `db:"kind" json:"kind"`
	Number      string          `db:"number" json:"number"`
	PartyID     string          `db:"party_id" json:"party_id"` // customer (sale) or supplier (purchase)
	Date        time.Time       `db:"date" json:"date"`
	Observation *string         `db:"observation" json:"observation"`
	Subtotal    decimal.Decimal `db:"subtotal" json:"subtotal"`
	Discount    decimal.Decimal `db:"discount" json:"discount"`
	Tax         decimal.Decimal `db:"tax" json:"tax"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
}

type OrderLine struct {
	BaseModel
	OrderID    string          `db:"order_id" json:"order_id"`
	ProductID  string          `db:"product_id" json:"product_id"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unit_price"`
	Discount   decimal.Decimal `db:"discount" json:"discount"`
	Tax        decimal.Decimal `db:"tax" json:"tax"`
	Subtotal   decimal.Decimal `db:"subtotal" json:"subtotal"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
}

// ComputeAmounts derives subtotal and total from quantity, unit price, discount
// and tax, rounding each stored field to 2 decimal places.
func (l *OrderLine) ComputeAmounts() {
	l.UnitPrice = l.UnitPrice.Round(2)
	l.Discount = l.Discount.Round(2)
	l.Tax = l.Tax.Round(2)
	l.Subtotal = decimal.NewFromInt(l.Quantity).Mul(l.UnitPrice).Round(2)
	l.TotalPrice = TotalAmount(l.Subtotal, l.Discount, l.Tax)
}

// OrderTotals is the aggregate over an order's active lines.
type OrderTotals struct {
	Subtotal decimal.Decimal `db:"subtotal"`
	Discount decimal.Decimal `db:"discount"`
	Tax      decimal.Decimal `db:"tax"`
}

// TotalAmount applies the additive tax convention: subtotal − discount + tax.
func TotalAmount(subtotal, discount, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Add(tax).Round(2)
}

// ApplyTotals writes the aggregate onto the header and derives the total amount.
func (o *Order) ApplyTotals(t OrderTotals) {
	o.Subtotal = t.Subtotal.Round(2)
	o.Discount = t.Discount.Round(2)
	o.Tax = t.Tax.Round(2)
	o.TotalAmount = TotalAmount(o.Subtotal, o.Discount, o.Tax)
}
