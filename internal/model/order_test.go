package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFormatDocumentNumber(t *testing.T) {
	assert.Equal(t, "INV-00001", FormatDocumentNumber(OrderKindSale, 1))
	assert.Equal(t, "INV-00123", FormatDocumentNumber(OrderKindSale, 123))
	assert.Equal(t, "PO-00042", FormatDocumentNumber(OrderKindPurchase, 42))
	// Numbers past the pad width keep all digits.
	assert.Equal(t, "INV-123456", FormatDocumentNumber(OrderKindSale, 123456))
}

func TestOrderKindSequenceName(t *testing.T) {
	assert.Equal(t, "sale_invoice", OrderKindSale.SequenceName())
	assert.Equal(t, "purchase_order", OrderKindPurchase.SequenceName())
}

func TestComputeAmounts(t *testing.T) {
	l := &OrderLine{
		Quantity:  3,
		UnitPrice: dec("19.99"),
		Discount:  dec("2.00"),
		Tax:       dec("10.43"),
	}
	l.ComputeAmounts()

	assert.Equal(t, "59.97", l.Subtotal.StringFixed(2))
	assert.Equal(t, "68.40", l.TotalPrice.StringFixed(2)) // 59.97 - 2.00 + 10.43
}

func TestComputeAmountsRoundsInputs(t *testing.T) {
	l := &OrderLine{
		Quantity:  1,
		UnitPrice: dec("1.005"),
	}
	l.ComputeAmounts()
	assert.Equal(t, "1.01", l.UnitPrice.StringFixed(2))
	assert.Equal(t, "1.01", l.Subtotal.StringFixed(2))
}

func TestApplyTotals(t *testing.T) {
	o := &Order{}
	o.ApplyTotals(OrderTotals{
		Subtotal: dec("100.00"),
		Discount: dec("5.00"),
		Tax:      dec("17.10"),
	})
	assert.Equal(t, "112.10", o.TotalAmount.StringFixed(2))

	// A discount exceeding subtotal plus tax produces a negative total, which
	// stays representable rather than being clamped.
	o.ApplyTotals(OrderTotals{Subtotal: dec("10.00"), Discount: dec("20.00")})
	assert.Equal(t, "-10.00", o.TotalAmount.StringFixed(2))
}

func TestStatusToggle(t *testing.T) {
	assert.Equal(t, StatusVoided, StatusActive.Toggled())
	assert.Equal(t, StatusActive, StatusVoided.Toggled())
	assert.True(t, StatusActive.Active())
	assert.False(t, StatusVoided.Active())
}

func TestStatusScan(t *testing.T) {
	var s Status
	assert.NoError(t, s.Scan(true))
	assert.Equal(t, StatusActive, s)
	assert.NoError(t, s.Scan(false))
	assert.Equal(t, StatusVoided, s)
	assert.Error(t, s.Scan("yes"))
}

func TestCashOperationSigned(t *testing.T) {
	amount := dec("10.00")
	assert.Equal(t, "10.00", CashOpen.Signed(amount).StringFixed(2))
	assert.Equal(t, "10.00", CashSale.Signed(amount).StringFixed(2))
	assert.Equal(t, "-10.00", CashExpense.Signed(amount).StringFixed(2))
	assert.Equal(t, "0.00", CashClose.Signed(amount).StringFixed(2))
}

func TestCustomerNormalize(t *testing.T) {
	c := &Customer{Name: "  maria JOSE ", LastName: "pErEz"}
	c.Normalize()
	assert.Equal(t, "Maria Jose", c.Name)
	assert.Equal(t, "Perez", c.LastName)
}

func TestProductNormalize(t *testing.T) {
	p := &Product{Name: " cola 500ml ", Code: "p-001"}
	p.Normalize()
	assert.Equal(t, "COLA 500ML", p.Name)
	assert.Equal(t, "P-001", p.Code)
}
