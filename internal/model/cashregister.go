package model

import (
	"github.com/shopspring/decimal"
)

type CashOperation string

const (
	CashOpen    CashOperation = "open"
	CashClose   CashOperation = "close"
	CashSale    CashOperation = "sale"
	CashIncome  CashOperation = "income"
	CashExpense CashOperation = "expense"
)

// Signed returns the amount's contribution to the running balance. Open sets
// the base, close records the final balance and contributes nothing.
func (op CashOperation) Signed(amount decimal.Decimal) decimal.Decimal {
	switch op {
	case CashOpen, CashSale, CashIncome:
		return amount
	case CashExpense:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// CashMovement is one immutable entry in the daily register ledger. The running
// balance is a chronological fold over the day's active movements, never stored.
type CashMovement struct {
	BaseModel
	Operation   CashOperation   `db:"operation_type" json:"operation_type"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Description string          `db:"description" json:"description"`
	UserID      *string         `db:"user_id" json:"user_id"`
	ReferenceID *string         `db:"reference_id" json:"reference_id"` // originating sale, if any
}
