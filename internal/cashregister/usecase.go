package cashregister

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/velmora/pos-backoffice/internal/model"
)

// SessionStatus describes today's register state. The running balance is a
// chronological fold over the day's active movements.
type SessionStatus struct {
	IsOpen         bool            `json:"is_open"`
	IsClosed       bool            `json:"is_closed"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// CanSell reports whether sale lines may be recorded right now: the register
// must have been opened today and not yet closed.
func (s SessionStatus) CanSell() bool {
	return s.IsOpen && !s.IsClosed
}

type UseCase interface {
	Open(ctx context.Context, amount decimal.Decimal, description string) (*model.CashMovement, error)
	Close(ctx context.Context) (*model.CashMovement, error)
	Record(ctx context.Context, op model.CashOperation, amount decimal.Decimal, description, referenceID string) (*model.CashMovement, error)
	// Reverse appends the inverse entry for a previously recorded amount.
	// Movements are immutable, so corrections are counter-entries, and they
	// are accepted even after the session closed.
	Reverse(ctx context.Context, amount decimal.Decimal, description, referenceID string) (*model.CashMovement, error)
	Status(ctx context.Context) (SessionStatus, error)
	ListToday(ctx context.Context) ([]model.CashMovement, error)
}
