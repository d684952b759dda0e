package cashregister

import (
	"context"
	"time"

	"github.com/velmora/pos-backoffice/internal/model"
)

// Repository persists the immutable register ledger. Movements are never
// updated or deleted; corrections append inverse entries.
type Repository interface {
	InsertMovement(ctx context.Context, m *model.CashMovement) error
	// ListByDay returns the active movements of day in chronological order.
	ListByDay(ctx context.Context, day time.Time) ([]model.CashMovement, error)
}
