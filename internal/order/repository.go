package order

import (
	"context"

	"github.com/velmora/pos-backoffice/internal/order/dto"
	"github.com/velmora/pos-backoffice/internal/model"
)

// Repository persists order headers and lines. Get methods return (nil, nil)
// when no row matches. GetOrderForUpdate takes a row-level lock on the header
// and therefore requires an enclosing transaction; the lifecycle controller
// always locks the header before the read-aggregate-write sequence so two
// concurrent line mutations on one order serialize instead of losing updates.
type Repository interface {
	CreateOrder(ctx context.Context, o *model.Order) error
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	GetOrderForUpdate(ctx context.Context, id string) (*model.Order, error)
	UpdateHeaderTotals(ctx context.Context, o *model.Order) error
	ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)

	InsertLine(ctx context.Context, l *model.OrderLine) error
	GetLine(ctx context.Context, orderID, lineID string) (*model.OrderLine, error)
	DeleteLine(ctx context.Context, lineID string) error
	VoidLine(ctx context.Context, lineID, modifiedBy string) error
	ListLines(ctx context.Context, orderID string) ([]model.OrderLine, error)

	// SumActiveLines aggregates subtotal, discount and tax over the order's
	// active lines; zeroes when none remain.
	SumActiveLines(ctx context.Context, orderID string) (model.OrderTotals, error)
}
