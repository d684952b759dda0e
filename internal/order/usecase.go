package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/velmora/pos-backoffice/internal/cashregister"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/internal/order/dto"
)

// RegisterGate is the slice of the cash register the order lifecycle needs:
// checking whether sales are allowed right now, appending the cash entry that
// mirrors a recorded sale line, and appending its counter-entry when the line
// is voided or deleted.
type RegisterGate interface {
	Status(ctx context.Context) (cashregister.SessionStatus, error)
	Record(ctx context.Context, op model.CashOperation, amount decimal.Decimal, description, referenceID string) (*model.CashMovement, error)
	Reverse(ctx context.Context, amount decimal.Decimal, description, referenceID string) (*model.CashMovement, error)
}

// UseCase drives the order lifecycle. Every line mutation re-aggregates the
// header from the surviving active lines and returns the refreshed totals.
type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, []model.OrderLine, error)
	ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)

	AddLine(ctx context.Context, input *dto.AddLineInput) (*model.OrderLine, *dto.UpdatedTotals, error)
	RemoveLine(ctx context.Context, orderID, lineID string) (*dto.UpdatedTotals, error)
	VoidLine(ctx context.Context, input *dto.VoidLineInput) (*dto.UpdatedTotals, error)
}
