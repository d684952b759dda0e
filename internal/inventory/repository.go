package inventory

import (
	"context"

	"github.com/velmora/pos-backoffice/internal/inventory/dto"
	"github.com/velmora/pos-backoffice/internal/model"
)

// Repository serializes stock mutations per product row and keeps the movement
// audit trail. AdjustStock must run inside the caller's transaction so the stock
// change commits or rolls back together with the order mutation that caused it.
type Repository interface {
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.InventoryMovement, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
}
