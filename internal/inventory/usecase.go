package inventory

import (
	"context"

	"github.com/velmora/pos-backoffice/internal/inventory/dto"
	"github.com/velmora/pos-backoffice/internal/model"
)

type UseCase interface {
	// AdjustStock applies a signed stock delta with its audit row. If the
	// context does not already carry a transaction, one is opened around it.
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.InventoryMovement, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
}
