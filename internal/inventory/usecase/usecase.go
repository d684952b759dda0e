package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/inventory"
	"github.com/velmora/pos-backoffice/internal/inventory/dto"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/pkg/database/postgres"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	tx     postgres.TxManager
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, tx postgres.TxManager, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		tx:     tx,
		logger: log,
	}
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.InventoryMovement, error) {
	if input.ProductID == "" || input.QuantityChange == 0 {
		return nil, apperr.New(apperr.KindValidation, "product id and a non-zero quantity change are required")
	}

	var movement *model.InventoryMovement
	err := uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		movement, err = uc.repo.AdjustStock(ctx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("stock adjusted",
		zap.String("product_id", input.ProductID),
		zap.Int64("change", input.QuantityChange),
		zap.Int64("after", movement.QuantityAfter),
	)
	return movement, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}
