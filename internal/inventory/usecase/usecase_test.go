package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/inventory/dto"
	"github.com/velmora/pos-backoffice/internal/model"
)

type memRepo struct {
	stocks    map[string]int64
	movements []model.InventoryMovement
}

func (r *memRepo) AdjustStock(_ context.Context, input *dto.AdjustStockInput) (*model.InventoryMovement, error) {
	before := r.stocks[input.ProductID]
	after := before + input.QuantityChange
	r.stocks[input.ProductID] = after
	m := model.InventoryMovement{
		ProductID:      input.ProductID,
		MovementType:   input.MovementType,
		QuantityChange: input.QuantityChange,
		QuantityBefore: before,
		QuantityAfter:  after,
	}
	r.movements = append(r.movements, m)
	return &m, nil
}

func (r *memRepo) ListMovements(context.Context, *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return r.movements, len(r.movements), nil
}

type passTxManager struct{}

func (passTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestAdjustStock(t *testing.T) {
	repo := &memRepo{stocks: map[string]int64{"p1": 10}}
	uc := NewInventoryUseCase(repo, passTxManager{}, zap.NewNop())
	ctx := context.Background()

	m, err := uc.AdjustStock(ctx, &dto.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: -4,
		MovementType:   "sale",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), m.QuantityBefore)
	assert.Equal(t, int64(6), m.QuantityAfter)

	// Stock may go negative: oversell is recorded, not rejected.
	m, err = uc.AdjustStock(ctx, &dto.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: -10,
		MovementType:   "sale",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-4), m.QuantityAfter)
}

func TestAdjustStockValidation(t *testing.T) {
	repo := &memRepo{stocks: map[string]int64{}}
	uc := NewInventoryUseCase(repo, passTxManager{}, zap.NewNop())

	_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{ProductID: "p1"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = uc.AdjustStock(context.Background(), &dto.AdjustStockInput{QuantityChange: 1})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
