package listener

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/inventory/dto"
	"github.com/velmora/pos-backoffice/internal/model"
)

type recordingUseCase struct {
	inputs []dto.AdjustStockInput
}

func (r *recordingUseCase) AdjustStock(_ context.Context, input *dto.AdjustStockInput) (*model.InventoryMovement, error) {
	r.inputs = append(r.inputs, *input)
	return &model.InventoryMovement{}, nil
}

func (r *recordingUseCase) ListMovements(context.Context, *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return nil, 0, nil
}

func TestProcessMessageDeductsStock(t *testing.T) {
	uc := &recordingUseCase{}
	l := NewStockListener(nil, uc, zap.NewNop())

	payload := []byte(`{
		"event_id": "e1",
		"event_type": "RemoteSaleRecorded",
		"payload": {
			"sale_id": "s-9",
			"register_id": "r-2",
			"items": [
				{"product_id": "p1", "quantity": 3},
				{"product_id": "p2", "quantity": 1}
			]
		}
	}`)
	l.processMessage(context.Background(), payload)

	assert.Len(t, uc.inputs, 2)
	assert.Equal(t, int64(-3), uc.inputs[0].QuantityChange)
	assert.Equal(t, "remote_sale", uc.inputs[0].MovementType)
	assert.Equal(t, "s-9", uc.inputs[0].ReferenceID)
	assert.Equal(t, int64(-1), uc.inputs[1].QuantityChange)
}

func TestProcessMessageIgnoresOtherEvents(t *testing.T) {
	uc := &recordingUseCase{}
	l := NewStockListener(nil, uc, zap.NewNop())

	l.processMessage(context.Background(), []byte(`{"event_type":"PriceChanged"}`))
	assert.Empty(t, uc.inputs)

	l.processMessage(context.Background(), []byte(`not json`))
	assert.Empty(t, uc.inputs)
}
