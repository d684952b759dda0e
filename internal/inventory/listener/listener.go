package listener

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/inventory"
	"github.com/velmora/pos-backoffice/internal/inventory/dto"
	"github.com/velmora/pos-backoffice/pkg/broker"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

// StockListener consumes sale events recorded by satellite registers and
// applies the corresponding stock deductions with full movement audit.
type StockListener struct {
	consumer *broker.KafkaConsumer
	uc       inventory.UseCase
	logger   logger.ZapLogger
}

func NewStockListener(consumer *broker.KafkaConsumer, uc inventory.UseCase, logger logger.ZapLogger) *StockListener {
	return &StockListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *StockListener) Start(ctx context.Context) {
	l.logger.Info("Starting stock event listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping stock event listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type RemoteSaleEvent struct {
	EventID   string            `json:"event_id"`
	EventType string            `json:"event_type"`
	Payload   RemoteSalePayload `json:"payload"`
	Timestamp time.Time         `json:"timestamp"`
}

type RemoteSalePayload struct {
	SaleID     string           `json:"sale_id"`
	RegisterID string           `json:"register_id"`
	Items      []RemoteSaleItem `json:"items"`
}

type RemoteSaleItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

func (l *StockListener) processMessage(ctx context.Context, value []byte) {
	var event RemoteSaleEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "RemoteSaleRecorded" {
		return
	}

	l.logger.Info("Processing remote sale event", zap.String("sale_id", event.Payload.SaleID))

	for _, item := range event.Payload.Items {
		input := &dto.AdjustStockInput{
			ProductID:      item.ProductID,
			QuantityChange: -item.Quantity,
			MovementType:   "remote_sale",
			ReferenceType:  "sale",
			ReferenceID:    event.Payload.SaleID,
			Notes:          "Remote register " + event.Payload.RegisterID,
			UserID:         "system",
		}

		if _, err := l.uc.AdjustStock(ctx, input); err != nil {
			l.logger.Error("Failed to adjust stock for remote sale item",
				zap.String("sale_id", event.Payload.SaleID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
}
