package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/internal/catalog"
	"github.com/velmora/pos-backoffice/internal/inventory"
	invdto "github.com/velmora/pos-backoffice/internal/inventory/dto"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/internal/order"
	"github.com/velmora/pos-backoffice/internal/order/dto"
	"github.com/velmora/pos-backoffice/internal/party"
	"github.com/velmora/pos-backoffice/internal/sequence"
	"github.com/velmora/pos-backoffice/pkg/database/postgres"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

type orderUseCase struct {
	repo      order.Repository
	parties   party.Repository
	catalog   catalog.Repository
	inventory inventory.UseCase
	sequences sequence.Repository
	register  order.RegisterGate
	verifier  auth.CredentialVerifier
	tx        postgres.TxManager
	logger    logger.ZapLogger
}

func NewOrderUseCase(
	repo order.Repository,
	parties party.Repository,
	cat catalog.Repository,
	inv inventory.UseCase,
	seq sequence.Repository,
	register order.RegisterGate,
	verifier auth.CredentialVerifier,
	tx postgres.TxManager,
	log logger.ZapLogger,
) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		parties:   parties,
		catalog:   cat,
		inventory: inv,
		sequences: seq,
		register:  register,
		verifier:  verifier,
		tx:        tx,
		logger:    log,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if input.Kind != model.OrderKindSale && input.Kind != model.OrderKindPurchase {
		return nil, apperr.Newf(apperr.KindValidation, "unknown order kind %q", input.Kind)
	}
	if err := uc.checkParty(ctx, input.Kind, input.PartyID); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	o := &model.Order{
		BaseModel:   newBase(ctx),
		Kind:        input.Kind,
		PartyID:     input.PartyID,
		Date:        date,
		Observation: optional(input.Observation),
	}
	o.ApplyTotals(model.OrderTotals{})

	// The sequence row stays locked until commit, so the drawn number is
	// never burned by a rolled-back insert.
	err := uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		next, err := uc.sequences.Next(ctx, input.Kind.SequenceName())
		if err != nil {
			return err
		}
		o.Number = model.FormatDocumentNumber(input.Kind, next)
		return uc.repo.CreateOrder(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("kind", string(o.Kind)),
		zap.String("number", o.Number))
	return o, nil
}

func (uc *orderUseCase) checkParty(ctx context.Context, kind model.OrderKind, partyID string) error {
	switch kind {
	case model.OrderKindSale:
		c, err := uc.parties.GetCustomer(ctx, partyID)
		if err != nil {
			return err
		}
		if c == nil {
			return apperr.New(apperr.KindNotFound, "customer not found")
		}
		if !c.Status.Active() {
			return apperr.New(apperr.KindValidation, "customer is not active")
		}
	case model.OrderKindPurchase:
		s, err := uc.parties.GetSupplier(ctx, partyID)
		if err != nil {
			return err
		}
		if s == nil {
			return apperr.New(apperr.KindNotFound, "supplier not found")
		}
		if !s.Status.Active() {
			return apperr.New(apperr.KindValidation, "supplier is not active")
		}
	}
	return nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, []model.OrderLine, error) {
	o, err := uc.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if o == nil {
		return nil, nil, apperr.New(apperr.KindNotFound, "order not found")
	}
	lines, err := uc.repo.ListLines(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return o, lines, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	return uc.repo.ListOrders(ctx, filters)
}

func (uc *orderUseCase) AddLine(ctx context.Context, input *dto.AddLineInput) (*model.OrderLine, *dto.UpdatedTotals, error) {
	if input.Quantity <= 0 {
		return nil, nil, apperr.New(apperr.KindValidation, "quantity must be positive")
	}
	if input.UnitPrice.IsNegative() || input.Discount.IsNegative() || input.Tax.IsNegative() {
		return nil, nil, apperr.New(apperr.KindValidation, "unit price, discount and tax must not be negative")
	}

	var (
		line   *model.OrderLine
		totals *dto.UpdatedTotals
	)
	err := uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := uc.lockActiveOrder(ctx, input.OrderID)
		if err != nil {
			return err
		}

		if o.Kind == model.OrderKindSale {
			status, err := uc.register.Status(ctx)
			if err != nil {
				return err
			}
			if !status.CanSell() {
				return apperr.New(apperr.KindStateConflict, "cash register is not open for sales")
			}
		}

		p, err := uc.catalog.GetProduct(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.New(apperr.KindNotFound, "product not found")
		}
		if !p.Status.Active() {
			return apperr.New(apperr.KindValidation, "product is not active")
		}

		line = &model.OrderLine{
			BaseModel: newBase(ctx),
			OrderID:   o.ID,
			ProductID: p.ID,
			Quantity:  input.Quantity,
			UnitPrice: input.UnitPrice,
			Discount:  input.Discount,
			Tax:       input.Tax,
		}
		line.ComputeAmounts()

		if err := uc.repo.InsertLine(ctx, line); err != nil {
			return err
		}
		if err := uc.applyLineStock(ctx, o, line, stockApply); err != nil {
			return err
		}

		refreshed, err := uc.refreshTotals(ctx, o)
		if err != nil {
			return err
		}
		totals = refreshed

		if o.Kind == model.OrderKindSale && line.TotalPrice.IsPositive() {
			desc := fmt.Sprintf("sale %s", o.Number)
			if _, err := uc.register.Record(ctx, model.CashSale, line.TotalPrice, desc, o.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	uc.logger.Info("order line added",
		zap.String("order_id", input.OrderID),
		zap.String("line_id", line.ID),
		zap.String("product_id", input.ProductID))
	return line, totals, nil
}

func (uc *orderUseCase) RemoveLine(ctx context.Context, orderID, lineID string) (*dto.UpdatedTotals, error) {
	actor := auth.ActorFromContext(ctx)
	if !actor.IsAdmin() {
		return nil, apperr.New(apperr.KindPermissionDenied, "only an administrator may delete order lines")
	}

	var totals *dto.UpdatedTotals
	err := uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := uc.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return apperr.New(apperr.KindNotFound, "order not found")
		}

		l, err := uc.repo.GetLine(ctx, orderID, lineID)
		if err != nil {
			return err
		}
		if l == nil {
			return apperr.New(apperr.KindNotFound, "order line not found")
		}

		if err := uc.repo.DeleteLine(ctx, lineID); err != nil {
			return err
		}
		// A voided line already put its stock and cash back; reversing again
		// would double-count.
		if l.Status.Active() {
			if err := uc.applyLineStock(ctx, o, l, stockReverse); err != nil {
				return err
			}
			if err := uc.reverseLineCash(ctx, o, l, "removed line"); err != nil {
				return err
			}
		}

		totals, err = uc.refreshTotals(ctx, o)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order line deleted",
		zap.String("order_id", orderID),
		zap.String("line_id", lineID),
		zap.String("deleted_by", actor.UserID))
	return totals, nil
}

func (uc *orderUseCase) VoidLine(ctx context.Context, input *dto.VoidLineInput) (*dto.UpdatedTotals, error) {
	// Re-authenticate before touching anything: a rejected credential must
	// leave the order untouched.
	if err := uc.verifier.VerifyAdmin(ctx, input.AdminUsername, input.AdminPassword); err != nil {
		return nil, err
	}

	var totals *dto.UpdatedTotals
	err := uc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := uc.repo.GetOrderForUpdate(ctx, input.OrderID)
		if err != nil {
			return err
		}
		if o == nil {
			return apperr.New(apperr.KindNotFound, "order not found")
		}

		l, err := uc.repo.GetLine(ctx, input.OrderID, input.LineID)
		if err != nil {
			return err
		}
		if l == nil {
			return apperr.New(apperr.KindNotFound, "order line not found")
		}
		if !l.Status.Active() {
			return apperr.New(apperr.KindStateConflict, "order line is already voided")
		}

		if err := uc.repo.VoidLine(ctx, input.LineID, input.AdminUsername); err != nil {
			return err
		}
		if err := uc.applyLineStock(ctx, o, l, stockReverse); err != nil {
			return err
		}
		if err := uc.reverseLineCash(ctx, o, l, "voided line"); err != nil {
			return err
		}

		totals, err = uc.refreshTotals(ctx, o)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order line voided",
		zap.String("order_id", input.OrderID),
		zap.String("line_id", input.LineID),
		zap.String("authorized_by", input.AdminUsername))
	return totals, nil
}

// lockActiveOrder locks the header row and rejects mutations on voided orders.
func (uc *orderUseCase) lockActiveOrder(ctx context.Context, orderID string) (*model.Order, error) {
	o, err := uc.repo.GetOrderForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.New(apperr.KindNotFound, "order not found")
	}
	if !o.Status.Active() {
		return nil, apperr.New(apperr.KindStateConflict, "order is voided")
	}
	return o, nil
}

type stockDirection int

const (
	stockApply stockDirection = iota
	stockReverse
)

// applyLineStock moves inventory for one line: sales deduct, purchases add.
// Reversal flips the sign, restoring whatever the original apply did.
func (uc *orderUseCase) applyLineStock(ctx context.Context, o *model.Order, l *model.OrderLine, dir stockDirection) error {
	delta := l.Quantity
	movementType := "purchase"
	if o.Kind == model.OrderKindSale {
		delta = -delta
		movementType = "sale"
	}

	input := &invdto.AdjustStockInput{
		ProductID:      l.ProductID,
		QuantityChange: delta,
		MovementType:   movementType,
		ReferenceType:  "order_line",
		ReferenceID:    l.ID,
		Notes:          fmt.Sprintf("%s %s", o.Kind, o.Number),
		UserID:         auth.ActorFromContext(ctx).UserID,
	}
	if dir == stockReverse {
		input.QuantityChange = -input.QuantityChange
		input.MovementType = movementType + "_reversal"
	} else if o.Kind == model.OrderKindPurchase {
		input.LastPurchase = &invdto.LastPurchaseUpdate{
			Price: l.UnitPrice,
			Date:  o.Date,
		}
	}

	_, err := uc.inventory.AdjustStock(ctx, input)
	return err
}

// reverseLineCash appends the counter-entry for the cash movement a sale line
// recorded when it was added, keeping the drawer balance in step with the
// invoice totals. Purchases and zero-total lines never touched the drawer.
func (uc *orderUseCase) reverseLineCash(ctx context.Context, o *model.Order, l *model.OrderLine, reason string) error {
	if o.Kind != model.OrderKindSale || !l.TotalPrice.IsPositive() {
		return nil
	}
	desc := fmt.Sprintf("%s %s", reason, o.Number)
	_, err := uc.register.Reverse(ctx, l.TotalPrice, desc, o.ID)
	return err
}

// refreshTotals re-aggregates the header from its active lines and persists it.
func (uc *orderUseCase) refreshTotals(ctx context.Context, o *model.Order) (*dto.UpdatedTotals, error) {
	sums, err := uc.repo.SumActiveLines(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.ApplyTotals(sums)
	o.ModifiedBy = actorRef(ctx)
	if err := uc.repo.UpdateHeaderTotals(ctx, o); err != nil {
		return nil, err
	}
	return dto.TotalsFromOrder(o), nil
}

func newBase(ctx context.Context) model.BaseModel {
	now := time.Now()
	return model.BaseModel{
		ID:        uuid.New().String(),
		Status:    model.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actorRef(ctx),
	}
}

func actorRef(ctx context.Context) *string {
	actor := auth.ActorFromContext(ctx)
	if actor.UserID == "" {
		return nil
	}
	id := actor.UserID
	return &id
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
