package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/internal/cashregister"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

// Locker serializes session transitions across service instances. Satisfied by
// *cache.RedisClient; the status check before an open or close is a plain read,
// so without a cross-process lock two instances could both open the same day.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

const sessionLockTTL = 10 * time.Second

type cashRegisterUseCase struct {
	repo   cashregister.Repository
	locker Locker
	now    func() time.Time
	logger logger.ZapLogger
}

func NewCashRegisterUseCase(repo cashregister.Repository, locker Locker, log logger.ZapLogger) cashregister.UseCase {
	return &cashRegisterUseCase{
		repo:   repo,
		locker: locker,
		now:    time.Now,
		logger: log,
	}
}

// NewWithClock is used by tests that need a fixed business day.
func NewWithClock(repo cashregister.Repository, locker Locker, now func() time.Time, log logger.ZapLogger) cashregister.UseCase {
	return &cashRegisterUseCase{repo: repo, locker: locker, now: now, logger: log}
}

// lockSession guards the read-then-insert of a session transition. The returned
// release is a no-op when no locker is configured.
func (uc *cashRegisterUseCase) lockSession(ctx context.Context) (func(), error) {
	if uc.locker == nil {
		return func() {}, nil
	}
	key := "cashregister:session:" + uc.now().Format("2006-01-02")
	token := uuid.New().String()
	ok, err := uc.locker.AcquireLock(ctx, key, token, sessionLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.New(apperr.KindConflict, "another register operation is in progress, retry")
	}
	return func() {
		if err := uc.locker.ReleaseLock(context.Background(), key, token); err != nil {
			uc.logger.Warn("failed to release session lock", zap.Error(err))
		}
	}, nil
}

func (uc *cashRegisterUseCase) Open(ctx context.Context, amount decimal.Decimal, description string) (*model.CashMovement, error) {
	if amount.IsNegative() {
		return nil, apperr.New(apperr.KindValidation, "opening amount must not be negative")
	}

	release, err := uc.lockSession(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	status, err := uc.Status(ctx)
	if err != nil {
		return nil, err
	}
	if status.IsOpen {
		return nil, apperr.New(apperr.KindStateConflict, "register already opened today")
	}
	if status.IsClosed {
		return nil, apperr.New(apperr.KindStateConflict, "register already closed today, cannot reopen")
	}

	if description == "" {
		description = "Register opening"
	}
	m := uc.newMovement(ctx, model.CashOpen, amount, description, "")
	if err := uc.repo.InsertMovement(ctx, m); err != nil {
		return nil, err
	}

	uc.logger.Info("cash register opened", zap.String("amount", amount.StringFixed(2)))
	return m, nil
}

func (uc *cashRegisterUseCase) Close(ctx context.Context) (*model.CashMovement, error) {
	release, err := uc.lockSession(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	status, err := uc.Status(ctx)
	if err != nil {
		return nil, err
	}
	if !status.IsOpen {
		return nil, apperr.New(apperr.KindStateConflict, "no open register to close")
	}
	if status.IsClosed {
		return nil, apperr.New(apperr.KindStateConflict, "register already closed today")
	}

	m := uc.newMovement(ctx, model.CashClose, status.CurrentBalance, "Daily register close", "")
	if err := uc.repo.InsertMovement(ctx, m); err != nil {
		return nil, err
	}

	uc.logger.Info("cash register closed", zap.String("balance", status.CurrentBalance.StringFixed(2)))
	return m, nil
}

func (uc *cashRegisterUseCase) Record(ctx context.Context, op model.CashOperation, amount decimal.Decimal, description, referenceID string) (*model.CashMovement, error) {
	switch op {
	case model.CashSale, model.CashIncome, model.CashExpense:
	default:
		return nil, apperr.Newf(apperr.KindValidation, "operation %q cannot be recorded directly", op)
	}
	if !amount.IsPositive() {
		return nil, apperr.New(apperr.KindValidation, "amount must be positive")
	}

	status, err := uc.Status(ctx)
	if err != nil {
		return nil, err
	}
	if !status.CanSell() {
		return nil, apperr.New(apperr.KindStateConflict, "register is not open or already closed for today")
	}

	m := uc.newMovement(ctx, op, amount, description, referenceID)
	if err := uc.repo.InsertMovement(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *cashRegisterUseCase) Reverse(ctx context.Context, amount decimal.Decimal, description, referenceID string) (*model.CashMovement, error) {
	if !amount.IsPositive() {
		return nil, apperr.New(apperr.KindValidation, "amount must be positive")
	}

	// Deliberately not gated on an open session: the ledger is immutable, so
	// undoing a recorded amount always appends its counter-entry, even when the
	// drawer already closed for the day.
	m := uc.newMovement(ctx, model.CashExpense, amount, description, referenceID)
	if err := uc.repo.InsertMovement(ctx, m); err != nil {
		return nil, err
	}

	uc.logger.Info("cash movement reversed",
		zap.String("amount", amount.StringFixed(2)),
		zap.String("reference_id", referenceID))
	return m, nil
}

func (uc *cashRegisterUseCase) Status(ctx context.Context) (cashregister.SessionStatus, error) {
	movements, err := uc.repo.ListByDay(ctx, uc.now())
	if err != nil {
		return cashregister.SessionStatus{}, err
	}

	status := cashregister.SessionStatus{
		OpeningBalance: decimal.Zero,
		CurrentBalance: decimal.Zero,
	}
	for _, m := range movements {
		switch m.Operation {
		case model.CashOpen:
			status.IsOpen = true
			status.OpeningBalance = m.Amount
		case model.CashClose:
			status.IsClosed = true
		}
		status.CurrentBalance = status.CurrentBalance.Add(m.Operation.Signed(m.Amount))
	}
	return status, nil
}

func (uc *cashRegisterUseCase) ListToday(ctx context.Context) ([]model.CashMovement, error) {
	return uc.repo.ListByDay(ctx, uc.now())
}

func (uc *cashRegisterUseCase) newMovement(ctx context.Context, op model.CashOperation, amount decimal.Decimal, description, referenceID string) *model.CashMovement {
	now := uc.now()
	actor := auth.ActorFromContext(ctx)
	var userID, createdBy *string
	if actor.UserID != "" {
		id := actor.UserID
		userID, createdBy = &id, &id
	}
	var ref *string
	if referenceID != "" {
		ref = &referenceID
	}
	return &model.CashMovement{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			Status:    model.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: createdBy,
		},
		Operation:   op,
		Amount:      amount.Round(2),
		Description: description,
		UserID:      userID,
		ReferenceID: ref,
	}
}
