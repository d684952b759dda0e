package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/cashregister"
	"github.com/velmora/pos-backoffice/internal/model"
)

type fakeLedger struct {
	movements []model.CashMovement
}

func (f *fakeLedger) InsertMovement(_ context.Context, m *model.CashMovement) error {
	f.movements = append(f.movements, *m)
	return nil
}

func (f *fakeLedger) ListByDay(_ context.Context, day time.Time) ([]model.CashMovement, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)
	var items []model.CashMovement
	for _, m := range f.movements {
		if !m.CreatedAt.Before(start) && m.CreatedAt.Before(end) && m.Status.Active() {
			items = append(items, m)
		}
	}
	return items, nil
}

type fakeLocker struct {
	busy     bool
	acquired []string
	released []string
}

func (f *fakeLocker) AcquireLock(_ context.Context, key, _ string, _ time.Duration) (bool, error) {
	if f.busy {
		return false, nil
	}
	f.acquired = append(f.acquired, key)
	return true, nil
}

func (f *fakeLocker) ReleaseLock(_ context.Context, key, _ string) error {
	f.released = append(f.released, key)
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup(t *testing.T) (cashregister.UseCase, *fakeLedger, *time.Time) {
	t.Helper()
	ledger := &fakeLedger{}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := &now
	uc := NewWithClock(ledger, nil, func() time.Time { return *clock }, zap.NewNop())
	return uc, ledger, clock
}

func TestOpenClose(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	m, err := uc.Open(ctx, dec("100.00"), "")
	require.NoError(t, err)
	assert.Equal(t, model.CashOpen, m.Operation)

	status, err := uc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.CanSell())
	assert.Equal(t, "100.00", status.OpeningBalance.StringFixed(2))

	// Opening twice in one day is rejected.
	_, err = uc.Open(ctx, dec("50.00"), "")
	assert.True(t, apperr.IsKind(err, apperr.KindStateConflict))

	closing, err := uc.Close(ctx)
	require.NoError(t, err)
	assert.Equal(t, "100.00", closing.Amount.StringFixed(2))

	status, _ = uc.Status(ctx)
	assert.False(t, status.CanSell())

	// No reopening after close, and no second close.
	_, err = uc.Open(ctx, dec("10.00"), "")
	assert.True(t, apperr.IsKind(err, apperr.KindStateConflict))
	_, err = uc.Close(ctx)
	assert.True(t, apperr.IsKind(err, apperr.KindStateConflict))
}

func TestBalanceFold(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Open(ctx, dec("100.00"), "")
	require.NoError(t, err)
	_, err = uc.Record(ctx, model.CashSale, dec("25.50"), "sale INV-00001", "ref-1")
	require.NoError(t, err)
	_, err = uc.Record(ctx, model.CashIncome, dec("10.00"), "loose change", "")
	require.NoError(t, err)
	_, err = uc.Record(ctx, model.CashExpense, dec("15.25"), "cleaning supplies", "")
	require.NoError(t, err)

	status, err := uc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "120.25", status.CurrentBalance.StringFixed(2))
}

func TestRecordRequiresOpenRegister(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Record(ctx, model.CashSale, dec("5.00"), "sale", "")
	assert.True(t, apperr.IsKind(err, apperr.KindStateConflict))

	_, err = uc.Open(ctx, dec("0.00"), "")
	require.NoError(t, err)
	_, err = uc.Close(ctx)
	require.NoError(t, err)

	_, err = uc.Record(ctx, model.CashSale, dec("5.00"), "sale", "")
	assert.True(t, apperr.IsKind(err, apperr.KindStateConflict))
}

func TestRecordValidation(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()
	_, err := uc.Open(ctx, dec("0.00"), "")
	require.NoError(t, err)

	_, err = uc.Record(ctx, model.CashOpen, dec("5.00"), "", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = uc.Record(ctx, model.CashSale, dec("0.00"), "", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestReverseAppendsCounterEntry(t *testing.T) {
	uc, ledger, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Open(ctx, dec("100.00"), "")
	require.NoError(t, err)
	_, err = uc.Record(ctx, model.CashSale, dec("10.00"), "sale INV-00001", "ord-1")
	require.NoError(t, err)

	m, err := uc.Reverse(ctx, dec("10.00"), "voided line INV-00001", "ord-1")
	require.NoError(t, err)
	assert.Equal(t, model.CashExpense, m.Operation)

	// The original entry stays; the correction is a new row, and the fold
	// nets the sale back out.
	assert.Len(t, ledger.movements, 3)
	status, err := uc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "100.00", status.CurrentBalance.StringFixed(2))
}

func TestReverseAcceptedAfterClose(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Open(ctx, dec("0.00"), "")
	require.NoError(t, err)
	_, err = uc.Record(ctx, model.CashSale, dec("7.00"), "sale INV-00001", "ord-1")
	require.NoError(t, err)
	_, err = uc.Close(ctx)
	require.NoError(t, err)

	_, err = uc.Reverse(ctx, dec("7.00"), "voided line INV-00001", "ord-1")
	require.NoError(t, err)

	_, err = uc.Reverse(ctx, dec("0.00"), "", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestOpenContendedLock(t *testing.T) {
	ledger := &fakeLedger{}
	locker := &fakeLocker{busy: true}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	uc := NewWithClock(ledger, locker, func() time.Time { return now }, zap.NewNop())
	ctx := context.Background()

	_, err := uc.Open(ctx, dec("100.00"), "")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Empty(t, ledger.movements)

	locker.busy = false
	_, err = uc.Open(ctx, dec("100.00"), "")
	require.NoError(t, err)
	require.Len(t, locker.acquired, 1)
	assert.Equal(t, locker.acquired, locker.released)
}

func TestNewDayResetsSession(t *testing.T) {
	uc, _, clock := setup(t)
	ctx := context.Background()

	_, err := uc.Open(ctx, dec("100.00"), "")
	require.NoError(t, err)
	_, err = uc.Close(ctx)
	require.NoError(t, err)

	*clock = clock.Add(24 * time.Hour)

	status, err := uc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsOpen)
	assert.False(t, status.IsClosed)

	_, err = uc.Open(ctx, dec("80.00"), "")
	require.NoError(t, err)
}
