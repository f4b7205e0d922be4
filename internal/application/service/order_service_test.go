package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/billing-api/internal/domain/repository"
	infraRepo "github.com/sangkips/billing-api/internal/infrastructure/repository"
	"github.com/sangkips/billing-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
}

func newOrderFixture(t *testing.T) (*gorm.DB, *LedgerService, *OrderService) {
	db := setupServiceDB(t)
	ledgerSvc := newLedgerService(t, db)
	orderSvc := NewOrderService(infraRepo.NewOrderRepository(db), ledgerSvc)
	orderSvc.now = fixedClock
	return db, ledgerSvc, orderSvc
}

func TestOrderService_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("missing payment type fails without mutating anything", func(t *testing.T) {
		_, ledgerSvc, orderSvc := newOrderFixture(t)
		_, err := ledgerSvc.AddLine(ctx, "Tea", 3)
		require.NoError(t, err)

		_, err = orderSvc.Commit(ctx, "")
		assert.ErrorIs(t, err, apperror.ErrMissingPaymentType)
		assert.Len(t, ledgerSvc.Snapshot().Lines, 1, "ledger untouched")
	})

	t.Run("unknown payment type is a validation error", func(t *testing.T) {
		_, ledgerSvc, orderSvc := newOrderFixture(t)
		_, err := ledgerSvc.AddLine(ctx, "Tea", 3)
		require.NoError(t, err)

		_, err = orderSvc.Commit(ctx, "Cheque")
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
	})

	t.Run("empty ledger cannot be committed", func(t *testing.T) {
		_, _, orderSvc := newOrderFixture(t)

		_, err := orderSvc.Commit(ctx, "Cash")
		assert.ErrorIs(t, err, apperror.ErrEmptyOrder)
	})

	t.Run("persists one row per line and clears the ledger", func(t *testing.T) {
		db, ledgerSvc, orderSvc := newOrderFixture(t)
		_, err := ledgerSvc.AddLine(ctx, "Tea", 3)
		require.NoError(t, err)
		_, err = ledgerSvc.AddLine(ctx, "Coffee", 2)
		require.NoError(t, err)

		bill := ledgerSvc.Snapshot().BillNumber

		result, err := orderSvc.Commit(ctx, "Cash")
		require.NoError(t, err)
		assert.Equal(t, bill, result.BillNumber)
		assert.Equal(t, "01-01-2024", result.Date)
		assert.Equal(t, "10:00", result.Time)
		assert.Equal(t, 2, result.LineCount)
		assert.Equal(t, 110.0, result.Total)

		rows, err := orderSvc.GetBill(ctx, bill)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Tea", rows[0].Item)
		assert.Equal(t, 3, rows[0].Quantity)

		assert.Empty(t, ledgerSvc.Snapshot().Lines, "clear-on-commit")

		// The committed quantities show up in the item aggregation.
		analytics := infraRepo.NewAnalyticsRepository(db)
		items, err := analytics.AggregateByItem(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Coffee", items[0].Item)
		assert.Equal(t, int64(2), items[0].TotalQuantity)
		assert.Equal(t, "Tea", items[1].Item)
		assert.Equal(t, int64(3), items[1].TotalQuantity)
	})

	t.Run("persistence failure leaves the ledger for retry", func(t *testing.T) {
		db := setupServiceDB(t)
		ledgerSvc := newLedgerService(t, db)
		orderSvc := NewOrderService(failingOrderRepo{}, ledgerSvc)
		orderSvc.now = fixedClock

		_, err := ledgerSvc.AddLine(context.Background(), "Tea", 3)
		require.NoError(t, err)
		bill := ledgerSvc.Snapshot().BillNumber

		_, err = orderSvc.Commit(context.Background(), "UPI")
		require.Error(t, err)

		snap := ledgerSvc.Snapshot()
		assert.Len(t, snap.Lines, 1)
		assert.Equal(t, bill, snap.BillNumber, "bill number unchanged after failed commit")
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()
	_, ledgerSvc, orderSvc := newOrderFixture(t)

	_, err := ledgerSvc.AddLine(ctx, "Tea", 1)
	require.NoError(t, err)
	_, err = orderSvc.Commit(ctx, "Card")
	require.NoError(t, err)

	result, err := orderSvc.ListOrders(ctx, &domainRepo.OrderFilterParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Pagination.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Tea", result.Items[0].Item)
}

// failingOrderRepo simulates an unreachable store.
type failingOrderRepo struct{}

func (failingOrderRepo) CreateBatch(ctx context.Context, orders []entity.Order) error {
	return errors.New("disk I/O error")
}

func (failingOrderRepo) GetByBillNumber(ctx context.Context, billNumber string) ([]entity.Order, error) {
	return nil, errors.New("disk I/O error")
}

func (failingOrderRepo) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, errors.New("disk I/O error")
}
