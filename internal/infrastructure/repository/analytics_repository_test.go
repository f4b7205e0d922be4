package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/billing-api/internal/domain/entity"
	"github.com/sangkips/billing-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_AggregateByItem(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderRepository(db)
	analytics := NewAnalyticsRepository(db)
	ctx := context.Background()

	t.Run("empty store yields no rows", func(t *testing.T) {
		results, err := analytics.AggregateByItem(ctx)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("groups across bills and duplicate lines", func(t *testing.T) {
		seed := []entity.Order{
			orderRow("BN-1000", "Tea", 3, 2000, "01-01-2024", "10:00", enum.PaymentTypeCash),
			orderRow("BN-1000", "Tea", 2, 2000, "01-01-2024", "10:00", enum.PaymentTypeCash),
			orderRow("BN-2000", "Coffee", 1, 2500, "02-01-2024", "09:30", enum.PaymentTypeUPI),
			orderRow("BN-2000", "Tea", 1, 2000, "02-01-2024", "09:30", enum.PaymentTypeUPI),
		}
		require.NoError(t, orders.CreateBatch(ctx, seed))

		results, err := analytics.AggregateByItem(ctx)
		require.NoError(t, err)
		require.Len(t, results, 2)

		// Ordered by item name for deterministic chart rendering.
		assert.Equal(t, "Coffee", results[0].Item)
		assert.Equal(t, int64(1), results[0].TotalQuantity)
		assert.Equal(t, "Tea", results[1].Item)
		assert.Equal(t, int64(6), results[1].TotalQuantity)
	})
}

func TestAnalyticsRepository_AggregateByDay(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderRepository(db)
	analytics := NewAnalyticsRepository(db)
	ctx := context.Background()

	ref := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)

	t.Run("empty store still reports a full window of zeros", func(t *testing.T) {
		results, err := analytics.AggregateByDay(ctx, 7, ref)
		require.NoError(t, err)
		require.Len(t, results, 7)

		assert.Equal(t, "01-01-2024", results[0].Date, "oldest day first")
		assert.Equal(t, "07-01-2024", results[6].Date, "reference day last")
		for _, r := range results {
			assert.Equal(t, 0.0, r.TotalAmount)
		}
	})

	t.Run("sums line totals per day label", func(t *testing.T) {
		seed := []entity.Order{
			orderRow("BN-1000", "Tea", 3, 2000, "01-01-2024", "10:00", enum.PaymentTypeCash),
			orderRow("BN-1000", "Sandwich", 1, 4000, "01-01-2024", "10:00", enum.PaymentTypeCash),
			orderRow("BN-2000", "Coffee", 2, 2500, "07-01-2024", "09:30", enum.PaymentTypeCard),
			// Outside the window, must not be counted.
			orderRow("BN-3000", "Tea", 1, 2000, "31-12-2023", "09:30", enum.PaymentTypeCash),
		}
		require.NoError(t, orders.CreateBatch(ctx, seed))

		results, err := analytics.AggregateByDay(ctx, 7, ref)
		require.NoError(t, err)
		require.Len(t, results, 7)

		assert.Equal(t, 100.0, results[0].TotalAmount) // 60 + 40 on 01-01
		assert.Equal(t, 0.0, results[3].TotalAmount)
		assert.Equal(t, 50.0, results[6].TotalAmount) // today
	})
}

func TestAnalyticsRepository_GetStats(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderRepository(db)
	analytics := NewAnalyticsRepository(db)
	ctx := context.Background()

	ref := time.Date(2024, 1, 7, 18, 0, 0, 0, time.UTC)

	seed := []entity.Order{
		orderRow("BN-1000", "Tea", 3, 2000, "01-01-2024", "10:00", enum.PaymentTypeCash),
		orderRow("BN-2000", "Coffee", 2, 2500, "07-01-2024", "09:30", enum.PaymentTypeCard),
		orderRow("BN-2000", "Noodles", 1, 4500, "07-01-2024", "09:30", enum.PaymentTypeCard),
	}
	require.NoError(t, orders.CreateBatch(ctx, seed))

	stats, err := analytics.GetStats(ctx, ref)
	require.NoError(t, err)

	assert.Equal(t, 155.0, stats.TotalRevenue)
	assert.Equal(t, 95.0, stats.TodayRevenue)
	assert.Equal(t, int64(3), stats.TotalLines)
	assert.Equal(t, int64(2), stats.TotalBills)
}
