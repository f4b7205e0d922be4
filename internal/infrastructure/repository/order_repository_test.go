package repository

import (
	"context"
	"testing"

	"github.com/sangkips/billing-api/internal/domain/entity"
	"github.com/sangkips/billing-api/internal/domain/enum"
	domainRepo "github.com/sangkips/billing-api/internal/domain/repository"
	"github.com/sangkips/billing-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entity.MenuItem{}, &entity.Order{}, &entity.IdempotencyKey{})
	require.NoError(t, err)

	return db
}

func orderRow(bill, item string, qty int, unitPrice int64, date, tm string, pt enum.PaymentType) entity.Order {
	return entity.Order{
		BillNumber:  bill,
		Item:        item,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		LineTotal:   unitPrice * int64(qty),
		Date:        date,
		Time:        tm,
		PaymentType: pt,
	}
}

func TestOrderRepository_CreateBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	t.Run("persists all rows of a commit", func(t *testing.T) {
		rows := []entity.Order{
			orderRow("BN-1234", "Tea", 3, 2000, "01-01-2024", "10:00", enum.PaymentTypeCash),
			orderRow("BN-1234", "Coffee", 1, 2500, "01-01-2024", "10:00", enum.PaymentTypeCash),
		}

		err := repo.CreateBatch(ctx, rows)
		require.NoError(t, err)

		found, err := repo.GetByBillNumber(ctx, "BN-1234")
		require.NoError(t, err)
		assert.Len(t, found, 2)
		assert.Equal(t, "Tea", found[0].Item)
		assert.Equal(t, int64(6000), found[0].LineTotal)
		assert.Equal(t, enum.PaymentTypeCash, found[0].PaymentType)
	})

	t.Run("empty batch writes nothing and succeeds", func(t *testing.T) {
		err := repo.CreateBatch(ctx, nil)
		require.NoError(t, err)
	})

	t.Run("rolls back the whole batch when one row fails", func(t *testing.T) {
		rows := []entity.Order{
			orderRow("BN-9999", "Tea", 3, 2000, "02-01-2024", "11:00", enum.PaymentTypeUPI),
			// quantity 0 violates the check constraint mid-batch
			orderRow("BN-9999", "Coffee", 0, 2500, "02-01-2024", "11:00", enum.PaymentTypeUPI),
		}

		err := repo.CreateBatch(ctx, rows)
		require.Error(t, err)

		found, err := repo.GetByBillNumber(ctx, "BN-9999")
		require.NoError(t, err)
		assert.Empty(t, found, "no row of a failed commit may be visible")
	})
}

func TestOrderRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	seed := []entity.Order{
		orderRow("BN-1000", "Tea", 3, 2000, "01-01-2024", "10:00", enum.PaymentTypeCash),
		orderRow("BN-1000", "Sandwich", 1, 4000, "01-01-2024", "10:00", enum.PaymentTypeCash),
		orderRow("BN-2000", "Coffee", 2, 2500, "02-01-2024", "09:30", enum.PaymentTypeCard),
	}
	require.NoError(t, repo.CreateBatch(ctx, seed))

	t.Run("filters by bill number", func(t *testing.T) {
		params := &domainRepo.OrderFilterParams{
			Pagination: pagination.DefaultPagination(),
			BillNumber: "BN-1000",
		}
		rows, total, err := repo.List(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, rows, 2)
	})

	t.Run("filters by day label", func(t *testing.T) {
		params := &domainRepo.OrderFilterParams{
			Pagination: pagination.DefaultPagination(),
			Date:       "02-01-2024",
		}
		rows, total, err := repo.List(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "Coffee", rows[0].Item)
	})

	t.Run("filters by payment type", func(t *testing.T) {
		card := enum.PaymentTypeCard
		params := &domainRepo.OrderFilterParams{
			Pagination:  pagination.DefaultPagination(),
			PaymentType: &card,
		}
		_, total, err := repo.List(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("paginates", func(t *testing.T) {
		params := &domainRepo.OrderFilterParams{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 2},
		}
		rows, total, err := repo.List(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, rows, 2)
	})
}
