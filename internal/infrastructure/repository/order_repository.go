package repository

import (
	"context"

	"github.com/sangkips/billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// CreateBatch inserts all rows of one commit inside a single transaction.
// If any row fails (constraint violation, write error) the transaction
// rolls back and no row becomes visible.
func (r *orderRepository) CreateBatch(ctx context.Context, orders []entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range orders {
			if err := tx.Create(&orders[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByBillNumber(ctx context.Context, billNumber string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("bill_number = ?", billNumber).
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.BillNumber != "" {
		query = query.Where("bill_number = ?", params.BillNumber)
	}

	if params.Date != "" {
		query = query.Where("date = ?", params.Date)
	}

	if params.PaymentType != nil {
		query = query.Where("payment_type = ?", *params.PaymentType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}
