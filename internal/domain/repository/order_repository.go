package repository

import (
	"context"

	"github.com/sangkips/billing-api/internal/domain/entity"
	"github.com/sangkips/billing-api/internal/domain/enum"
	"github.com/sangkips/billing-api/pkg/pagination"
)

// OrderRepository defines the interface for the append-only sales store.
// Rows are inserted in batches (one batch per commit) and afterwards only
// ever read.
type OrderRepository interface {
	// CreateBatch inserts all rows of one commit in a single transaction.
	// Either every row persists or none does; partial writes must never be
	// observable to readers.
	CreateBatch(ctx context.Context, orders []entity.Order) error
	GetByBillNumber(ctx context.Context, billNumber string) ([]entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
}

// OrderFilterParams contains filtering parameters for order history queries
type OrderFilterParams struct {
	Pagination  *pagination.PaginationParams
	BillNumber  string
	Date        string // exact day label, e.g. "01-01-2024"
	PaymentType *enum.PaymentType
	SortOrder   string
}
