package service

import (
	"context"
	"time"

	"github.com/sangkips/billing-api/internal/domain/entity"
	"github.com/sangkips/billing-api/internal/domain/enum"
	"github.com/sangkips/billing-api/internal/domain/repository"
	"github.com/sangkips/billing-api/pkg/apperror"
	"github.com/sangkips/billing-api/pkg/pagination"
)

// OrderService commits the current ledger into the append-only sales store
// and reads back order history.
type OrderService struct {
	orderRepo     repository.OrderRepository
	ledgerService *LedgerService
	now           func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, ledgerService *LedgerService) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		ledgerService: ledgerService,
		now:           time.Now,
	}
}

// CommitResult summarizes a successfully placed order.
type CommitResult struct {
	BillNumber  string           `json:"bill_number"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	PaymentType enum.PaymentType `json:"payment_type"`
	LineCount   int              `json:"line_count"`
	Total       float64          `json:"total"`
}

// Commit persists every line of the current ledger as immutable rows
// sharing the bill number, date, time and payment type, in one
// transaction. On success the ledger is cleared and a fresh bill number
// issued; on failure the ledger is left untouched so the operator can
// retry.
func (s *OrderService) Commit(ctx context.Context, paymentTypeLabel string) (*CommitResult, error) {
	if paymentTypeLabel == "" {
		return nil, apperror.ErrMissingPaymentType
	}
	paymentType, err := enum.ParsePaymentType(paymentTypeLabel)
	if err != nil {
		return nil, apperror.NewValidationError("payment_type", "payment type must be Cash, UPI or Card")
	}

	billNumber, lines := s.ledgerService.LinesForCommit()
	if len(lines) == 0 {
		return nil, apperror.ErrEmptyOrder
	}

	now := s.now()
	date := now.Format(entity.DateLabel)
	timeLabel := now.Format(entity.TimeLabel)

	rows := make([]entity.Order, 0, len(lines))
	var total int64
	for _, line := range lines {
		rows = append(rows, entity.Order{
			BillNumber:  billNumber,
			Item:        line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
			Date:        date,
			Time:        timeLabel,
			PaymentType: paymentType,
		})
		total += line.LineTotal
	}

	if err := s.orderRepo.CreateBatch(ctx, rows); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}

	s.ledgerService.FinishBill()

	return &CommitResult{
		BillNumber:  billNumber,
		Date:        date,
		Time:        timeLabel,
		PaymentType: paymentType,
		LineCount:   len(rows),
		Total:       float64(total) / 100,
	}, nil
}

// GetBill returns every persisted row of one bill.
func (s *OrderService) GetBill(ctx context.Context, billNumber string) ([]entity.Order, error) {
	rows, err := s.orderRepo.GetByBillNumber(ctx, billNumber)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return rows, nil
}

// ListOrders lists order history with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(
		orders,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	), nil
}
