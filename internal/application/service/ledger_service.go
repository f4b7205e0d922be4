package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/billing-api/internal/domain/ledger"
	"github.com/sangkips/billing-api/internal/domain/repository"
	"github.com/sangkips/billing-api/pkg/apperror"
	"github.com/sangkips/billing-api/pkg/utils"
)

// LedgerService owns the in-memory ledger of the bill currently being
// built. It is the single owner: every mutation goes through it, and it
// serializes access since the HTTP layer may call in concurrently even
// though the till has only one operator.
type LedgerService struct {
	mu         sync.Mutex
	ledger     *ledger.Ledger
	billNumber string
	billPrefix string
	menuRepo   repository.MenuRepository
}

// NewLedgerService creates the ledger service and opens the first bill.
func NewLedgerService(menuRepo repository.MenuRepository, billPrefix string) *LedgerService {
	return &LedgerService{
		ledger:     ledger.New(),
		billNumber: utils.NewBillNumber(billPrefix),
		billPrefix: billPrefix,
		menuRepo:   menuRepo,
	}
}

// LedgerSnapshot is the renderable state of the current bill.
type LedgerSnapshot struct {
	BillNumber string            `json:"bill_number"`
	Lines      []ledger.LineItem `json:"lines"`
	Total      float64           `json:"total"`
}

// AddLine resolves the unit price from the menu and appends a line.
// Unknown items and non-positive quantities are explicit validation
// failures; nothing is silently skipped.
func (s *LedgerService) AddLine(ctx context.Context, name string, quantity int) (*LedgerSnapshot, error) {
	if name == "" {
		return nil, apperror.NewValidationError("item", "item is required")
	}
	if quantity <= 0 {
		return nil, apperror.NewValidationError("quantity", "quantity must be greater than zero")
	}

	item, err := s.menuRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewValidationError("item", "item is not on the menu")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ledger.AddLine(item.Name, quantity, item.UnitPrice); err != nil {
		return nil, mapLedgerError(err)
	}
	return s.snapshotLocked(), nil
}

// UpdateLine changes the quantity of one line, identified by its row ID.
func (s *LedgerService) UpdateLine(ctx context.Context, id uuid.UUID, quantity int) (*LedgerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ledger.UpdateLine(id, quantity); err != nil {
		return nil, mapLedgerError(err)
	}
	return s.snapshotLocked(), nil
}

// RemoveLines deletes the selected lines.
func (s *LedgerService) RemoveLines(ctx context.Context, ids []uuid.UUID) (*LedgerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ledger.RemoveLines(ids); err != nil {
		return nil, mapLedgerError(err)
	}
	return s.snapshotLocked(), nil
}

// Snapshot returns the current bill state.
func (s *LedgerService) Snapshot() *LedgerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// NewBill discards the current ledger and opens a fresh bill number, e.g.
// when the operator abandons an order.
func (s *LedgerService) NewBill() *LedgerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Clear()
	s.billNumber = utils.NewBillNumber(s.billPrefix)
	return s.snapshotLocked()
}

// LinesForCommit returns the bill number and a copy of the current lines
// for the order service to persist.
func (s *LedgerService) LinesForCommit() (string, []ledger.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.billNumber, s.ledger.Lines()
}

// FinishBill clears the ledger after a successful commit and issues the
// next bill number. On a failed commit this is never called, leaving the
// ledger untouched for a retry.
func (s *LedgerService) FinishBill() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Clear()
	s.billNumber = utils.NewBillNumber(s.billPrefix)
}

// snapshotLocked builds a snapshot; the caller holds s.mu.
func (s *LedgerService) snapshotLocked() *LedgerSnapshot {
	return &LedgerSnapshot{
		BillNumber: s.billNumber,
		Lines:      s.ledger.Lines(),
		Total:      float64(s.ledger.Total()) / 100,
	}
}

// mapLedgerError translates domain errors into user-facing ones.
func mapLedgerError(err error) error {
	switch err {
	case ledger.ErrEmptyName:
		return apperror.NewValidationError("item", "item is required")
	case ledger.ErrInvalidQuantity:
		return apperror.NewValidationError("quantity", "quantity must be greater than zero")
	case ledger.ErrInvalidPrice:
		return apperror.NewValidationError("unit_price", "unit price must be greater than zero")
	case ledger.ErrLineNotFound:
		return apperror.NewNotFoundError("Line item")
	case ledger.ErrNothingSelected:
		return apperror.ErrNothingSelected
	}
	return err
}
