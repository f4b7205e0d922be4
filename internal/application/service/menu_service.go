package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billing-api/internal/domain/entity"
	"github.com/sangkips/billing-api/internal/domain/repository"
	"github.com/sangkips/billing-api/pkg/apperror"
)

// MenuService manages the item/price reference table.
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListItems returns the full price list.
func (s *MenuService) ListItems(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

// CreateItem adds a new item to the menu.
func (s *MenuService) CreateItem(ctx context.Context, name string, unitPrice float64) (*entity.MenuItem, error) {
	if unitPrice <= 0 {
		return nil, apperror.NewValidationError("unit_price", "unit price must be greater than zero")
	}

	existing, err := s.menuRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Menu item already exists")
	}

	item := &entity.MenuItem{Name: name}
	item.SetUnitPriceFromDecimal(unitPrice)

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem changes the name and/or price of an existing item. Persisted
// order rows keep the item name they were sold under; renames only affect
// future bills.
func (s *MenuService) UpdateItem(ctx context.Context, id uuid.UUID, name *string, unitPrice *float64) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if name != nil && *name != "" && *name != item.Name {
		existing, err := s.menuRepo.GetByName(ctx, *name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Menu item already exists")
		}
		item.Name = *name
	}

	if unitPrice != nil {
		if *unitPrice <= 0 {
			return nil, apperror.NewValidationError("unit_price", "unit price must be greater than zero")
		}
		item.SetUnitPriceFromDecimal(*unitPrice)
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item from the menu.
func (s *MenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, id)
}

// Quote is the computed price shown in the read-only price field while the
// operator picks item and quantity.
type Quote struct {
	Item      string  `json:"item"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Price     float64 `json:"price"`
}

// QuotePrice computes menu price x quantity for the given item.
func (s *MenuService) QuotePrice(ctx context.Context, name string, quantity int) (*Quote, error) {
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

	return &Quote{
		Item:      item.Name,
		Quantity:  quantity,
		UnitPrice: item.GetUnitPriceDecimal(),
		Price:     float64(item.UnitPrice*int64(quantity)) / 100,
	}, nil
}
