package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billing-api/internal/domain/entity"
)

// MenuRepository defines the interface for the item/price reference table
type MenuRepository interface {
	List(ctx context.Context) ([]entity.MenuItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByName(ctx context.Context, name string) (*entity.MenuItem, error)
	Create(ctx context.Context, item *entity.MenuItem) error
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
