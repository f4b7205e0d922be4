package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domainRepo.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *menuRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuRepository) GetByName(ctx context.Context, name string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).First(&item, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuItem{}, "id = ?", id).Error
}
