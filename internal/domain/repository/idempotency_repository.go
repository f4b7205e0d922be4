package repository

import (
	"context"

	"github.com/sangkips/billing-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	Save(ctx context.Context, key *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
