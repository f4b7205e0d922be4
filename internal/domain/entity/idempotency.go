package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdempotencyKey stores processed commit requests so a double press of
// "Order Now" with the same key replays the original response instead of
// re-persisting the ledger.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key          string    `gorm:"uniqueIndex;size:255;not null"` // The idempotency key from client
	Endpoint     string    `gorm:"size:255;not null"`             // API endpoint (e.g., "POST /orders")
	ResponseCode int       `gorm:"not null"`                      // HTTP status code of original response
	ResponseBody string    `gorm:"type:text"`                     // JSON response body (cached)
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"` // Keys expire after 24 hours
}

// BeforeCreate generates a UUID before creating a new key
func (i *IdempotencyKey) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
