package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billing-api/internal/domain/enum"
	"gorm.io/gorm"
)

// DateLabel is the calendar-day format persisted on order rows. Rows are
// matched against chart days by label equality, so the format must stay
// stable across the lifetime of a store.
const DateLabel = "02-01-2006"

// TimeLabel is the wall-clock format persisted on order rows.
const TimeLabel = "15:04"

// Order is one persisted line item of a committed bill. The orders table is
// an append-only log: rows are never updated or deleted once written. The
// bill number groups the lines of one commit but carries no referential
// integrity; it is descriptive metadata.
type Order struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber  string           `gorm:"size:20;not null;index" json:"bill_number"`
	Item        string           `gorm:"size:255;not null;index" json:"item"`
	Quantity    int              `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice   int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	LineTotal   int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Date        string           `gorm:"size:10;not null;index" json:"date"`
	Time        string           `gorm:"size:5;not null" json:"time"`
	PaymentType enum.PaymentType `gorm:"type:varchar(10);not null" json:"payment_type"`
	CreatedAt   time.Time        `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(o),
		UnitPrice: float64(o.UnitPrice) / 100,
		LineTotal: float64(o.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before inserting a new order row
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetLineTotalDecimal returns the line total as a decimal
func (o *Order) GetLineTotalDecimal() float64 {
	return float64(o.LineTotal) / 100
}
