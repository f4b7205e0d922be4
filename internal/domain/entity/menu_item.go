package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem is one entry of the price list. The menu is reference data: it
// is loaded at startup and read on every ledger mutation to resolve unit
// prices, but only changed through the admin endpoints.
type MenuItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	UnitPrice int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(m),
		UnitPrice: float64(m.UnitPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// GetUnitPriceDecimal returns the unit price as a decimal (for display)
func (m *MenuItem) GetUnitPriceDecimal() float64 {
	return float64(m.UnitPrice) / 100
}

// SetUnitPriceFromDecimal sets the unit price from a decimal value
func (m *MenuItem) SetUnitPriceFromDecimal(price float64) {
	m.UnitPrice = int64(price * 100)
}
