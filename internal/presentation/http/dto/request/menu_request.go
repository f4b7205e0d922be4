package request

// CreateMenuItemRequest represents a menu item creation request
type CreateMenuItemRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
}

// UpdateMenuItemRequest represents a menu item update request
type UpdateMenuItemRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=255"`
	UnitPrice *float64 `json:"unit_price" binding:"omitempty,gt=0"`
}

// QuoteRequest asks for the price of item x quantity without touching the
// current bill.
type QuoteRequest struct {
	Item     string `form:"item" binding:"required"`
	Quantity int    `form:"quantity"`
}
