package request

import "github.com/google/uuid"

// AddLineRequest appends one line to the current bill. The unit price is
// resolved from the menu server-side; clients never send prices.
type AddLineRequest struct {
	Item     string `json:"item" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// UpdateLineRequest changes the quantity of one existing line.
type UpdateLineRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// RemoveLinesRequest deletes the selected lines by row ID.
type RemoveLinesRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}
