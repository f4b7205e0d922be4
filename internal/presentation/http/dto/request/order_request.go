package request

// CommitOrderRequest places the current bill with the chosen payment type.
type CommitOrderRequest struct {
	PaymentType string `json:"payment_type"`
}

// OrderFilterRequest represents order history filter parameters
type OrderFilterRequest struct {
	BillNumber  string `form:"bill_number"`
	Date        string `form:"date"` // DD-MM-YYYY, as stored
	PaymentType string `form:"payment_type"`
	SortOrder   string `form:"sort_order"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}
