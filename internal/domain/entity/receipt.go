package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable bill. It is not a
// database entity; it is composed from persisted order rows at print time.
type Receipt struct {
	Header      ReceiptHeader `json:"header"`
	BillNumber  string        `json:"bill_number"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	PaymentType string        `json:"payment_type,omitempty"`
	Items       []ReceiptItem `json:"items"`
	Total       float64       `json:"total"`
}
