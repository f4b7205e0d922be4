package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentType represents how a bill was paid
type PaymentType int

const (
	PaymentTypeCash PaymentType = 0
	PaymentTypeUPI  PaymentType = 1
	PaymentTypeCard PaymentType = 2
)

func (p PaymentType) String() string {
	return [...]string{"Cash", "UPI", "Card"}[p]
}

// Valid reports whether p is one of the known payment types
func (p PaymentType) Valid() bool {
	return p >= PaymentTypeCash && p <= PaymentTypeCard
}

// ParsePaymentType converts a label such as "Cash" into a PaymentType.
// An empty label means the operator never made a selection.
func ParsePaymentType(s string) (PaymentType, error) {
	switch s {
	case "Cash":
		return PaymentTypeCash, nil
	case "UPI":
		return PaymentTypeUPI, nil
	case "Card":
		return PaymentTypeCard, nil
	}
	return PaymentType(-1), fmt.Errorf("unknown payment type %q", s)
}

func (p PaymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentType(i)
		return nil
	}
	parsed, err := ParsePaymentType(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value stores the label, not the ordinal, so persisted rows stay readable
// for ad-hoc SQL and external reporting tools.
func (p PaymentType) Value() (driver.Value, error) {
	return p.String(), nil
}

func (p *PaymentType) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentTypeCash
		return nil
	}
	switch v := value.(type) {
	case string:
		parsed, err := ParsePaymentType(v)
		if err != nil {
			return err
		}
		*p = parsed
	case []byte:
		parsed, err := ParsePaymentType(string(v))
		if err != nil {
			return err
		}
		*p = parsed
	case int64:
		*p = PaymentType(v)
	}
	return nil
}
