package utils

import (
	"fmt"
	"math/rand"
)

// NewBillNumber generates a bill number such as "BN-4821". The number is
// random per bill, not a sequence, and is not guaranteed unique across
// runs; it is descriptive metadata on persisted rows, not a key.
func NewBillNumber(prefix string) string {
	if prefix == "" {
		prefix = "BN"
	}
	return fmt.Sprintf("%s-%d", prefix, 1000+rand.Intn(8000))
}
