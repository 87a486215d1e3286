package product

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Number is a JSON number decoded into a decimal. Quoted numbers are
// rejected.
type Number decimal.Decimal

// Decimal returns the value as a decimal.Decimal
func (n Number) Decimal() decimal.Decimal {
	return decimal.Decimal(n)
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return fmt.Errorf("%w: %s", ErrNotNumber, trimmed)
	}
	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotNumber, err)
	}
	*n = Number(d)
	return nil
}
