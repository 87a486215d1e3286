package product

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned when a required field is absent from a payload.
var ErrMissingField = errors.New("required field missing")

var (
	// ErrNotNumber is returned when a numeric field holds a non-number.
	ErrNotNumber = errors.New("expected a JSON number")
	// ErrNullText is returned for a null entry in a multilingual text map.
	ErrNullText = errors.New("null text")
)

// QuantityError indicates a quantity payload could not be interpreted
type QuantityError struct {
	Reason string
	Err    error
}

func (e *QuantityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid quantity: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid quantity: %s", e.Reason)
}

func (e *QuantityError) Unwrap() error {
	return e.Err
}

// MissingField builds an error wrapping ErrMissingField for the given path.
func MissingField(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, path)
}
