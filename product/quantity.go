package product

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// QuantityKind identifies which variant of a Quantity is populated
type QuantityKind int

const (
	// QuantityUnset is the kind of a nil or empty Quantity
	QuantityUnset QuantityKind = iota
	// QuantityExact is a single value with a unit
	QuantityExact
	// QuantityRange is a min/max pair
	QuantityRange
	// QuantityUnknown is present on the wire but carries no usable value
	QuantityUnknown
)

// String returns the string representation of a QuantityKind
func (k QuantityKind) String() string {
	switch k {
	case QuantityExact:
		return "exact"
	case QuantityRange:
		return "range"
	case QuantityUnknown:
		return "unknown"
	default:
		return "unset"
	}
}

// Measure is a decimal value in a unit such as "grams" or "percent"
type Measure struct {
	Value decimal.Decimal
	Unit  string
}

// String renders the measure as "<value> <unit>"
func (m Measure) String() string {
	if m.Unit == "" {
		return m.Value.String()
	}
	return m.Value.String() + " " + m.Unit
}

// Range is a bounded quantity
type Range struct {
	Min Measure
	Max Measure
}

// Unknown is a quantity the server reported without a value we can use.
type Unknown struct {
	// Raw is the payload exactly as received.
	Raw json.RawMessage
	// Reported is set when the payload carries a structured quantity under an
	// "unknown" qualifier, e.g. a weight whose net/gross kind is not known.
	Reported *Quantity
}

// Quantity is a numeric measurement. Exactly one of Exact, Range and Unknown
// is set on a parsed value.
type Quantity struct {
	Exact   *Measure
	Range   *Range
	Unknown *Unknown
}

// NewExact returns an exact quantity
func NewExact(value decimal.Decimal, unit string) *Quantity {
	return &Quantity{Exact: &Measure{Value: value, Unit: unit}}
}

// NewRange returns a range quantity
func NewRange(min, max Measure) *Quantity {
	return &Quantity{Range: &Range{Min: min, Max: max}}
}

// Kind reports which variant is populated
func (q *Quantity) Kind() QuantityKind {
	switch {
	case q == nil:
		return QuantityUnset
	case q.Exact != nil:
		return QuantityExact
	case q.Range != nil:
		return QuantityRange
	case q.Unknown != nil:
		return QuantityUnknown
	default:
		return QuantityUnset
	}
}

// String renders the quantity for display
func (q *Quantity) String() string {
	switch q.Kind() {
	case QuantityExact:
		return q.Exact.String()
	case QuantityRange:
		if q.Range.Min.Unit == q.Range.Max.Unit {
			return fmt.Sprintf("%s-%s %s", q.Range.Min.Value, q.Range.Max.Value, q.Range.Min.Unit)
		}
		return q.Range.Min.String() + " - " + q.Range.Max.String()
	case QuantityUnknown:
		if q.Unknown.Reported != nil {
			return "~" + q.Unknown.Reported.String()
		}
		return "unknown"
	default:
		return ""
	}
}

type measureJSON struct {
	Value *Number `json:"value"`
	Unit  *string `json:"unit"`
}

// ParseQuantity interprets a quantity object. An "equals" member makes it
// exact, "min" together with "max" makes it a range, and any other object is
// the unknown variant. Empty input and JSON null yield (nil, nil).
func ParseQuantity(data []byte) (*Quantity, error) {
	if IsNull(data) {
		return nil, nil
	}
	trimmed := bytes.TrimSpace(data)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, &QuantityError{Reason: "expected an object", Err: err}
	}

	if raw, ok := member(fields, "equals"); ok {
		m, err := parseMeasure(raw, "equals")
		if err != nil {
			return nil, err
		}
		return &Quantity{Exact: &m}, nil
	}

	minRaw, hasMin := member(fields, "min")
	maxRaw, hasMax := member(fields, "max")
	if hasMin && hasMax {
		lo, err := parseMeasure(minRaw, "min")
		if err != nil {
			return nil, err
		}
		hi, err := parseMeasure(maxRaw, "max")
		if err != nil {
			return nil, err
		}
		return NewRange(lo, hi), nil
	}

	unknown := &Unknown{Raw: append(json.RawMessage(nil), trimmed...)}
	if raw, ok := member(fields, "unknown"); ok {
		// a malformed qualifier payload stays opaque
		if reported, err := ParseQuantity(raw); err == nil && reported != nil && reported.Unknown == nil {
			unknown.Reported = reported
		}
	}
	return &Quantity{Unknown: unknown}, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (q *Quantity) UnmarshalJSON(data []byte) error {
	parsed, err := ParseQuantity(data)
	if err != nil {
		return err
	}
	if parsed == nil {
		*q = Quantity{}
		return nil
	}
	*q = *parsed
	return nil
}

type measureOut struct {
	Value json.Number `json:"value"`
	Unit  string      `json:"unit"`
}

func (m Measure) out() measureOut {
	return measureOut{Value: json.Number(m.Value.String()), Unit: m.Unit}
}

// MarshalJSON re-emits the wire shape accepted by ParseQuantity
func (q Quantity) MarshalJSON() ([]byte, error) {
	switch {
	case q.Exact != nil:
		return json.Marshal(map[string]measureOut{"equals": q.Exact.out()})
	case q.Range != nil:
		return json.Marshal(map[string]measureOut{"min": q.Range.Min.out(), "max": q.Range.Max.out()})
	case q.Unknown != nil && len(q.Unknown.Raw) > 0:
		return q.Unknown.Raw, nil
	default:
		return []byte("{}"), nil
	}
}

func parseMeasure(raw json.RawMessage, field string) (Measure, error) {
	var m measureJSON
	if err := json.Unmarshal(raw, &m); err != nil {
		return Measure{}, &QuantityError{Reason: field, Err: err}
	}
	if m.Value == nil {
		return Measure{}, &QuantityError{Reason: field, Err: MissingField("value")}
	}
	if m.Unit == nil {
		return Measure{}, &QuantityError{Reason: field, Err: MissingField("unit")}
	}
	return Measure{Value: m.Value.Decimal(), Unit: *m.Unit}, nil
}

// member returns the named member when it is present and not null
func member(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	raw, ok := fields[name]
	if !ok || IsNull(raw) {
		return nil, false
	}
	return raw, true
}

// IsNull reports whether raw is empty or the JSON literal null
func IsNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
