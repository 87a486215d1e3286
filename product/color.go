package product

import (
	"encoding/json"
	"fmt"
)

// BaseColor is the coarse color family of a product
type BaseColor string

const (
	ColorBlack       BaseColor = "black"
	ColorWhite       BaseColor = "white"
	ColorGray        BaseColor = "gray"
	ColorRed         BaseColor = "red"
	ColorOrange      BaseColor = "orange"
	ColorYellow      BaseColor = "yellow"
	ColorGreen       BaseColor = "green"
	ColorBlue        BaseColor = "blue"
	ColorPurple      BaseColor = "purple"
	ColorPink        BaseColor = "pink"
	ColorBrown       BaseColor = "brown"
	ColorBeige       BaseColor = "beige"
	ColorGold        BaseColor = "gold"
	ColorSilver      BaseColor = "silver"
	ColorTransparent BaseColor = "transparent"
	ColorMulticolor  BaseColor = "multicolor"
)

var knownBaseColors = map[BaseColor]bool{
	ColorBlack: true, ColorWhite: true, ColorGray: true, ColorRed: true,
	ColorOrange: true, ColorYellow: true, ColorGreen: true, ColorBlue: true,
	ColorPurple: true, ColorPink: true, ColorBrown: true, ColorBeige: true,
	ColorGold: true, ColorSilver: true, ColorTransparent: true, ColorMulticolor: true,
}

// Known reports whether the color is one of the documented base colors.
// Unrecognised values are kept so new server colors do not fail a lookup.
func (c BaseColor) Known() bool {
	return knownBaseColors[c]
}

// Color describes a product color
type Color struct {
	BaseColor BaseColor
	// Extra holds any members besides baseColor, untouched.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Color) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}

	raw, ok := member(fields, "baseColor")
	if !ok {
		return MissingField("color.baseColor")
	}
	var base string
	if err := json.Unmarshal(raw, &base); err != nil {
		return fmt.Errorf("invalid color.baseColor: %w", err)
	}
	if base == "" {
		return MissingField("color.baseColor")
	}

	delete(fields, "baseColor")
	c.BaseColor = BaseColor(base)
	c.Extra = nil
	if len(fields) > 0 {
		c.Extra = fields
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (c Color) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+1)
	for k, v := range c.Extra {
		out[k] = v
	}
	out["baseColor"] = string(c.BaseColor)
	return json.Marshal(out)
}
