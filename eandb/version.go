package eandb

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/s0up4200/eandb/product"
	v1 "github.com/s0up4200/eandb/schema/v1"
	v2 "github.com/s0up4200/eandb/schema/v2"
)

// Version selects the API schema
type Version int

const (
	// V1 is the original schema
	V1 Version = 1
	// V2 is the current schema
	V2 Version = 2
)

// DefaultVersion is used when no version is configured
const DefaultVersion = V2

// ParseVersion accepts "v1", "1", "v2" or "2"
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1", "1":
		return V1, nil
	case "v2", "2":
		return V2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
	}
}

// String returns "v1" or "v2"
func (v Version) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// Valid reports whether the version is supported
func (v Version) Valid() bool {
	return v == V1 || v == V2
}

// Path returns the product endpoint path for a barcode. The barcode is
// escaped but not otherwise validated.
func (v Version) Path(barcode string) string {
	return fmt.Sprintf("/api/%s/product/%s", v, url.PathEscape(barcode))
}

// ParseProduct decodes a product object using this version's schema
func (v Version) ParseProduct(data []byte) (*product.Product, error) {
	switch v {
	case V1:
		return v1.ParseProduct(data)
	case V2:
		return v2.ParseProduct(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}
}
