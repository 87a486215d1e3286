package eandb

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid eandb client configuration")
	// ErrUnsupportedVersion indicates an API version this client does not speak
	ErrUnsupportedVersion = errors.New("unsupported API version")
)

// Errors matched by APIError.Is, one per ErrorKind
var (
	ErrInvalidBarcode      = errors.New("invalid barcode")
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidJWT          = errors.New("JWT is missing or invalid")
	ErrAccountNotConfirmed = errors.New("account not confirmed")
	ErrJWTRevoked          = errors.New("JWT revoked")
	ErrJWTExpired          = errors.New("JWT expired")
	ErrEmptyBalance        = errors.New("account balance is empty")
	ErrUnknownAPIError     = errors.New("unknown API error")
)

// ErrorKind classifies an error response
type ErrorKind int

const (
	// KindUnknown is any error the table below does not recognise
	KindUnknown ErrorKind = iota
	KindInvalidBarcode
	KindProductNotFound
	KindInvalidJWT
	KindAccountNotConfirmed
	KindJWTRevoked
	KindJWTExpired
	KindEmptyBalance
)

var kindNames = map[ErrorKind]string{
	KindUnknown:             "UNKNOWN",
	KindInvalidBarcode:      "INVALID_BARCODE",
	KindProductNotFound:     "PRODUCT_NOT_FOUND",
	KindInvalidJWT:          "INVALID_JWT",
	KindAccountNotConfirmed: "ACCOUNT_NOT_CONFIRMED",
	KindJWTRevoked:          "JWT_REVOKED",
	KindJWTExpired:          "JWT_EXPIRED",
	KindEmptyBalance:        "EMPTY_BALANCE",
}

var kindErrors = map[ErrorKind]error{
	KindUnknown:             ErrUnknownAPIError,
	KindInvalidBarcode:      ErrInvalidBarcode,
	KindProductNotFound:     ErrProductNotFound,
	KindInvalidJWT:          ErrInvalidJWT,
	KindAccountNotConfirmed: ErrAccountNotConfirmed,
	KindJWTRevoked:          ErrJWTRevoked,
	KindJWTExpired:          ErrJWTExpired,
	KindEmptyBalance:        ErrEmptyBalance,
}

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// ParseErrorKind is the inverse of ErrorKind.String
func ParseErrorKind(s string) (ErrorKind, bool) {
	for kind, name := range kindNames {
		if strings.EqualFold(name, s) {
			return kind, true
		}
	}
	return KindUnknown, false
}

// Error classification. The API has no machine-readable subtype for 403s,
// so these descriptions must match the server text exactly. Any wording
// change on the server side turns the kind into KindUnknown.
var (
	statusKinds = map[int]ErrorKind{
		http.StatusBadRequest: KindInvalidBarcode,
		http.StatusNotFound:   KindProductNotFound,
	}

	forbiddenKinds = map[string]ErrorKind{
		"JWT is missing or invalid, check Authorization header":                         KindInvalidJWT,
		"Your account is not confirmed, please check your email for confirmation link": KindAccountNotConfirmed,
		"JWT revoked":                   KindJWTRevoked,
		"JWT expired":                   KindJWTExpired,
		"Your account balance is empty": KindEmptyBalance,
	}
)

// Classify maps an error code and description to an ErrorKind
func Classify(code int, description string) ErrorKind {
	if kind, ok := statusKinds[code]; ok {
		return kind
	}
	if code == http.StatusForbidden {
		if kind, ok := forbiddenKinds[description]; ok {
			return kind
		}
	}
	return KindUnknown
}

// APIError is an error response returned as a Go error
type APIError struct {
	StatusCode  int
	Code        int
	Description string
	Kind        ErrorKind
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("eandb API error: status %d: %s: %s", e.StatusCode, e.Kind, e.Description)
}

// Is matches the sentinel error of the error's kind
func (e *APIError) Is(target error) bool {
	return kindErrors[e.Kind] == target
}

// IsNotFound checks if the product does not exist
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindProductNotFound
}

// IsAuthFailure checks if the token or account was rejected
func (e *APIError) IsAuthFailure() bool {
	switch e.Kind {
	case KindInvalidJWT, KindAccountNotConfirmed, KindJWTRevoked, KindJWTExpired, KindEmptyBalance:
		return true
	}
	return false
}

// MalformedResponseError indicates a body that does not match the shape
// expected for its status code
type MalformedResponseError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed eandb response (status %d): %v", e.StatusCode, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError indicates a status code outside 200/400/403/404
type UnexpectedStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *UnexpectedStatusError) Error() string {
	const maxBody = 200
	body := string(e.Body)
	if len(body) > maxBody {
		cut := maxBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "..."
	}
	return fmt.Sprintf("unexpected eandb status %d: %s", e.StatusCode, body)
}
