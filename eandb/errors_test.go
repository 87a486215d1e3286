package eandb

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code        int
		description string
		want        ErrorKind
	}{
		{400, "Invalid barcode: TEST", KindInvalidBarcode},
		{400, "", KindInvalidBarcode},
		{404, "Product not found: 123", KindProductNotFound},
		{403, "JWT is missing or invalid, check Authorization header", KindInvalidJWT},
		{403, "Your account is not confirmed, please check your email for confirmation link", KindAccountNotConfirmed},
		{403, "JWT revoked", KindJWTRevoked},
		{403, "JWT expired", KindJWTExpired},
		{403, "Your account balance is empty", KindEmptyBalance},
		{403, "Something new", KindUnknown},
		{403, "jwt expired", KindUnknown},
		{403, "JWT expired.", KindUnknown},
		{401, "JWT expired", KindUnknown},
		{500, "Internal error", KindUnknown},
		{0, "", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d %s", tt.code, tt.description), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.code, tt.description))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "INVALID_BARCODE", KindInvalidBarcode.String())
	assert.Equal(t, "JWT_EXPIRED", KindJWTExpired.String())
	assert.Equal(t, "UNKNOWN", KindUnknown.String())
	assert.Equal(t, "UNKNOWN", ErrorKind(99).String())

	for kind := range kindNames {
		parsed, ok := ParseErrorKind(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, parsed)
	}

	parsed, ok := ParseErrorKind("empty_balance")
	assert.True(t, ok)
	assert.Equal(t, KindEmptyBalance, parsed)

	_, ok = ParseErrorKind("NOPE")
	assert.False(t, ok)
}

func TestAPIError(t *testing.T) {
	err := error(&APIError{StatusCode: 403, Code: 403, Description: "JWT expired", Kind: KindJWTExpired})

	assert.True(t, errors.Is(err, ErrJWTExpired))
	assert.False(t, errors.Is(err, ErrInvalidJWT))
	assert.Contains(t, err.Error(), "JWT_EXPIRED")

	wrapped := fmt.Errorf("lookup 123: %w", err)
	var apiErr *APIError
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.True(t, apiErr.IsAuthFailure())
	assert.False(t, apiErr.IsNotFound())

	notFound := &APIError{StatusCode: 404, Code: 404, Kind: KindProductNotFound}
	assert.True(t, notFound.IsNotFound())
	assert.False(t, notFound.IsAuthFailure())
	assert.ErrorIs(t, notFound, ErrProductNotFound)

	unknown := &APIError{StatusCode: 403, Code: 403, Kind: KindUnknown}
	assert.ErrorIs(t, unknown, ErrUnknownAPIError)
	assert.False(t, unknown.IsAuthFailure())
}

func TestUnexpectedStatusErrorTruncatesBody(t *testing.T) {
	body := make([]byte, 500)
	for i := range body {
		body[i] = 'x'
	}
	err := &UnexpectedStatusError{StatusCode: 502, Body: body}

	assert.Contains(t, err.Error(), "502")
	assert.Less(t, len(err.Error()), 300)
	assert.Len(t, err.Body, 500)
}

func TestUnexpectedStatusErrorTruncatesOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("a", 199) + "é" + strings.Repeat("b", 50)
	err := &UnexpectedStatusError{StatusCode: 500, Body: []byte(body)}

	msg := err.Error()
	assert.True(t, utf8.ValidString(msg))
	assert.True(t, strings.HasSuffix(msg, strings.Repeat("a", 199)+"..."))
}
