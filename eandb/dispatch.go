package eandb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/s0up4200/eandb/product"
)

var (
	errNotObject        = errors.New("body is not a JSON object")
	errConflictingShape = errors.New("body carries both product and error members")
)

// Dispatch selects the envelope shape for a status code and parses body into it.
//
//   - 200 is parsed as a *SuccessResponse using the version's product schema
//   - 400, 403 and 404 are parsed as an *ErrorResponse
//   - any other status yields an *UnexpectedStatusError
//
// A body that does not fit the expected shape yields a *MalformedResponseError.
// Dispatch is pure and safe for concurrent use.
func Dispatch(status int, body []byte, version Version) (Response, error) {
	switch status {
	case http.StatusOK:
		resp, err := parseSuccess(body, version)
		if err != nil {
			return nil, &MalformedResponseError{StatusCode: status, Body: body, Err: err}
		}
		return resp, nil
	case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound:
		resp, err := parseError(status, body)
		if err != nil {
			return nil, &MalformedResponseError{StatusCode: status, Body: body, Err: err}
		}
		return resp, nil
	default:
		return nil, &UnexpectedStatusError{StatusCode: status, Body: body}
	}
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if fields == nil {
		return nil, errNotObject
	}
	return fields, nil
}

func present(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	raw, ok := fields[name]
	if !ok || product.IsNull(raw) {
		return nil, false
	}
	return raw, true
}

func parseSuccess(body []byte, version Version) (*SuccessResponse, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	if _, ok := present(fields, "error"); ok {
		return nil, errConflictingShape
	}

	rawBalance, ok := present(fields, "balance")
	if !ok {
		return nil, product.MissingField("balance")
	}
	var balance int
	if err := json.Unmarshal(rawBalance, &balance); err != nil {
		return nil, fmt.Errorf("decode balance: %w", err)
	}

	rawProduct, ok := present(fields, "product")
	if !ok {
		return nil, product.MissingField("product")
	}
	p, err := version.ParseProduct(rawProduct)
	if err != nil {
		return nil, err
	}

	return &SuccessResponse{Balance: balance, Product: p}, nil
}

func parseError(status int, body []byte) (*ErrorResponse, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	if _, ok := present(fields, "product"); ok {
		return nil, errConflictingShape
	}

	rawError, ok := present(fields, "error")
	if !ok {
		return nil, product.MissingField("error")
	}

	var detail struct {
		Code        *int    `json:"code"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(rawError, &detail); err != nil {
		return nil, fmt.Errorf("decode error member: %w", err)
	}
	if detail.Code == nil {
		return nil, product.MissingField("error.code")
	}
	if detail.Description == nil {
		return nil, product.MissingField("error.description")
	}

	return &ErrorResponse{
		Status: status,
		Detail: ErrorDetail{Code: *detail.Code, Description: *detail.Description},
	}, nil
}
