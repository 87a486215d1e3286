package eandb

import (
	"net/http"

	"github.com/s0up4200/eandb/product"
)

// Response is a parsed API response: either *SuccessResponse or *ErrorResponse.
// Malformed bodies and unexpected statuses are returned as errors instead.
type Response interface {
	// HTTPStatus is the status code the response arrived with
	HTTPStatus() int

	isResponse()
}

// SuccessResponse is a 200 response
type SuccessResponse struct {
	Balance int              `json:"balance"`
	Product *product.Product `json:"product"`
}

// HTTPStatus implements Response
func (r *SuccessResponse) HTTPStatus() int { return http.StatusOK }

func (*SuccessResponse) isResponse() {}

// ErrorDetail is the error member of an error response
type ErrorDetail struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// ErrorResponse is a 400, 403 or 404 response
type ErrorResponse struct {
	Status int         `json:"-"`
	Detail ErrorDetail `json:"error"`
}

// HTTPStatus implements Response
func (r *ErrorResponse) HTTPStatus() int { return r.Status }

func (*ErrorResponse) isResponse() {}

// Kind classifies the error
func (r *ErrorResponse) Kind() ErrorKind {
	return Classify(r.Detail.Code, r.Detail.Description)
}

// Err converts the response into an *APIError
func (r *ErrorResponse) Err() error {
	return &APIError{
		StatusCode:  r.Status,
		Code:        r.Detail.Code,
		Description: r.Detail.Description,
		Kind:        r.Kind(),
	}
}
