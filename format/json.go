package format

import (
	"encoding/json"

	"github.com/s0up4200/eandb/eandb"
	"github.com/s0up4200/eandb/product"
)

// JSONFormatter renders lookups as an indented JSON array
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type resultJSON struct {
	Barcode string           `json:"barcode"`
	Status  int              `json:"status,omitempty"`
	Balance *int             `json:"balance,omitempty"`
	Product *product.Product `json:"product,omitempty"`
	Error   *errorJSON       `json:"error,omitempty"`
	Failure string           `json:"failure,omitempty"`
}

type errorJSON struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// FormatResults formats a batch of lookups
func (f *JSONFormatter) FormatResults(results []eandb.Result) (string, error) {
	out := make([]resultJSON, 0, len(results))
	for _, r := range results {
		item := resultJSON{Barcode: r.Barcode}
		if r.Err != nil {
			item.Failure = r.Err.Error()
			out = append(out, item)
			continue
		}

		item.Status = r.Response.HTTPStatus()
		switch resp := r.Response.(type) {
		case *eandb.SuccessResponse:
			balance := resp.Balance
			item.Balance = &balance
			item.Product = resp.Product
		case *eandb.ErrorResponse:
			item.Error = &errorJSON{
				Code:        resp.Detail.Code,
				Description: resp.Detail.Description,
				Kind:        resp.Kind().String(),
			}
		}
		out = append(out, item)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
