package filter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/s0up4200/eandb/product"
)

// SequentialEvaluator applies a filter to products one at a time. Product
// batches are small, so evaluation runs on the calling goroutine.
type SequentialEvaluator struct {
	logger zerolog.Logger
}

// NewSequentialEvaluator creates an evaluator that logs evaluation errors at debug level
func NewSequentialEvaluator(logger zerolog.Logger) *SequentialEvaluator {
	return &SequentialEvaluator{logger: logger}
}

// Apply returns the products matching filter, in input order. Nil products
// and products the filter fails on are skipped.
func (e *SequentialEvaluator) Apply(ctx context.Context, filter CompiledFilter, products []*product.Product) ([]*product.Product, error) {
	matches := make([]*product.Product, 0, len(products))
	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}

		ok, err := filter.Run(p)
		if err != nil {
			e.logger.Debug().
				Err(err).
				Str("barcode", p.Barcode()).
				Str("filter", filter.Expression()).
				Msg("Filter evaluation failed")
			continue
		}
		if ok {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
