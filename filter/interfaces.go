package filter

import (
	"context"

	"github.com/s0up4200/eandb/product"
)

// Filter defines the basic interface for product filters
type Filter interface {
	// Match checks if a product matches the filter criteria
	Match(p *product.Product) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Run evaluates the filter and reports evaluation failures
	Run(p *product.Product) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator applies filters to products
type Evaluator interface {
	// Apply returns the products matching filter, in input order
	Apply(ctx context.Context, filter CompiledFilter, products []*product.Product) ([]*product.Product, error)
}
