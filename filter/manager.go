package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/s0up4200/eandb/product"
)

// Manager holds named filters, typically loaded from configuration
type Manager struct {
	compiler  Compiler
	evaluator Evaluator
	filters   map[string]CompiledFilter
	mu        sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator
func WithEvaluator(evaluator Evaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(WithCache(DefaultCacheSize)),
		evaluator: NewSequentialEvaluator(zerolog.Nop()),
		filters:   make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterFilter registers a new filter or updates an existing one
func (m *Manager) RegisterFilter(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[name] = filter
	m.mu.Unlock()

	return nil
}

// RegisterFilters registers multiple filters at once. Nothing is registered
// if any expression fails to compile.
func (m *Manager) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(filters))

	for _, name := range slices.Sorted(maps.Keys(filters)) {
		filter, err := m.compiler.Compile(filters[name])
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = filter
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// GetFilter returns a compiled filter by name
func (m *Manager) GetFilter(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	filter, exists := m.filters[name]
	m.mu.RUnlock()
	return filter, exists
}

// ListFilters returns all registered filter names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.filters))
}

// Resolve returns the registered filter called nameOrExpression, or compiles
// it as an expression when no filter has that name
func (m *Manager) Resolve(nameOrExpression string) (CompiledFilter, error) {
	if filter, ok := m.GetFilter(nameOrExpression); ok {
		return filter, nil
	}
	return m.compiler.Compile(nameOrExpression)
}

// Apply filters products with the named or inline filter
func (m *Manager) Apply(ctx context.Context, nameOrExpression string, products []*product.Product) ([]*product.Product, error) {
	filter, err := m.Resolve(nameOrExpression)
	if err != nil {
		return nil, err
	}
	return m.evaluator.Apply(ctx, filter, products)
}
