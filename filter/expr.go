package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/eandb/product"
)

// DefaultCacheSize is the compile cache size used by NewManager
const DefaultCacheSize = 100

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	env        func(*product.Product) map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newFilterCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.customFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		customFuncs: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	// A blank product gives the checker the type of every variable and helper.
	c.typeEnv = c.environment(product.New(""))

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	customFuncs map[string]any
	typeEnv     map[string]any
	cache       *filterCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.lookup(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.typeEnv),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	var filter CompiledFilter = &exprFilter{
		expression: expression,
		program:    program,
		env:        c.environment,
	}

	if c.cache != nil {
		filter = c.cache.store(filter)
	}

	return filter, nil
}

func (c *exprCompiler) environment(p *product.Product) map[string]any {
	env := createRuntimeEnvironment(p)
	maps.Copy(env, c.customFuncs)
	return env
}

// Match evaluates the filter against a product. Evaluation errors count as
// no match.
func (f *exprFilter) Match(p *product.Product) bool {
	ok, err := f.Run(p)
	return err == nil && ok
}

// Run evaluates the filter against a product
func (f *exprFilter) Run(p *product.Product) (bool, error) {
	if p == nil {
		return false, nil
	}

	result, err := expr.Run(f.program, f.env(p))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Barcode: p.Barcode(), Err: err}
	}

	// AsBool guarantees the result type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the product-independent helpers. contains,
// startsWith and endsWith are expr operators, so the case-insensitive
// variants carry an i prefix.
func addHelperFunctions(env map[string]any) {
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["istartsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["iendsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(p *product.Product) map[string]any {
	env := make(map[string]any, 48)

	addHelperFunctions(env)

	meta := p.Metadata
	var generic *product.Generic
	var nutriments *product.Nutriments
	if meta != nil {
		generic = meta.Generic
		if meta.Food != nil {
			nutriments = meta.Food.NutrimentsPer100Grams
		}
	}
	if generic == nil {
		generic = &product.Generic{}
	}

	env["Product"] = p
	env["Barcode"] = p.Barcode()
	env["Title"] = p.Title()
	env["Titles"] = map[string]string(p.Titles)
	env["Categories"] = categoryTitles(p.Categories)
	env["Manufacturer"] = manufacturerTitle(p.Manufacturer)
	env["Brands"] = brandTitles(p.RelatedBrands)
	env["Images"] = len(p.Images)
	env["HasCatalogImage"] = p.CatalogImage() != nil

	weight, weightUnit := measureOf(generic.Weight)
	env["HasWeight"] = generic.Weight.Kind() == product.QuantityExact || generic.Weight.Kind() == product.QuantityRange
	env["Weight"] = weight
	env["WeightUnit"] = weightUnit
	env["Colors"] = colorNames(generic.Colors)
	env["Materials"] = nonNil(generic.Materials)
	env["Ingredients"] = nonNil(product.IngredientIDs(generic.Ingredients))
	env["Contributors"] = len(generic.Contributors)

	year, _ := meta.PublicationYear()
	env["Year"] = year
	env["Pages"] = intOf(func() *int {
		if meta != nil && meta.PrintBook != nil {
			return meta.PrintBook.NumPages
		}
		return nil
	}())
	env["Discs"] = intOf(func() *int {
		if meta != nil && meta.MusicCD != nil {
			return meta.MusicCD.NumberOfDiscs
		}
		return nil
	}())
	env["ASIN"] = asinOf(meta)

	env["hasTitle"] = createHasTitleFunc(p.Titles)
	env["title"] = createTitleFunc(p.Titles)
	env["hasCategory"] = createHasCategoryFunc(p.Categories)
	env["hasColor"] = createHasFunc(colorNames(generic.Colors))
	env["hasMaterial"] = createHasFunc(generic.Materials)
	env["hasIngredient"] = createHasFunc(product.IngredientIDs(generic.Ingredients))
	env["hasContributor"] = createHasContributorFunc(generic.Contributors)
	env["isVegan"] = createAllIngredientsFunc(generic.Ingredients, func(ing *product.Ingredient) *bool { return ing.IsVegan })
	env["isVegetarian"] = createAllIngredientsFunc(generic.Ingredients, func(ing *product.Ingredient) *bool { return ing.IsVegetarian })
	env["hasNutriment"] = createHasNutrimentFunc(nutriments)
	env["nutriment"] = createNutrimentFunc(nutriments)

	return env
}

func categoryTitles(categories []product.Category) []string {
	titles := make([]string, 0, len(categories))
	for _, c := range categories {
		if title, ok := c.Titles.Best(); ok {
			titles = append(titles, title)
		}
	}
	return titles
}

func manufacturerTitle(m *product.Manufacturer) string {
	if m == nil {
		return ""
	}
	title, _ := m.Titles.Best()
	return title
}

func brandTitles(brands []product.Manufacturer) []string {
	titles := make([]string, 0, len(brands))
	for i := range brands {
		if title := manufacturerTitle(&brands[i]); title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}

func colorNames(colors []product.Color) []string {
	names := make([]string, 0, len(colors))
	for _, c := range colors {
		names = append(names, string(c.BaseColor))
	}
	return names
}

// measureOf returns the exact value, or the lower bound of a range
func measureOf(q *product.Quantity) (float64, string) {
	switch q.Kind() {
	case product.QuantityExact:
		return q.Exact.Value.InexactFloat64(), q.Exact.Unit
	case product.QuantityRange:
		return q.Range.Min.Value.InexactFloat64(), q.Range.Min.Unit
	default:
		return 0, ""
	}
}

func intOf(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func asinOf(meta *product.Metadata) string {
	if meta == nil || meta.ExternalIDs == nil || meta.ExternalIDs.AmazonASIN == nil {
		return ""
	}
	return *meta.ExternalIDs.AmazonASIN
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Helper factory functions

func createHasTitleFunc(titles product.MultilingualText) func(string) bool {
	return func(lang string) bool {
		_, ok := titles.Get(lang)
		return ok
	}
}

func createTitleFunc(titles product.MultilingualText) func(string) string {
	return func(lang string) string {
		title, _ := titles.Get(lang)
		return title
	}
}

func createHasCategoryFunc(categories []product.Category) func(string) bool {
	return func(needle string) bool {
		needle = strings.ToLower(needle)
		for _, c := range categories {
			if c.ID != nil && strings.EqualFold(*c.ID, needle) {
				return true
			}
			for _, title := range c.Titles {
				if strings.Contains(strings.ToLower(title), needle) {
					return true
				}
			}
		}
		return false
	}
}

func createHasFunc(values []string) func(string) bool {
	lower := make([]string, len(values))
	for i, v := range values {
		lower[i] = strings.ToLower(v)
	}
	return func(v string) bool {
		return slices.Contains(lower, strings.ToLower(v))
	}
}

func createHasContributorFunc(contributors []product.Contributor) func(string) bool {
	return func(role string) bool {
		for _, c := range contributors {
			if strings.EqualFold(c.Type, role) {
				return true
			}
		}
		return false
	}
}

// createAllIngredientsFunc is true when there is at least one ingredient and
// every ingredient in the tree has the flag explicitly set to true
func createAllIngredientsFunc(groups []product.Ingredients, flag func(*product.Ingredient) *bool) func() bool {
	return func() bool {
		seen, all := 0, true
		for i := range groups {
			groups[i].Walk(func(_ int, ing *product.Ingredient) bool {
				seen++
				if v := flag(ing); v == nil || !*v {
					all = false
				}
				return all
			})
		}
		return seen > 0 && all
	}
}

func createHasNutrimentFunc(n *product.Nutriments) func(string) bool {
	return func(key string) bool {
		return n != nil && n.Get(key) != nil
	}
}

func createNutrimentFunc(n *product.Nutriments) func(string) float64 {
	return func(key string) float64 {
		if n == nil {
			return 0
		}
		v, _ := measureOf(n.Get(key))
		return v
	}
}
