package product

// Ingredients is a named group of ingredients
type Ingredients struct {
	GroupName        *string      `json:"groupName,omitempty"`
	IngredientsGroup []Ingredient `json:"ingredientsGroup"`
}

// Ingredient is a node in the ingredient tree
type Ingredient struct {
	// ID is a normalized identifier such as "e330"
	ID             *string          `json:"id,omitempty"`
	OriginalNames  MultilingualText `json:"originalNames"`
	Amount         *Quantity        `json:"amount,omitempty"`
	IsVegan        *bool            `json:"isVegan,omitempty"`
	IsVegetarian   *bool            `json:"isVegetarian,omitempty"`
	SubIngredients []Ingredient     `json:"subIngredients"`
}

// Walk visits the group's ingredients depth-first. Returning false from fn
// skips the children of that ingredient.
func (g *Ingredients) Walk(fn func(depth int, ing *Ingredient) bool) {
	for i := range g.IngredientsGroup {
		g.IngredientsGroup[i].walk(0, fn)
	}
}

// Walk visits the ingredient and its sub-ingredients depth-first
func (ing *Ingredient) Walk(fn func(depth int, ing *Ingredient) bool) {
	ing.walk(0, fn)
}

func (ing *Ingredient) walk(depth int, fn func(int, *Ingredient) bool) {
	if !fn(depth, ing) {
		return
	}
	for i := range ing.SubIngredients {
		ing.SubIngredients[i].walk(depth+1, fn)
	}
}

// IngredientIDs returns the normalized identifiers found anywhere in the groups
func IngredientIDs(groups []Ingredients) []string {
	var ids []string
	for i := range groups {
		groups[i].Walk(func(_ int, ing *Ingredient) bool {
			if ing.ID != nil {
				ids = append(ids, *ing.ID)
			}
			return true
		})
	}
	return ids
}
