package v2

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/eandb/product"
)

func loadFixture(t *testing.T, name string) *product.Product {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	p, err := ParseProduct(data)
	require.NoError(t, err)
	return p
}

func assertExact(t *testing.T, q *product.Quantity, value, unit string) {
	t.Helper()
	require.NotNil(t, q)
	require.Equal(t, product.QuantityExact, q.Kind())
	assert.True(t, q.Exact.Value.Equal(decimal.RequireFromString(value)), "got %s, want %s", q.Exact.Value, value)
	assert.Equal(t, unit, q.Exact.Unit)
}

func TestParseBasicProduct(t *testing.T) {
	p := loadFixture(t, "basic.json")

	assert.Equal(t, "123", p.Barcode())
	assert.Equal(t, product.MultilingualText{"en": "Test"}, p.Titles)
	assert.NotNil(t, p.Categories)
	assert.Empty(t, p.Categories)
	assert.Nil(t, p.Manufacturer)
	assert.NotNil(t, p.RelatedBrands)
	assert.Empty(t, p.RelatedBrands)
	assert.NotNil(t, p.Images)
	assert.Empty(t, p.Images)
	assert.Nil(t, p.Metadata)
}

func TestParseExtendedProduct(t *testing.T) {
	p := loadFixture(t, "extended.json")

	assert.Equal(t, product.MultilingualText{"en": "Test", "no": "Tœst"}, p.Titles)

	require.Len(t, p.Categories, 2)
	assert.Equal(t, "3911", *p.Categories[0].ID)
	assert.Equal(t, product.MultilingualText{"en": "Bath Toys", "de": "Bad-Spielzeug"}, p.Categories[0].Titles)
	assert.Equal(t, "543543", *p.Categories[1].ID)
	assert.Equal(t, product.MultilingualText{"en": "Print Books", "de": "Gedruckte Bücher"}, p.Categories[1].Titles)

	require.NotNil(t, p.Manufacturer)
	assert.Equal(t, "manufacturer-id", *p.Manufacturer.ID)
	assert.Equal(t, product.MultilingualText{"en": "Manufacturer", "no": "Manufåcturer"}, p.Manufacturer.Titles)
	assert.Equal(t, "TEST", *p.Manufacturer.WikidataID)

	require.Len(t, p.RelatedBrands, 1)
	assert.Equal(t, "related-brand-id", *p.RelatedBrands[0].ID)
	assert.Nil(t, p.RelatedBrands[0].WikidataID)

	require.Len(t, p.Images, 1)
	assert.Equal(t, "https://ean-db.com/image.jpg", p.Images[0].URL)
	assert.True(t, p.Images[0].IsCatalog)

	require.NotNil(t, p.Metadata)
	assert.Nil(t, p.Metadata.Generic)
	assert.Nil(t, p.Metadata.Food)
	assert.Nil(t, p.Metadata.PrintBook)
	assert.Nil(t, p.Metadata.MusicCD)
	assert.Nil(t, p.Metadata.Media)
	require.NotNil(t, p.Metadata.ExternalIDs)
	assert.Equal(t, "TEST", *p.Metadata.ExternalIDs.AmazonASIN)
}

func TestParseFoodProduct(t *testing.T) {
	p := loadFixture(t, "food.json")

	require.NotNil(t, p.Manufacturer)
	assert.Nil(t, p.Manufacturer.ID)
	assert.Equal(t, product.MultilingualText{"en": "Manufacturer"}, p.Manufacturer.Titles)
	assert.Nil(t, p.Manufacturer.WikidataID)

	meta := p.Metadata
	require.NotNil(t, meta)
	assert.Nil(t, meta.ExternalIDs)
	assert.Nil(t, meta.PrintBook)
	assert.Nil(t, meta.MusicCD)

	require.NotNil(t, meta.Generic)
	weight := meta.Generic.Weight
	require.NotNil(t, weight)
	require.Equal(t, product.QuantityUnknown, weight.Kind())
	assertExact(t, weight.Unknown.Reported, "100", "grams")
	assert.Equal(t, "TEST", *meta.Generic.ManufacturerCode)
	require.Len(t, meta.Generic.Colors, 1)
	assert.Equal(t, product.ColorBlue, meta.Generic.Colors[0].BaseColor)

	require.NotNil(t, meta.Food)
	n := meta.Food.NutrimentsPer100Grams
	require.NotNil(t, n)
	assertExact(t, n.Fat, "1", "grams")
	assertExact(t, n.Proteins, "2", "grams")
	assertExact(t, n.Carbohydrates, "3", "grams")
	assertExact(t, n.Energy, "4", "kilocalories")
	assert.Nil(t, n.Cholesterol)
	assert.Nil(t, n.Sodium)
	assert.Nil(t, n.Potassium)
	assertExact(t, n.Calcium, "16", "milligrams")

	fiber := n.Get("fiber")
	require.NotNil(t, fiber)
	require.Equal(t, product.QuantityRange, fiber.Kind())
	assert.Equal(t, "0.5", fiber.Range.Min.Value.String())
	assert.Equal(t, "1.5", fiber.Range.Max.Value.String())
}

func TestParseBookProduct(t *testing.T) {
	p := loadFixture(t, "book.json")

	meta := p.Metadata
	require.NotNil(t, meta)
	assert.Nil(t, meta.ExternalIDs)
	assert.Nil(t, meta.Food)
	assert.Nil(t, meta.MusicCD)

	require.NotNil(t, meta.Generic)
	assert.Nil(t, meta.Generic.Weight)
	assert.Nil(t, meta.Generic.ManufacturerCode)
	require.Len(t, meta.Generic.Ingredients, 1)
	assert.Nil(t, meta.Generic.Ingredients[0].GroupName)
	require.Len(t, meta.Generic.Ingredients[0].IngredientsGroup, 1)
	assert.Equal(t, "paper", *meta.Generic.Ingredients[0].IngredientsGroup[0].ID)
	assert.Equal(t, product.MultilingualText{"en": "Paper"}, meta.Generic.Ingredients[0].IngredientsGroup[0].OriginalNames)

	require.Len(t, meta.Generic.Contributors, 1)
	assert.Equal(t, product.MultilingualText{"en": "John Smith"}, meta.Generic.Contributors[0].Names)
	assert.Equal(t, "author", meta.Generic.Contributors[0].Type)

	require.NotNil(t, meta.PrintBook)
	assert.Equal(t, 123, *meta.PrintBook.NumPages)
	assert.Equal(t, []string{"TEST"}, meta.PrintBook.BisacCodes)
	assert.Equal(t, "paperback", *meta.PrintBook.BindingType)

	year, ok := meta.PublicationYear()
	assert.True(t, ok)
	assert.Equal(t, 2010, year)
}

func TestParseMusicCDProduct(t *testing.T) {
	p := loadFixture(t, "musicCD.json")

	meta := p.Metadata
	require.NotNil(t, meta)
	assert.Nil(t, meta.ExternalIDs)
	assert.Nil(t, meta.Generic)
	assert.Nil(t, meta.Food)
	assert.Nil(t, meta.PrintBook)
	require.NotNil(t, meta.MusicCD)
	assert.Equal(t, 2, *meta.MusicCD.NumberOfDiscs)
	require.NotNil(t, meta.Media)
	assert.Equal(t, 2010, *meta.Media.PublicationYear)
}

func TestParseIngredientsProduct(t *testing.T) {
	p := loadFixture(t, "ingredients.json")

	require.NotNil(t, p.Metadata)
	require.NotNil(t, p.Metadata.Generic)
	require.Len(t, p.Metadata.Generic.Ingredients, 1)

	ingredients := p.Metadata.Generic.Ingredients[0]
	assert.Nil(t, ingredients.GroupName)
	require.Len(t, ingredients.IngredientsGroup, 3)

	water := ingredients.IngredientsGroup[0]
	assert.Nil(t, water.ID)
	assert.Equal(t, product.MultilingualText{"en": "Drinking Water"}, water.OriginalNames)
	assert.Nil(t, water.Amount)
	assert.Nil(t, water.IsVegan)
	assert.Nil(t, water.IsVegetarian)
	assert.NotNil(t, water.SubIngredients)
	assert.Empty(t, water.SubIngredients)

	sugar := ingredients.IngredientsGroup[1]
	assert.Equal(t, "sugar", *sugar.ID)
	assert.Equal(t, product.MultilingualText{"en": "Sugar"}, sugar.OriginalNames)
	assertExact(t, sugar.Amount, "2.2", "percent")

	regulators := ingredients.IngredientsGroup[2]
	assert.Equal(t, product.MultilingualText{"en": "Acidity Regulators"}, regulators.OriginalNames)
	assert.Nil(t, regulators.IsVegan)
	require.Len(t, regulators.SubIngredients, 1)

	citric := regulators.SubIngredients[0]
	assert.Equal(t, "e330", *citric.ID)
	assert.Equal(t, product.MultilingualText{"en": "Citric Acid"}, citric.OriginalNames)
	require.NotNil(t, citric.IsVegan)
	assert.True(t, *citric.IsVegan)
	require.NotNil(t, citric.IsVegetarian)
	assert.True(t, *citric.IsVegetarian)
}

func TestParseProductErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		missing bool
	}{
		{name: "not json", input: `<html>`},
		{name: "array", input: `[]`},
		{name: "missing barcode", input: `{"titles": {"en": "x"}}`, missing: true},
		{name: "null barcode", input: `{"barcode": null}`, missing: true},
		{name: "numeric barcode", input: `{"barcode": 123}`},
		{name: "titles not a map", input: `{"barcode": "1", "titles": ["x"]}`},
		{name: "null title", input: `{"barcode": "1", "titles": {"en": null, "de": "x"}}`},
		{name: "quoted weight value", input: `{"barcode": "1", "metadata": {"generic": {"weight": {"equals": {"value": "100", "unit": "grams"}}}}}`},
		{name: "image without url", input: `{"barcode": "1", "images": [{"isCatalog": true}]}`, missing: true},
		{name: "categories not a list", input: `{"barcode": "1", "categories": {}}`},
		{name: "bad weight", input: `{"barcode": "1", "metadata": {"generic": {"weight": "heavy"}}}`},
		{name: "bad nutriment", input: `{"barcode": "1", "metadata": {"food": {"nutrimentsPer100Grams": {"fat": {"equals": {"unit": "g"}}}}}}`},
		{name: "color without base", input: `{"barcode": "1", "metadata": {"generic": {"colors": [{}]}}}`, missing: true},
		{name: "contributor without type", input: `{"barcode": "1", "metadata": {"generic": {"contributors": [{"names": {"en": "A"}}]}}}`, missing: true},
		{name: "fractional page count", input: `{"barcode": "1", "metadata": {"printBook": {"numPages": 12.5}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProduct([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, p)
			if tt.missing {
				assert.ErrorIs(t, err, product.ErrMissingField)
			}
		})
	}
}

func TestParseProductLeavesAbsentBlocksUnset(t *testing.T) {
	p, err := ParseProduct([]byte(`{"barcode": "1", "metadata": {"food": {}, "generic": {}}}`))
	require.NoError(t, err)

	require.NotNil(t, p.Metadata)
	require.NotNil(t, p.Metadata.Food)
	assert.Nil(t, p.Metadata.Food.NutrimentsPer100Grams)
	require.NotNil(t, p.Metadata.Generic)
	assert.Nil(t, p.Metadata.Generic.Weight)
	assert.Empty(t, p.Metadata.Generic.Colors)
	assert.Empty(t, p.Metadata.Generic.Materials)
	assert.Nil(t, p.Metadata.ExternalIDs)
	assert.Nil(t, p.Metadata.Media)
	assert.Nil(t, p.Titles)
}
