// Package v2 is the v2 product schema and its adapter to the product model.
package v2

import (
	"encoding/json"
	"fmt"

	"github.com/s0up4200/eandb/product"
)

// ParseProduct decodes a v2 product object into the unified model
func ParseProduct(data []byte) (*product.Product, error) {
	var wire Product
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode v2 product: %w", err)
	}
	return wire.ToProduct()
}

// ToProduct converts the wire payload into the unified model
func (w *Product) ToProduct() (*product.Product, error) {
	if w.Barcode == nil {
		return nil, product.MissingField("barcode")
	}

	p := product.New(*w.Barcode)
	p.Titles = w.Titles

	for _, c := range w.Categories {
		p.Categories = append(p.Categories, product.Category{ID: c.ID, Titles: c.Titles})
	}
	if w.Manufacturer != nil {
		m := w.Manufacturer.toManufacturer()
		p.Manufacturer = &m
	}
	for _, b := range w.RelatedBrands {
		p.RelatedBrands = append(p.RelatedBrands, b.toManufacturer())
	}
	for i, img := range w.Images {
		if img.URL == nil {
			return nil, product.MissingField(fmt.Sprintf("images[%d].url", i))
		}
		p.Images = append(p.Images, product.Image{
			URL:       *img.URL,
			IsCatalog: img.IsCatalog != nil && *img.IsCatalog,
		})
	}

	if w.Metadata != nil {
		meta, err := w.Metadata.toMetadata()
		if err != nil {
			return nil, err
		}
		p.Metadata = meta
	}

	return p, nil
}

func (m Manufacturer) toManufacturer() product.Manufacturer {
	return product.Manufacturer{ID: m.ID, Titles: m.Titles, WikidataID: m.WikidataID}
}

func (m *Metadata) toMetadata() (*product.Metadata, error) {
	meta := &product.Metadata{}

	if m.ExternalIDs != nil {
		meta.ExternalIDs = &product.ExternalIDs{AmazonASIN: m.ExternalIDs.AmazonASIN}
	}

	if m.Generic != nil {
		generic, err := m.Generic.toGeneric()
		if err != nil {
			return nil, err
		}
		meta.Generic = generic
	}

	if m.Food != nil {
		meta.Food = &product.Food{}
		if m.Food.NutrimentsPer100Grams != nil {
			meta.Food.NutrimentsPer100Grams = product.NutrimentsFromMap(m.Food.NutrimentsPer100Grams)
		}
	}

	if m.PrintBook != nil {
		meta.PrintBook = &product.PrintBook{
			NumPages:    m.PrintBook.NumPages,
			BisacCodes:  orEmpty(m.PrintBook.BisacCodes),
			BindingType: m.PrintBook.BindingType,
		}
	}

	if m.MusicCD != nil {
		meta.MusicCD = &product.MusicCD{NumberOfDiscs: m.MusicCD.NumberOfDiscs}
	}

	if m.Media != nil {
		meta.Media = &product.Media{PublicationYear: m.Media.PublicationYear}
	}

	return meta, nil
}

func (g *Generic) toGeneric() (*product.Generic, error) {
	generic := &product.Generic{
		Weight:           g.Weight,
		ManufacturerCode: g.ManufacturerCode,
		Colors:           orEmpty(g.Colors),
		Materials:        []string{},
		Ingredients:      make([]product.Ingredients, 0, len(g.Ingredients)),
		Contributors:     make([]product.Contributor, 0, len(g.Contributors)),
	}

	for _, group := range g.Ingredients {
		generic.Ingredients = append(generic.Ingredients, product.Ingredients{
			GroupName:        group.GroupName,
			IngredientsGroup: toIngredients(group.IngredientsGroup),
		})
	}

	for i, c := range g.Contributors {
		if c.Type == nil {
			return nil, product.MissingField(fmt.Sprintf("metadata.generic.contributors[%d].type", i))
		}
		generic.Contributors = append(generic.Contributors, product.Contributor{Names: c.Names, Type: *c.Type})
	}

	return generic, nil
}

func toIngredients(in []Ingredient) []product.Ingredient {
	out := make([]product.Ingredient, 0, len(in))
	for _, ing := range in {
		out = append(out, product.Ingredient{
			ID:             ing.ID,
			OriginalNames:  ing.OriginalNames,
			Amount:         ing.Amount,
			IsVegan:        ing.IsVegan,
			IsVegetarian:   ing.IsVegetarian,
			SubIngredients: toIngredients(ing.SubIngredients),
		})
	}
	return out
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
