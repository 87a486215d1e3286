// Package v1 is the v1 product schema and its adapter to the product model.
//
// v1 differs from v2 in a few places: the weight is a plain gram count
// (weightGrams), a product has a single color, generic metadata lists
// materials instead of ingredients, there are no related brands or catalog
// image flags, and books and CDs carry their own year fields. The adapter
// lifts publishedYear and releasedYear into product.Media so callers read
// the year the same way for both versions.
package v1

import (
	"encoding/json"
	"fmt"

	"github.com/s0up4200/eandb/product"
)

// WeightUnit is the unit implied by weightGrams
const WeightUnit = "grams"

// ParseProduct decodes a v1 product object into the unified model
func ParseProduct(data []byte) (*product.Product, error) {
	var wire Product
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode v1 product: %w", err)
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
		p.Manufacturer = &product.Manufacturer{
			ID:         w.Manufacturer.ID,
			Titles:     w.Manufacturer.Titles,
			WikidataID: w.Manufacturer.WikidataID,
		}
	}
	for i, img := range w.Images {
		if img.URL == nil {
			return nil, product.MissingField(fmt.Sprintf("images[%d].url", i))
		}
		p.Images = append(p.Images, product.Image{URL: *img.URL})
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

	var year *int
	if m.PrintBook != nil {
		meta.PrintBook = &product.PrintBook{
			NumPages:      m.PrintBook.NumPages,
			BisacCodes:    m.PrintBook.BisacCodes,
			BindingType:   m.PrintBook.BindingType,
			PublishedYear: m.PrintBook.PublishedYear,
		}
		if meta.PrintBook.BisacCodes == nil {
			meta.PrintBook.BisacCodes = []string{}
		}
		year = m.PrintBook.PublishedYear
	}

	if m.MusicCD != nil {
		meta.MusicCD = &product.MusicCD{
			NumberOfDiscs: m.MusicCD.NumberOfDiscs,
			ReleasedYear:  m.MusicCD.ReleasedYear,
		}
		// the book year wins the shared slot; each block keeps its own
		if year == nil {
			year = m.MusicCD.ReleasedYear
		}
	}

	if year != nil {
		meta.Media = &product.Media{PublicationYear: year}
	}

	return meta, nil
}

func (g *Generic) toGeneric() (*product.Generic, error) {
	generic := &product.Generic{
		ManufacturerCode: g.ManufacturerCode,
		Colors:           []product.Color{},
		Materials:        g.Materials,
		Ingredients:      []product.Ingredients{},
		Contributors:     make([]product.Contributor, 0, len(g.Contributors)),
	}
	if generic.Materials == nil {
		generic.Materials = []string{}
	}

	if g.WeightGrams != nil {
		generic.Weight = product.NewExact(g.WeightGrams.Decimal(), WeightUnit)
	}
	if g.Color != nil {
		generic.Colors = append(generic.Colors, *g.Color)
	}

	for i, c := range g.Contributors {
		if c.Type == nil {
			return nil, product.MissingField(fmt.Sprintf("metadata.generic.contributors[%d].type", i))
		}
		generic.Contributors = append(generic.Contributors, product.Contributor{Names: c.Names, Type: *c.Type})
	}

	return generic, nil
}
