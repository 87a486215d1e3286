// Package product holds the version-independent model of a barcode lookup
// result. The schema/v1 and schema/v2 adapters both produce these types.
package product

import "encoding/json"

// Product is a catalogued product keyed by its barcode
type Product struct {
	barcode string

	Titles        MultilingualText
	Categories    []Category
	Manufacturer  *Manufacturer
	RelatedBrands []Manufacturer
	Images        []Image
	Metadata      *Metadata
}

// New creates a product with empty sequences and no optional parts
func New(barcode string) *Product {
	return &Product{
		barcode:       barcode,
		Categories:    []Category{},
		RelatedBrands: []Manufacturer{},
		Images:        []Image{},
	}
}

// Barcode returns the lookup key the server echoed back
func (p *Product) Barcode() string {
	return p.barcode
}

// Title returns the best available title
func (p *Product) Title() string {
	title, _ := p.Titles.Best()
	return title
}

// CatalogImage returns the first catalog image, if any
func (p *Product) CatalogImage() *Image {
	for i := range p.Images {
		if p.Images[i].IsCatalog {
			return &p.Images[i]
		}
	}
	return nil
}

// Category is a node of the product taxonomy
type Category struct {
	ID     *string          `json:"id,omitempty"`
	Titles MultilingualText `json:"titles"`
}

// Manufacturer is a brand or maker. ID is nil when only a free-text name is known.
type Manufacturer struct {
	ID         *string          `json:"id,omitempty"`
	Titles     MultilingualText `json:"titles"`
	WikidataID *string          `json:"wikidataId,omitempty"`
}

// Image is a product picture
type Image struct {
	URL       string `json:"url"`
	IsCatalog bool   `json:"isCatalog"`
}

type productOut struct {
	Barcode       string           `json:"barcode"`
	Titles        MultilingualText `json:"titles"`
	Categories    []Category       `json:"categories"`
	Manufacturer  *Manufacturer    `json:"manufacturer"`
	RelatedBrands []Manufacturer   `json:"relatedBrands"`
	Images        []Image          `json:"images"`
	Metadata      *Metadata        `json:"metadata"`
}

// MarshalJSON implements json.Marshaler
func (p *Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productOut{
		Barcode:       p.barcode,
		Titles:        p.Titles,
		Categories:    p.Categories,
		Manufacturer:  p.Manufacturer,
		RelatedBrands: p.RelatedBrands,
		Images:        p.Images,
		Metadata:      p.Metadata,
	})
}
