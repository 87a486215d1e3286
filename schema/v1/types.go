package v1

import (
	"github.com/s0up4200/eandb/product"
)

// Product is the v1 product payload
type Product struct {
	Barcode      *string                  `json:"barcode"`
	Titles       product.MultilingualText `json:"titles"`
	Categories   []Category               `json:"categories"`
	Manufacturer *Manufacturer            `json:"manufacturer"`
	Images       []Image                  `json:"images"`
	Metadata     *Metadata                `json:"metadata"`
}

// Category is a v1 category
type Category struct {
	ID     *string                  `json:"id"`
	Titles product.MultilingualText `json:"titles"`
}

// Manufacturer is a v1 manufacturer
type Manufacturer struct {
	ID         *string                  `json:"id"`
	Titles     product.MultilingualText `json:"titles"`
	WikidataID *string                  `json:"wikidataId"`
}

// Image is a v1 image. v1 has no catalog flag.
type Image struct {
	URL *string `json:"url"`
}

// Metadata is the v1 metadata container
type Metadata struct {
	ExternalIDs *ExternalIDs `json:"externalIds"`
	Generic     *Generic     `json:"generic"`
	Food        *Food        `json:"food"`
	PrintBook   *PrintBook   `json:"printBook"`
	MusicCD     *MusicCD     `json:"musicCD"`
}

// ExternalIDs is the v1 cross-reference block
type ExternalIDs struct {
	AmazonASIN *string `json:"amazonAsin"`
}

// Generic is v1 generic metadata
type Generic struct {
	WeightGrams      *product.Number `json:"weightGrams"`
	ManufacturerCode *string         `json:"manufacturerCode"`
	Color            *product.Color  `json:"color"`
	Materials        []string        `json:"materials"`
	Contributors     []Contributor   `json:"contributors"`
}

// Contributor is a v1 contributor
type Contributor struct {
	Names product.MultilingualText `json:"names"`
	Type  *string                  `json:"type"`
}

// Food is v1 food metadata
type Food struct {
	NutrimentsPer100Grams map[string]*product.Quantity `json:"nutrimentsPer100Grams"`
}

// PrintBook is v1 book metadata
type PrintBook struct {
	NumPages      *int     `json:"numPages"`
	BisacCodes    []string `json:"bisacCodes"`
	BindingType   *string  `json:"bindingType"`
	PublishedYear *int     `json:"publishedYear"`
}

// MusicCD is v1 CD metadata
type MusicCD struct {
	NumberOfDiscs *int `json:"numberOfDiscs"`
	ReleasedYear  *int `json:"releasedYear"`
}
