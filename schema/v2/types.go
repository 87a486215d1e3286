package v2

import "github.com/s0up4200/eandb/product"

// Product is the v2 product payload
type Product struct {
	Barcode       *string                  `json:"barcode"`
	Titles        product.MultilingualText `json:"titles"`
	Categories    []Category               `json:"categories"`
	Manufacturer  *Manufacturer            `json:"manufacturer"`
	RelatedBrands []Manufacturer           `json:"relatedBrands"`
	Images        []Image                  `json:"images"`
	Metadata      *Metadata                `json:"metadata"`
}

// Category is a v2 category
type Category struct {
	ID     *string                  `json:"id"`
	Titles product.MultilingualText `json:"titles"`
}

// Manufacturer is a v2 manufacturer or brand
type Manufacturer struct {
	ID         *string                  `json:"id"`
	Titles     product.MultilingualText `json:"titles"`
	WikidataID *string                  `json:"wikidataId"`
}

// Image is a v2 image
type Image struct {
	URL       *string `json:"url"`
	IsCatalog *bool   `json:"isCatalog"`
}

// Metadata is the v2 metadata container
type Metadata struct {
	ExternalIDs *ExternalIDs `json:"externalIds"`
	Generic     *Generic     `json:"generic"`
	Food        *Food        `json:"food"`
	PrintBook   *PrintBook   `json:"printBook"`
	MusicCD     *MusicCD     `json:"musicCD"`
	Media       *Media       `json:"media"`
}

// ExternalIDs is the v2 cross-reference block
type ExternalIDs struct {
	AmazonASIN *string `json:"amazonAsin"`
}

// Generic is v2 generic metadata
type Generic struct {
	Weight           *product.Quantity `json:"weight"`
	ManufacturerCode *string           `json:"manufacturerCode"`
	Colors           []product.Color   `json:"colors"`
	Ingredients      []Ingredients     `json:"ingredients"`
	Contributors     []Contributor     `json:"contributors"`
}

// Contributor is a v2 contributor
type Contributor struct {
	Names product.MultilingualText `json:"names"`
	Type  *string                  `json:"type"`
}

// Ingredients is a v2 ingredient group
type Ingredients struct {
	GroupName        *string      `json:"groupName"`
	IngredientsGroup []Ingredient `json:"ingredientsGroup"`
}

// Ingredient is a v2 ingredient node
type Ingredient struct {
	ID             *string                  `json:"id"`
	OriginalNames  product.MultilingualText `json:"originalNames"`
	Amount         *product.Quantity        `json:"amount"`
	IsVegan        *bool                    `json:"isVegan"`
	IsVegetarian   *bool                    `json:"isVegetarian"`
	SubIngredients []Ingredient             `json:"subIngredients"`
}

// Food is v2 food metadata
type Food struct {
	NutrimentsPer100Grams map[string]*product.Quantity `json:"nutrimentsPer100Grams"`
}

// PrintBook is v2 book metadata. The publication year lives in Media.
type PrintBook struct {
	NumPages    *int     `json:"numPages"`
	BisacCodes  []string `json:"bisacCodes"`
	BindingType *string  `json:"bindingType"`
}

// MusicCD is v2 CD metadata. The release year lives in Media.
type MusicCD struct {
	NumberOfDiscs *int `json:"numberOfDiscs"`
}

// Media is shared by books and CDs
type Media struct {
	PublicationYear *int `json:"publicationYear"`
}
