package product

import (
	"maps"
	"slices"
)

// Metadata groups the optional, independently present metadata blocks
type Metadata struct {
	ExternalIDs *ExternalIDs `json:"externalIds,omitempty"`
	Generic     *Generic     `json:"generic,omitempty"`
	Food        *Food        `json:"food,omitempty"`
	PrintBook   *PrintBook   `json:"printBook,omitempty"`
	MusicCD     *MusicCD     `json:"musicCD,omitempty"`
	Media       *Media       `json:"media,omitempty"`
}

// PublicationYear returns the publication or release year, if known
func (m *Metadata) PublicationYear() (int, bool) {
	if m == nil || m.Media == nil || m.Media.PublicationYear == nil {
		return 0, false
	}
	return *m.Media.PublicationYear, true
}

// ExternalIDs are identifiers of the product in other catalogs
type ExternalIDs struct {
	AmazonASIN *string `json:"amazonAsin,omitempty"`
}

// Generic is metadata that applies to any kind of product
type Generic struct {
	Weight           *Quantity     `json:"weight,omitempty"`
	ManufacturerCode *string       `json:"manufacturerCode,omitempty"`
	Colors           []Color       `json:"colors"`
	Materials        []string      `json:"materials"`
	Ingredients      []Ingredients `json:"ingredients"`
	Contributors     []Contributor `json:"contributors"`
}

// Contributor is a person or organisation credited on the product
type Contributor struct {
	Names MultilingualText `json:"names"`
	// Type is the role tag, e.g. "author" or "performer"
	Type string `json:"type"`
}

// Food is metadata for edible products
type Food struct {
	NutrimentsPer100Grams *Nutriments `json:"nutrimentsPer100Grams,omitempty"`
}

// Nutriment keys with a dedicated field on Nutriments
const (
	NutrimentFat           = "fat"
	NutrimentProteins      = "proteins"
	NutrimentCarbohydrates = "carbohydrates"
	NutrimentEnergy        = "energy"
	NutrimentCholesterol   = "cholesterol"
	NutrimentSodium        = "sodium"
	NutrimentPotassium     = "potassium"
	NutrimentCalcium       = "calcium"
)

// Nutriments lists nutrient amounts; every field is independently optional
type Nutriments struct {
	Fat           *Quantity `json:"fat,omitempty"`
	Proteins      *Quantity `json:"proteins,omitempty"`
	Carbohydrates *Quantity `json:"carbohydrates,omitempty"`
	Energy        *Quantity `json:"energy,omitempty"`
	Cholesterol   *Quantity `json:"cholesterol,omitempty"`
	Sodium        *Quantity `json:"sodium,omitempty"`
	Potassium     *Quantity `json:"potassium,omitempty"`
	Calcium       *Quantity `json:"calcium,omitempty"`

	// Other holds nutrients without a dedicated field, keyed by wire name.
	Other map[string]*Quantity `json:"other,omitempty"`
}

// NutrimentsFromMap sorts wire nutrients into their fields. Nil entries are
// treated as absent.
func NutrimentsFromMap(values map[string]*Quantity) *Nutriments {
	n := &Nutriments{}
	for key, q := range values {
		if q == nil {
			continue
		}
		if field := n.field(key); field != nil {
			*field = q
			continue
		}
		if n.Other == nil {
			n.Other = make(map[string]*Quantity)
		}
		n.Other[key] = q
	}
	return n
}

// Get returns the nutrient stored under the wire name key
func (n *Nutriments) Get(key string) *Quantity {
	if field := n.field(key); field != nil {
		return *field
	}
	return n.Other[key]
}

// Keys returns the wire names of every present nutrient, sorted
func (n *Nutriments) Keys() []string {
	keys := slices.Collect(maps.Keys(n.Other))
	for _, key := range []string{
		NutrimentFat, NutrimentProteins, NutrimentCarbohydrates, NutrimentEnergy,
		NutrimentCholesterol, NutrimentSodium, NutrimentPotassium, NutrimentCalcium,
	} {
		if *n.field(key) != nil {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

func (n *Nutriments) field(key string) **Quantity {
	switch key {
	case NutrimentFat:
		return &n.Fat
	case NutrimentProteins:
		return &n.Proteins
	case NutrimentCarbohydrates:
		return &n.Carbohydrates
	case NutrimentEnergy:
		return &n.Energy
	case NutrimentCholesterol:
		return &n.Cholesterol
	case NutrimentSodium:
		return &n.Sodium
	case NutrimentPotassium:
		return &n.Potassium
	case NutrimentCalcium:
		return &n.Calcium
	}
	return nil
}

// PrintBook is metadata for printed books
type PrintBook struct {
	NumPages    *int     `json:"numPages,omitempty"`
	BisacCodes  []string `json:"bisacCodes"`
	BindingType *string  `json:"bindingType,omitempty"`
	// PublishedYear is the book's own year as reported by v1
	PublishedYear *int `json:"publishedYear,omitempty"`
}

// MusicCD is metadata for audio CDs
type MusicCD struct {
	NumberOfDiscs *int `json:"numberOfDiscs,omitempty"`
	// ReleasedYear is the CD's own year as reported by v1
	ReleasedYear *int `json:"releasedYear,omitempty"`
}

// Media is metadata shared by published media such as books and CDs
type Media struct {
	PublicationYear *int `json:"publicationYear,omitempty"`
}
