package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/s0up4200/eandb/eandb"
	"github.com/s0up4200/eandb/product"
)

// ConsoleFormatter renders lookups as a tree for terminals
type ConsoleFormatter struct {
	// Language is tried first when picking titles and names
	Language string
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(language string) *ConsoleFormatter {
	return &ConsoleFormatter{Language: language}
}

// FormatResults formats a batch of lookups
func (f *ConsoleFormatter) FormatResults(results []eandb.Result) (string, error) {
	if len(results) == 0 {
		return "No products found\n", nil
	}

	var sb strings.Builder

	sb.WriteString("\nProduct")
	if len(results) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(results))

	for i, r := range results {
		isLast := i == len(results)-1
		f.writeResult(&sb, r, isLast)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	found, failed := 0, 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case r.Product() != nil:
			found++
		}
	}
	fmt.Fprintf(&sb, "\nFound: %d | Not found or rejected: %d | Failed: %d\n", found, len(results)-found-failed, failed)

	return sb.String(), nil
}

// FormatProduct formats a single successful lookup
func (f *ConsoleFormatter) FormatProduct(resp *eandb.SuccessResponse) string {
	var sb strings.Builder
	f.writeResult(&sb, eandb.Result{Barcode: resp.Product.Barcode(), Response: resp}, true)
	return sb.String()
}

// FormatError formats an error response
func (f *ConsoleFormatter) FormatError(barcode string, resp *eandb.ErrorResponse) string {
	var sb strings.Builder
	f.writeResult(&sb, eandb.Result{Barcode: barcode, Response: resp}, true)
	return sb.String()
}

func (f *ConsoleFormatter) writeResult(sb *strings.Builder, r eandb.Result, isLast bool) {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}

	if r.Err != nil {
		fmt.Fprintf(sb, "%s── %s\n", prefix, r.Barcode)
		fmt.Fprintf(sb, "%sError: %v\n", indent, r.Err)
		return
	}

	switch resp := r.Response.(type) {
	case *eandb.SuccessResponse:
		p := resp.Product
		title := f.text(p.Titles)
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(sb, "%s── %s [%s]\n", prefix, title, p.Barcode())
		for _, line := range f.productLines(p) {
			fmt.Fprintf(sb, "%s%s\n", indent, line)
		}
		fmt.Fprintf(sb, "%sBalance: %d\n", indent, resp.Balance)
	case *eandb.ErrorResponse:
		fmt.Fprintf(sb, "%s── %s\n", prefix, r.Barcode)
		fmt.Fprintf(sb, "%s%s (%d): %s\n", indent, resp.Kind(), resp.Detail.Code, resp.Detail.Description)
	}
}

func (f *ConsoleFormatter) text(t product.MultilingualText) string {
	if f.Language != "" {
		if s, ok := t.Get(f.Language); ok {
			return s
		}
	}
	s, _ := t.Best()
	return s
}

func (f *ConsoleFormatter) productLines(p *product.Product) []string {
	var lines []string

	if len(p.Categories) > 0 {
		names := make([]string, 0, len(p.Categories))
		for _, c := range p.Categories {
			names = append(names, f.text(c.Titles))
		}
		lines = append(lines, "Categories: "+strings.Join(names, ", "))
	}
	if p.Manufacturer != nil {
		lines = append(lines, "Manufacturer: "+f.text(p.Manufacturer.Titles))
	}
	if len(p.RelatedBrands) > 0 {
		names := make([]string, 0, len(p.RelatedBrands))
		for _, b := range p.RelatedBrands {
			names = append(names, f.text(b.Titles))
		}
		lines = append(lines, "Brands: "+strings.Join(names, ", "))
	}
	if len(p.Images) > 0 {
		line := fmt.Sprintf("Images: %d", len(p.Images))
		if img := p.CatalogImage(); img != nil {
			line += " (catalog: " + img.URL + ")"
		}
		lines = append(lines, line)
	}

	meta := p.Metadata
	if meta == nil {
		return lines
	}

	if g := meta.Generic; g != nil {
		if g.Weight != nil {
			lines = append(lines, "Weight: "+g.Weight.String())
		}
		if len(g.Colors) > 0 {
			colors := make([]string, 0, len(g.Colors))
			for _, c := range g.Colors {
				colors = append(colors, string(c.BaseColor))
			}
			lines = append(lines, "Colors: "+strings.Join(colors, ", "))
		}
		if len(g.Materials) > 0 {
			lines = append(lines, "Materials: "+strings.Join(g.Materials, ", "))
		}
		for _, group := range g.Ingredients {
			label := "Ingredients"
			if group.GroupName != nil {
				label += " (" + *group.GroupName + ")"
			}
			lines = append(lines, label+": "+f.ingredientList(group.IngredientsGroup))
		}
		if len(g.Contributors) > 0 {
			names := make([]string, 0, len(g.Contributors))
			for _, c := range g.Contributors {
				names = append(names, fmt.Sprintf("%s (%s)", f.text(c.Names), c.Type))
			}
			lines = append(lines, "Contributors: "+strings.Join(names, ", "))
		}
	}

	if meta.Food != nil && meta.Food.NutrimentsPer100Grams != nil {
		n := meta.Food.NutrimentsPer100Grams
		parts := make([]string, 0, len(n.Keys()))
		for _, key := range n.Keys() {
			parts = append(parts, key+" "+n.Get(key).String())
		}
		if len(parts) > 0 {
			lines = append(lines, "Per 100 g: "+strings.Join(parts, ", "))
		}
	}

	var details []string
	if b := meta.PrintBook; b != nil {
		if b.NumPages != nil {
			details = append(details, "Pages: "+strconv.Itoa(*b.NumPages))
		}
		if b.BindingType != nil {
			details = append(details, "Binding: "+*b.BindingType)
		}
		if len(b.BisacCodes) > 0 {
			details = append(details, "BISAC: "+strings.Join(b.BisacCodes, ", "))
		}
	}
	if cd := meta.MusicCD; cd != nil && cd.NumberOfDiscs != nil {
		details = append(details, "Discs: "+strconv.Itoa(*cd.NumberOfDiscs))
	}
	if year, ok := meta.PublicationYear(); ok {
		details = append(details, "Year: "+strconv.Itoa(year))
	}
	if len(details) > 0 {
		lines = append(lines, strings.Join(details, " | "))
	}

	if ids := meta.ExternalIDs; ids != nil && ids.AmazonASIN != nil {
		lines = append(lines, "ASIN: "+*ids.AmazonASIN)
	}

	return lines
}

// ingredientList renders sub-ingredients in parentheses, e.g. "water (salt), flour"
func (f *ConsoleFormatter) ingredientList(ingredients []product.Ingredient) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		name := f.text(ing.OriginalNames)
		if name == "" && ing.ID != nil {
			name = *ing.ID
		}
		if ing.Amount != nil {
			name += " " + ing.Amount.String()
		}
		if len(ing.SubIngredients) > 0 {
			name += " (" + f.ingredientList(ing.SubIngredients) + ")"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}
