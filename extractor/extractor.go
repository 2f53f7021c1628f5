// Package extractor turns raw product-page HTML into structured product
// data. Each field extractor is an independent, pure heuristic that tries an
// ordered list of strategies and returns the first confident match, or a
// zero value. Field extractors never return errors; the only hard gate is
// Validate.
package extractor

import "github.com/vendora/importd/models"

// Extractor composes the field extractors into one pass over a fetched page.
type Extractor struct {
	currency string
}

// New creates an Extractor reporting prices in the given currency code.
func New(currency string) *Extractor {
	return &Extractor{currency: currency}
}

// Extract runs every field extractor against the page and assembles the
// result. The output is deterministic: same HTML in, same product out.
func (e *Extractor) Extract(page *models.SourcePage) *models.ExtractedProduct {
	title := ExtractTitle(page.HTML)
	description := ExtractDescription(page.HTML)

	return &models.ExtractedProduct{
		Title:       title,
		Price:       ExtractPrice(page.HTML),
		Currency:    e.currency,
		Description: description,
		Images:      ExtractImages(page.HTML, page.URL),
		Variants:    []models.Variant{},
		Tags:        GenerateTags(title, description),
	}
}
