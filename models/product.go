package models

// SourcePage is the raw HTML fetched for a product URL. It is consumed by
// the field extractors and discarded after extraction; nothing persists it.
type SourcePage struct {
	URL  string
	HTML string
}

// ExtractedImage is a product image found on the source page.
// URL is always absolute, resolved against the source page's URL.
type ExtractedImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Variant is a product variant (size, colour, ...). The current heuristics
// never populate variants; the type is reserved for future extractors.
type Variant struct {
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// ExtractedProduct is the structured result of running all field extractors
// against one source page. It is built once per request and never mutated.
//
// Title is the only validated field (non-empty, at least 3 characters).
// Price 0 means "not found", not "free". Description may be the placeholder
// sentinel when no meta description exists.
type ExtractedProduct struct {
	Title       string           `json:"title"`
	Price       float64          `json:"price"`
	Currency    string           `json:"currency"`
	Description string           `json:"description"`
	Images      []ExtractedImage `json:"images"`
	Variants    []Variant        `json:"variants"`
	Tags        []string         `json:"tags"`
}

// GeneratedContent is the marketing copy produced by the enrichment step,
// either by the generative service or by the deterministic template fallback.
type GeneratedContent struct {
	SEOTitle           string   `json:"seo_title"`
	SEODescription     string   `json:"seo_description"`
	BulletBenefits     []string `json:"bullet_benefits"`
	CategorySuggestion string   `json:"category_suggestion,omitempty"`
}
