package enrich

import (
	"strings"
	"unicode/utf8"

	"github.com/vendora/importd/models"
)

// Template constants for the deterministic fallback.
const (
	seoTitleSuffix  = " | Achat en ligne en Algérie"
	seoDescSuffix   = " Commandez maintenant, paiement à la livraison."
	defaultCategory = "Général"

	// seoDescExcerptLen is how much of the extracted description the
	// fallback SEO description keeps, in runes.
	seoDescExcerptLen = 120
)

var fallbackBenefits = []string{
	"Produit de qualité supérieure",
	"Livraison rapide partout en Algérie",
	"Paiement à la livraison disponible",
}

// Fallback builds marketing copy from a fixed template. It is fully
// deterministic: the same product always yields the same content.
func Fallback(p *models.ExtractedProduct) *models.GeneratedContent {
	return &models.GeneratedContent{
		SEOTitle:           p.Title + seoTitleSuffix,
		SEODescription:     truncateRunes(strings.TrimSpace(p.Description), seoDescExcerptLen) + seoDescSuffix,
		BulletBenefits:     fallbackBenefits,
		CategorySuggestion: defaultCategory,
	}
}

// truncateRunes cuts s to at most n runes without splitting a character.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
