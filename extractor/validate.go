package extractor

import (
	"strings"
	"unicode/utf8"

	"github.com/vendora/importd/models"
)

// minTitleLen is the minimum title length, in runes, for a viable product.
const minTitleLen = 3

// Validate is the sole hard gate on an extraction result: a product without
// a viable title (at least 3 characters) is rejected. Zero price, an empty
// image list and the placeholder description are all accepted; partial data
// is better than no product, except when there is nothing to even name it.
func Validate(p *models.ExtractedProduct) error {
	title := strings.TrimSpace(p.Title)
	if utf8.RuneCountInString(title) < minTitleLen {
		return models.NewImportError(models.ErrCodeNoTitle, "no viable product title found", nil)
	}
	return nil
}
