package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// PlaceholderDescription is returned when the page carries no usable meta
// description. Callers treat it as valid but weak data.
const PlaceholderDescription = "Description non disponible. Ajoutez votre propre description."

var (
	selMetaDescription = cascadia.MustCompile(`meta[name="description"]`)
	selOGDescription   = cascadia.MustCompile(`meta[property="og:description"]`)
)

// ExtractDescription finds the product description in the raw HTML.
//
// Strategy order: plain meta description, then og:description. No fallback
// to body text is attempted; when neither exists the placeholder sentinel
// is returned.
func ExtractDescription(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return PlaceholderDescription
	}

	for _, sel := range []cascadia.Selector{selMetaDescription, selOGDescription} {
		content, _ := doc.FindMatcher(sel).First().Attr("content")
		if d := strings.TrimSpace(content); d != "" {
			return d
		}
	}
	return PlaceholderDescription
}
