package extractor

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Precompiled selectors for the fixed title strategies.
var (
	selJSONLD  = cascadia.MustCompile(`script[type="application/ld+json"]`)
	selOGTitle = cascadia.MustCompile(`meta[property="og:title"]`)
	selH1      = cascadia.MustCompile(`h1`)
)

// ExtractTitle finds the product title in the raw HTML.
//
// Strategies, in fixed priority order:
//  1. JSON-LD block typed "Product" carrying a name.
//  2. og:title meta tag.
//  3. <title> element, entities decoded and trimmed.
//  4. First <h1>, inner markup stripped.
//
// Returns the first non-empty result, or "" when every strategy fails.
// Length validation happens downstream in Validate.
func ExtractTitle(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		doc = nil
	}

	if doc != nil {
		if t := titleFromJSONLD(doc); t != "" {
			return t
		}
		if t := titleFromOG(doc); t != "" {
			return t
		}
	}
	if t := titleFromTitleTag(rawHTML); t != "" {
		return t
	}
	if doc != nil {
		if t := titleFromH1(doc); t != "" {
			return t
		}
	}
	return ""
}

// titleFromJSONLD scans every linked-data block and accepts the first one
// whose declared type is "Product" (directly, inside an array, or inside a
// @graph container) and that carries a non-empty name. Malformed blocks are
// skipped, never fatal.
func titleFromJSONLD(doc *goquery.Document) string {
	var name string
	doc.FindMatcher(selJSONLD).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var block any
		if err := json.Unmarshal([]byte(s.Text()), &block); err != nil {
			return true // continue with the next block
		}
		if n := productName(block); n != "" {
			name = n
			return false
		}
		return true
	})
	return name
}

// productName defensively projects a decoded JSON-LD value into a product
// name. Arrays and @graph containers are searched; anything that doesn't
// match the expected shape is discarded.
func productName(v any) string {
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if n := productName(item); n != "" {
				return n
			}
		}
	case map[string]any:
		if isProductType(val["@type"]) {
			if n, ok := val["name"].(string); ok {
				return strings.TrimSpace(n)
			}
		}
		if graph, ok := val["@graph"]; ok {
			return productName(graph)
		}
	}
	return ""
}

// isProductType reports whether a JSON-LD @type value declares a Product.
// The value may be a string or an array of strings.
func isProductType(t any) bool {
	switch tv := t.(type) {
	case string:
		return strings.EqualFold(tv, "Product")
	case []any:
		for _, item := range tv {
			if s, ok := item.(string); ok && strings.EqualFold(s, "Product") {
				return true
			}
		}
	}
	return false
}

func titleFromOG(doc *goquery.Document) string {
	content, _ := doc.FindMatcher(selOGTitle).First().Attr("content")
	return strings.TrimSpace(content)
}

// titleFromTitleTag reads the first <title> element using the HTML
// tokenizer, which decodes entities for free.
func titleFromTitleTag(rawHTML string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(rawHTML))
	inTitle := false
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			if string(tn) == "title" {
				inTitle = true
			}
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(tokenizer.Text()))
			}
		case html.EndTagToken:
			if inTitle {
				return ""
			}
		}
	}
}

func titleFromH1(doc *goquery.Document) string {
	text := doc.FindMatcher(selH1).First().Text()
	// Collapse the whitespace left behind by stripped inner markup.
	return strings.Join(strings.Fields(text), " ")
}
