package extractor

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/vendora/importd/models"
)

// Image scanning is pattern-based rather than a full DOM parse: third-party
// product pages are routinely malformed, and a tag-level regex survives
// markup a strict parser chokes on.
var (
	reImgTag       = regexp.MustCompile(`(?is)<img\b[^>]*>`)
	reSrcAttr      = regexp.MustCompile(`(?i)\ssrc\s*=\s*["']([^"']+)["']`)
	reDataSrcAttr  = regexp.MustCompile(`(?i)\sdata-src\s*=\s*["']([^"']+)["']`)
	reDataOrigAttr = regexp.MustCompile(`(?i)\sdata-original\s*=\s*["']([^"']+)["']`)
	reAltAttr      = regexp.MustCompile(`(?i)\salt\s*=\s*["']([^"']*)["']`)
)

// productKeywords mark an image as product-related when found in its URL or
// alt text.
var productKeywords = []string{
	"product", "produit", "item", "article", "goods", "sku",
}

// cdnPatterns are URL fragments of image-CDN transformation pipelines.
var cdnPatterns = []string{
	"cdn.shopify.com", "/image/upload/", "imgix.net", "alicdn.com",
	"cloudfront.net", "wp-content/uploads",
}

// mediaDirKeywords are generic media-directory path fragments.
var mediaDirKeywords = []string{
	"/media/", "/uploads/", "/images/", "/img/", "/photos/", "/pictures/", "/assets/",
}

// excludeMarkers drop obvious non-product images.
var excludeMarkers = []string{
	"logo", "icon", "sprite", "favicon", ".gif", ".apng",
}

// minImageURLLen filters out implausibly short URLs, a cheap proxy for
// placeholder and tracking pixels.
const minImageURLLen = 30

// ExtractImages scans the raw markup for <img> tags and returns the product
// images with absolute, deduplicated URLs in first-seen order.
//
// For each tag the source is read from src, then data-src, then
// data-original (lazy-load conventions). Tags whose URL cannot be resolved
// against baseURL are skipped, not failed. Dedup is by exact URL string:
// two paths serving the same image are kept as distinct entries. No output
// cap is applied here; display truncation belongs to callers.
func ExtractImages(rawHTML, baseURL string) []models.ExtractedImage {
	images := []models.ExtractedImage{}

	base, err := url.Parse(baseURL)
	if err != nil {
		return images
	}

	seen := make(map[string]struct{})
	for _, tag := range reImgTag.FindAllString(rawHTML, -1) {
		src := imageSource(tag)
		if src == "" {
			continue
		}

		resolved, err := base.Parse(src)
		if err != nil {
			continue
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			continue
		}
		absURL := resolved.String()

		alt := ""
		if m := reAltAttr.FindStringSubmatch(tag); m != nil {
			alt = strings.TrimSpace(m[1])
		}

		if !isRelevantImage(absURL, alt) || isExcludedImage(absURL) {
			continue
		}

		if _, ok := seen[absURL]; ok {
			continue
		}
		seen[absURL] = struct{}{}

		images = append(images, models.ExtractedImage{URL: absURL, Alt: alt})
	}

	return images
}

// imageSource reads the image URL from a raw <img> tag, preferring src over
// the lazy-load attributes.
func imageSource(tag string) string {
	for _, re := range []*regexp.Regexp{reSrcAttr, reDataSrcAttr, reDataOrigAttr} {
		if m := re.FindStringSubmatch(tag); m != nil && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// isRelevantImage keeps images whose URL or alt text mentions a product
// keyword, whose URL goes through a known image CDN, or whose path sits in a
// generic media directory.
func isRelevantImage(absURL, alt string) bool {
	lowerURL := strings.ToLower(absURL)
	lowerAlt := strings.ToLower(alt)

	for _, kw := range productKeywords {
		if strings.Contains(lowerURL, kw) || strings.Contains(lowerAlt, kw) {
			return true
		}
	}
	for _, p := range cdnPatterns {
		if strings.Contains(lowerURL, p) {
			return true
		}
	}
	for _, kw := range mediaDirKeywords {
		if strings.Contains(lowerURL, kw) {
			return true
		}
	}
	return false
}

// isExcludedImage drops logos, icons, sprites, animated formats and
// implausibly short URLs.
func isExcludedImage(absURL string) bool {
	if len(absURL) < minImageURLLen {
		return true
	}
	lower := strings.ToLower(absURL)
	for _, marker := range excludeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
