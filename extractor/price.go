package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// Sane band for a plausible price, exclusive on both ends. Numbers outside
// it are treated as noise (quantities, phone numbers, timestamps).
const (
	minSanePrice = 10
	maxSanePrice = 10_000_000
)

// pricePatterns are tried in order against the raw HTML. Each pattern's
// first capture group is a price candidate. The list is tuned for DZD
// conventions: amount followed by "DA", "DZD" or "دج", French "Prix" labels,
// plus the price/amount fields found in structured-data blocks.
// amountPattern matches either a thousands-separated number (2 500 / 2.500 /
// 2,500) or a plain digit run, with optional one-or-two-digit decimals.
const amountPattern = `((?:\d{1,3}(?:[ \x{00A0},.]\d{3})+|\d+)(?:[.,]\d{1,2})?)`

var pricePatterns = []*regexp.Regexp{
	// 2 500,00 DA / 2500 DZD / 2500 دج
	regexp.MustCompile(`(?i)` + amountPattern + `\s*(?:DA\b|DZD\b|دج)`),
	// "price": "2500.00" in JSON-LD or inlined shop state
	regexp.MustCompile(`"price"\s*:\s*"?(\d+(?:[.,]\d{1,2})?)"?`),
	regexp.MustCompile(`"amount"\s*:\s*"?(\d+(?:[.,]\d{1,2})?)"?`),
	// Prix : 2500 / Price: 2,500.00
	regexp.MustCompile(`(?i)(?:prix|price)\s*:?\s*` + amountPattern),
}

// ExtractPrice collects every price candidate across all patterns and keeps
// the maximum value inside the sane band. Returns 0 when nothing matches.
//
// Product pages usually carry several numbers (shipping, crossed-out prices,
// related products); assuming the true price is the largest plausible figure
// is a deliberate approximation and will misfire on pages that list a more
// expensive bundle next to the target item.
func ExtractPrice(rawHTML string) float64 {
	var best float64
	for _, re := range pricePatterns {
		for _, m := range re.FindAllStringSubmatch(rawHTML, -1) {
			v := parseAmount(m[1])
			if v > minSanePrice && v < maxSanePrice && v > best {
				best = v
			}
		}
	}
	return best
}

// parseAmount turns a matched price token into a number, stripping thousands
// separators. A trailing separator followed by one or two digits is treated
// as the decimal mark; everything else is a grouping character.
func parseAmount(raw string) float64 {
	s := strings.NewReplacer(" ", "", "\u00a0", "").Replace(raw)

	last := strings.LastIndexAny(s, ".,")
	if last >= 0 && len(s)-last-1 <= 2 {
		s = strings.Map(dropGrouping, s[:last]) + "." + s[last+1:]
	} else {
		s = strings.Map(dropGrouping, s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func dropGrouping(r rune) rune {
	if r == ',' || r == '.' {
		return -1
	}
	return r
}
