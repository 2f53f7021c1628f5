package extractor

import "strings"

// maxTags caps how many category tags one product receives.
const maxTags = 5

// tagVocabulary is the fixed tag vocabulary, in output order. Matching is by
// substring against the lower-cased title + description, so both French and
// English storefront wording is covered.
var tagVocabulary = []string{
	"électronique", "electronics",
	"téléphone", "phone", "smartphone",
	"ordinateur", "laptop",
	"montre", "watch",
	"audio", "écouteur", "casque",
	"mode", "fashion",
	"vêtement", "clothing",
	"chaussure", "shoes",
	"sac", "bag",
	"bijoux", "jewelry",
	"beauté", "beauty", "cosmétique",
	"maison", "home",
	"cuisine", "kitchen",
	"sport", "fitness",
	"jouet", "toy",
	"enfant", "kids", "bébé",
	"accessoire", "accessory",
	"gaming",
	"auto", "voiture",
}

// GenerateTags derives up to 5 category tags by matching the fixed
// vocabulary against the title and description. Tags come out in vocabulary
// order, not input order.
func GenerateTags(title, description string) []string {
	haystack := strings.ToLower(title + " " + description)

	tags := []string{}
	for _, term := range tagVocabulary {
		if strings.Contains(haystack, term) {
			tags = append(tags, term)
			if len(tags) == maxTags {
				break
			}
		}
	}
	return tags
}
