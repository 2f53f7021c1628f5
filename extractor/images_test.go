package extractor

import "testing"

func TestExtractImages_AbsolutizeAndDedup(t *testing.T) {
	// The relative and the CDN URL resolve to different strings, so both
	// survive: dedup is by exact URL match, not semantic equivalence.
	html := `<img src="/images/products/a.jpg" alt="photo">
		<img src="https://cdn.shopify.com/s/files/products/a.jpg" alt="photo">
		<img src="/images/products/a.jpg" alt="again">`

	images := ExtractImages(html, "https://site.com/product/1")

	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d: %v", len(images), images)
	}
	if images[0].URL != "https://site.com/images/products/a.jpg" {
		t.Errorf("images[0].URL = %q, want absolutized site URL", images[0].URL)
	}
	if images[1].URL != "https://cdn.shopify.com/s/files/products/a.jpg" {
		t.Errorf("images[1].URL = %q, want CDN URL kept as-is", images[1].URL)
	}
}

func TestExtractImages_LazyLoadAttributes(t *testing.T) {
	html := `<img data-src="/uploads/2024/produit-rouge.jpg" alt="">
		<img data-original="/media/catalogue/produit-bleu.jpg" alt="">`

	images := ExtractImages(html, "https://boutique.example.com/p/42")

	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d: %v", len(images), images)
	}
	if images[0].URL != "https://boutique.example.com/uploads/2024/produit-rouge.jpg" {
		t.Errorf("data-src not resolved: %q", images[0].URL)
	}
}

func TestExtractImages_RelevanceByAltText(t *testing.T) {
	// URL has no keyword and no media directory; alt text qualifies it.
	html := `<img src="/x/y/z/une-tres-longue-reference-743.jpg" alt="product photo">`

	images := ExtractImages(html, "https://site.com/p/1")
	if len(images) != 1 {
		t.Fatalf("expected alt-qualified image to survive, got %d", len(images))
	}
}

func TestExtractImages_Filters(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"logo marker", `<img src="/images/site-logo-header-2024.png" alt="">`},
		{"icon marker", `<img src="/media/icons/cart-icon-filled-v2.png" alt="">`},
		{"sprite marker", `<img src="/assets/ui-sprite-sheet-main.png" alt="">`},
		{"animated gif", `<img src="/images/products/promo-banner-anim.gif" alt="">`},
		{"too short", `<img src="/img/a.png" alt="">`},
		{"irrelevant path", `<img src="/tracking/pixel-beacon-analytics-v3.png" alt="">`},
		{"no source attribute", `<img class="lazyload" alt="product">`},
		{"data uri", `<img src="data:image/png;base64,iVBORw0KGgo=" alt="product">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if images := ExtractImages(tt.html, "https://site.com/p/1"); len(images) != 0 {
				t.Errorf("expected image to be filtered out, got %v", images)
			}
		})
	}
}

func TestExtractImages_OrderPreserved(t *testing.T) {
	html := `<img src="/images/products/premier.jpg">
		<img src="/images/products/deuxieme.jpg">
		<img src="/images/products/troisieme.jpg">`

	images := ExtractImages(html, "https://site.com/p/1")
	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(images))
	}
	want := []string{
		"https://site.com/images/products/premier.jpg",
		"https://site.com/images/products/deuxieme.jpg",
		"https://site.com/images/products/troisieme.jpg",
	}
	for i, w := range want {
		if images[i].URL != w {
			t.Errorf("images[%d].URL = %q, want %q", i, images[i].URL, w)
		}
	}
}

func TestExtractImages_BadBaseURL(t *testing.T) {
	images := ExtractImages(`<img src="/images/products/a.jpg">`, "://bad")
	if len(images) != 0 {
		t.Errorf("expected no images with unparsable base URL, got %v", images)
	}
}
