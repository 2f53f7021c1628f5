package extractor

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vendora/importd/models"
)

const samplePage = `<html><head>
	<title>Casque Bluetooth Pro</title>
	<meta name="description" content="Casque audio sans fil avec réduction de bruit.">
	<meta property="og:title" content="Casque Bluetooth Pro — Boutique">
</head><body>
	<h1>Casque Bluetooth Pro</h1>
	<p>Prix: 4500 DA</p>
	<img src="/images/products/casque-noir-principal.jpg" alt="casque bluetooth">
	<img src="/images/products/casque-noir-profil.jpg" alt="vue de profil">
</body></html>`

func TestExtract_ComposesAllFields(t *testing.T) {
	ex := New("DZD")
	page := &models.SourcePage{URL: "https://boutique.example.com/p/casque", HTML: samplePage}

	p := ex.Extract(page)

	if p.Title != "Casque Bluetooth Pro — Boutique" {
		// og:title outranks <title> and <h1>.
		t.Errorf("Title = %q", p.Title)
	}
	if p.Price != 4500 {
		t.Errorf("Price = %v, want 4500", p.Price)
	}
	if p.Currency != "DZD" {
		t.Errorf("Currency = %q, want DZD", p.Currency)
	}
	if p.Description != "Casque audio sans fil avec réduction de bruit." {
		t.Errorf("Description = %q", p.Description)
	}
	if len(p.Images) != 2 {
		t.Errorf("expected 2 images, got %d: %v", len(p.Images), p.Images)
	}
	if len(p.Variants) != 0 {
		t.Errorf("variants must stay empty, got %v", p.Variants)
	}
	if len(p.Tags) == 0 {
		t.Errorf("expected tags for a casque/audio product, got none")
	}
}

func TestExtract_Idempotent(t *testing.T) {
	ex := New("DZD")
	page := &models.SourcePage{URL: "https://boutique.example.com/p/casque", HTML: samplePage}

	first, err := json.Marshal(ex.Extract(page))
	if err != nil {
		t.Fatalf("marshal first run: %v", err)
	}
	second, err := json.Marshal(ex.Extract(page))
	if err != nil {
		t.Fatalf("marshal second run: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("extraction is not byte-identical across runs:\n%s\n%s", first, second)
	}
}

func TestExtract_MissingDescriptionUsesPlaceholder(t *testing.T) {
	ex := New("DZD")
	page := &models.SourcePage{
		URL:  "https://boutique.example.com/p/1",
		HTML: `<html><head><title>Produit mystère</title></head><body></body></html>`,
	}

	p := ex.Extract(page)
	if p.Description != PlaceholderDescription {
		t.Errorf("Description = %q, want placeholder sentinel", p.Description)
	}
	if p.Price != 0 {
		t.Errorf("Price = %v, want 0 (not found)", p.Price)
	}
}
