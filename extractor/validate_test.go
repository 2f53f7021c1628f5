package extractor

import (
	"testing"

	"github.com/vendora/importd/models"
)

func TestValidate_TitleGate(t *testing.T) {
	tests := []struct {
		title  string
		wantOK bool
	}{
		{"", false},
		{"  ", false},
		{"AB", false},
		{"ABC", true},
		{"Thé", true}, // 3 runes, more bytes
		{"Widget Pro", true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			p := &models.ExtractedProduct{Title: tt.title}
			err := Validate(p)
			if tt.wantOK && err != nil {
				t.Errorf("Validate(%q) = %v, want ok", tt.title, err)
			}
			if !tt.wantOK && err == nil {
				t.Errorf("Validate(%q) = ok, want rejection", tt.title)
			}
		})
	}
}

func TestValidate_WeakFieldsAccepted(t *testing.T) {
	// Zero price, no images, placeholder description: still a valid product.
	p := &models.ExtractedProduct{
		Title:       "Produit sans détails",
		Price:       0,
		Description: PlaceholderDescription,
		Images:      []models.ExtractedImage{},
	}
	if err := Validate(p); err != nil {
		t.Errorf("Validate = %v, want ok for weak but titled product", err)
	}
}
