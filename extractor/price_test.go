package extractor

import "testing"

func TestExtractPrice_MaxInBand(t *testing.T) {
	// Three price-tagged numbers: one small, one plausible, one out of band.
	html := `<p>Livraison: 500 DA</p>
		<span class="price">4200 DA</span>
		<span>15000000 DA</span>`

	if got := ExtractPrice(html); got != 4200 {
		t.Errorf("ExtractPrice = %v, want 4200", got)
	}
}

func TestExtractPrice_Patterns(t *testing.T) {
	tests := []struct {
		name string
		html string
		want float64
	}{
		{"suffix DA", `Prix total 2500 DA seulement`, 2500},
		{"suffix DZD", `montant: 3499 DZD`, 3499},
		{"arabic dinar", `السعر 1800 دج`, 1800},
		{"thousands space", `12 500 DA`, 12500},
		{"thousands comma with decimals", `Price: 2,500.00`, 2500},
		{"decimal comma", `1499,99 DA`, 1499.99},
		{"structured price field", `{"offers":{"price":"7200.00"}}`, 7200},
		{"structured amount field", `{"amount": 950}`, 950},
		{"prix label", `Prix: 2500`, 2500},
		{"below band excluded", `9 DA`, 0},
		{"above band excluded", `{"price":"15000000"}`, 0},
		{"no match", `<p>aucun montant ici</p>`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPrice(tt.html); got != tt.want {
				t.Errorf("ExtractPrice(%q) = %v, want %v", tt.html, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2500", 2500},
		{"2 500", 2500},
		{"2,500.00", 2500},
		{"2.500", 2500},
		{"1499,99", 1499.99},
		{"1 250 000", 1250000},
	}

	for _, tt := range tests {
		if got := parseAmount(tt.in); got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
