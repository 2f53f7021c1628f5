package extractor

import "testing"

func TestExtractTitle_JSONLDWinsOverOG(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">{"@context":"https://schema.org","@type":"Product","name":"Red Mug 350ml"}</script>
		<meta property="og:title" content="Buy Mugs Online">
		<title>Mug Shop</title>
	</head><body><h1>Mugs</h1></body></html>`

	got := ExtractTitle(html)
	if got != "Red Mug 350ml" {
		t.Errorf("ExtractTitle = %q, want %q", got, "Red Mug 350ml")
	}
}

func TestExtractTitle_JSONLDArrayAndGraph(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"array of items",
			`<script type="application/ld+json">[{"@type":"BreadcrumbList"},{"@type":"Product","name":"Clavier mécanique"}]</script>`,
			"Clavier mécanique",
		},
		{
			"graph container",
			`<script type="application/ld+json">{"@graph":[{"@type":"WebSite"},{"@type":"Product","name":"Souris gamer"}]}</script>`,
			"Souris gamer",
		},
		{
			"type as array",
			`<script type="application/ld+json">{"@type":["Product","Thing"],"name":"Tapis de souris"}</script>`,
			"Tapis de souris",
		},
		{
			"malformed block skipped, next block wins",
			`<script type="application/ld+json">{not json</script>` +
				`<script type="application/ld+json">{"@type":"Product","name":"Lampe LED"}</script>`,
			"Lampe LED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle(tt.html); got != tt.want {
				t.Errorf("ExtractTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTitle_NonProductJSONLDIgnored(t *testing.T) {
	html := `<script type="application/ld+json">{"@type":"Organization","name":"ACME Corp"}</script>
		<meta property="og:title" content="Grille-pain 800W">`

	if got := ExtractTitle(html); got != "Grille-pain 800W" {
		t.Errorf("ExtractTitle = %q, want og:title fallback", got)
	}
}

func TestExtractTitle_TitleTagDecodesEntities(t *testing.T) {
	html := `<html><head><title>  Caf&eacute; &amp; Th&eacute;  </title></head></html>`

	if got := ExtractTitle(html); got != "Café & Thé" {
		t.Errorf("ExtractTitle = %q, want %q", got, "Café & Thé")
	}
}

func TestExtractTitle_H1StripsInnerMarkup(t *testing.T) {
	html := `<html><body><h1>
		<span>Casque</span> <b>Bluetooth</b>
	</h1></body></html>`

	if got := ExtractTitle(html); got != "Casque Bluetooth" {
		t.Errorf("ExtractTitle = %q, want %q", got, "Casque Bluetooth")
	}
}

func TestExtractTitle_NothingFound(t *testing.T) {
	if got := ExtractTitle(`<html><body><p>rien</p></body></html>`); got != "" {
		t.Errorf("ExtractTitle = %q, want empty", got)
	}
}
