package models

// ImportResponse is the response envelope for POST /api/v1/import.
//
// It is a tagged union: on success, SourceURL, Extracted and AIGenerated are
// set; on failure only Error is. Callers must branch on Success and never
// assume both payloads are present.
type ImportResponse struct {
	// Success indicates whether the import pipeline completed.
	Success bool `json:"success"`

	// SourceURL echoes the requested product page URL.
	SourceURL string `json:"source_url,omitempty"`

	// Extracted contains the structured product data.
	Extracted *ExtractedProduct `json:"extracted,omitempty"`

	// AIGenerated contains the marketing copy for the product.
	AIGenerated *GeneratedContent `json:"ai_generated,omitempty"`

	// Error is populated only when Success is false.
	Error string `json:"error,omitempty"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
