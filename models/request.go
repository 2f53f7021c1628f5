package models

// ImportRequest is the payload for POST /api/v1/import.
type ImportRequest struct {
	// URL is the third-party product page to import. Required, absolute.
	URL string `json:"url" binding:"required,url"`
}
