package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora/importd/extractor"
	"github.com/vendora/importd/models"
)

// ErrMsgUnextractable is the single user-facing message for every terminal
// pipeline failure. Transport failures and no-title pages intentionally
// collapse into it; callers cannot tell the two apart from the message.
const ErrMsgUnextractable = "Could not extract product data. Please verify the URL and try again."

// PageFetcher retrieves the raw HTML for a product URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*models.SourcePage, error)
}

// Enricher turns an extracted product into marketing copy. Implementations
// must always return a value; degradation is handled internally.
type Enricher interface {
	Enhance(ctx context.Context, p *models.ExtractedProduct) *models.GeneratedContent
}

// Import returns the handler for POST /api/v1/import.
//
// Pipeline, strictly linear and synchronous:
//  1. Parse & validate request.
//  2. Fetch the page; failure is terminal, 400.
//  3. Run all field extractors + tag generation.
//  4. Validate (title gate); failure is terminal, 400.
//  5. Enhance (never fails; falls back to the template).
//  6. Assemble the success envelope.
func Import(f PageFetcher, ex *extractor.Extractor, en Enricher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ImportResponse{
				Success: false,
				Error:   "url is required and must be a valid URL",
			})
			return
		}

		page, err := f.Fetch(c.Request.Context(), req.URL)
		if err != nil {
			slog.Warn("page fetch failed", "url", req.URL, "error", err)
			c.JSON(http.StatusBadRequest, models.ImportResponse{
				Success: false,
				Error:   ErrMsgUnextractable,
			})
			return
		}

		product := ex.Extract(page)

		if err := extractor.Validate(product); err != nil {
			slog.Warn("extraction rejected", "url", req.URL, "error", err)
			c.JSON(http.StatusBadRequest, models.ImportResponse{
				Success: false,
				Error:   ErrMsgUnextractable,
			})
			return
		}

		generated := en.Enhance(c.Request.Context(), product)

		slog.Info("product imported",
			"url", req.URL,
			"title", product.Title,
			"price", product.Price,
			"images", len(product.Images),
			"tags", len(product.Tags),
		)

		c.JSON(http.StatusOK, models.ImportResponse{
			Success:     true,
			SourceURL:   req.URL,
			Extracted:   product,
			AIGenerated: generated,
		})
	}
}

// Recovered converts a panic anywhere in the pipeline into a generic 500.
// Wired via gin.CustomRecovery; no partial state exists to clean up.
func Recovered(c *gin.Context, recovered any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ImportResponse{
		Success: false,
		Error:   fmt.Sprintf("Import failed: %v", recovered),
	})
}
