// importd-mcp is a stdio MCP server that exposes the importd HTTP API as a
// tool, so agent runtimes can import products without speaking HTTP
// themselves.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// importRequest mirrors the importd API request model.
type importRequest struct {
	URL string `json:"url"`
}

// importResponse mirrors the importd API response model.
type importResponse struct {
	Success   bool   `json:"success"`
	SourceURL string `json:"source_url"`
	Extracted *struct {
		Title       string  `json:"title"`
		Price       float64 `json:"price"`
		Currency    string  `json:"currency"`
		Description string  `json:"description"`
		Images      []struct {
			URL string `json:"url"`
			Alt string `json:"alt"`
		} `json:"images"`
		Tags []string `json:"tags"`
	} `json:"extracted"`
	AIGenerated *struct {
		SEOTitle           string   `json:"seo_title"`
		SEODescription     string   `json:"seo_description"`
		BulletBenefits     []string `json:"bullet_benefits"`
		CategorySuggestion string   `json:"category_suggestion"`
	} `json:"ai_generated"`
	Error string `json:"error"`
}

func main() {
	apiURL := os.Getenv("IMPORTD_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}

	s := server.NewMCPServer(
		"importd",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	importTool := mcp.NewTool("import_product",
		mcp.WithDescription("Import a product from a third-party product page URL. Extracts title, price, description, images and tags, and generates SEO marketing copy."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL of the product page to import"),
		),
	)
	s.AddTool(importTool, handleImportProduct(apiURL))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleImportProduct(apiURL string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 60 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}

		body, err := json.Marshal(importRequest{URL: url})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal request: %v", err)), nil
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/api/v1/import", bytes.NewReader(body))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("API request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}

		var importResp importResponse
		if err := json.Unmarshal(respBody, &importResp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if !importResp.Success {
			errMsg := "import failed"
			if importResp.Error != "" {
				errMsg = importResp.Error
			}
			return mcp.NewToolResultError(errMsg), nil
		}

		return mcp.NewToolResultText(formatResult(&importResp)), nil
	}
}

// formatResult renders the import result as readable text for the agent.
func formatResult(r *importResponse) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", r.SourceURL))

	if e := r.Extracted; e != nil {
		sb.WriteString(fmt.Sprintf("Title: %s\n", e.Title))
		if e.Price > 0 {
			sb.WriteString(fmt.Sprintf("Price: %.2f %s\n", e.Price, e.Currency))
		} else {
			sb.WriteString("Price: not found\n")
		}
		sb.WriteString(fmt.Sprintf("Description: %s\n", e.Description))
		if len(e.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(e.Tags, ", ")))
		}
		sb.WriteString(fmt.Sprintf("Images (%d):\n", len(e.Images)))
		for _, img := range e.Images {
			sb.WriteString("  " + img.URL + "\n")
		}
	}

	if g := r.AIGenerated; g != nil {
		sb.WriteString("\nSEO title: " + g.SEOTitle + "\n")
		sb.WriteString("SEO description: " + g.SEODescription + "\n")
		sb.WriteString("Benefits:\n")
		for _, b := range g.BulletBenefits {
			sb.WriteString("  - " + b + "\n")
		}
		if g.CategorySuggestion != "" {
			sb.WriteString("Category: " + g.CategorySuggestion + "\n")
		}
	}

	return sb.String()
}
