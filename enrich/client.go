// Package enrich turns extracted product fields into marketing copy via an
// OpenAI-compatible chat API, with a deterministic template fallback.
// Enrichment is a value-add, not a correctness requirement: Enhance always
// returns a value and never fails the import.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vendora/importd/config"
	"github.com/vendora/importd/models"
)

// Client calls the generative-text service for marketing copy over plain
// net/http.
type Client struct {
	httpClient *http.Client
	cfg        config.EnrichConfig
}

// NewClient creates an enrichment client. Pass nil to use a default
// http.Client with the configured timeout.
func NewClient(cfg config.EnrichConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{httpClient: httpClient, cfg: cfg}
}

// Enhance produces marketing copy for an extracted product.
//
// With no credential configured, or on any transport, API, or parse failure,
// it degrades to the deterministic template. The no-error return type is the
// contract: enrichment can never fail an import.
func (c *Client) Enhance(ctx context.Context, p *models.ExtractedProduct) *models.GeneratedContent {
	if c.cfg.APIKey == "" {
		return Fallback(p)
	}

	content, err := c.generate(ctx, p)
	if err != nil {
		slog.Warn("enrichment degraded to template fallback", "title", p.Title, "error", err)
		return Fallback(p)
	}
	return content
}

// chatRequest is the OpenAI chat completion request body.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the minimal OpenAI chat completion response we need.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// generatedPayload is the structured shape requested from the service.
type generatedPayload struct {
	SEOTitle           string   `json:"seo_title"`
	SEODescription     string   `json:"seo_description"`
	BulletBenefits     []string `json:"bullet_benefits"`
	CategorySuggestion string   `json:"category_suggestion"`
}

// generate sends one chat-completion request and parses the structured copy.
func (c *Client) generate(ctx context.Context, p *models.ExtractedProduct) (*models.GeneratedContent, error) {
	reqBody := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(p)},
		},
		Temperature:    0,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read enrichment response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrichment API returned %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("parse enrichment response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("enrichment returned no choices")
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("parse generated content: %w", err)
	}
	if payload.SEOTitle == "" || len(payload.BulletBenefits) < 3 {
		return nil, fmt.Errorf("generated content incomplete")
	}
	if len(payload.BulletBenefits) > 5 {
		payload.BulletBenefits = payload.BulletBenefits[:5]
	}

	return &models.GeneratedContent{
		SEOTitle:           payload.SEOTitle,
		SEODescription:     payload.SEODescription,
		BulletBenefits:     payload.BulletBenefits,
		CategorySuggestion: payload.CategorySuggestion,
	}, nil
}

const systemPrompt = `Tu es un rédacteur e-commerce. Réponds uniquement avec un objet JSON valide, sans texte autour, au format:
{"seo_title": string, "seo_description": string, "bullet_benefits": [string], "category_suggestion": string}

Règles:
- seo_title: environ 60 caractères maximum, en français.
- seo_description: environ 160 caractères maximum, en français.
- bullet_benefits: 3 à 5 bénéfices courts du produit.
- category_suggestion: une seule catégorie de produit.`

// buildUserPrompt serialises the extracted fields for the model.
func buildUserPrompt(p *models.ExtractedProduct) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Titre: %s\n", p.Title)
	if p.Price > 0 {
		fmt.Fprintf(&sb, "Prix: %.2f %s\n", p.Price, p.Currency)
	}
	fmt.Fprintf(&sb, "Description: %s\n", p.Description)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	return sb.String()
}
