package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/DDH2004/Resume-Importer/internal/types"
)

// Entities is the structured output of whole-document entity classification.
// A successful classification replaces the regex pipeline for the document;
// there is no per-field merge.
type Entities struct {
	Basics       types.Basics             `json:"basics"`
	Work         []types.WorkEntry        `json:"work"`
	Education    []types.EducationEntry   `json:"education"`
	Skills       []types.SkillEntry       `json:"skills"`
	Projects     []types.ProjectEntry     `json:"projects"`
	Certificates []types.CertificateEntry `json:"certificates"`
	Languages    []types.LanguageEntry    `json:"languages"`
	Confidence   float64                  `json:"confidence"`
}

// Classification is the result of classifying one paragraph against a set of
// candidate labels.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Client is the injected classifier capability.
type Client interface {
	// ClassifyEntities extracts structured resume entities from raw text.
	ClassifyEntities(ctx context.Context, text string) (*Entities, error)
	// ClassifyParagraph assigns one of the candidate labels to a paragraph.
	ClassifyParagraph(ctx context.Context, text string, candidateLabels []string) (Classification, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client on Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini-backed oracle client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// ClassifyEntities extracts structured resume entities from raw text.
func (c *GeminiClient) ClassifyEntities(ctx context.Context, text string) (*Entities, error) {
	prompt := buildEntityPrompt(text)

	raw, err := c.generateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("entity classification failed: %w", err)
	}

	var entities Entities
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	return &entities, nil
}

// ClassifyParagraph assigns one of the candidate labels to a paragraph.
func (c *GeminiClient) ClassifyParagraph(ctx context.Context, text string, candidateLabels []string) (Classification, error) {
	prompt := buildParagraphPrompt(text, candidateLabels)

	raw, err := c.generateJSON(ctx, prompt, TierLite)
	if err != nil {
		return Classification{}, fmt.Errorf("paragraph classification failed: %w", err)
	}

	var result Classification
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return Classification{}, fmt.Errorf("failed to parse classification response: %w", err)
	}

	return result, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// generateJSON runs a prompt against the tier's model in JSON mode.
func (c *GeminiClient) generateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	return cleanJSONBlock(text), nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
