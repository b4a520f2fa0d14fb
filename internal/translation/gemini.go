package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider translates with a Gemini model.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini client for the configured API key.
func NewGeminiProvider(ctx context.Context, config *ProviderConfig) (*GeminiProvider, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:     config.GeminiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: config.httpClient(),
	}
	if config.GeminiBaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.GeminiBaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.GeminiModel
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	temperature := float32(0.3)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: translationPrompt(text, source, target)}},
		},
	}, &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 100,
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translated := strings.TrimSpace(responseText(resp))
	if translated == "" {
		return "", fmt.Errorf("gemini: %w", ErrNoTranslation)
	}
	return translated, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
