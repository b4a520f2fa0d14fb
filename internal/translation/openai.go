package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAIProvider translates with an OpenAI chat model.
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI translation provider
func NewOpenAIProvider(config *ProviderConfig) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}
	clientConfig.HTTPClient = config.httpClient()

	model := config.OpenAIModel
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIProvider{
		apiKey: config.OpenAIKey,
		model:  model,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translationPrompt(text, source, target),
			},
		},
		MaxTokens:   100,
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", ErrNoTranslation)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func translationPrompt(text, source, target string) string {
	from := fmt.Sprintf("language code '%s'", source)
	if source == "auto" {
		from = "the detected language"
	}
	return fmt.Sprintf("Translate the following text from %s to language code '%s'. Respond with only the translation, nothing else.\n\n%s", from, target, text)
}
