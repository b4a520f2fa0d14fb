package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. An empty baseURL uses the OpenAI API.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// ListAvailableModels writes the chat models usable for translation to w,
// followed by a count of the remaining models.
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .predtrans.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	other := 0
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		} else {
			other++
		}
	}
	sort.Strings(chatModels)

	fmt.Fprintln(w, "Chat/Translation Models (for --primary openai):")
	if len(chatModels) == 0 {
		fmt.Fprintln(w, "  No chat models found")
	}
	for _, model := range chatModels {
		fmt.Fprintf(w, "  %s\n", model)
	}
	if other > 0 {
		fmt.Fprintf(w, "\n%d other models (audio, image, embedding) not listed\n", other)
	}

	return nil
}

func isChatModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "realtime", "transcribe", "image", "embedding", "dall-e", "whisper"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.Contains(id, "gpt") || strings.Contains(id, "chat") || strings.HasPrefix(id, "o")
}
