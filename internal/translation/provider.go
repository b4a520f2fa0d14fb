package translation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrMissingAPIKey is returned when a provider needs an API key and has none.
	ErrMissingAPIKey = errors.New("API key not configured")

	// ErrNoTranslation is returned when a provider response carries no translation.
	ErrNoTranslation = errors.New("no translation returned")
)

// Provider translates text between two languages.
type Provider interface {
	// Translate translates text from source to target. Both are two-letter
	// codes; source may be "auto".
	Translate(ctx context.Context, text, source, target string) (string, error)

	// Name returns the provider name
	Name() string
}

// ProviderConfig holds the settings for every provider NewProvider can build.
type ProviderConfig struct {
	HTTPClient *http.Client
	Timeout    time.Duration

	GoogleURL   string
	MyMemoryURL string
	// MyMemoryEmail raises the MyMemory daily quota when set.
	MyMemoryEmail string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string
}

// DefaultProviderConfig returns the default provider configuration.
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		Timeout:     30 * time.Second,
		GoogleURL:   defaultGoogleURL,
		MyMemoryURL: defaultMyMemoryURL,
		OpenAIModel: defaultOpenAIModel,
		GeminiModel: defaultGeminiModel,
	}
}

func (c *ProviderConfig) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// NewProvider creates the named provider: google, mymemory, openai or gemini.
func NewProvider(ctx context.Context, name string, config *ProviderConfig) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch name {
	case "google":
		return NewGoogleProvider(config), nil
	case "mymemory":
		return NewMyMemoryProvider(config), nil
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("openai provider: %w", ErrMissingAPIKey)
		}
		return NewOpenAIProvider(config), nil
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("gemini provider: %w", ErrMissingAPIKey)
		}
		p, err := NewGeminiProvider(ctx, config)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", name)
	}
}
