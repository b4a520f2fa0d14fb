package translation

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultGoogleURL = "https://translate.google.com/m"
	userAgent        = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
)

// GoogleProvider translates through the Google Translate mobile web page.
type GoogleProvider struct {
	baseURL string
	client  *http.Client
}

// NewGoogleProvider creates a Google Translate provider
func NewGoogleProvider(config *ProviderConfig) *GoogleProvider {
	baseURL := config.GoogleURL
	if baseURL == "" {
		baseURL = defaultGoogleURL
	}
	return &GoogleProvider{
		baseURL: baseURL,
		client:  config.httpClient(),
	}
}

func (g *GoogleProvider) Name() string {
	return "google"
}

// Translate fetches the mobile page and reads the result container.
func (g *GoogleProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	params := url.Values{}
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build google request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("google request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google translate returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse google response: %w", err)
	}

	result := doc.Find("div.result-container").First()
	if result.Length() == 0 {
		return "", fmt.Errorf("google: %w", ErrNoTranslation)
	}
	return strings.TrimSpace(result.Text()), nil
}
