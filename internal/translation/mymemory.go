package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultMyMemoryURL = "https://api.mymemory.translated.net/get"

// MyMemoryProvider translates through the MyMemory REST API.
type MyMemoryProvider struct {
	baseURL string
	email   string
	client  *http.Client
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	// responseStatus is a number on success and sometimes a string on errors.
	ResponseStatus  any    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
	Matches         []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

// NewMyMemoryProvider creates a MyMemory provider
func NewMyMemoryProvider(config *ProviderConfig) *MyMemoryProvider {
	baseURL := config.MyMemoryURL
	if baseURL == "" {
		baseURL = defaultMyMemoryURL
	}
	return &MyMemoryProvider{
		baseURL: baseURL,
		email:   config.MyMemoryEmail,
		client:  config.httpClient(),
	}
}

func (m *MyMemoryProvider) Name() string {
	return "mymemory"
}

func (m *MyMemoryProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	if source == "auto" {
		source = "Autodetect"
	}

	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", source+"|"+target)
	if m.email != "" {
		params.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build mymemory request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mymemory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory returned status %d", resp.StatusCode)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode mymemory response: %w", err)
	}

	if status := statusCode(body.ResponseStatus); status != 0 && status != http.StatusOK {
		return "", fmt.Errorf("mymemory error %d: %s", status, body.ResponseDetails)
	}

	if translated := strings.TrimSpace(body.ResponseData.TranslatedText); translated != "" {
		return translated, nil
	}
	for _, match := range body.Matches {
		if translated := strings.TrimSpace(match.Translation); translated != "" {
			return translated, nil
		}
	}
	return "", fmt.Errorf("mymemory: %w", ErrNoTranslation)
}

func statusCode(v any) int {
	switch s := v.(type) {
	case float64:
		return int(s)
	case string:
		n, _ := strconv.Atoi(s)
		return n
	default:
		return 0
	}
}
