package testutil

import (
	"context"
	"fmt"
)

// MockProvider mocks a translation provider
type MockProvider struct {
	ProviderName string
	Translations map[string]string
	Errors       map[string]error
	// Err fails every call when set.
	Err error
	// Identity returns the input unchanged for texts without a canned translation.
	Identity bool
	Calls    []string
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Translate mocks translating text
func (m *MockProvider) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s (%s->%s)", text, fromLang, toLang))

	if m.Err != nil {
		return "", m.Err
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	if m.Identity {
		return text, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// MockStore mocks the translation cache
type MockStore struct {
	Entries  map[string]string
	FlushErr error
	Flushes  int
	Closed   bool
}

// NewMockStore creates an empty mock cache
func NewMockStore() *MockStore {
	return &MockStore{Entries: make(map[string]string)}
}

func (m *MockStore) Get(key string) (string, bool) {
	value, ok := m.Entries[key]
	return value, ok
}

func (m *MockStore) Put(key, value string) {
	m.Entries[key] = value
}

func (m *MockStore) Len() int {
	return len(m.Entries)
}

func (m *MockStore) Flush() error {
	m.Flushes++
	return m.FlushErr
}

func (m *MockStore) Close() error {
	m.Closed = true
	return nil
}
