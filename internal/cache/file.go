package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the cache as a single JSON object on disk.
type FileStore struct {
	memory
	path string
}

// OpenFile loads the JSON cache at path. A missing file yields an empty cache.
func OpenFile(path string) (*FileStore, error) {
	entries, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{memory: newMemory(entries), path: path}, nil
}

// Path returns the cache file location.
func (s *FileStore) Path() string {
	return s.path
}

// Flush rewrites the whole cache file.
func (s *FileStore) Flush() error {
	if err := Save(s.path, s.entries); err != nil {
		return err
	}
	s.clearDirty()
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

// Load reads a JSON object mapping cache keys to translations. A missing
// file is not an error; a malformed one is.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse cache file %s: %w", path, err)
	}
	return entries, nil
}

// Save writes entries to path, replacing any existing file. Non-ASCII text
// and HTML characters are written verbatim.
func Save(path string, entries map[string]string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	return nil
}
