package cache

import (
	"context"
	"fmt"
)

// DefaultFile is the cache file used when none is configured.
const DefaultFile = "translation_cache.json"

// Store is the translation cache used by the translator.
type Store interface {
	// Get returns the cached translation for key.
	Get(key string) (string, bool)

	// Put records a translation in memory. It is persisted by the next Flush.
	Put(key, value string)

	// Len returns the number of cached translations.
	Len() int

	// Flush persists the cache to durable storage.
	Flush() error

	// Close releases backend resources. It does not flush.
	Close() error
}

// Config selects and configures a cache backend.
type Config struct {
	Backend string // "json" (default), "sqlite" or "redis"
	File    string // JSON cache file

	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

// Key builds the cache key for a translation request.
func Key(langCode, text string) string {
	return langCode + ":" + text
}

// Open opens the configured backend and loads its contents.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", "json":
		file := cfg.File
		if file == "" {
			file = DefaultFile
		}
		store, err := OpenFile(file)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "sqlite":
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite cache requires a database path")
		}
		store, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "redis":
		store, err := OpenRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Key:      cfg.RedisKey,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}

// memory is the in-memory map shared by all backends. dirty tracks keys
// written since the last flush.
type memory struct {
	entries map[string]string
	dirty   map[string]struct{}
}

func newMemory(entries map[string]string) memory {
	if entries == nil {
		entries = make(map[string]string)
	}
	return memory{
		entries: entries,
		dirty:   make(map[string]struct{}),
	}
}

func (m *memory) Get(key string) (string, bool) {
	value, ok := m.entries[key]
	return value, ok
}

func (m *memory) Put(key, value string) {
	m.entries[key] = value
	m.dirty[key] = struct{}{}
}

func (m *memory) Len() int {
	return len(m.entries)
}

// Snapshot returns a copy of all cached translations.
func (m *memory) Snapshot() map[string]string {
	result := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		result[k] = v
	}
	return result
}

func (m *memory) clearDirty() {
	m.dirty = make(map[string]struct{})
}
