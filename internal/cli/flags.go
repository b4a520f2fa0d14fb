package cli

import (
	"time"

	"codeberg.org/snonux/predtrans/internal/cache"
	"codeberg.org/snonux/predtrans/internal/processor"
	"codeberg.org/snonux/predtrans/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	RootDir      string
	Languages    []string
	FileTypes    []string
	ListModels   bool
	ArchiveCache bool

	// Cache flags
	CacheFile    string
	CacheBackend string
	SQLitePath   string
	RedisAddr    string

	// Translation flags
	Primary         string
	Fallback        string
	Delay           time.Duration
	CheckpointEvery int
	Force           bool

	// Logging flags
	LogLevel string
	LogFile  string

	// Model flags
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		RootDir:         "data",
		Languages:       []string{"assamese"},
		FileTypes:       []string{"generated"},
		CacheFile:       cache.DefaultFile,
		CacheBackend:    "json",
		SQLitePath:      "translation_cache.db",
		Primary:         "google",
		Fallback:        "mymemory",
		Delay:           translation.DefaultDelay,
		CheckpointEvery: processor.DefaultCheckpointEvery,
		LogLevel:        "info",
		OpenAIModel:     "gpt-4o-mini",
		GeminiModel:     "gemini-2.5-flash",
	}
}
