package cli

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/predtrans/internal/cache"
	"codeberg.org/snonux/predtrans/internal/translation"
)

// Settings is the effective configuration after merging flags, the config
// file and the environment.
type Settings struct {
	RootDir   string
	Languages []string
	FileTypes []string

	Cache cache.Config

	Primary         string
	Fallback        string
	Delay           time.Duration
	CheckpointEvery int
	Force           bool

	LogLevel string
	LogFile  string

	OpenAIModel   string
	OpenAIBaseURL string
	GeminiModel   string
	MyMemoryEmail string
}

// LoadSettings reads the effective settings from viper. Flags must have been
// bound with CreateRootCommand first.
func LoadSettings() Settings {
	return Settings{
		RootDir:   viper.GetString("root_dir"),
		Languages: normalizeList(viper.GetStringSlice("languages")),
		FileTypes: normalizeList(viper.GetStringSlice("file_types")),
		Cache: cache.Config{
			Backend:       strings.ToLower(viper.GetString("cache.backend")),
			File:          viper.GetString("cache.file"),
			SQLitePath:    viper.GetString("cache.sqlite_path"),
			RedisAddr:     viper.GetString("cache.redis_addr"),
			RedisPassword: viper.GetString("cache.redis_password"),
			RedisDB:       viper.GetInt("cache.redis_db"),
			RedisKey:      viper.GetString("cache.redis_key"),
		},
		Primary:         strings.ToLower(viper.GetString("translate.primary")),
		Fallback:        strings.ToLower(viper.GetString("translate.fallback")),
		Delay:           viper.GetDuration("translate.delay"),
		CheckpointEvery: viper.GetInt("translate.checkpoint_every"),
		Force:           viper.GetBool("translate.force"),
		LogLevel:        viper.GetString("log.level"),
		LogFile:         viper.GetString("log.file"),
		OpenAIModel:     viper.GetString("openai.model"),
		OpenAIBaseURL:   viper.GetString("openai.base_url"),
		GeminiModel:     viper.GetString("gemini.model"),
		MyMemoryEmail:   viper.GetString("mymemory.email"),
	}
}

// ProviderConfig builds the translation provider configuration.
func (s Settings) ProviderConfig() *translation.ProviderConfig {
	config := translation.DefaultProviderConfig()
	config.MyMemoryEmail = s.MyMemoryEmail
	config.OpenAIKey = GetOpenAIKey()
	config.OpenAIBaseURL = s.OpenAIBaseURL
	config.GeminiKey = GetGeminiKey()
	if s.OpenAIModel != "" {
		config.OpenAIModel = s.OpenAIModel
	}
	if s.GeminiModel != "" {
		config.GeminiModel = s.GeminiModel
	}
	return config
}

// HasFallback reports whether a fallback provider is configured.
func (s Settings) HasFallback() bool {
	return s.Fallback != "" && s.Fallback != "none"
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString("gemini.key")
}

// normalizeList lower-cases and trims entries and drops empty ones. Config
// files may give a list as one comma separated string.
func normalizeList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
