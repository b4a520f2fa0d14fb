package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/predtrans/internal"
	"codeberg.org/snonux/predtrans/internal/language"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "predtrans [text]",
		Short: "Batch translator for model prediction files",
		Long: `predtrans translates model predictions to English.

It reads predictions-{language}-{file_type}.jsonl files from the root
directory, cleans the Generated answer, translates it and every gold
Answer, and writes predictions-{language}-{file_type}-translated.jsonl.
Translations are cached between runs.

Examples:
  predtrans                              # Translate data/predictions-assamese-generated.jsonl
  predtrans -l bengali -l spanish        # Several languages
  predtrans -l bengali "বিড়াল"            # Translate a single text
  predtrans --archive-cache              # Start over with an empty cache`,
		Args:         cobra.MaximumNArgs(1),
		Version:      internal.Version,
		SilenceUsage: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.predtrans.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.RootDir, "root", "r", flags.RootDir, "Directory holding the prediction files")
	cmd.Flags().StringSliceVarP(&flags.Languages, "language", "l", flags.Languages, fmt.Sprintf("Languages to process (known: %v)", language.Names()))
	cmd.Flags().StringSliceVar(&flags.FileTypes, "file-type", flags.FileTypes, "Prediction file types to process")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.ArchiveCache, "archive-cache", false, "Move the cache file into archive/ and exit")

	// Cache flags
	cmd.Flags().StringVar(&flags.CacheFile, "cache-file", flags.CacheFile, "JSON cache file")
	cmd.Flags().StringVar(&flags.CacheBackend, "cache-backend", flags.CacheBackend, "Cache backend: json, sqlite or redis")
	cmd.Flags().StringVar(&flags.SQLitePath, "sqlite-path", flags.SQLitePath, "SQLite cache database (sqlite backend)")
	cmd.Flags().StringVar(&flags.RedisAddr, "redis-addr", "", "Redis address host:port (redis backend)")

	// Translation flags
	cmd.Flags().StringVar(&flags.Primary, "primary", flags.Primary, "Primary provider: google, mymemory, openai, gemini")
	cmd.Flags().StringVar(&flags.Fallback, "fallback", flags.Fallback, "Fallback provider, or none")
	cmd.Flags().DurationVar(&flags.Delay, "delay", flags.Delay, "Pause after every provider call")
	cmd.Flags().IntVar(&flags.CheckpointEvery, "checkpoint-every", flags.CheckpointEvery, "Save the cache every N records")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "Retranslate texts cached by earlier runs")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Append logs to this file instead of stderr")

	// Model flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for the openai provider")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for the gemini provider")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("root_dir", cmd.Flags().Lookup("root"))
	viper.BindPFlag("languages", cmd.Flags().Lookup("language"))
	viper.BindPFlag("file_types", cmd.Flags().Lookup("file-type"))
	viper.BindPFlag("cache.file", cmd.Flags().Lookup("cache-file"))
	viper.BindPFlag("cache.backend", cmd.Flags().Lookup("cache-backend"))
	viper.BindPFlag("cache.sqlite_path", cmd.Flags().Lookup("sqlite-path"))
	viper.BindPFlag("cache.redis_addr", cmd.Flags().Lookup("redis-addr"))
	viper.BindPFlag("translate.primary", cmd.Flags().Lookup("primary"))
	viper.BindPFlag("translate.fallback", cmd.Flags().Lookup("fallback"))
	viper.BindPFlag("translate.delay", cmd.Flags().Lookup("delay"))
	viper.BindPFlag("translate.checkpoint_every", cmd.Flags().Lookup("checkpoint-every"))
	viper.BindPFlag("translate.force", cmd.Flags().Lookup("force"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))
	viper.BindPFlag("openai.model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("gemini.model", cmd.Flags().Lookup("gemini-model"))
}

// InitConfig loads .env and initializes viper configuration
func InitConfig(cfgFile string) {
	// Secrets may live in .env next to the data
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".predtrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".predtrans")
	}

	// Environment variables
	viper.SetEnvPrefix("PREDTRANS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
