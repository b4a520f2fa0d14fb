package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/predtrans/internal/archive"
	"codeberg.org/snonux/predtrans/internal/cache"
	"codeberg.org/snonux/predtrans/internal/cli"
	"codeberg.org/snonux/predtrans/internal/driver"
	"codeberg.org/snonux/predtrans/internal/language"
	"codeberg.org/snonux/predtrans/internal/logging"
	"codeberg.org/snonux/predtrans/internal/models"
	"codeberg.org/snonux/predtrans/internal/processor"
	"codeberg.org/snonux/predtrans/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := cli.LoadSettings()
	out := cmd.OutOrStdout()

	// Handle --archive-cache flag
	if flags.ArchiveCache {
		path, err := archivePath(settings.Cache)
		if err != nil {
			return err
		}
		archived, err := archive.ArchiveCache(path)
		if err != nil {
			return fmt.Errorf("failed to archive cache: %w", err)
		}
		fmt.Fprintf(out, "Cache archived to: %s\n", archived)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), settings.OpenAIBaseURL)
		return lister.ListAvailableModels(ctx, out)
	}

	logger, err := logging.NewLogger(settings.LogLevel, settings.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return run(ctx, settings, settings.ProviderConfig(), args, out, logger)
}

// archivePath returns the file --archive-cache moves for the configured
// backend. A Redis cache has no file to archive.
func archivePath(c cache.Config) (string, error) {
	switch c.Backend {
	case "", "json":
		if c.File == "" {
			return cache.DefaultFile, nil
		}
		return c.File, nil
	case "sqlite":
		if c.SQLitePath == "" {
			return "", fmt.Errorf("sqlite cache requires a database path")
		}
		return c.SQLitePath, nil
	default:
		return "", fmt.Errorf("--archive-cache is not supported for the %s cache backend", c.Backend)
	}
}

// run opens the cache, builds the translator and either translates the one
// given text or processes every configured job.
func run(ctx context.Context, s cli.Settings, providerConfig *translation.ProviderConfig, args []string, out io.Writer, logger *zap.Logger) error {
	store, err := cache.Open(ctx, s.Cache)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer store.Close()
	logger.Info("cache loaded", zap.String("backend", s.Cache.Backend), zap.Int("entries", store.Len()))

	translator, err := newTranslator(ctx, s, providerConfig, store, logger)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return translateText(ctx, translator, store, s, args[0], out)
	}

	if len(s.Languages) == 0 || len(s.FileTypes) == 0 {
		return fmt.Errorf("no languages or file types configured")
	}

	proc := processor.NewProcessor(translator, store, processor.Config{
		CheckpointEvery: s.CheckpointEvery,
		Logger:          logger,
	})
	d := driver.New(proc, store, driver.Config{
		RootDir: s.RootDir,
		Jobs:    driver.Jobs(s.Languages, s.FileTypes),
		Logger:  logger,
		Out:     out,
	})

	if _, err := d.Run(ctx); err != nil {
		return err
	}

	stats := translator.Stats()
	fmt.Fprintf(out, "Cache hits:      %d\n", stats.Hits)
	fmt.Fprintf(out, "Cache misses:    %d\n", stats.Misses)
	fmt.Fprintf(out, "Failures:        %d\n", stats.Failures)
	fmt.Fprintf(out, "Fallbacks used:  %d\n", stats.Fallbacks)
	return nil
}

func newTranslator(ctx context.Context, s cli.Settings, config *translation.ProviderConfig, store cache.Store, logger *zap.Logger) (*translation.Translator, error) {
	primary, err := translation.NewProvider(ctx, s.Primary, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create primary provider: %w", err)
	}

	var fallback translation.Provider
	if s.HasFallback() {
		p, err := translation.NewProvider(ctx, s.Fallback, config)
		if err != nil {
			return nil, fmt.Errorf("failed to create fallback provider: %w", err)
		}
		fallback = p
	}

	return translation.NewTranslator(
		translation.NewBreakerProvider(primary, translation.DefaultBreakerSettings(), logger),
		fallback,
		store,
		translation.Options{Delay: s.Delay, Force: s.Force, Logger: logger},
	), nil
}

// translateText handles single-text mode for the first configured language.
func translateText(ctx context.Context, translator *translation.Translator, store cache.Store, s cli.Settings, text string, out io.Writer) error {
	lang := "assamese"
	if len(s.Languages) > 0 {
		lang = s.Languages[0]
	}

	result := translator.Translate(ctx, text, language.Code(lang))
	if err := store.Flush(); err != nil {
		return fmt.Errorf("failed to save cache: %w", err)
	}

	fmt.Fprintln(out, result)
	return nil
}
