package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"codeberg.org/snonux/predtrans/internal/cache"
	"codeberg.org/snonux/predtrans/internal/processor"
)

// Job is one language and file type combination.
type Job struct {
	Language string
	FileType string
}

// Jobs builds the cross product of languages and file types, languages first.
func Jobs(languages, fileTypes []string) []Job {
	jobs := make([]Job, 0, len(languages)*len(fileTypes))
	for _, lang := range languages {
		for _, fileType := range fileTypes {
			jobs = append(jobs, Job{Language: lang, FileType: fileType})
		}
	}
	return jobs
}

// InputPath returns the prediction file for the job below root.
func (j Job) InputPath(root string) string {
	return filepath.Join(root, fmt.Sprintf("predictions-%s-%s.jsonl", j.Language, j.FileType))
}

// OutputPath returns the translated file for the job below root.
func (j Job) OutputPath(root string) string {
	return filepath.Join(root, fmt.Sprintf("predictions-%s-%s-translated.jsonl", j.Language, j.FileType))
}

// FileProcessor processes a single prediction file.
type FileProcessor interface {
	ProcessFile(ctx context.Context, inputPath, outputPath, lang string) (processor.FileResult, error)
}

// Config holds driver settings.
type Config struct {
	RootDir string
	Jobs    []Job
	Logger  *zap.Logger
	// Out receives the summary block. Nil disables it.
	Out io.Writer
}

// Summary reports what a run did.
type Summary struct {
	Processed int
	Skipped   int
	Records   int
	CacheSize int
}

// Driver walks the configured jobs.
type Driver struct {
	processor FileProcessor
	cache     cache.Store
	config    Config
	logger    *zap.Logger
}

// New creates a driver.
func New(p FileProcessor, store cache.Store, config Config) *Driver {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{
		processor: p,
		cache:     store,
		config:    config,
		logger:    logger,
	}
}

// Run processes every job in order. It stops at the first file that fails.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	for i, job := range d.config.Jobs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		input := job.InputPath(d.config.RootDir)
		output := job.OutputPath(d.config.RootDir)

		if _, err := os.Stat(input); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				d.logger.Warn("input file not found, skipping",
					zap.String("language", job.Language),
					zap.String("file_type", job.FileType),
					zap.String("input", input),
				)
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("failed to stat %s: %w", input, err)
		}

		d.logger.Info("processing job",
			zap.Int("job", i+1),
			zap.Int("jobs", len(d.config.Jobs)),
			zap.String("language", job.Language),
			zap.String("file_type", job.FileType),
		)

		result, err := d.processor.ProcessFile(ctx, input, output, job.Language)
		summary.Records += result.Records
		if err != nil {
			summary.CacheSize = d.cache.Len()
			return summary, fmt.Errorf("failed to process %s: %w", input, err)
		}
		summary.Processed++
	}

	summary.CacheSize = d.cache.Len()
	d.logger.Info("run complete", zap.Int("cache_size", summary.CacheSize))
	d.printSummary(summary)
	return summary, nil
}

func (d *Driver) printSummary(s Summary) {
	if d.config.Out == nil {
		return
	}
	fmt.Fprintf(d.config.Out, "\n=== Translation Summary ===\n")
	fmt.Fprintf(d.config.Out, "Files processed: %d\n", s.Processed)
	fmt.Fprintf(d.config.Out, "Files skipped:   %d\n", s.Skipped)
	fmt.Fprintf(d.config.Out, "Records:         %d\n", s.Records)
	fmt.Fprintf(d.config.Out, "Cache entries:   %d\n", s.CacheSize)
}
