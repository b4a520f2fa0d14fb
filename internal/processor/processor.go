package processor

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"codeberg.org/snonux/predtrans/internal/cache"
	"codeberg.org/snonux/predtrans/internal/cleaner"
	"codeberg.org/snonux/predtrans/internal/language"
)

// Record field names.
const (
	FieldGenerated            = "Generated"
	FieldAnswer               = "Answer"
	FieldCleanedAnswer        = "CleanedAnswer"
	FieldTranslatedAnswer     = "TranslatedAnswer"
	FieldTranslatedAnswerList = "TranslatedAnswerList"
)

// DefaultCheckpointEvery is how many records pass between cache flushes.
const DefaultCheckpointEvery = 10

const maxLineSize = 64 * 1024 * 1024

// TextTranslator translates text from the given source language code to English.
type TextTranslator interface {
	Translate(ctx context.Context, text, sourceCode string) string
}

// Config holds processor settings.
type Config struct {
	// CheckpointEvery flushes the cache after this many records. Zero or
	// less disables intermediate flushes.
	CheckpointEvery int
	Logger          *zap.Logger
}

// FileResult summarizes one processed file.
type FileResult struct {
	Lines   int // lines in the input file
	Records int // records written
}

// Processor enriches prediction files with translations.
type Processor struct {
	translator      TextTranslator
	cache           cache.Store
	checkpointEvery int
	logger          *zap.Logger
}

// NewProcessor creates a new file processor
func NewProcessor(translator TextTranslator, store cache.Store, config Config) *Processor {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		translator:      translator,
		cache:           store,
		checkpointEvery: config.CheckpointEvery,
		logger:          logger,
	}
}

// ProcessFile translates every record of inputPath into outputPath. The
// cache is flushed every CheckpointEvery records and once more when the
// file is done, whether or not processing succeeded.
func (p *Processor) ProcessFile(ctx context.Context, inputPath, outputPath, lang string) (result FileResult, err error) {
	code := language.Code(lang)

	total, err := countLines(inputPath)
	if err != nil {
		return result, err
	}
	result.Lines = total

	in, err := os.Open(inputPath)
	if err != nil {
		return result, fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return result, fmt.Errorf("failed to create output file: %w", err)
	}
	w := bufio.NewWriter(out)
	defer func() {
		flushErr := w.Flush()
		closeErr := out.Close()
		if err == nil {
			err = errors.Join(flushErr, closeErr)
		}
	}()

	defer func() {
		if flushErr := p.cache.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("failed to save cache: %w", flushErr)
		}
	}()

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	p.logger.Info("translating file",
		zap.String("language", lang),
		zap.String("code", code),
		zap.String("input", inputPath),
		zap.Int("lines", total),
	)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := p.enrich(ctx, line, code)
		if err != nil {
			return result, fmt.Errorf("%s line %d: %w", inputPath, lineNo, err)
		}
		if err := enc.Encode(record); err != nil {
			return result, fmt.Errorf("failed to write record: %w", err)
		}
		result.Records++

		if p.checkpointEvery > 0 && result.Records%p.checkpointEvery == 0 {
			p.logger.Info("progress",
				zap.String("language", lang),
				zap.Int("processed", result.Records),
				zap.Int("total", total),
			)
			if err := p.cache.Flush(); err != nil {
				return result, fmt.Errorf("failed to checkpoint cache: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read input file: %w", err)
	}

	p.logger.Info("completed file",
		zap.String("language", lang),
		zap.Int("records", result.Records),
	)
	return result, nil
}

// enrich parses one line and adds the cleaned and translated fields.
func (p *Processor) enrich(ctx context.Context, line []byte, code string) (*Record, error) {
	record, err := ParseRecord(line)
	if err != nil {
		return nil, err
	}

	generated, err := stringField(record, FieldGenerated)
	if err != nil {
		return nil, err
	}
	answers, err := stringListField(record, FieldAnswer)
	if err != nil {
		return nil, err
	}

	cleaned := cleaner.CleanGeneratedAnswer(generated)
	translated := ""
	if cleaned != "" {
		translated = p.translator.Translate(ctx, cleaned, code)
	}

	translatedList := make([]string, 0, len(answers))
	for _, answer := range answers {
		t := p.translator.Translate(ctx, answer, code)
		p.logger.Debug("answer translated", zap.String("original", answer), zap.String("translated", t))
		translatedList = append(translatedList, t)
	}

	for _, field := range []struct {
		name  string
		value any
	}{
		{FieldCleanedAnswer, cleaned},
		{FieldTranslatedAnswer, translated},
		{FieldTranslatedAnswerList, translatedList},
	} {
		raw, err := marshalRaw(field.value)
		if err != nil {
			return nil, err
		}
		record.Set(field.name, raw)
	}
	return record, nil
}

// stringField returns a string field; absent and null count as empty.
func stringField(record *Record, name string) (string, error) {
	raw, ok := record.Get(name)
	if !ok || isNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %s must be a string: %w", name, err)
	}
	return s, nil
}

// stringListField returns a list of strings; absent and null count as empty.
func stringListField(record *Record, name string) ([]string, error) {
	raw, ok := record.Get(name)
	if !ok || isNull(raw) {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("field %s must be a list of strings: %w", name, err)
	}
	return list, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// marshalRaw encodes v without HTML escaping.
func marshalRaw(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode field: %w", err)
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// countLines counts lines the way a line iterator sees them: a final line
// without a trailing newline still counts.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 32*1024)
	count := 0
	var last byte = '\n'
	for {
		n, err := f.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to count lines: %w", err)
		}
	}
	if last != '\n' {
		count++
	}
	return count, nil
}
