package translation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/predtrans/internal/cache"
	"codeberg.org/snonux/predtrans/internal/cleaner"
	"codeberg.org/snonux/predtrans/internal/language"
)

// DefaultDelay is the pause after every provider call.
const DefaultDelay = 100 * time.Millisecond

// Options configures a Translator.
type Options struct {
	// Delay is the pause after every provider call. Zero disables it.
	Delay time.Duration
	// Force ignores translations cached by earlier runs and replaces them.
	Force  bool
	Logger *zap.Logger
}

// Stats counts what the translator did during a run.
type Stats struct {
	Hits      int
	Misses    int
	Failures  int
	Fallbacks int
}

// Translator translates text to English with caching and a fallback provider.
type Translator struct {
	primary  Provider
	fallback Provider
	cache    cache.Store
	delay    time.Duration
	force    bool
	logger   *zap.Logger
	sleep    func(time.Duration)

	// fresh holds keys translated during this run; with Force set they are
	// still served from the cache.
	fresh map[string]struct{}
	stats Stats
}

// NewTranslator creates a translator. fallback may be nil.
func NewTranslator(primary, fallback Provider, store cache.Store, opts Options) *Translator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{
		primary:  primary,
		fallback: fallback,
		cache:    store,
		delay:    opts.Delay,
		force:    opts.Force,
		logger:   logger,
		sleep:    time.Sleep,
		fresh:    make(map[string]struct{}),
	}
}

// Translate returns the cleaned English translation of text. Provider
// failures are logged and the input is returned unchanged.
func (t *Translator) Translate(ctx context.Context, text, sourceCode string) string {
	if text == "" {
		return ""
	}

	key := cache.Key(sourceCode, text)
	if cached, ok := t.lookup(key); ok {
		t.stats.Hits++
		return cached
	}
	t.stats.Misses++

	translated, err := t.call(ctx, t.primary, text, sourceCode)
	if err != nil {
		t.stats.Failures++
		t.logger.Warn("translation failed",
			zap.String("provider", t.primary.Name()),
			zap.String("text", text),
			zap.Error(err),
		)
		return text
	}

	cleaned := cleaner.CleanTranslatedText(translated)
	if cleaned == "" && t.fallback != nil {
		t.stats.Fallbacks++
		alternative, err := t.call(ctx, t.fallback, text, sourceCode)
		if err != nil {
			t.logger.Debug("fallback translation failed, keeping raw output",
				zap.String("provider", t.fallback.Name()),
				zap.String("text", text),
				zap.Error(err),
			)
			cleaned = translated
		} else {
			cleaned = cleaner.CleanTranslatedText(alternative)
		}
	}

	t.cache.Put(key, cleaned)
	t.fresh[key] = struct{}{}
	return cleaned
}

// Stats returns the counters collected so far.
func (t *Translator) Stats() Stats {
	return t.stats
}

func (t *Translator) lookup(key string) (string, bool) {
	if t.force {
		if _, ok := t.fresh[key]; !ok {
			return "", false
		}
	}
	return t.cache.Get(key)
}

// call runs one provider request and then waits out the rate-limit delay.
func (t *Translator) call(ctx context.Context, p Provider, text, sourceCode string) (string, error) {
	defer t.pause()
	return p.Translate(ctx, text, sourceCode, language.English)
}

func (t *Translator) pause() {
	if t.delay > 0 {
		t.sleep(t.delay)
	}
}
