// Package daily selects the word of the day and random practice words.
package daily

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/at-ishikawa/transcriptus/internal/enrichment"
	"github.com/at-ishikawa/transcriptus/internal/metrics"
	"github.com/at-ishikawa/transcriptus/internal/provider"
)

const (
	DefaultAttempts       = 5
	DefaultRetryDelay     = time.Second
	DefaultRandomAttempts = 10

	// pendingTTL keeps a word the store failed to save until its date is over.
	pendingTTL = 24 * time.Hour
)

// Words samples candidate words.
type Words interface {
	RandomWord(intN func(int) int) string
}

// Sources are what a Selector samples and validates words with. Phonetics
// and Translator may be nil.
type Sources struct {
	Words      Words
	Dictionary provider.Dictionary
	Phonetics  enrichment.Phonetics
	Translator enrichment.Translator
}

type Config struct {
	Attempts       int
	RetryDelay     time.Duration
	RandomAttempts int
}

// Selector accepts the first sampled word the dictionary has a definition
// for, and serves a fallback word once its attempts run out.
type Selector struct {
	sources   Sources
	store     Store
	pending   *MemoryStore
	fallbacks []Fallback
	config    Config
	now       func() time.Time
	intN      func(int) int
	group     singleflight.Group
	metrics   *metrics.Recorder
	log       *slog.Logger
}

type Option func(*Selector)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Selector) {
		s.now = now
	}
}

// WithRand replaces math/rand/v2.IntN.
func WithRand(intN func(int) int) Option {
	return func(s *Selector) {
		s.intN = intN
	}
}

func NewSelector(sources Sources, store Store, fallbacks []Fallback, config Config, recorder *metrics.Recorder, logger *slog.Logger, opts ...Option) *Selector {
	if config.Attempts <= 0 {
		config.Attempts = DefaultAttempts
	}
	if config.RandomAttempts <= 0 {
		config.RandomAttempts = DefaultRandomAttempts
	}
	s := &Selector{
		sources:   sources,
		store:     store,
		pending:   NewMemoryStore(pendingTTL),
		fallbacks: fallbacks,
		config:    config,
		now:       time.Now,
		intN:      rand.IntN,
		metrics:   recorder,
		log:       logger.With("component", "daily"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectDailyWord returns the word of the current date, selecting and
// storing one on the first request of the date.
func (s *Selector) SelectDailyWord(ctx context.Context) DailyWord {
	date := s.now().Format(DateLayout)
	if word := s.stored(ctx, date); word != nil {
		s.metrics.CacheLookup("daily_word", true)
		return *word
	}
	s.metrics.CacheLookup("daily_word", false)

	ch := s.group.DoChan(date, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		if word := s.stored(ctx, date); word != nil {
			return *word, nil
		}

		word := s.selectDailyWord(ctx, date)
		if err := s.store.Save(ctx, word); err != nil {
			s.log.WarnContext(ctx, "failed to store daily word, keeping it in memory", slog.String("date", date), slog.String("error", err.Error()))
			_ = s.pending.Save(ctx, word)
			return word, nil
		}
		// Another process may have stored its word for the date first.
		if stored := s.stored(ctx, date); stored != nil {
			return *stored, nil
		}
		return word, nil
	})
	select {
	case res := <-ch:
		return res.Val.(DailyWord)
	case <-ctx.Done():
		fallback := s.fallback()
		return DailyWord{Date: date, DailyWord: fallback.Word, Definition: fallback.Definition, Phonetic: fallback.Phonetic}
	}
}

// RandomWord samples a word with a definition, translating the definition.
// Nothing is stored.
func (s *Selector) RandomWord(ctx context.Context) RandomWord {
	word, entry := s.sample(ctx, s.config.RandomAttempts, 0)
	if entry == nil {
		fallback := s.fallback()
		s.metrics.Fallback("random_word", "static")
		return RandomWord{
			RandomWord:           fallback.Word,
			Definition:           fallback.Definition,
			Phonetic:             fallback.Phonetic,
			TranslatedDefinition: fallback.TranslatedDefinition,
		}
	}

	return RandomWord{
		RandomWord:           word,
		Definition:           entry.Definition(),
		Phonetic:             s.phonetic(word, entry),
		TranslatedDefinition: s.translate(ctx, entry.Definition()),
	}
}

func (s *Selector) selectDailyWord(ctx context.Context, date string) DailyWord {
	word, entry := s.sample(ctx, s.config.Attempts, s.config.RetryDelay)
	if entry == nil {
		fallback := s.fallback()
		s.metrics.Fallback("daily_word", "static")
		s.log.InfoContext(ctx, "using fallback daily word", slog.String("date", date), slog.String("word", fallback.Word))
		return DailyWord{Date: date, DailyWord: fallback.Word, Definition: fallback.Definition, Phonetic: fallback.Phonetic}
	}

	s.log.InfoContext(ctx, "daily word selected", slog.String("date", date), slog.String("word", word))
	return DailyWord{
		Date:       date,
		DailyWord:  word,
		Definition: entry.Definition(),
		Phonetic:   s.phonetic(word, entry),
	}
}

// sample draws up to attempts candidates, waiting delay between them, and
// returns the first one with a definition. Lookup failures of any kind
// reject the candidate.
func (s *Selector) sample(ctx context.Context, attempts int, delay time.Duration) (string, *provider.DictionaryEntry) {
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 && !sleep(ctx, delay) {
			return "", nil
		}

		candidate := enrichment.Normalize(s.sources.Words.RandomWord(s.intN))
		if candidate == "" {
			continue
		}
		entry, err := s.sources.Dictionary.Lookup(ctx, candidate)
		switch {
		case err != nil:
			s.log.DebugContext(ctx, "candidate rejected", slog.String("word", candidate), slog.Int("attempt", attempt), slog.String("error", err.Error()))
		case entry == nil || entry.Definition() == "":
			s.log.DebugContext(ctx, "candidate has no definition", slog.String("word", candidate), slog.Int("attempt", attempt))
		default:
			return candidate, entry
		}
	}
	return "", nil
}

func (s *Selector) phonetic(word string, entry *provider.DictionaryEntry) string {
	if s.sources.Phonetics != nil {
		if transcription, ok := s.sources.Phonetics.Lookup(word); ok && transcription != "" {
			return transcription
		}
	}
	for _, transcription := range entry.Phonetics {
		if transcription != "" {
			return transcription
		}
	}
	return enrichment.PhoneticUnavailable
}

func (s *Selector) translate(ctx context.Context, definition string) string {
	if s.sources.Translator == nil {
		return enrichment.TranslationUnavailable
	}
	translated, err := s.sources.Translator.Translate(ctx, definition, "en", "pt")
	if err != nil || translated == "" {
		if err != nil {
			s.log.DebugContext(ctx, "definition translation failed", slog.String("error", err.Error()))
		}
		return enrichment.TranslationUnavailable
	}
	return translated
}

func (s *Selector) fallback() Fallback {
	if len(s.fallbacks) == 0 {
		return Fallback{
			Word:                 "welcome",
			Definition:           "An expression of greeting",
			Phonetic:             "/ˈwelkəm/",
			TranslatedDefinition: "Uma expressão de cumprimento",
		}
	}
	return s.fallbacks[s.intN(len(s.fallbacks))]
}

// stored returns the word of date from the store, or the word kept in memory
// when the store could not save it.
func (s *Selector) stored(ctx context.Context, date string) *DailyWord {
	word, err := s.store.Get(ctx, date)
	if err != nil {
		s.log.WarnContext(ctx, "failed to read daily word", slog.String("date", date), slog.String("error", err.Error()))
	}
	if word != nil {
		return word
	}
	word, _ = s.pending.Get(ctx, date)
	return word
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
