// Package enrichment assembles word records from the dictionary, scraper and
// generative providers, falling back between them and caching the result.
package enrichment

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/at-ishikawa/transcriptus/internal/cache"
	"github.com/at-ishikawa/transcriptus/internal/ipa"
	"github.com/at-ishikawa/transcriptus/internal/metrics"
	"github.com/at-ishikawa/transcriptus/internal/provider"
)

// Providers are the sources a Pipeline draws from. Scraper, Phonetics and
// Translator may be nil.
type Providers struct {
	Dictionary provider.Dictionary
	Scraper    provider.Scraper
	Generative provider.Generative
	Phonetics  Phonetics
	Translator Translator
}

// Pipeline enriches words. Concurrent Enrich calls for the same uncached
// word share one computation.
type Pipeline struct {
	providers Providers
	cache     *cache.TTL[string, WordRecord]
	group     singleflight.Group
	gates     map[string]*gate
	metrics   *metrics.Recorder
	log       *slog.Logger
}

// gate turns a provider off for good once it reports ErrMisconfigured.
type gate struct {
	disabled atomic.Bool
	once     sync.Once
}

func NewPipeline(providers Providers, wordCache *cache.TTL[string, WordRecord], recorder *metrics.Recorder, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		providers: providers,
		cache:     wordCache,
		gates: map[string]*gate{
			provider.NameDictionary: {},
			provider.NameScraper:    {},
			provider.NameGenerative: {},
		},
		metrics: recorder,
		log:     logger.With("component", "enrichment"),
	}
}

// Enrich returns the record for word. It never fails: data a provider could
// not supply is replaced by sentinels. When ctx ends first, the computation
// carries on for later callers and this caller gets a sentinel record.
func (p *Pipeline) Enrich(ctx context.Context, word string) WordRecord {
	word = Normalize(word)
	if record, ok := p.cache.Get(word); ok {
		p.metrics.CacheLookup("word", true)
		p.log.DebugContext(ctx, "word cache hit", slog.String("word", word))
		return record
	}
	p.metrics.CacheLookup("word", false)

	ch := p.group.DoChan(word, func() (any, error) {
		record := p.enrich(context.WithoutCancel(ctx), word)
		if record.unavailable() {
			p.log.WarnContext(ctx, "no provider data for word, not caching", slog.String("word", word))
			return record, nil
		}
		p.cache.Set(word, record)
		return record, nil
	})
	select {
	case res := <-ch:
		return res.Val.(WordRecord)
	case <-ctx.Done():
		p.log.WarnContext(ctx, "enrichment abandoned", slog.String("word", word), slog.String("error", ctx.Err().Error()))
		return degradedRecord(word)
	}
}

func (p *Pipeline) enrich(ctx context.Context, word string) WordRecord {
	record := degradedRecord(word)
	var dictionaryPhonetics []string

	var g errgroup.Group
	g.Go(func() error {
		entry := p.lookup(ctx, word)
		if entry == nil || entry.Definition() == "" {
			return nil
		}
		record.Definition = entry.Definition()
		dictionaryPhonetics = entry.Phonetics
		record.TranslatedDefinition = p.translateDefinition(ctx, record.Definition)
		return nil
	})
	g.Go(func() error {
		record.Translations = p.translations(ctx, word)
		return nil
	})
	g.Go(func() error {
		record.Phrases = p.phrases(ctx, word, nil, MaxPhrases)
		return nil
	})
	_ = g.Wait()

	record.Phonetic, record.Pronunciation = p.phonetic(word, dictionaryPhonetics)
	return record
}

func (p *Pipeline) lookup(ctx context.Context, word string) *provider.DictionaryEntry {
	if p.providers.Dictionary == nil || !p.usable(provider.NameDictionary) {
		return nil
	}
	entry, err := p.providers.Dictionary.Lookup(ctx, word)
	if err != nil {
		p.observe(ctx, provider.NameDictionary, err)
		return nil
	}
	return entry
}

func (p *Pipeline) translateDefinition(ctx context.Context, definition string) string {
	if p.providers.Translator == nil || !p.usable(provider.NameGenerative) {
		return TranslationUnavailable
	}
	translated, err := p.providers.Translator.Translate(ctx, definition, "en", "pt")
	if err != nil {
		p.observe(ctx, provider.NameGenerative, err)
		return TranslationUnavailable
	}
	if translated == "" {
		return TranslationUnavailable
	}
	return translated
}

// translations prefers the scraper and tops its list up with generative
// results until MaxTranslations.
func (p *Pipeline) translations(ctx context.Context, word string) []string {
	var primary []string
	if p.providers.Scraper != nil && p.usable(provider.NameScraper) {
		list, err := p.providers.Scraper.Translate(ctx, word)
		if err != nil {
			p.observe(ctx, provider.NameScraper, err)
		}
		primary = provider.FilterTranslations(word, list, MaxTranslations)
	}

	var secondary []string
	if len(primary) < MaxTranslations && p.providers.Generative != nil && p.usable(provider.NameGenerative) {
		list, err := p.providers.Generative.TranslateWord(ctx, word)
		if err != nil {
			p.observe(ctx, provider.NameGenerative, err)
		} else if len(list) > 0 {
			p.metrics.Fallback("translations", provider.NameGenerative)
		}
		secondary = list
	}

	merged := provider.MergeTranslations(word, MaxTranslations, primary, secondary)
	if len(merged) == 0 {
		return []string{TranslationUnavailable}
	}
	return merged
}

// phrases collects up to limit phrases that are not in exclude, scraper
// first and generative after.
func (p *Pipeline) phrases(ctx context.Context, word string, exclude []provider.Phrase, limit int) []provider.Phrase {
	var collected []provider.Phrase
	if p.providers.Scraper != nil && p.usable(provider.NameScraper) {
		list, err := p.providers.Scraper.Examples(ctx, word)
		if err != nil {
			p.observe(ctx, provider.NameScraper, err)
		}
		collected = provider.MergePhrases(limit, exclude, list)
	}

	if len(collected) < limit && p.providers.Generative != nil && p.usable(provider.NameGenerative) {
		seen := append(append([]provider.Phrase{}, exclude...), collected...)
		list, err := p.providers.Generative.GenerateExamples(ctx, word, seen)
		if err != nil {
			p.observe(ctx, provider.NameGenerative, err)
		} else if len(list) > 0 {
			p.metrics.Fallback("phrases", provider.NameGenerative)
		}
		collected = provider.MergePhrases(limit, exclude, collected, list)
	}

	if collected == nil {
		return []provider.Phrase{}
	}
	return collected
}

// phonetic prefers the local IPA dictionary and falls back to the
// dictionary API's transcription.
func (p *Pipeline) phonetic(word string, dictionaryPhonetics []string) (string, string) {
	if p.providers.Phonetics != nil {
		if transcription, ok := p.providers.Phonetics.Lookup(word); ok && transcription != "" {
			return transcription, pronunciation(transcription)
		}
	}
	for _, transcription := range dictionaryPhonetics {
		if transcription != "" {
			p.metrics.Fallback("phonetic", provider.NameDictionary)
			return transcription, pronunciation(transcription)
		}
	}
	return PhoneticUnavailable, PronunciationUnavailable
}

func pronunciation(transcription string) string {
	if respelled := ipa.Respell(transcription); respelled != "" {
		return respelled
	}
	return PronunciationUnavailable
}

func (p *Pipeline) usable(name string) bool {
	g, ok := p.gates[name]
	return !ok || !g.disabled.Load()
}

// observe logs a provider failure. ErrMisconfigured is logged once and
// disables the provider.
func (p *Pipeline) observe(ctx context.Context, name string, err error) {
	if !errors.Is(err, provider.ErrMisconfigured) {
		p.log.DebugContext(ctx, "provider step failed", slog.String("provider", name), slog.String("error", err.Error()))
		return
	}
	g, ok := p.gates[name]
	if !ok {
		return
	}
	g.disabled.Store(true)
	g.once.Do(func() {
		p.log.WarnContext(ctx, "provider is misconfigured and will be skipped", slog.String("provider", name), slog.String("error", err.Error()))
	})
}
