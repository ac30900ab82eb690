package enrichment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/transcriptus/internal/cache"
	"github.com/at-ishikawa/transcriptus/internal/ipa"
	mock_enrichment "github.com/at-ishikawa/transcriptus/internal/mocks/enrichment"
	mock_provider "github.com/at-ishikawa/transcriptus/internal/mocks/provider"
	"github.com/at-ishikawa/transcriptus/internal/provider"
)

type mocks struct {
	dictionary *mock_provider.MockDictionary
	scraper    *mock_provider.MockScraper
	generative *mock_provider.MockGenerative
	translator *mock_enrichment.MockTranslator
}

func newTestPipeline(t *testing.T) (*Pipeline, mocks, *cache.TTL[string, WordRecord]) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		dictionary: mock_provider.NewMockDictionary(ctrl),
		scraper:    mock_provider.NewMockScraper(ctrl),
		generative: mock_provider.NewMockGenerative(ctrl),
		translator: mock_enrichment.NewMockTranslator(ctrl),
	}
	phonetics, err := ipa.Parse(strings.NewReader("happy ˈhæpi\nnovel ˈnɑvəl\nrun ˈɹʌn\n"))
	require.NoError(t, err)

	wordCache := cache.NewTTL[string, WordRecord](time.Hour)
	pipeline := NewPipeline(Providers{
		Dictionary: m.dictionary,
		Scraper:    m.scraper,
		Generative: m.generative,
		Phonetics:  phonetics,
		Translator: m.translator,
	}, wordCache, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return pipeline, m, wordCache
}

func numbered(prefix string, n int) []string {
	list := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		list = append(list, fmt.Sprintf("%s%d", prefix, i))
	}
	return list
}

func TestPipeline_Enrich(t *testing.T) {
	unavailable := fmt.Errorf("boom: %w", provider.ErrUnavailable)

	tests := []struct {
		name  string
		word  string
		setup func(m mocks)
		want  WordRecord
	}{
		{
			name: "scraper results are topped up by the generative provider",
			word: "  Happy ",
			setup: func(m mocks) {
				m.dictionary.EXPECT().Lookup(gomock.Any(), "happy").Return(&provider.DictionaryEntry{
					Word:        "happy",
					Definitions: []string{"Feeling joy.", "Lucky."},
					Phonetics:   []string{"/ˈhapi/"},
				}, nil)
				m.translator.EXPECT().Translate(gomock.Any(), "Feeling joy.", "en", "pt").Return("Sentindo alegria.", nil)
				m.scraper.EXPECT().Translate(gomock.Any(), "happy").Return([]string{"feliz", "contente"}, nil)
				m.generative.EXPECT().TranslateWord(gomock.Any(), "happy").Return([]string{"Feliz", "alegre", "unhappy"}, nil)
				m.scraper.EXPECT().Examples(gomock.Any(), "happy").Return([]provider.Phrase{
					{English: "I am happy.", Portuguese: "Eu estou feliz."},
					{English: "I AM HAPPY.", Portuguese: "Estou feliz."},
				}, nil)
				m.generative.EXPECT().GenerateExamples(gomock.Any(), "happy", []provider.Phrase{
					{English: "I am happy.", Portuguese: "Eu estou feliz."},
				}).Return([]provider.Phrase{
					{English: "She looks happy.", Portuguese: "Ela parece feliz."},
				}, nil)
			},
			want: WordRecord{
				Word:                 "happy",
				Definition:           "Feeling joy.",
				TranslatedDefinition: "Sentindo alegria.",
				Translations:         []string{"feliz", "contente", "alegre"},
				Phonetic:             "ˈhæpi",
				Pronunciation:        "·rrapee",
				Phrases: []provider.Phrase{
					{English: "I am happy.", Portuguese: "Eu estou feliz."},
					{English: "She looks happy.", Portuguese: "Ela parece feliz."},
				},
			},
		},
		{
			name: "a failing scraper falls back to the generative provider entirely",
			word: "serendipity",
			setup: func(m mocks) {
				m.dictionary.EXPECT().Lookup(gomock.Any(), "serendipity").Return(nil, nil)
				m.scraper.EXPECT().Translate(gomock.Any(), "serendipity").Return(nil, unavailable)
				m.scraper.EXPECT().Examples(gomock.Any(), "serendipity").Return(nil, unavailable)
				m.generative.EXPECT().TranslateWord(gomock.Any(), "serendipity").Return([]string{"serendipidade", "acaso feliz"}, nil)
				m.generative.EXPECT().GenerateExamples(gomock.Any(), "serendipity", []provider.Phrase{}).Return([]provider.Phrase{
					{English: "It was pure serendipity.", Portuguese: "Foi puro acaso."},
				}, nil)
			},
			want: WordRecord{
				Word:                 "serendipity",
				Definition:           DefinitionUnavailable,
				TranslatedDefinition: TranslationUnavailable,
				Translations:         []string{"serendipidade", "acaso feliz"},
				Phonetic:             PhoneticUnavailable,
				Pronunciation:        PronunciationUnavailable,
				Phrases: []provider.Phrase{
					{English: "It was pure serendipity.", Portuguese: "Foi puro acaso."},
				},
			},
		},
		{
			name: "every provider failing yields sentinels",
			word: "novel",
			setup: func(m mocks) {
				m.dictionary.EXPECT().Lookup(gomock.Any(), "novel").Return(nil, fmt.Errorf("x: %w", provider.ErrRateLimited))
				m.scraper.EXPECT().Translate(gomock.Any(), "novel").Return(nil, unavailable)
				m.scraper.EXPECT().Examples(gomock.Any(), "novel").Return(nil, unavailable)
				m.generative.EXPECT().TranslateWord(gomock.Any(), "novel").Return(nil, unavailable)
				m.generative.EXPECT().GenerateExamples(gomock.Any(), "novel", gomock.Any()).Return(nil, unavailable)
			},
			want: WordRecord{
				Word:                 "novel",
				Definition:           DefinitionUnavailable,
				TranslatedDefinition: TranslationUnavailable,
				Translations:         []string{TranslationUnavailable},
				Phonetic:             "ˈnɑvəl",
				Pronunciation:        "·naavál",
				Phrases:              []provider.Phrase{},
			},
		},
		{
			name: "full scraper results skip the generative provider",
			word: "run",
			setup: func(m mocks) {
				m.dictionary.EXPECT().Lookup(gomock.Any(), "run").Return(&provider.DictionaryEntry{
					Word:        "run",
					Definitions: []string{"To move swiftly."},
				}, nil)
				m.translator.EXPECT().Translate(gomock.Any(), "To move swiftly.", "en", "pt").Return("", errors.New("quota"))
				m.scraper.EXPECT().Translate(gomock.Any(), "run").Return(numbered("t", 20), nil)
				m.scraper.EXPECT().Examples(gomock.Any(), "run").Return([]provider.Phrase{
					{English: "e1", Portuguese: "p1"},
					{English: "e2", Portuguese: "p2"},
					{English: "e3", Portuguese: "p3"},
					{English: "e4", Portuguese: "p4"},
					{English: "e5", Portuguese: "p5"},
					{English: "e6", Portuguese: "p6"},
				}, nil)
			},
			want: WordRecord{
				Word:                 "run",
				Definition:           "To move swiftly.",
				TranslatedDefinition: TranslationUnavailable,
				Translations:         numbered("t", 15),
				Phonetic:             "ˈɹʌn",
				Pronunciation:        "·ruhn",
				Phrases: []provider.Phrase{
					{English: "e1", Portuguese: "p1"},
					{English: "e2", Portuguese: "p2"},
					{English: "e3", Portuguese: "p3"},
					{English: "e4", Portuguese: "p4"},
					{English: "e5", Portuguese: "p5"},
				},
			},
		},
		{
			name: "dictionary transcription is used when the IPA dictionary lacks the word",
			word: "quokka",
			setup: func(m mocks) {
				m.dictionary.EXPECT().Lookup(gomock.Any(), "quokka").Return(&provider.DictionaryEntry{
					Word:        "quokka",
					Definitions: []string{"A small wallaby."},
					Phonetics:   []string{"/ˈkwɑkə/"},
				}, nil)
				m.translator.EXPECT().Translate(gomock.Any(), "A small wallaby.", "en", "pt").Return("Um pequeno canguru.", nil)
				m.scraper.EXPECT().Translate(gomock.Any(), "quokka").Return([]string{"quoca"}, nil)
				m.generative.EXPECT().TranslateWord(gomock.Any(), "quokka").Return(nil, nil)
				m.scraper.EXPECT().Examples(gomock.Any(), "quokka").Return(nil, nil)
				m.generative.EXPECT().GenerateExamples(gomock.Any(), "quokka", gomock.Any()).Return(nil, nil)
			},
			want: WordRecord{
				Word:                 "quokka",
				Definition:           "A small wallaby.",
				TranslatedDefinition: "Um pequeno canguru.",
				Translations:         []string{"quoca"},
				Phonetic:             "/ˈkwɑkə/",
				Pronunciation:        "·kwaaká",
				Phrases:              []provider.Phrase{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline, m, _ := newTestPipeline(t)
			tt.setup(m)

			got := pipeline.Enrich(context.Background(), tt.word)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got.Translations), MaxTranslations)
			assert.LessOrEqual(t, len(got.Phrases), MaxPhrases)
		})
	}
}

func TestPipeline_Enrich_CachesWithinTTL(t *testing.T) {
	pipeline, m, wordCache := newTestPipeline(t)
	m.dictionary.EXPECT().Lookup(gomock.Any(), "happy").Return(nil, nil).Times(1)
	m.scraper.EXPECT().Translate(gomock.Any(), "happy").Return([]string{"feliz"}, nil).Times(1)
	m.generative.EXPECT().TranslateWord(gomock.Any(), "happy").Return(nil, nil).Times(1)
	m.scraper.EXPECT().Examples(gomock.Any(), "happy").Return(nil, nil).Times(1)
	m.generative.EXPECT().GenerateExamples(gomock.Any(), "happy", gomock.Any()).Return(nil, nil).Times(1)

	first := pipeline.Enrich(context.Background(), "happy")
	second := pipeline.Enrich(context.Background(), "HAPPY")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, wordCache.Len())
}

func TestPipeline_Enrich_DoesNotCacheUnavailableRecord(t *testing.T) {
	pipeline, m, wordCache := newTestPipeline(t)
	unavailable := fmt.Errorf("x: %w", provider.ErrUnavailable)
	m.dictionary.EXPECT().Lookup(gomock.Any(), "novel").Return(nil, unavailable).Times(2)
	m.scraper.EXPECT().Translate(gomock.Any(), "novel").Return(nil, unavailable).Times(2)
	m.scraper.EXPECT().Examples(gomock.Any(), "novel").Return(nil, unavailable).Times(2)
	m.generative.EXPECT().TranslateWord(gomock.Any(), "novel").Return(nil, unavailable).Times(1)
	m.generative.EXPECT().GenerateExamples(gomock.Any(), "novel", gomock.Any()).Return(nil, unavailable).Times(1)

	first := pipeline.Enrich(context.Background(), "novel")
	assert.Equal(t, DefinitionUnavailable, first.Definition)
	assert.Equal(t, 0, wordCache.Len())

	m.generative.EXPECT().TranslateWord(gomock.Any(), "novel").Return([]string{"romance"}, nil).Times(1)
	m.generative.EXPECT().GenerateExamples(gomock.Any(), "novel", gomock.Any()).Return(nil, nil).Times(1)

	second := pipeline.Enrich(context.Background(), "novel")
	assert.Equal(t, []string{"romance"}, second.Translations)
	assert.Equal(t, 1, wordCache.Len())
}

func TestPipeline_Enrich_Concurrent(t *testing.T) {
	pipeline, m, wordCache := newTestPipeline(t)
	m.dictionary.EXPECT().Lookup(gomock.Any(), "novel").Return(&provider.DictionaryEntry{
		Word:        "novel",
		Definitions: []string{"A long fictional story."},
	}, nil).MinTimes(1)
	m.translator.EXPECT().Translate(gomock.Any(), gomock.Any(), "en", "pt").Return("Uma longa história.", nil).MinTimes(1)
	m.scraper.EXPECT().Translate(gomock.Any(), "novel").Return([]string{"romance"}, nil).MinTimes(1)
	m.generative.EXPECT().TranslateWord(gomock.Any(), "novel").Return([]string{"inédito"}, nil).MinTimes(1)
	m.scraper.EXPECT().Examples(gomock.Any(), "novel").Return(nil, nil).MinTimes(1)
	m.generative.EXPECT().GenerateExamples(gomock.Any(), "novel", gomock.Any()).Return(nil, nil).MinTimes(1)

	var wg sync.WaitGroup
	results := make([]WordRecord, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = pipeline.Enrich(context.Background(), "novel")
		}()
	}
	wg.Wait()

	assert.Equal(t, results[0], results[1])
	assert.Equal(t, []string{"romance", "inédito"}, results[0].Translations)
	cached, ok := wordCache.Get("novel")
	require.True(t, ok)
	assert.Equal(t, results[0], cached)
}

func TestPipeline_Enrich_MisconfiguredProviderIsSkipped(t *testing.T) {
	pipeline, m, _ := newTestPipeline(t)
	misconfigured := fmt.Errorf("gemini: %w", provider.ErrMisconfigured)

	m.dictionary.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	m.scraper.EXPECT().Translate(gomock.Any(), gomock.Any()).Return([]string{"correr"}, nil).Times(2)
	m.scraper.EXPECT().Examples(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	// The translation and phrase steps run in parallel, so either may be the
	// one that observes the failure first. "walk" must reach neither.
	var generativeCalls atomic.Int32
	m.generative.EXPECT().TranslateWord(gomock.Any(), "run").DoAndReturn(func(context.Context, string) ([]string, error) {
		generativeCalls.Add(1)
		return nil, misconfigured
	}).MaxTimes(1)
	m.generative.EXPECT().GenerateExamples(gomock.Any(), "run", gomock.Any()).DoAndReturn(func(context.Context, string, []provider.Phrase) ([]provider.Phrase, error) {
		generativeCalls.Add(1)
		return nil, misconfigured
	}).MaxTimes(1)

	first := pipeline.Enrich(context.Background(), "run")
	assert.Equal(t, []string{"correr"}, first.Translations)
	assert.GreaterOrEqual(t, generativeCalls.Load(), int32(1))
	assert.False(t, pipeline.usable(provider.NameGenerative))

	second := pipeline.Enrich(context.Background(), "walk")
	assert.Equal(t, []string{"correr"}, second.Translations)
	assert.Equal(t, []provider.Phrase{}, second.Phrases)
}

func TestPipeline_Enrich_WithoutOptionalProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	dictionary := mock_provider.NewMockDictionary(ctrl)
	generative := mock_provider.NewMockGenerative(ctrl)
	dictionary.EXPECT().Lookup(gomock.Any(), "happy").Return(&provider.DictionaryEntry{
		Word:        "happy",
		Definitions: []string{"Feeling joy."},
	}, nil)
	generative.EXPECT().TranslateWord(gomock.Any(), "happy").Return([]string{"feliz"}, nil)
	generative.EXPECT().GenerateExamples(gomock.Any(), "happy", []provider.Phrase{}).Return(nil, nil)

	pipeline := NewPipeline(Providers{Dictionary: dictionary, Generative: generative},
		cache.NewTTL[string, WordRecord](time.Hour), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got := pipeline.Enrich(context.Background(), "happy")
	assert.Equal(t, WordRecord{
		Word:                 "happy",
		Definition:           "Feeling joy.",
		TranslatedDefinition: TranslationUnavailable,
		Translations:         []string{"feliz"},
		Phonetic:             PhoneticUnavailable,
		Pronunciation:        PronunciationUnavailable,
		Phrases:              []provider.Phrase{},
	}, got)
}
