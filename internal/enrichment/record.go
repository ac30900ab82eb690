package enrichment

import (
	"strings"

	"github.com/at-ishikawa/transcriptus/internal/provider"
)

// Sentinels stand in for data no provider could supply.
const (
	DefinitionUnavailable    = "definition unavailable"
	TranslationUnavailable   = "translation unavailable"
	PhoneticUnavailable      = "phonetic not available"
	PronunciationUnavailable = "pronunciation not available"
)

const (
	MaxTranslations = 15
	MaxPhrases      = 5
	// MaxTotalPhrases is how many phrases a word can accumulate through
	// GenerateMorePhrases.
	MaxTotalPhrases = 20
)

// WordRecord is the enriched result for one word. Every field holds either
// real data or a sentinel.
type WordRecord struct {
	Word                 string            `json:"word" yaml:"word"`
	Definition           string            `json:"definition" yaml:"definition"`
	TranslatedDefinition string            `json:"translatedDefinition" yaml:"translated_definition"`
	Translations         []string          `json:"translations" yaml:"translations"`
	Phonetic             string            `json:"phonetic" yaml:"phonetic"`
	Pronunciation        string            `json:"pronunciation" yaml:"pronunciation"`
	Phrases              []provider.Phrase `json:"phrases" yaml:"phrases"`
}

// MorePhrases is the answer of GenerateMorePhrases.
type MorePhrases struct {
	Phrases []provider.Phrase `json:"phrases" yaml:"phrases"`
	HasMore bool              `json:"hasMore" yaml:"has_more"`
	Message string            `json:"message" yaml:"message"`
}

// Normalize lowercases and trims a word.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// unavailable reports whether neither a definition nor a translation was
// found, so the record carries no provider data worth caching.
func (r WordRecord) unavailable() bool {
	return r.Definition == DefinitionUnavailable &&
		len(r.Translations) == 1 && r.Translations[0] == TranslationUnavailable
}

func degradedRecord(word string) WordRecord {
	return WordRecord{
		Word:                 word,
		Definition:           DefinitionUnavailable,
		TranslatedDefinition: TranslationUnavailable,
		Translations:         []string{TranslationUnavailable},
		Phonetic:             PhoneticUnavailable,
		Pronunciation:        PronunciationUnavailable,
		Phrases:              []provider.Phrase{},
	}
}
