package provider

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/provider/mock_provider.go -package=mock_provider

// DictionaryEntry is the normalized answer of a dictionary lookup.
type DictionaryEntry struct {
	Word        string   `json:"word"`
	Definitions []string `json:"definitions"`
	Phonetics   []string `json:"phonetics"`
}

// Definition returns the canonical (first) definition.
func (e DictionaryEntry) Definition() string {
	if len(e.Definitions) == 0 {
		return ""
	}
	return e.Definitions[0]
}

// Phrase is an example sentence with its Portuguese translation.
type Phrase struct {
	English    string `json:"english"`
	Portuguese string `json:"portuguese"`
}

// Dictionary looks words up in a dictionary API.
// A word without an entry yields (nil, nil).
type Dictionary interface {
	Lookup(ctx context.Context, word string) (*DictionaryEntry, error)
}

// Scraper translates words and fetches example phrases from the
// headless-browser phrase service.
type Scraper interface {
	Translate(ctx context.Context, word string) ([]string, error)
	Examples(ctx context.Context, word string) ([]Phrase, error)
}

// Generative is the generative-AI fallback provider.
type Generative interface {
	TranslateWord(ctx context.Context, word string) ([]string, error)
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	GenerateExamples(ctx context.Context, word string, exclude []Phrase) ([]Phrase, error)
}
