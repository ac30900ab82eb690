package enrichment

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/enrichment/mock_enrichment.go -package=mock_enrichment

// Phonetics is the local IPA dictionary.
type Phonetics interface {
	Lookup(word string) (string, bool)
}

// Translator translates free text, e.g. a definition.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
