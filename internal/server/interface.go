package server

import (
	"context"

	"github.com/at-ishikawa/transcriptus/internal/daily"
	"github.com/at-ishikawa/transcriptus/internal/enrichment"
	"github.com/at-ishikawa/transcriptus/internal/history"
	"github.com/at-ishikawa/transcriptus/internal/provider"
)

//go:generate mockgen -source=interface.go -destination=../mocks/server/mock_server.go -package=mock_server

type WordService interface {
	Enrich(ctx context.Context, word string) enrichment.WordRecord
	GenerateMorePhrases(ctx context.Context, word string, exclude []provider.Phrase) enrichment.MorePhrases
}

type DailyService interface {
	SelectDailyWord(ctx context.Context) daily.DailyWord
	RandomWord(ctx context.Context) daily.RandomWord
}

type TranslationService interface {
	TranslateText(ctx context.Context, userID, text, sourceLang, targetLang string) (string, error)
}

type HistoryService interface {
	Record(ctx context.Context, userID string, searchType history.SearchType, word string)
	List(ctx context.Context, userID string, page int) history.Page
}

// WordValidator normalizes a word typed by a user or rejects it.
type WordValidator interface {
	Validate(input string) (string, error)
}
