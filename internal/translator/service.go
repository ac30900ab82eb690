// Package translator translates free text through the generative provider,
// caching successful translations.
package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/at-ishikawa/transcriptus/internal/cache"
	"github.com/at-ishikawa/transcriptus/internal/history"
	"github.com/at-ishikawa/transcriptus/internal/metrics"
	"github.com/at-ishikawa/transcriptus/internal/provider"
)

const (
	DefaultTTL            = time.Hour
	DefaultSourceLanguage = "en"
	DefaultTargetLanguage = "pt"
	MaxTextLength         = 5000
)

// Messages shown to users instead of provider errors.
const (
	MessageEmpty         = "please enter a text to translate"
	MessageTooLong       = "text is too long: use fewer than 5000 characters"
	MessageNotConfigured = "translation unavailable: API key not configured"
	MessageRateLimited   = "translation temporarily unavailable: too many requests, try again in a few minutes"
	MessageUnavailable   = "translation unavailable"
)

// ErrInvalidText is wrapped by errors for text that cannot be translated.
var ErrInvalidText = errors.New("invalid text")

// Error carries the message to show for a failed translation.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Key identifies a cached translation.
type Key struct {
	Text   string
	Source string
	Target string
}

// Service translates text. It satisfies enrichment.Translator.
type Service struct {
	generative provider.Generative
	cache      *cache.TTL[Key, string]
	history    *history.Service
	metrics    *metrics.Recorder
	log        *slog.Logger
}

// NewService creates a Service. history may be nil.
func NewService(generative provider.Generative, translations *cache.TTL[Key, string], history *history.Service, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		generative: generative,
		cache:      translations,
		history:    history,
		metrics:    recorder,
		log:        logger.With("component", "translator"),
	}
}

// Translate returns the cached translation of text or asks the provider.
// Only non-empty translations are cached.
func (s *Service) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	key := Key{Text: text, Source: sourceLang, Target: targetLang}
	if translated, ok := s.cache.Get(key); ok {
		s.metrics.CacheLookup("translation", true)
		s.log.DebugContext(ctx, "translation cache hit", slog.String("source", sourceLang), slog.String("target", targetLang))
		return translated, nil
	}
	s.metrics.CacheLookup("translation", false)

	translated, err := s.generative.TranslateText(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", fmt.Errorf("translate %s to %s: %w", sourceLang, targetLang, err)
	}
	translated = strings.TrimSpace(translated)
	if translated == "" {
		return "", fmt.Errorf("translate %s to %s: %w", sourceLang, targetLang, provider.ErrMalformed)
	}
	s.cache.Set(key, translated)
	return translated, nil
}

// TranslateText validates user text, translates it and records the search
// for a signed-in user. Failures are returned as *Error.
func (s *Service) TranslateText(ctx context.Context, userID, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &Error{Message: MessageEmpty, Err: ErrInvalidText}
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return "", &Error{Message: MessageTooLong, Err: ErrInvalidText}
	}
	if sourceLang == "" {
		sourceLang = DefaultSourceLanguage
	}
	if targetLang == "" {
		targetLang = DefaultTargetLanguage
	}

	translated, err := s.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		s.log.WarnContext(ctx, "translation failed", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, provider.ErrMisconfigured):
			return "", &Error{Message: MessageNotConfigured, Err: err}
		case errors.Is(err, provider.ErrRateLimited):
			return "", &Error{Message: MessageRateLimited, Err: err}
		default:
			return "", &Error{Message: MessageUnavailable, Err: err}
		}
	}

	if s.history != nil {
		s.history.Record(ctx, userID, history.SearchTranslation, text)
	}
	return translated, nil
}
