package scraper

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/at-ishikawa/transcriptus/internal/provider"
)

// Field names seen across versions of the phrase service, in priority order.
var (
	sourceAliases = []string{"source", "english", "src", "en", "sourceText", "source_text"}
	targetAliases = []string{"target", "portuguese", "trg", "pt", "targetText", "target_text"}
)

var markupPattern = regexp.MustCompile(`<[^>]*>`)

type sessionResponse struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
}

func (r sessionResponse) sessionID() string {
	if r.ID != "" {
		return r.ID
	}
	return r.SessionID
}

type translateResponse struct {
	Translations []string `json:"translations"`
}

type contextResponse struct {
	OK       *bool                        `json:"ok"`
	Examples []map[string]json.RawMessage `json:"examples"`
}

func parseTranslations(body []byte) ([]string, error) {
	var res translateResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w: %w", provider.ErrMalformed, err)
	}
	return res.Translations, nil
}

// parseExamples decodes a context response, dropping examples that lack
// either side of the pair.
func parseExamples(body []byte) ([]provider.Phrase, error) {
	var res contextResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w: %w", provider.ErrMalformed, err)
	}
	if res.OK != nil && !*res.OK {
		return nil, fmt.Errorf("context response not ok: %w", provider.ErrMalformed)
	}

	phrases := make([]provider.Phrase, 0, len(res.Examples))
	for _, example := range res.Examples {
		english, ok := lookupField(example, sourceAliases)
		if !ok {
			continue
		}
		portuguese, ok := lookupField(example, targetAliases)
		if !ok {
			continue
		}
		phrases = append(phrases, provider.Phrase{English: english, Portuguese: portuguese})
	}
	return phrases, nil
}

// lookupField returns the first alias holding a non-empty string.
func lookupField(example map[string]json.RawMessage, aliases []string) (string, bool) {
	for _, alias := range aliases {
		raw, ok := example[alias]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			continue
		}
		if value = cleanText(value); value != "" {
			return value, true
		}
	}
	return "", false
}

// cleanText strips the highlight markup the service wraps around the
// searched word.
func cleanText(s string) string {
	s = markupPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
